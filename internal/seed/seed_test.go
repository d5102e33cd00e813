package seed

import (
	"testing"

	"aiboard/internal/database"
	"aiboard/internal/models"
	"aiboard/internal/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestSeederRun(t *testing.T) {
	db := setupSeedDB(t)
	s := NewSeeder(db, Options{NumPosts: 5, SkipBcrypt: true})

	require.NoError(t, s.Run())

	var postCount, itemCount int64
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	require.NoError(t, db.Model(&models.Item{}).Count(&itemCount).Error)
	assert.Equal(t, int64(5), postCount)
	assert.Equal(t, int64(5), itemCount)

	// Replies must point at comments on the same post.
	var replies []models.Comment
	require.NoError(t, db.Where("parent_id IS NOT NULL").Find(&replies).Error)
	for _, reply := range replies {
		var parent models.Comment
		require.NoError(t, db.First(&parent, *reply.ParentID).Error)
		assert.Equal(t, parent.PostID, reply.PostID)
	}
}

func TestSeededPasswordsVerify(t *testing.T) {
	db := setupSeedDB(t)
	s := NewSeeder(db, Options{NumPosts: 1, SkipBcrypt: true})

	require.NoError(t, s.Run())

	var post models.Post
	require.NoError(t, db.First(&post).Error)

	hasher := password.NewBcryptHasher(bcrypt.MinCost)
	assert.True(t, hasher.Verify(DemoPassword, post.Password))
	assert.False(t, hasher.Verify("wrong", post.Password))
}

func TestClearAll(t *testing.T) {
	db := setupSeedDB(t)
	s := NewSeeder(db, Options{NumPosts: 3, SkipBcrypt: true})
	require.NoError(t, s.Run())

	require.NoError(t, s.ClearAll())

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.Comment{}).Count(&count).Error)
	assert.Zero(t, count)
}
