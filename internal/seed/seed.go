// Package seed provides helpers to create demo data for the board database.
// These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"aiboard/internal/models"
	"aiboard/internal/password"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoPassword is the shared secret on every seeded post and comment so
// seeded content can be edited by hand during development.
const DemoPassword = "password123"

// Options configuration for the seeder.
type Options struct {
	NumPosts       int
	MaxDays        int
	CommentsPerMax int
	SkipBcrypt     bool
}

// Seeder populates the database with generated board content.
type Seeder struct {
	db     *gorm.DB
	opts   Options
	hasher password.Hasher
	rand   *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	if opts.NumPosts <= 0 {
		opts.NumPosts = 20
	}
	if opts.MaxDays <= 0 {
		opts.MaxDays = 90
	}
	if opts.CommentsPerMax <= 0 {
		opts.CommentsPerMax = 6
	}

	cost := bcrypt.DefaultCost
	if opts.SkipBcrypt {
		cost = bcrypt.MinCost
	}

	return &Seeder{
		db:     db,
		opts:   opts,
		hasher: password.NewBcryptHasher(cost),
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes every seeded record. Comments go first so the post
// foreign keys never dangle mid-run.
func (s *Seeder) ClearAll() error {
	for _, table := range []string{"comments", "posts", "items"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	log.Println("cleared existing board data")
	return nil
}

// Run seeds demo items, posts and comment threads.
func (s *Seeder) Run() error {
	if err := s.seedItems(); err != nil {
		return err
	}

	posts, err := s.seedPosts()
	if err != nil {
		return err
	}

	total := 0
	for _, post := range posts {
		n, err := s.seedThread(post)
		if err != nil {
			return err
		}
		total += n
	}

	log.Printf("seeded %d posts and %d comments", len(posts), total)
	return nil
}

func (s *Seeder) seedItems() error {
	for i := 0; i < 5; i++ {
		desc := gofakeit.Sentence(8)
		item := &models.Item{
			Name:        gofakeit.ProductName(),
			Description: &desc,
		}
		if err := s.db.Create(item).Error; err != nil {
			return fmt.Errorf("seeding item: %w", err)
		}
	}
	return nil
}

func (s *Seeder) seedPosts() ([]*models.Post, error) {
	hashed, err := s.hasher.Hash(DemoPassword)
	if err != nil {
		return nil, err
	}

	posts := make([]*models.Post, 0, s.opts.NumPosts)
	for i := 0; i < s.opts.NumPosts; i++ {
		post := &models.Post{
			Title:      gofakeit.Sentence(s.rand.Intn(5) + 3),
			Content:    gofakeit.Paragraph(1, 4, 8, "\n"),
			AuthorName: s.authorName(),
			Password:   hashed,
			ViewCount:  s.rand.Intn(500),
			CreatedAt:  s.pastTime(),
		}
		if err := s.db.Create(post).Error; err != nil {
			return nil, fmt.Errorf("seeding post: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// seedThread attaches top-level comments to the post and a few replies under
// each, so threads look like real two-level conversations.
func (s *Seeder) seedThread(post *models.Post) (int, error) {
	hashed, err := s.hasher.Hash(DemoPassword)
	if err != nil {
		return 0, err
	}

	count := 0
	topLevel := s.rand.Intn(s.opts.CommentsPerMax)
	for i := 0; i < topLevel; i++ {
		parent := &models.Comment{
			PostID:     post.ID,
			Content:    gofakeit.Sentence(s.rand.Intn(12) + 3),
			AuthorName: s.authorName(),
			Password:   hashed,
			CreatedAt:  post.CreatedAt.Add(time.Duration(i+1) * time.Hour),
		}
		if err := s.db.Create(parent).Error; err != nil {
			return count, fmt.Errorf("seeding comment: %w", err)
		}
		count++

		replies := s.rand.Intn(3)
		for j := 0; j < replies; j++ {
			reply := &models.Comment{
				PostID:     post.ID,
				ParentID:   &parent.ID,
				Content:    gofakeit.Sentence(s.rand.Intn(10) + 2),
				AuthorName: s.authorName(),
				Password:   hashed,
				CreatedAt:  parent.CreatedAt.Add(time.Duration(j+1) * time.Minute),
			}
			if err := s.db.Create(reply).Error; err != nil {
				return count, fmt.Errorf("seeding reply: %w", err)
			}
			count++
		}
	}
	return count, nil
}

// authorName mixes generated usernames with the board default so seeded data
// exercises both paths.
func (s *Seeder) authorName() string {
	if s.rand.Intn(4) == 0 {
		return models.DefaultAuthorName
	}
	return gofakeit.Username()
}

func (s *Seeder) pastTime() time.Time {
	daysBack := s.rand.Intn(s.opts.MaxDays)
	hoursBack := s.rand.Intn(24)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)
}
