package service

import (
	"context"
	"testing"

	"aiboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCommentService_CreateComment(t *testing.T) {
	hasher := newTestHasher()
	comments := new(mockCommentRepo)
	posts := new(mockPostRepo)
	svc := NewCommentService(comments, posts, hasher)

	posts.On("GetByID", mock.Anything, uint(1)).Return(&models.Post{ID: 1}, nil)
	comments.On("Create", mock.Anything, mock.AnythingOfType("*models.Comment")).Return(nil)

	comment, err := svc.CreateComment(context.Background(), CreateCommentInput{
		PostID:   1,
		Content:  "Nice post",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), comment.PostID)
	assert.Nil(t, comment.ParentID)
	assert.Equal(t, models.DefaultAuthorName, comment.AuthorName)
	assert.NotEqual(t, "secret", comment.Password)
	comments.AssertExpectations(t)
}

func TestCommentService_CreateReplyKeepsParent(t *testing.T) {
	hasher := newTestHasher()
	comments := new(mockCommentRepo)
	posts := new(mockPostRepo)
	svc := NewCommentService(comments, posts, hasher)

	posts.On("GetByID", mock.Anything, uint(1)).Return(&models.Post{ID: 1}, nil)
	comments.On("Create", mock.Anything, mock.AnythingOfType("*models.Comment")).Return(nil)

	parentID := uint(7)
	comment, err := svc.CreateComment(context.Background(), CreateCommentInput{
		PostID:     1,
		Content:    "Replying",
		AuthorName: "bob",
		Password:   "secret",
		ParentID:   &parentID,
	})
	require.NoError(t, err)

	require.NotNil(t, comment.ParentID)
	assert.Equal(t, uint(7), *comment.ParentID)
	assert.Equal(t, "bob", comment.AuthorName)
}

func TestCommentService_CreateCommentMissingPost(t *testing.T) {
	comments := new(mockCommentRepo)
	posts := new(mockPostRepo)
	svc := NewCommentService(comments, posts, newTestHasher())

	posts.On("GetByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateComment(context.Background(), CreateCommentInput{
		PostID:   42,
		Content:  "orphan",
		Password: "secret",
	})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
	assert.Equal(t, "Post not found", appErr.Message)
	comments.AssertNotCalled(t, "Create")
}

func TestCommentService_CreateCommentValidation(t *testing.T) {
	comments := new(mockCommentRepo)
	posts := new(mockPostRepo)
	svc := NewCommentService(comments, posts, newTestHasher())

	_, err := svc.CreateComment(context.Background(), CreateCommentInput{PostID: 1, Content: "no password"})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
	posts.AssertNotCalled(t, "GetByID")
}

func TestCommentService_UpdateComment(t *testing.T) {
	hasher := newTestHasher()
	comments := new(mockCommentRepo)
	svc := NewCommentService(comments, new(mockPostRepo), hasher)

	hashed, err := hasher.Hash("secret")
	require.NoError(t, err)
	stored := &models.Comment{ID: 3, PostID: 1, Content: "old", Password: hashed}

	comments.On("GetByID", mock.Anything, uint(3)).Return(stored, nil)
	comments.On("UpdateContent", mock.Anything, uint(3), "new", mock.AnythingOfType("time.Time")).Return(nil)

	comment, err := svc.UpdateComment(context.Background(), UpdateCommentInput{
		CommentID: 3,
		Content:   "new",
		Password:  "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "new", comment.Content)
	comments.AssertExpectations(t)
}

func TestCommentService_UpdateCommentWrongPassword(t *testing.T) {
	hasher := newTestHasher()
	comments := new(mockCommentRepo)
	svc := NewCommentService(comments, new(mockPostRepo), hasher)

	hashed, err := hasher.Hash("secret")
	require.NoError(t, err)
	comments.On("GetByID", mock.Anything, uint(3)).Return(&models.Comment{ID: 3, Password: hashed}, nil)

	_, err = svc.UpdateComment(context.Background(), UpdateCommentInput{
		CommentID: 3,
		Content:   "new",
		Password:  "wrong",
	})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeForbidden, appErr.Code)
	comments.AssertNotCalled(t, "UpdateContent")
}

func TestCommentService_DeleteCommentNotFound(t *testing.T) {
	comments := new(mockCommentRepo)
	svc := NewCommentService(comments, new(mockPostRepo), newTestHasher())

	comments.On("GetByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.DeleteComment(context.Background(), 9, "secret")

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Comment not found", appErr.Message)
}

func TestCommentService_ListComments(t *testing.T) {
	comments := new(mockCommentRepo)
	svc := NewCommentService(comments, new(mockPostRepo), newTestHasher())

	comments.On("ListByPost", mock.Anything, uint(1)).Return([]*models.Comment{
		{ID: 1, PostID: 1, Content: "first"},
		{ID: 2, PostID: 1, Content: "second"},
	}, nil)

	list, err := svc.ListComments(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
