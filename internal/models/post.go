// Package models contains data structures for the application's domain models.
package models

import "time"

// DefaultAuthorName is used when a post or comment is created without an author name.
const DefaultAuthorName = "anonymous"

// Post represents a board entry. Mutation is gated by a per-post secret
// stored as a bcrypt hash; the hash never leaves the API.
type Post struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	AuthorName string    `gorm:"not null;default:anonymous" json:"author_name"`
	Password   string    `gorm:"not null" json:"-"`
	ViewCount  int       `gorm:"not null;default:0" json:"view_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
