package models

import "time"

// Comment is a reply to a post. ParentID points at a top-level comment on the
// same post when the comment is a second-level reply, nil otherwise. Both
// foreign keys cascade on delete so removing a post (or a parent comment)
// removes the replies at the store level.
type Comment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PostID     uint      `gorm:"not null;index" json:"post_id"`
	Post       *Post     `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	ParentID   *uint     `gorm:"index" json:"parent_id"`
	Parent     *Comment  `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"-"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	AuthorName string    `gorm:"not null;default:anonymous" json:"author_name"`
	Password   string    `gorm:"not null" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
