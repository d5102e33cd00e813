package models

// Item is the legacy demo entity kept for the original /api/items CRUD surface.
type Item struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description *string `json:"description"`
}
