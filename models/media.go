package models

import (
	"time"

	"gorm.io/gorm"
)

// MediaItem is a gallery entry. Key is an opaque identifier assigned at
// creation; the binary itself lives outside this system.
type MediaItem struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Key       string         `json:"key" gorm:"uniqueIndex;not null"`
	Title     string         `json:"title" gorm:"not null"`
	URL       string         `json:"url" gorm:"not null"`
	AltText   string         `json:"alt_text"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

type Testimonial struct {
	ID         uint           `json:"id" gorm:"primarykey"`
	AuthorName string         `json:"author_name" gorm:"not null"`
	AuthorRole string         `json:"author_role"`
	Quote      string         `json:"quote" gorm:"type:text;not null"`
	Published  bool           `json:"published" gorm:"default:false"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}
