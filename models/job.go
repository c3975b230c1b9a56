package models

import (
	"time"

	"gorm.io/gorm"
)

type JobOffer struct {
	ID           uint           `json:"id" gorm:"primarykey"`
	Title        string         `json:"title" gorm:"not null"`
	Slug         string         `json:"slug" gorm:"uniqueIndex;not null"`
	Description  string         `json:"description" gorm:"type:text"`
	Location     string         `json:"location"`
	ContractType string         `json:"contract_type"`
	Status       ContentStatus  `json:"status" gorm:"default:'draft'"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}
