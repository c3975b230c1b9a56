package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID                uint           `json:"id" gorm:"primarykey"`
	Name              string         `json:"name" gorm:"not null"`
	Email             string         `json:"email" gorm:"uniqueIndex;not null"`
	Password          string         `json:"-" gorm:"not null"`
	Role              Role           `json:"role" gorm:"default:'viewer'"`
	Active            bool           `json:"active" gorm:"default:true"`
	PasswordChangedAt time.Time      `json:"-"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `json:"-" gorm:"index"`
}

// Actor returns the request identity derived from the stored user.
func (u *User) Actor() *Actor {
	return &Actor{ID: u.ID, Role: u.Role, Active: u.Active}
}
