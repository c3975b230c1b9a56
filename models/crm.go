package models

import (
	"time"

	"gorm.io/gorm"
)

type ContactStatus string

const (
	ContactNew      ContactStatus = "new"
	ContactRead     ContactStatus = "read"
	ContactArchived ContactStatus = "archived"
)

func (s ContactStatus) Valid() bool {
	switch s {
	case ContactNew, ContactRead, ContactArchived:
		return true
	}
	return false
}

// Contact is an inbound message submitted through the public contact form.
type Contact struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Name      string         `json:"name" gorm:"not null"`
	Email     string         `json:"email" gorm:"not null"`
	Subject   string         `json:"subject"`
	Message   string         `json:"message" gorm:"type:text;not null"`
	Status    ContactStatus  `json:"status" gorm:"default:'new'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

type PartnershipStatus string

const (
	PartnershipPending PartnershipStatus = "pending"
	PartnershipActive  PartnershipStatus = "active"
	PartnershipEnded   PartnershipStatus = "ended"
)

func (s PartnershipStatus) Valid() bool {
	switch s {
	case PartnershipPending, PartnershipActive, PartnershipEnded:
		return true
	}
	return false
}

type Partnership struct {
	ID          uint              `json:"id" gorm:"primarykey"`
	Company     string            `json:"company" gorm:"not null"`
	ContactName string            `json:"contact_name"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Website     string            `json:"website"`
	Notes       string            `json:"notes" gorm:"type:text"`
	Status      PartnershipStatus `json:"status" gorm:"default:'pending'"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	DeletedAt   gorm.DeletedAt    `json:"-" gorm:"index"`
}
