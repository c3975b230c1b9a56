package models

import "time"

// Request payloads carry `validate` tags instead of gin `binding` tags on
// purpose: validation must run inside the action wrapper, after the role
// check, so handlers only decode the body and never validate it themselves.

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     Role   `json:"role" validate:"required"`
}

type UpdateUserRequest struct {
	ID     uint   `json:"-"`
	Name   string `json:"name" validate:"required,min=1,max=100"`
	Email  string `json:"email" validate:"required,email"`
	Role   Role   `json:"role" validate:"required"`
	Active *bool  `json:"active"`
}

type ResetPasswordRequest struct {
	ID       uint   `json:"-"`
	Password string `json:"password" validate:"required,min=8"`
}

type CreatePostRequest struct {
	Title      string        `json:"title" validate:"required,min=1,max=255"`
	Slug       string        `json:"slug" validate:"omitempty,max=255"`
	Excerpt    string        `json:"excerpt" validate:"max=500"`
	Content    string        `json:"content" validate:"required"`
	Status     ContentStatus `json:"status"`
	CategoryID *uint         `json:"category_id"`
	Tags       []string      `json:"tags"`
}

type UpdatePostRequest struct {
	ID         uint          `json:"-"`
	Title      string        `json:"title" validate:"required,min=1,max=255"`
	Slug       string        `json:"slug" validate:"omitempty,max=255"`
	Excerpt    string        `json:"excerpt" validate:"max=500"`
	Content    string        `json:"content" validate:"required"`
	Status     ContentStatus `json:"status"`
	CategoryID *uint         `json:"category_id"`
	Tags       []string      `json:"tags"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Slug string `json:"slug" validate:"omitempty,max=100"`
}

type UpdateCategoryRequest struct {
	ID   uint   `json:"-"`
	Name string `json:"name" validate:"required,min=1,max=100"`
	Slug string `json:"slug" validate:"omitempty,max=100"`
}

type CreateTagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Slug string `json:"slug" validate:"omitempty,max=100"`
}

type CreateEventRequest struct {
	Title       string        `json:"title" validate:"required,min=1,max=255"`
	Slug        string        `json:"slug" validate:"omitempty,max=255"`
	Description string        `json:"description"`
	Location    string        `json:"location" validate:"max=255"`
	StartsAt    time.Time     `json:"starts_at" validate:"required"`
	EndsAt      *time.Time    `json:"ends_at"`
	Status      ContentStatus `json:"status"`
}

type UpdateEventRequest struct {
	ID          uint          `json:"-"`
	Title       string        `json:"title" validate:"required,min=1,max=255"`
	Slug        string        `json:"slug" validate:"omitempty,max=255"`
	Description string        `json:"description"`
	Location    string        `json:"location" validate:"max=255"`
	StartsAt    time.Time     `json:"starts_at" validate:"required"`
	EndsAt      *time.Time    `json:"ends_at"`
	Status      ContentStatus `json:"status"`
}

type CreateJobOfferRequest struct {
	Title        string        `json:"title" validate:"required,min=1,max=255"`
	Slug         string        `json:"slug" validate:"omitempty,max=255"`
	Description  string        `json:"description" validate:"required"`
	Location     string        `json:"location" validate:"max=255"`
	ContractType string        `json:"contract_type" validate:"max=50"`
	Status       ContentStatus `json:"status"`
}

type UpdateJobOfferRequest struct {
	ID           uint          `json:"-"`
	Title        string        `json:"title" validate:"required,min=1,max=255"`
	Slug         string        `json:"slug" validate:"omitempty,max=255"`
	Description  string        `json:"description" validate:"required"`
	Location     string        `json:"location" validate:"max=255"`
	ContractType string        `json:"contract_type" validate:"max=50"`
	Status       ContentStatus `json:"status"`
}

type SubmitContactRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"max=255"`
	Message string `json:"message" validate:"required,min=1,max=5000"`
}

type UpdateContactStatusRequest struct {
	ID     uint          `json:"-"`
	Status ContactStatus `json:"status" validate:"required"`
}

type CreatePartnershipRequest struct {
	Company     string            `json:"company" validate:"required,min=1,max=255"`
	ContactName string            `json:"contact_name" validate:"max=100"`
	Email       string            `json:"email" validate:"omitempty,email"`
	Phone       string            `json:"phone" validate:"max=50"`
	Website     string            `json:"website" validate:"omitempty,url"`
	Notes       string            `json:"notes"`
	Status      PartnershipStatus `json:"status"`
}

type UpdatePartnershipRequest struct {
	ID          uint              `json:"-"`
	Company     string            `json:"company" validate:"required,min=1,max=255"`
	ContactName string            `json:"contact_name" validate:"max=100"`
	Email       string            `json:"email" validate:"omitempty,email"`
	Phone       string            `json:"phone" validate:"max=50"`
	Website     string            `json:"website" validate:"omitempty,url"`
	Notes       string            `json:"notes"`
	Status      PartnershipStatus `json:"status"`
}

type CreateMediaItemRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=255"`
	URL     string `json:"url" validate:"required,url"`
	AltText string `json:"alt_text" validate:"max=255"`
}

type UpdateMediaItemRequest struct {
	ID      uint   `json:"-"`
	Title   string `json:"title" validate:"required,min=1,max=255"`
	URL     string `json:"url" validate:"required,url"`
	AltText string `json:"alt_text" validate:"max=255"`
}

type CreateTestimonialRequest struct {
	AuthorName string `json:"author_name" validate:"required,min=1,max=100"`
	AuthorRole string `json:"author_role" validate:"max=100"`
	Quote      string `json:"quote" validate:"required,min=1,max=2000"`
	Published  bool   `json:"published"`
}

type UpdateTestimonialRequest struct {
	ID         uint   `json:"-"`
	AuthorName string `json:"author_name" validate:"required,min=1,max=100"`
	AuthorRole string `json:"author_role" validate:"max=100"`
	Quote      string `json:"quote" validate:"required,min=1,max=2000"`
	Published  bool   `json:"published"`
}

// IDRequest is the input for actions that only need a record id; the handler
// fills it from the path parameter.
type IDRequest struct {
	ID uint `json:"-"`
}

// ListParams is the shared pagination/filter query shape for list endpoints.
type ListParams struct {
	Status    string `form:"status"`
	Search    string `form:"search"`
	AuthorID  uint   `form:"author_id"`
	Category  uint   `form:"category_id"`
	TagID     uint   `form:"tag_id"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
	SortBy    string `form:"sort_by,default=created_at"`
	SortOrder string `form:"sort_order,default=desc"`
}

// Normalize clamps pagination values to sane bounds.
func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.SortBy == "" {
		p.SortBy = "created_at"
	}
	if p.SortOrder != "asc" {
		p.SortOrder = "desc"
	}
}

// Paged wraps a list result with pagination metadata.
type Paged struct {
	Items any   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}
