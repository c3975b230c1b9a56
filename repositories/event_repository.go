package repositories

import (
	"backoffice-api/models"

	"gorm.io/gorm"
)

type EventRepository interface {
	Create(event *models.Event) error
	GetByID(id uint) (*models.Event, error)
	GetBySlug(slug string) (*models.Event, error)
	GetList(params models.ListParams, publicOnly bool) ([]models.Event, int64, error)
	Update(event *models.Event) error
	Delete(id uint) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

func (r *eventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, id).Error
	return &event, err
}

func (r *eventRepository) GetBySlug(slug string) (*models.Event, error) {
	var event models.Event
	err := r.db.Where("slug = ?", slug).First(&event).Error
	return &event, err
}

func (r *eventRepository) GetList(params models.ListParams, publicOnly bool) ([]models.Event, int64, error) {
	var events []models.Event
	var total int64

	query := r.db.Model(&models.Event{})
	if publicOnly {
		query = query.Where("status = ?", models.StatusPublished)
	} else if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("title ILIKE ? OR location ILIKE ?", like, like)
	}

	query.Count(&total)

	err := query.Order(orderClause(params, "events")).
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		Find(&events).Error
	return events, total, err
}

func (r *eventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

func (r *eventRepository) Delete(id uint) error {
	return r.db.Delete(&models.Event{}, id).Error
}
