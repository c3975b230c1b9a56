package services

import (
	"errors"

	"backoffice-api/apperr"
	"backoffice-api/models"
	"backoffice-api/policy"
	"backoffice-api/repositories"
	"backoffice-api/util"

	"gorm.io/gorm"
)

type EventService interface {
	Create(actor *models.Actor, req *models.CreateEventRequest) (*models.Event, error)
	Update(actor *models.Actor, req *models.UpdateEventRequest) (*models.Event, error)
	Get(id uint) (*models.Event, error)
	GetList(params models.ListParams) ([]models.Event, int64, error)
	GetPublicList(params models.ListParams) ([]models.Event, int64, error)
	Delete(id uint) error
}

type eventService struct {
	eventRepo repositories.EventRepository
}

func NewEventService(eventRepo repositories.EventRepository) EventService {
	return &eventService{eventRepo: eventRepo}
}

func (s *eventService) Create(actor *models.Actor, req *models.CreateEventRequest) (*models.Event, error) {
	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}
	if !status.Valid() {
		return nil, apperr.Validation("unknown status")
	}
	status = policy.EnforceStatus(actor.Role, status)

	slug := req.Slug
	if slug == "" {
		slug = util.Slugify(req.Title)
	}
	if err := s.checkSlugFree(slug, 0); err != nil {
		return nil, err
	}

	event := &models.Event{
		Title:       req.Title,
		Slug:        slug,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		Status:      status,
	}

	if err := s.eventRepo.Create(event); err != nil {
		return nil, apperr.FromDB(err, "event")
	}
	return event, nil
}

func (s *eventService) Update(actor *models.Actor, req *models.UpdateEventRequest) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(req.ID)
	if err != nil {
		return nil, apperr.FromDB(err, "event")
	}

	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}
	if !status.Valid() {
		return nil, apperr.Validation("unknown status")
	}
	status = policy.EnforceStatus(actor.Role, status)

	slug := req.Slug
	if slug == "" {
		slug = util.Slugify(req.Title)
	}
	if slug != event.Slug {
		if err := s.checkSlugFree(slug, event.ID); err != nil {
			return nil, err
		}
	}

	event.Title = req.Title
	event.Slug = slug
	event.Description = req.Description
	event.Location = req.Location
	event.StartsAt = req.StartsAt
	event.EndsAt = req.EndsAt
	event.Status = status

	if err := s.eventRepo.Update(event); err != nil {
		return nil, apperr.FromDB(err, "event")
	}
	return event, nil
}

func (s *eventService) Get(id uint) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		return nil, apperr.FromDB(err, "event")
	}
	return event, nil
}

func (s *eventService) GetList(params models.ListParams) ([]models.Event, int64, error) {
	params.Normalize()
	events, total, err := s.eventRepo.GetList(params, false)
	if err != nil {
		return nil, 0, apperr.FromDB(err, "events")
	}
	return events, total, nil
}

func (s *eventService) GetPublicList(params models.ListParams) ([]models.Event, int64, error) {
	params.Normalize()
	events, total, err := s.eventRepo.GetList(params, true)
	if err != nil {
		return nil, 0, apperr.FromDB(err, "events")
	}
	return events, total, nil
}

func (s *eventService) Delete(id uint) error {
	if _, err := s.eventRepo.GetByID(id); err != nil {
		return apperr.FromDB(err, "event")
	}
	if err := s.eventRepo.Delete(id); err != nil {
		return apperr.FromDB(err, "event")
	}
	return nil
}

func (s *eventService) checkSlugFree(slug string, selfID uint) error {
	existing, err := s.eventRepo.GetBySlug(slug)
	if err == nil {
		if existing.ID == selfID {
			return nil
		}
		return apperr.Conflict("slug %q is already in use", slug)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.FromDB(err, "event")
	}
	return nil
}
