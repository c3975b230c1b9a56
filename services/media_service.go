package services

import (
	"backoffice-api/apperr"
	"backoffice-api/models"
	"backoffice-api/repositories"

	"github.com/google/uuid"
)

type MediaService interface {
	Create(req *models.CreateMediaItemRequest) (*models.MediaItem, error)
	Update(req *models.UpdateMediaItemRequest) (*models.MediaItem, error)
	Get(id uint) (*models.MediaItem, error)
	GetList(params models.ListParams) ([]models.MediaItem, int64, error)
	Delete(id uint) error
}

type mediaService struct {
	mediaRepo repositories.MediaRepository
}

func NewMediaService(mediaRepo repositories.MediaRepository) MediaService {
	return &mediaService{mediaRepo: mediaRepo}
}

func (s *mediaService) Create(req *models.CreateMediaItemRequest) (*models.MediaItem, error) {
	item := &models.MediaItem{
		Key:     uuid.NewString(),
		Title:   req.Title,
		URL:     req.URL,
		AltText: req.AltText,
	}
	if err := s.mediaRepo.Create(item); err != nil {
		return nil, apperr.FromDB(err, "media item")
	}
	return item, nil
}

func (s *mediaService) Update(req *models.UpdateMediaItemRequest) (*models.MediaItem, error) {
	item, err := s.mediaRepo.GetByID(req.ID)
	if err != nil {
		return nil, apperr.FromDB(err, "media item")
	}

	item.Title = req.Title
	item.URL = req.URL
	item.AltText = req.AltText

	if err := s.mediaRepo.Update(item); err != nil {
		return nil, apperr.FromDB(err, "media item")
	}
	return item, nil
}

func (s *mediaService) Get(id uint) (*models.MediaItem, error) {
	item, err := s.mediaRepo.GetByID(id)
	if err != nil {
		return nil, apperr.FromDB(err, "media item")
	}
	return item, nil
}

func (s *mediaService) GetList(params models.ListParams) ([]models.MediaItem, int64, error) {
	params.Normalize()
	items, total, err := s.mediaRepo.GetList(params)
	if err != nil {
		return nil, 0, apperr.FromDB(err, "media items")
	}
	return items, total, nil
}

func (s *mediaService) Delete(id uint) error {
	if _, err := s.mediaRepo.GetByID(id); err != nil {
		return apperr.FromDB(err, "media item")
	}
	if err := s.mediaRepo.Delete(id); err != nil {
		return apperr.FromDB(err, "media item")
	}
	return nil
}
