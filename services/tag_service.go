package services

import (
	"errors"

	"backoffice-api/apperr"
	"backoffice-api/models"
	"backoffice-api/repositories"
	"backoffice-api/util"

	"gorm.io/gorm"
)

type TagService interface {
	Create(req *models.CreateTagRequest) (*models.Tag, error)
	Get(id uint) (*models.Tag, error)
	GetAll() ([]models.Tag, error)
	Delete(id uint) error
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) Create(req *models.CreateTagRequest) (*models.Tag, error) {
	slug := req.Slug
	if slug == "" {
		slug = util.Slugify(req.Name)
	}

	if _, err := s.tagRepo.GetBySlug(slug); err == nil {
		return nil, apperr.Conflict("slug %q is already in use", slug)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.FromDB(err, "tag")
	}

	tag := &models.Tag{Name: req.Name, Slug: slug}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, apperr.FromDB(err, "tag")
	}
	return tag, nil
}

func (s *tagService) Get(id uint) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(id)
	if err != nil {
		return nil, apperr.FromDB(err, "tag")
	}
	return tag, nil
}

func (s *tagService) GetAll() ([]models.Tag, error) {
	tags, err := s.tagRepo.GetAll()
	if err != nil {
		return nil, apperr.FromDB(err, "tags")
	}
	return tags, nil
}

func (s *tagService) Delete(id uint) error {
	if _, err := s.tagRepo.GetByID(id); err != nil {
		return apperr.FromDB(err, "tag")
	}
	if err := s.tagRepo.Delete(id); err != nil {
		return apperr.FromDB(err, "tag")
	}
	return nil
}
