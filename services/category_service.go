package services

import (
	"errors"

	"backoffice-api/apperr"
	"backoffice-api/models"
	"backoffice-api/repositories"
	"backoffice-api/util"

	"gorm.io/gorm"
)

type CategoryService interface {
	Create(req *models.CreateCategoryRequest) (*models.Category, error)
	Update(req *models.UpdateCategoryRequest) (*models.Category, error)
	Get(id uint) (*models.Category, error)
	GetAll() ([]models.Category, error)
	Delete(id uint) error
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
	postRepo     repositories.PostRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, postRepo repositories.PostRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo, postRepo: postRepo}
}

func (s *categoryService) Create(req *models.CreateCategoryRequest) (*models.Category, error) {
	slug := req.Slug
	if slug == "" {
		slug = util.Slugify(req.Name)
	}
	if err := s.checkSlugFree(slug, 0); err != nil {
		return nil, err
	}

	category := &models.Category{Name: req.Name, Slug: slug}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, apperr.FromDB(err, "category")
	}
	return category, nil
}

func (s *categoryService) Update(req *models.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(req.ID)
	if err != nil {
		return nil, apperr.FromDB(err, "category")
	}

	slug := req.Slug
	if slug == "" {
		slug = util.Slugify(req.Name)
	}
	if slug != category.Slug {
		if err := s.checkSlugFree(slug, category.ID); err != nil {
			return nil, err
		}
	}

	category.Name = req.Name
	category.Slug = slug

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, apperr.FromDB(err, "category")
	}
	return category, nil
}

func (s *categoryService) Get(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, apperr.FromDB(err, "category")
	}
	return category, nil
}

func (s *categoryService) GetAll() ([]models.Category, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, apperr.FromDB(err, "categories")
	}
	return categories, nil
}

// Delete refuses to remove a category that still has posts; references must
// be reassigned first.
func (s *categoryService) Delete(id uint) error {
	if _, err := s.categoryRepo.GetByID(id); err != nil {
		return apperr.FromDB(err, "category")
	}

	count, err := s.postRepo.CountByCategory(id)
	if err != nil {
		return apperr.FromDB(err, "category")
	}
	if count > 0 {
		return apperr.Conflict("category still has %d associated posts", count)
	}

	if err := s.categoryRepo.Delete(id); err != nil {
		return apperr.FromDB(err, "category")
	}
	return nil
}

func (s *categoryService) checkSlugFree(slug string, selfID uint) error {
	existing, err := s.categoryRepo.GetBySlug(slug)
	if err == nil {
		if existing.ID == selfID {
			return nil
		}
		return apperr.Conflict("slug %q is already in use", slug)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.FromDB(err, "category")
	}
	return nil
}
