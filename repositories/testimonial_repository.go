package repositories

import (
	"backoffice-api/models"

	"gorm.io/gorm"
)

type TestimonialRepository interface {
	Create(testimonial *models.Testimonial) error
	GetByID(id uint) (*models.Testimonial, error)
	GetList(params models.ListParams, publishedOnly bool) ([]models.Testimonial, int64, error)
	Update(testimonial *models.Testimonial) error
	Delete(id uint) error
}

type testimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) Create(testimonial *models.Testimonial) error {
	return r.db.Create(testimonial).Error
}

func (r *testimonialRepository) GetByID(id uint) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	err := r.db.First(&testimonial, id).Error
	return &testimonial, err
}

func (r *testimonialRepository) GetList(params models.ListParams, publishedOnly bool) ([]models.Testimonial, int64, error) {
	var testimonials []models.Testimonial
	var total int64

	query := r.db.Model(&models.Testimonial{})
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("author_name ILIKE ?", like)
	}

	query.Count(&total)

	err := query.Order(orderClause(params, "testimonials")).
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		Find(&testimonials).Error
	return testimonials, total, err
}

func (r *testimonialRepository) Update(testimonial *models.Testimonial) error {
	return r.db.Save(testimonial).Error
}

func (r *testimonialRepository) Delete(id uint) error {
	return r.db.Delete(&models.Testimonial{}, id).Error
}
