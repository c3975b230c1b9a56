package repositories

import (
	"backoffice-api/models"

	"gorm.io/gorm"
)

type JobOfferRepository interface {
	Create(job *models.JobOffer) error
	GetByID(id uint) (*models.JobOffer, error)
	GetBySlug(slug string) (*models.JobOffer, error)
	GetList(params models.ListParams, publicOnly bool) ([]models.JobOffer, int64, error)
	Update(job *models.JobOffer) error
	Delete(id uint) error
}

type jobOfferRepository struct {
	db *gorm.DB
}

func NewJobOfferRepository(db *gorm.DB) JobOfferRepository {
	return &jobOfferRepository{db: db}
}

func (r *jobOfferRepository) Create(job *models.JobOffer) error {
	return r.db.Create(job).Error
}

func (r *jobOfferRepository) GetByID(id uint) (*models.JobOffer, error) {
	var job models.JobOffer
	err := r.db.First(&job, id).Error
	return &job, err
}

func (r *jobOfferRepository) GetBySlug(slug string) (*models.JobOffer, error) {
	var job models.JobOffer
	err := r.db.Where("slug = ?", slug).First(&job).Error
	return &job, err
}

func (r *jobOfferRepository) GetList(params models.ListParams, publicOnly bool) ([]models.JobOffer, int64, error) {
	var jobs []models.JobOffer
	var total int64

	query := r.db.Model(&models.JobOffer{})
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

	err := query.Order(orderClause(params, "job_offers")).
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		Find(&jobs).Error
	return jobs, total, err
}

func (r *jobOfferRepository) Update(job *models.JobOffer) error {
	return r.db.Save(job).Error
}

func (r *jobOfferRepository) Delete(id uint) error {
	return r.db.Delete(&models.JobOffer{}, id).Error
}
