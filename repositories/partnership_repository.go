package repositories

import (
	"backoffice-api/models"

	"gorm.io/gorm"
)

type PartnershipRepository interface {
	Create(partnership *models.Partnership) error
	GetByID(id uint) (*models.Partnership, error)
	GetList(params models.ListParams) ([]models.Partnership, int64, error)
	Update(partnership *models.Partnership) error
	Delete(id uint) error
}

type partnershipRepository struct {
	db *gorm.DB
}

func NewPartnershipRepository(db *gorm.DB) PartnershipRepository {
	return &partnershipRepository{db: db}
}

func (r *partnershipRepository) Create(partnership *models.Partnership) error {
	return r.db.Create(partnership).Error
}

func (r *partnershipRepository) GetByID(id uint) (*models.Partnership, error) {
	var partnership models.Partnership
	err := r.db.First(&partnership, id).Error
	return &partnership, err
}

func (r *partnershipRepository) GetList(params models.ListParams) ([]models.Partnership, int64, error) {
	var partnerships []models.Partnership
	var total int64

	query := r.db.Model(&models.Partnership{})
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("company ILIKE ? OR contact_name ILIKE ?", like, like)
	}

	query.Count(&total)

	err := query.Order(orderClause(params, "partnerships")).
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		Find(&partnerships).Error
	return partnerships, total, err
}

func (r *partnershipRepository) Update(partnership *models.Partnership) error {
	return r.db.Save(partnership).Error
}

func (r *partnershipRepository) Delete(id uint) error {
	return r.db.Delete(&models.Partnership{}, id).Error
}
