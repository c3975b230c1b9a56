package repositories

import (
	"backoffice-api/models"

	"gorm.io/gorm"
)

type MediaRepository interface {
	Create(item *models.MediaItem) error
	GetByID(id uint) (*models.MediaItem, error)
	GetList(params models.ListParams) ([]models.MediaItem, int64, error)
	Update(item *models.MediaItem) error
	Delete(id uint) error
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(item *models.MediaItem) error {
	return r.db.Create(item).Error
}

func (r *mediaRepository) GetByID(id uint) (*models.MediaItem, error) {
	var item models.MediaItem
	err := r.db.First(&item, id).Error
	return &item, err
}

func (r *mediaRepository) GetList(params models.ListParams) ([]models.MediaItem, int64, error) {
	var items []models.MediaItem
	var total int64

	query := r.db.Model(&models.MediaItem{})
	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("title ILIKE ?", like)
	}

	query.Count(&total)

	err := query.Order(orderClause(params, "media_items")).
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		Find(&items).Error
	return items, total, err
}

func (r *mediaRepository) Update(item *models.MediaItem) error {
	return r.db.Save(item).Error
}

func (r *mediaRepository) Delete(id uint) error {
	return r.db.Delete(&models.MediaItem{}, id).Error
}
