package repositories

import (
	"backoffice-api/models"

	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(contact *models.Contact) error
	GetByID(id uint) (*models.Contact, error)
	GetList(params models.ListParams) ([]models.Contact, int64, error)
	Update(contact *models.Contact) error
	Delete(id uint) error
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

func (r *contactRepository) GetByID(id uint) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, id).Error
	return &contact, err
}

func (r *contactRepository) GetList(params models.ListParams) ([]models.Contact, int64, error) {
	var contacts []models.Contact
	var total int64

	query := r.db.Model(&models.Contact{})
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR subject ILIKE ?", like, like, like)
	}

	query.Count(&total)

	err := query.Order(orderClause(params, "contacts")).
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		Find(&contacts).Error
	return contacts, total, err
}

func (r *contactRepository) Update(contact *models.Contact) error {
	return r.db.Save(contact).Error
}

func (r *contactRepository) Delete(id uint) error {
	return r.db.Delete(&models.Contact{}, id).Error
}
