package services

import (
	"backoffice-api/apperr"
	"backoffice-api/models"
	"backoffice-api/repositories"
)

type ContactService interface {
	Submit(req *models.SubmitContactRequest) (*models.Contact, error)
	Get(id uint) (*models.Contact, error)
	GetList(params models.ListParams) ([]models.Contact, int64, error)
	UpdateStatus(req *models.UpdateContactStatusRequest) (*models.Contact, error)
	Delete(id uint) error
}

type contactService struct {
	contactRepo repositories.ContactRepository
}

func NewContactService(contactRepo repositories.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo}
}

// Submit records an inbound message from the public contact form.
func (s *contactService) Submit(req *models.SubmitContactRequest) (*models.Contact, error) {
	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.ContactNew,
	}
	if err := s.contactRepo.Create(contact); err != nil {
		return nil, apperr.FromDB(err, "contact")
	}
	return contact, nil
}

func (s *contactService) Get(id uint) (*models.Contact, error) {
	contact, err := s.contactRepo.GetByID(id)
	if err != nil {
		return nil, apperr.FromDB(err, "contact")
	}
	return contact, nil
}

func (s *contactService) GetList(params models.ListParams) ([]models.Contact, int64, error) {
	params.Normalize()
	contacts, total, err := s.contactRepo.GetList(params)
	if err != nil {
		return nil, 0, apperr.FromDB(err, "contacts")
	}
	return contacts, total, nil
}

func (s *contactService) UpdateStatus(req *models.UpdateContactStatusRequest) (*models.Contact, error) {
	if !req.Status.Valid() {
		return nil, apperr.Validation("unknown status")
	}

	contact, err := s.contactRepo.GetByID(req.ID)
	if err != nil {
		return nil, apperr.FromDB(err, "contact")
	}

	contact.Status = req.Status
	if err := s.contactRepo.Update(contact); err != nil {
		return nil, apperr.FromDB(err, "contact")
	}
	return contact, nil
}

func (s *contactService) Delete(id uint) error {
	if _, err := s.contactRepo.GetByID(id); err != nil {
		return apperr.FromDB(err, "contact")
	}
	if err := s.contactRepo.Delete(id); err != nil {
		return apperr.FromDB(err, "contact")
	}
	return nil
}
