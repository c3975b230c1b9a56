package services

import (
	"backoffice-api/apperr"
	"backoffice-api/models"
	"backoffice-api/repositories"
)

type PartnershipService interface {
	Create(req *models.CreatePartnershipRequest) (*models.Partnership, error)
	Update(req *models.UpdatePartnershipRequest) (*models.Partnership, error)
	Get(id uint) (*models.Partnership, error)
	GetList(params models.ListParams) ([]models.Partnership, int64, error)
	Delete(id uint) error
}

type partnershipService struct {
	partnershipRepo repositories.PartnershipRepository
}

func NewPartnershipService(partnershipRepo repositories.PartnershipRepository) PartnershipService {
	return &partnershipService{partnershipRepo: partnershipRepo}
}

func (s *partnershipService) Create(req *models.CreatePartnershipRequest) (*models.Partnership, error) {
	status := req.Status
	if status == "" {
		status = models.PartnershipPending
	}
	if !status.Valid() {
		return nil, apperr.Validation("unknown status")
	}

	partnership := &models.Partnership{
		Company:     req.Company,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Website:     req.Website,
		Notes:       req.Notes,
		Status:      status,
	}

	if err := s.partnershipRepo.Create(partnership); err != nil {
		return nil, apperr.FromDB(err, "partnership")
	}
	return partnership, nil
}

func (s *partnershipService) Update(req *models.UpdatePartnershipRequest) (*models.Partnership, error) {
	status := req.Status
	if status == "" {
		status = models.PartnershipPending
	}
	if !status.Valid() {
		return nil, apperr.Validation("unknown status")
	}

	partnership, err := s.partnershipRepo.GetByID(req.ID)
	if err != nil {
		return nil, apperr.FromDB(err, "partnership")
	}

	partnership.Company = req.Company
	partnership.ContactName = req.ContactName
	partnership.Email = req.Email
	partnership.Phone = req.Phone
	partnership.Website = req.Website
	partnership.Notes = req.Notes
	partnership.Status = status

	if err := s.partnershipRepo.Update(partnership); err != nil {
		return nil, apperr.FromDB(err, "partnership")
	}
	return partnership, nil
}

func (s *partnershipService) Get(id uint) (*models.Partnership, error) {
	partnership, err := s.partnershipRepo.GetByID(id)
	if err != nil {
		return nil, apperr.FromDB(err, "partnership")
	}
	return partnership, nil
}

func (s *partnershipService) GetList(params models.ListParams) ([]models.Partnership, int64, error) {
	params.Normalize()
	partnerships, total, err := s.partnershipRepo.GetList(params)
	if err != nil {
		return nil, 0, apperr.FromDB(err, "partnerships")
	}
	return partnerships, total, nil
}

func (s *partnershipService) Delete(id uint) error {
	if _, err := s.partnershipRepo.GetByID(id); err != nil {
		return apperr.FromDB(err, "partnership")
	}
	if err := s.partnershipRepo.Delete(id); err != nil {
		return apperr.FromDB(err, "partnership")
	}
	return nil
}
