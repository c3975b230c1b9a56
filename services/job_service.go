package services

import (
	"errors"

	"backoffice-api/apperr"
	"backoffice-api/models"
	"backoffice-api/policy"
	"backoffice-api/repositories"
	"backoffice-api/util"

	"gorm.io/gorm"
)

type JobOfferService interface {
	Create(actor *models.Actor, req *models.CreateJobOfferRequest) (*models.JobOffer, error)
	Update(actor *models.Actor, req *models.UpdateJobOfferRequest) (*models.JobOffer, error)
	Get(id uint) (*models.JobOffer, error)
	GetList(params models.ListParams) ([]models.JobOffer, int64, error)
	GetPublicList(params models.ListParams) ([]models.JobOffer, int64, error)
	Delete(id uint) error
}

type jobOfferService struct {
	jobRepo repositories.JobOfferRepository
}

func NewJobOfferService(jobRepo repositories.JobOfferRepository) JobOfferService {
	return &jobOfferService{jobRepo: jobRepo}
}

func (s *jobOfferService) Create(actor *models.Actor, req *models.CreateJobOfferRequest) (*models.JobOffer, error) {
	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}
	if !status.Valid() {
		return nil, apperr.Validation("unknown status")
	}
	status = policy.EnforceStatus(actor.Role, status)

	slug := req.Slug
	if slug == "" {
		slug = util.Slugify(req.Title)
	}
	if err := s.checkSlugFree(slug, 0); err != nil {
		return nil, err
	}

	job := &models.JobOffer{
		Title:        req.Title,
		Slug:         slug,
		Description:  req.Description,
		Location:     req.Location,
		ContractType: req.ContractType,
		Status:       status,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperr.FromDB(err, "job offer")
	}
	return job, nil
}

func (s *jobOfferService) Update(actor *models.Actor, req *models.UpdateJobOfferRequest) (*models.JobOffer, error) {
	job, err := s.jobRepo.GetByID(req.ID)
	if err != nil {
		return nil, apperr.FromDB(err, "job offer")
	}

	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}
	if !status.Valid() {
		return nil, apperr.Validation("unknown status")
	}
	status = policy.EnforceStatus(actor.Role, status)

	slug := req.Slug
	if slug == "" {
		slug = util.Slugify(req.Title)
	}
	if slug != job.Slug {
		if err := s.checkSlugFree(slug, job.ID); err != nil {
			return nil, err
		}
	}

	job.Title = req.Title
	job.Slug = slug
	job.Description = req.Description
	job.Location = req.Location
	job.ContractType = req.ContractType
	job.Status = status

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperr.FromDB(err, "job offer")
	}
	return job, nil
}

func (s *jobOfferService) Get(id uint) (*models.JobOffer, error) {
	job, err := s.jobRepo.GetByID(id)
	if err != nil {
		return nil, apperr.FromDB(err, "job offer")
	}
	return job, nil
}

func (s *jobOfferService) GetList(params models.ListParams) ([]models.JobOffer, int64, error) {
	params.Normalize()
	jobs, total, err := s.jobRepo.GetList(params, false)
	if err != nil {
		return nil, 0, apperr.FromDB(err, "job offers")
	}
	return jobs, total, nil
}

func (s *jobOfferService) GetPublicList(params models.ListParams) ([]models.JobOffer, int64, error) {
	params.Normalize()
	jobs, total, err := s.jobRepo.GetList(params, true)
	if err != nil {
		return nil, 0, apperr.FromDB(err, "job offers")
	}
	return jobs, total, nil
}

func (s *jobOfferService) Delete(id uint) error {
	if _, err := s.jobRepo.GetByID(id); err != nil {
		return apperr.FromDB(err, "job offer")
	}
	if err := s.jobRepo.Delete(id); err != nil {
		return apperr.FromDB(err, "job offer")
	}
	return nil
}

func (s *jobOfferService) checkSlugFree(slug string, selfID uint) error {
	existing, err := s.jobRepo.GetBySlug(slug)
	if err == nil {
		if existing.ID == selfID {
			return nil
		}
		return apperr.Conflict("slug %q is already in use", slug)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.FromDB(err, "job offer")
	}
	return nil
}
