package services

import (
	"backoffice-api/apperr"
	"backoffice-api/models"
	"backoffice-api/repositories"
)

type TestimonialService interface {
	Create(req *models.CreateTestimonialRequest) (*models.Testimonial, error)
	Update(req *models.UpdateTestimonialRequest) (*models.Testimonial, error)
	Get(id uint) (*models.Testimonial, error)
	GetList(params models.ListParams) ([]models.Testimonial, int64, error)
	Delete(id uint) error
}

type testimonialService struct {
	testimonialRepo repositories.TestimonialRepository
}

func NewTestimonialService(testimonialRepo repositories.TestimonialRepository) TestimonialService {
	return &testimonialService{testimonialRepo: testimonialRepo}
}

func (s *testimonialService) Create(req *models.CreateTestimonialRequest) (*models.Testimonial, error) {
	testimonial := &models.Testimonial{
		AuthorName: req.AuthorName,
		AuthorRole: req.AuthorRole,
		Quote:      req.Quote,
		Published:  req.Published,
	}
	if err := s.testimonialRepo.Create(testimonial); err != nil {
		return nil, apperr.FromDB(err, "testimonial")
	}
	return testimonial, nil
}

func (s *testimonialService) Update(req *models.UpdateTestimonialRequest) (*models.Testimonial, error) {
	testimonial, err := s.testimonialRepo.GetByID(req.ID)
	if err != nil {
		return nil, apperr.FromDB(err, "testimonial")
	}

	testimonial.AuthorName = req.AuthorName
	testimonial.AuthorRole = req.AuthorRole
	testimonial.Quote = req.Quote
	testimonial.Published = req.Published

	if err := s.testimonialRepo.Update(testimonial); err != nil {
		return nil, apperr.FromDB(err, "testimonial")
	}
	return testimonial, nil
}

func (s *testimonialService) Get(id uint) (*models.Testimonial, error) {
	testimonial, err := s.testimonialRepo.GetByID(id)
	if err != nil {
		return nil, apperr.FromDB(err, "testimonial")
	}
	return testimonial, nil
}

func (s *testimonialService) GetList(params models.ListParams) ([]models.Testimonial, int64, error) {
	params.Normalize()
	testimonials, total, err := s.testimonialRepo.GetList(params, false)
	if err != nil {
		return nil, 0, apperr.FromDB(err, "testimonials")
	}
	return testimonials, total, nil
}

func (s *testimonialService) Delete(id uint) error {
	if _, err := s.testimonialRepo.GetByID(id); err != nil {
		return apperr.FromDB(err, "testimonial")
	}
	if err := s.testimonialRepo.Delete(id); err != nil {
		return apperr.FromDB(err, "testimonial")
	}
	return nil
}
