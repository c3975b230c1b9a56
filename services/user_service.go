package services

import (
	"errors"
	"time"

	"backoffice-api/apperr"
	"backoffice-api/models"
	"backoffice-api/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	GetList(params models.ListParams) ([]models.User, int64, error)
	Get(id uint) (*models.User, error)
	Create(req *models.CreateUserRequest) (*models.User, error)
	Update(req *models.UpdateUserRequest) (*models.User, error)
	ResetPassword(req *models.ResetPasswordRequest) error
	Delete(actor *models.Actor, id uint) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetList(params models.ListParams) ([]models.User, int64, error) {
	params.Normalize()
	users, total, err := s.userRepo.GetList(params)
	if err != nil {
		return nil, 0, apperr.FromDB(err, "users")
	}
	return users, total, nil
}

func (s *userService) Get(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, apperr.FromDB(err, "user")
	}
	return user, nil
}

func (s *userService) Create(req *models.CreateUserRequest) (*models.User, error) {
	if !req.Role.Valid() {
		return nil, apperr.Validation("unknown role")
	}

	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, apperr.Conflict("a user with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.FromDB(err, "user")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:              req.Name,
		Email:             req.Email,
		Password:          string(hashed),
		Role:              req.Role,
		Active:            true,
		PasswordChangedAt: time.Now(),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, apperr.FromDB(err, "user")
	}
	return user, nil
}

func (s *userService) Update(req *models.UpdateUserRequest) (*models.User, error) {
	if !req.Role.Valid() {
		return nil, apperr.Validation("unknown role")
	}

	user, err := s.userRepo.GetByID(req.ID)
	if err != nil {
		return nil, apperr.FromDB(err, "user")
	}

	if req.Email != user.Email {
		if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
			return nil, apperr.Conflict("a user with this email already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.FromDB(err, "user")
		}
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Role = req.Role
	if req.Active != nil {
		user.Active = *req.Active
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperr.FromDB(err, "user")
	}
	return user, nil
}

// ResetPassword replaces the stored hash and stamps PasswordChangedAt, which
// invalidates every token issued before the reset.
func (s *userService) ResetPassword(req *models.ResetPasswordRequest) error {
	user, err := s.userRepo.GetByID(req.ID)
	if err != nil {
		return apperr.FromDB(err, "user")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	user.PasswordChangedAt = time.Now()

	if err := s.userRepo.Update(user); err != nil {
		return apperr.FromDB(err, "user")
	}
	return nil
}

func (s *userService) Delete(actor *models.Actor, id uint) error {
	if actor != nil && actor.ID == id {
		return apperr.Conflict("you cannot delete your own account")
	}
	if _, err := s.userRepo.GetByID(id); err != nil {
		return apperr.FromDB(err, "user")
	}
	if err := s.userRepo.Delete(id); err != nil {
		return apperr.FromDB(err, "user")
	}
	return nil
}
