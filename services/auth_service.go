package services

import (
	"errors"
	"time"

	"backoffice-api/apperr"
	"backoffice-api/models"
	"backoffice-api/repositories"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(req *models.LoginRequest) (*models.AuthResponse, error)
	Authenticate(token string) (*models.User, error)
	GetProfile(id uint) (*models.User, error)
}

// Claims is the JWT payload. Only the user id is trusted from the token;
// role and active status are re-read from storage on every request so that
// role changes and deactivation take effect immediately.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

type authService struct {
	userRepo   repositories.UserRepository
	secret     []byte
	expiration time.Duration
}

func NewAuthService(userRepo repositories.UserRepository, secret string, expiration time.Duration) AuthService {
	return &authService{userRepo: userRepo, secret: []byte(secret), expiration: expiration}
}

func (s *authService) Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.AuthRequired("invalid credentials")
		}
		return nil, apperr.FromDB(err, "user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperr.AuthRequired("invalid credentials")
	}

	if !user.Active {
		return nil, apperr.AuthRequired("account is deactivated")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: *user}, nil
}

// Authenticate resolves a bearer token into the stored user. Tokens issued
// before the last password change are rejected, which force-expires every
// outstanding session on password reset.
func (s *authService) Authenticate(tokenString string) (*models.User, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.AuthRequired("invalid or expired token")
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, apperr.AuthRequired("invalid or expired token")
	}

	if !user.Active {
		return nil, apperr.AuthRequired("account is deactivated")
	}

	if claims.IssuedAt != nil && claims.IssuedAt.Time.Before(user.PasswordChangedAt.Truncate(time.Second)) {
		return nil, apperr.AuthRequired("session expired")
	}

	return user, nil
}

func (s *authService) GetProfile(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, apperr.FromDB(err, "user")
	}
	return user, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
