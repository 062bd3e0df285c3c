package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wedsnap/wedsnap-backend/internal/models"
	"github.com/wedsnap/wedsnap-backend/pkg/bcrypt"
	jwtPkg "github.com/wedsnap/wedsnap-backend/pkg/jwt"
)

// Burned when the username does not exist, so a login attempt costs one
// bcrypt comparison either way and timing does not reveal which usernames
// are taken.
const timingDummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type AuthService struct {
	adminRepo AdminRepository
	jwtSecret []byte
	logger    *zap.Logger
}

func NewAuthService(adminRepo AdminRepository, jwtSecret []byte, logger *zap.Logger) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// Login verifies the credentials and issues a 24-hour bearer token. Only
// the username is ever logged; passwords and hashes never are.
func (s *AuthService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	admin, err := s.adminRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = bcrypt.ComparePassword(timingDummyHash, req.Password)
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	if err := bcrypt.ComparePassword(admin.PasswordHash, req.Password); err != nil {
		s.logger.Info("login rejected", zap.String("username", req.Username))
		return nil, ErrUnauthorized
	}

	token, err := jwtPkg.GenerateToken(s.jwtSecret, admin.ID, admin.Username, jwtPkg.TokenExpiry)
	if err != nil {
		return nil, fmt.Errorf("token generation failed: %w", err)
	}

	s.logger.Info("admin logged in",
		zap.Uint("admin_id", admin.ID),
		zap.String("username", admin.Username),
	)

	return &models.LoginResponse{
		Success: true,
		Token:   token,
		Admin:   admin.Summary(),
	}, nil
}

func (s *AuthService) GetProfile(adminID uint) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByID(adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return admin, nil
}
