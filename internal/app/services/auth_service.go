package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rsharma/collegium/internal/app/models"
	"github.com/rsharma/collegium/internal/app/models/dto"
	"github.com/rsharma/collegium/internal/app/repositories"
	"github.com/rsharma/collegium/internal/pkg/apperrors"
	"github.com/rsharma/collegium/internal/pkg/auth"
)

// AuthService handles login and self-service password changes for all three
// role tables.
type AuthService struct {
	adminRepo   repositories.AdminRepository
	facultyRepo repositories.FacultyRepository
	studentRepo repositories.StudentRepository
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	adminRepo repositories.AdminRepository,
	facultyRepo repositories.FacultyRepository,
	studentRepo repositories.StudentRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		adminRepo:   adminRepo,
		facultyRepo: facultyRepo,
		studentRepo: studentRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Login authenticates a username/password pair against the role's table and
// issues a bearer token on success. An unknown username and a wrong password
// fail differently on purpose: the first is a lookup miss, the second a
// credential mismatch.
func (s *AuthService) Login(ctx context.Context, role models.RoleType, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if !role.Valid() {
		return nil, apperrors.NewValidationError("unknown role")
	}

	account, id, email, hash, err := s.lookupByUsername(ctx, role, req.Username)
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(hash, req.Password) {
		s.logger.Warn().Str("username", req.Username).Str("role", string(role)).Msg("Login failed: password mismatch")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateToken(id, email, string(role))
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	s.logger.Info().Int64("accountId", id).Str("role", string(role)).Msg("Login successful")

	return &dto.LoginResponse{Result: account, Token: token}, nil
}

// UpdatePassword re-hashes the account password and flips passwordUpdated.
// Calling it again with the same new password succeeds and leaves the
// account in the same state.
func (s *AuthService) UpdatePassword(ctx context.Context, role models.RoleType, req dto.UpdatePasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return apperrors.NewValidationError("newPassword and confirmPassword do not match")
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	switch role {
	case models.RoleAdmin:
		err = s.adminRepo.UpdatePassword(ctx, req.Email, hash)
	case models.RoleFaculty:
		err = s.facultyRepo.UpdatePassword(ctx, req.Email, hash)
	case models.RoleStudent:
		err = s.studentRepo.UpdatePassword(ctx, req.Email, hash)
	default:
		return apperrors.NewValidationError("unknown role")
	}
	if err != nil {
		return err
	}

	s.logger.Info().Str("email", req.Email).Str("role", string(role)).Msg("Password updated")
	return nil
}

func (s *AuthService) lookupByUsername(ctx context.Context, role models.RoleType, username string) (account interface{}, id int64, email, hash string, err error) {
	switch role {
	case models.RoleAdmin:
		admin, lookupErr := s.adminRepo.GetByUsername(ctx, username)
		if lookupErr != nil {
			return nil, 0, "", "", lookupErr
		}
		return admin, admin.ID, admin.Email, admin.Password, nil
	case models.RoleFaculty:
		faculty, lookupErr := s.facultyRepo.GetByUsername(ctx, username)
		if lookupErr != nil {
			return nil, 0, "", "", lookupErr
		}
		return faculty, faculty.ID, faculty.Email, faculty.Password, nil
	default:
		student, lookupErr := s.studentRepo.GetByUsername(ctx, username)
		if lookupErr != nil {
			return nil, 0, "", "", lookupErr
		}
		return student, student.ID, student.Email, student.Password, nil
	}
}
