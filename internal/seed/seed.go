package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/rsharma/collegium/internal/app/models"
	"github.com/rsharma/collegium/internal/app/repositories"
	"github.com/rsharma/collegium/internal/pkg/apperrors"
	"github.com/rsharma/collegium/internal/pkg/auth"
)

// Bootstrap admin credentials. The account exists so a fresh deployment has
// someone able to create real accounts; the password is expected to be
// changed immediately.
const (
	bootstrapAdminEmail    = "dummy@gmail.com"
	bootstrapAdminUsername = "ADMDUMMY"
	bootstrapAdminPassword = "123"
)

// CreateBootstrapAdmin inserts the initial admin account if no account with
// its email exists yet. Safe to call on every startup.
func CreateBootstrapAdmin(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	adminRepo := repositories.NewAdminRepository(dbPool)

	_, err := adminRepo.GetByEmail(ctx, bootstrapAdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrAccountNotFound) {
		return err
	}

	hash, err := auth.HashPassword(bootstrapAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		Name:            "dummy",
		Email:           bootstrapAdminEmail,
		Username:        bootstrapAdminUsername,
		Password:        hash,
		PasswordUpdated: true,
	}

	if err := adminRepo.Create(ctx, admin); err != nil {
		return err
	}

	lgr.Info().Str("username", bootstrapAdminUsername).Msg("Bootstrap admin created")
	return nil
}
