package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/mertc/coursehub/internal/app/models"
	appRepos "github.com/mertc/coursehub/internal/app/repositories"
	"github.com/mertc/coursehub/internal/pkg/apperrors"
)

// CreateDefaultData creates the built-in roles and a default admin account
// if they don't exist yet.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	roleRepo := appRepos.NewRoleRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (roles, admin user)...")
	var finalErr error

	// --- Built-in roles --- //
	// Created in order so admin gets ID 1 on a fresh database.
	defaultRoles := []struct {
		name        string
		description string
	}{
		{"admin", "Full administrative access"},
		{"instructor", "Can create and manage courses"},
		{"student", "Default role for registered users"},
	}

	for _, dr := range defaultRoles {
		desc := dr.description
		role := &appModels.Role{Name: dr.name, Description: &desc}
		if _, err := roleRepo.Create(ctx, role); err != nil && !errors.Is(err, apperrors.ErrRoleNameTaken) {
			lgr.Error().Err(err).Str("role", dr.name).Msg("Error creating default role")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// --- Default admin user --- //
	exists, err := userRepo.EmailExists(ctx, "admin@coursehub.app")
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return errors.Join(finalErr, err)
	}
	if exists {
		lgr.Info().Msg("Admin user already exists, skipping creation")
		return finalErr
	}

	lgr.Info().Msg("Creating default admin user...")

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Admin123!"), bcrypt.DefaultCost)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return errors.Join(finalErr, err)
	}

	now := time.Now()
	admin := &appModels.User{
		Name:            "System Administrator",
		Email:           "admin@coursehub.app",
		Password:        string(hashedPassword),
		RoleID:          appModels.RoleAdmin,
		IsActive:        true,
		EmailVerifiedAt: &now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	adminID, err := userRepo.Create(ctx, admin)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating admin user")
		return errors.Join(finalErr, err)
	}
	lgr.Info().Int64("adminID", adminID).Msg("Default admin user created successfully")

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
