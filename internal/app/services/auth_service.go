package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mertc/coursehub/internal/app/models"
	"github.com/mertc/coursehub/internal/app/models/dto"
	"github.com/mertc/coursehub/internal/app/repositories"
	"github.com/mertc/coursehub/internal/pkg/apperrors"
	"github.com/mertc/coursehub/internal/pkg/auth"
	"github.com/mertc/coursehub/internal/pkg/email"
	"github.com/mertc/coursehub/internal/pkg/validation"
)

const passwordResetTokenTTL = time.Hour

// AuthService handles registration, login and token lifecycle
type AuthService struct {
	userRepo     *repositories.UserRepository
	roleRepo     *repositories.RoleRepository
	tokenRepo    *repositories.TokenRepository
	resetRepo    *repositories.PasswordResetTokenRepository
	jwtService   *auth.JWTService
	emailService email.EmailService
	checkMX      bool
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	roleRepo *repositories.RoleRepository,
	tokenRepo *repositories.TokenRepository,
	resetRepo *repositories.PasswordResetTokenRepository,
	jwtService *auth.JWTService,
	emailService email.EmailService,
	checkMX bool,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		roleRepo:     roleRepo,
		tokenRepo:    tokenRepo,
		resetRepo:    resetRepo,
		jwtService:   jwtService,
		emailService: emailService,
		checkMX:      checkMX,
		logger:       logger,
	}
}

// Register creates a new user account and returns a token pair. Every
// failing registration rule is reported at once, not just the first.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	issues := validation.ValidateRegistration(req.Name, req.Password, req.PasswordConfirmation)
	if len(issues) > 0 {
		details := make(map[string]interface{}, len(issues))
		for _, issue := range issues {
			details[issue.Field] = issue.Message
		}
		customErr := apperrors.NewCustomError(apperrors.ErrValidationFailed, "registration validation failed")
		return nil, customErr.WithDetails(details)
	}

	if s.checkMX && !validation.HasMXRecord(req.Email) {
		return nil, apperrors.NewValidationError("email domain does not accept mail")
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		RoleID:   models.RoleStudent,
		IsActive: true,
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID

	s.logger.Info().Int64("userID", userID).Str("email", user.Email).Msg("User registered")

	token, err := s.generateTokenResponse(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: *token,
		User:  s.toUserResponse(ctx, user),
	}, nil
}

// Login authenticates a user by email and password
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	token, err := s.generateTokenResponse(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: *token,
		User:  s.toUserResponse(ctx, user),
	}, nil
}

// RefreshToken rotates a refresh token and issues a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if refreshToken == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	userID, expiryDate, revoked, err := s.tokenRepo.GetRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenNotFound) {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, fmt.Errorf("token validation error: %w", err)
	}

	if revoked {
		return nil, apperrors.ErrTokenRevoked
	}

	if expiryDate.Before(time.Now()) {
		_ = s.tokenRepo.RevokeRefreshToken(ctx, refreshToken)
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	// Revoke the old token so it cannot be replayed
	if err := s.tokenRepo.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke old token: %w", err)
	}

	return s.generateTokenResponse(ctx, user)
}

// Logout revokes a refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return apperrors.ErrTokenInvalid
	}

	err := s.tokenRepo.RevokeRefreshToken(ctx, refreshToken)
	if err != nil && !errors.Is(err, apperrors.ErrTokenNotFound) {
		return fmt.Errorf("error revoking token: %w", err)
	}

	return nil
}

// ForgotPassword creates a reset token and emails the reset link. To avoid
// account enumeration, an unknown email returns success without sending.
func (s *AuthService) ForgotPassword(ctx context.Context, emailAddr string) error {
	user, err := s.userRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			s.logger.Info().Str("email", emailAddr).Msg("Password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("error looking up user: %w", err)
	}

	token := uuid.New().String()
	expiry := time.Now().Add(passwordResetTokenTTL)

	if err := s.resetRepo.CreateToken(ctx, user.ID, token, expiry); err != nil {
		return fmt.Errorf("error storing reset token: %w", err)
	}

	if err := s.emailService.SendPasswordResetEmail(user.Email, user.Name, token); err != nil {
		s.logger.Error().Err(err).Str("email", user.Email).Msg("Failed to send password reset email")
		return apperrors.ErrEmailDelivery
	}

	return nil
}

// ResetPassword validates the reset token and replaces the user's password
func (s *AuthService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	if !validation.ValidPassword(req.Password) {
		return apperrors.NewValidationError("password must be 8-64 characters and contain a lowercase letter, an uppercase letter, a digit and a symbol")
	}
	if req.Password != req.PasswordConfirmation {
		return apperrors.NewValidationError("password confirmation does not match")
	}

	userID, expiryDate, used, err := s.resetRepo.GetTokenInfo(ctx, req.Token)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenNotFound) {
			return apperrors.ErrInvalidPasswordResetToken
		}
		return fmt.Errorf("error looking up reset token: %w", err)
	}

	if used {
		return apperrors.ErrPasswordResetTokenUsed
	}
	if expiryDate.Before(time.Now()) {
		return apperrors.ErrInvalidPasswordResetToken
	}

	// The token must belong to the account named in the request
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("error looking up user: %w", err)
	}
	if user.Email != req.Email {
		return apperrors.ErrInvalidPasswordResetToken
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}

	if err := s.resetRepo.MarkTokenAsUsed(ctx, req.Token); err != nil {
		s.logger.Error().Err(err).Msg("Failed to mark reset token as used")
	}

	s.logger.Info().Int64("userID", user.ID).Msg("Password reset completed")
	return nil
}

// generateTokenResponse creates a token pair and persists the refresh token
func (s *AuthService) generateTokenResponse(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	tokenExpiry := s.jwtService.GetRefreshTokenExpiry()
	if err := s.tokenRepo.CreateRefreshToken(ctx, user.ID, refreshToken, tokenExpiry); err != nil {
		return nil, fmt.Errorf("token saving error: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:           accessToken,
		TokenType:             "Bearer",
		ExpiresIn:             expiresIn,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresIn,
	}, nil
}

// toUserResponse maps a user model to its response DTO, resolving the role
// name on a best-effort basis.
func (s *AuthService) toUserResponse(ctx context.Context, user *models.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		RoleID:   user.RoleID,
		IsActive: user.IsActive,
	}

	role, err := s.roleRepo.GetByID(ctx, user.RoleID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("roleID", user.RoleID).Msg("Could not resolve role name")
	} else {
		resp.RoleName = role.Name
	}

	return resp
}
