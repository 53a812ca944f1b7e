package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/selimk/coursehub/internal/app/models"
	"github.com/selimk/coursehub/internal/app/models/dto"
	"github.com/selimk/coursehub/internal/app/repositories"
	"github.com/selimk/coursehub/internal/pkg/apperrors"
	"github.com/selimk/coursehub/internal/pkg/auth"
	"github.com/selimk/coursehub/internal/pkg/filestorage"
	"github.com/selimk/coursehub/internal/pkg/logger"
)

// photoExtensions is the allow-list for profile photo uploads.
var photoExtensions = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {}, "gif": {},
}

// identityResolver is the subset of the user repository the login resolver
// needs. Kept narrow so resolution logic is testable without a database.
type identityResolver interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService handles registration, login and session management
type AuthService struct {
	userRepo   *repositories.UserRepository
	tokenRepo  *repositories.TokenRepository
	jwtService *auth.JWTService
	storage    *filestorage.LocalStorage
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.TokenRepository,
	jwtService *auth.JWTService,
	storage *filestorage.LocalStorage,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		storage:    storage,
	}
}

// validatePasswordPolicy enforces the minimum password shape: at least 8
// characters with at least one letter and one digit.
func validatePasswordPolicy(password string) error {
	if len(password) < 8 {
		return apperrors.NewCustomError(apperrors.ErrInvalidPassword, "password must be at least 8 characters")
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLetter = true
		}
	}
	if !hasLetter || !hasDigit {
		return apperrors.NewCustomError(apperrors.ErrInvalidPassword, "password must contain at least one letter and one digit")
	}
	return nil
}

// usernameFromEmail derives the default username from the email local part.
func usernameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

// Register creates a new identity and returns its profile
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if err := validatePasswordPolicy(req.Password); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)
	if username == "" {
		username = usernameFromEmail(email)
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:     email,
		Username:  username,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsStudent: !req.IsStaff,
		IsStaff:   req.IsStaff,
		IsActive:  true,
	}

	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	logger.Info().Int64("userID", id).Str("email", email).Msg("User registered")
	return user, nil
}

// resolveIdentity maps a login identifier onto a stored identity. Precedence
// is fixed: email exact match, then username exact match, then the
// identifier treated as a lowercased email. Any miss falls through to the
// next step; a full miss reports invalid credentials, never which step
// failed.
func resolveIdentity(ctx context.Context, r identityResolver, identifier string) (*models.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := r.GetUserByEmail(ctx, identifier)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	user, err = r.GetUserByUsername(ctx, identifier)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	lowered := strings.ToLower(identifier)
	if lowered != identifier {
		user, err = r.GetUserByEmail(ctx, lowered)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, err
		}
	}

	return nil, apperrors.ErrInvalidCredentials
}

// Login authenticates an identifier/password pair and issues a token pair
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*dto.TokenResponse, *models.User, error) {
	user, err := resolveIdentity(ctx, s.userRepo, identifier)
	if err != nil {
		return nil, nil, err
	}

	if !user.IsActive {
		return nil, nil, apperrors.ErrAccountDisabled
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		// Login still succeeds; the stamp is informational
		logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to stamp last login")
	}

	return tokens, user, nil
}

// RefreshToken rotates a refresh token: the presented token is revoked and a
// fresh pair is issued
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	userID, expiresAt, isRevoked, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if isRevoked {
		return nil, apperrors.ErrTokenRevoked
	}
	if time.Now().After(expiresAt) {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes every active refresh token of the identity
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	return s.tokenRepo.RevokeAllUserTokens(ctx, userID)
}

// ChangePassword verifies the old password and replaces it with the new one.
// All refresh tokens are revoked so stale sessions cannot continue.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.Password, oldPassword) {
		return apperrors.ErrWrongPassword
	}

	if err := validatePasswordPolicy(newPassword); err != nil {
		return err
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hashed); err != nil {
		return err
	}

	if err := s.tokenRepo.RevokeAllUserTokens(ctx, userID); err != nil {
		logger.Warn().Err(err).Int64("userID", userID).Msg("Failed to revoke tokens after password change")
	}

	return nil
}

// GetProfile returns the identity behind a user ID
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

// UpdateProfilePhoto stores an uploaded photo and records its path,
// replacing any previous photo file
func (s *AuthService) UpdateProfilePhoto(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (string, error) {
	ext := NormalizeExtension(fileHeader.Filename)
	if _, ok := photoExtensions[ext]; !ok {
		return "", apperrors.ErrUnsupportedFileType
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded photo: %w", err)
	}
	defer src.Close()

	relPath := fmt.Sprintf("profile_photos/%d_%s.%s", userID, uuid.New().String(), ext)
	if _, err := s.storage.Save(relPath, src); err != nil {
		return "", err
	}

	if err := s.userRepo.UpdateProfilePhoto(ctx, userID, &relPath); err != nil {
		_ = s.storage.Remove(relPath)
		return "", err
	}

	if user.ProfilePhotoPath != nil {
		_ = s.storage.Remove(*user.ProfilePhotoPath)
	}

	return s.storage.URL(relPath), nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token pair: %w", err)
	}

	if err := s.tokenRepo.CreateToken(ctx, refreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		TokenType:        "Bearer",
		ExpiresIn:        int64(expiresIn),
		RefreshExpiresIn: int64(refreshExpiresIn),
	}, nil
}
