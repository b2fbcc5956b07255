package auth

import (
	"context"
	"fmt"
	"time"

	"reabilitepro/models"
	"reabilitepro/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 24 * time.Hour

func (s *DefaultAuthService) tokenTTL() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return defaultTokenTTL
}

// Register creates the identity record plus the role-matching profile
// document, then issues a session token.
func (s *DefaultAuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	logger := zap.L()

	if !models.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	existing, err := s.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("Register: email lookup failed", zap.Error(err))
		return nil, ErrUnknown
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         req.Role,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		logger.Error("Register: failed to create identity", zap.Error(err))
		return nil, ErrUnknown
	}

	switch req.Role {
	case models.RolePatient:
		err = s.Patients.Create(ctx, &models.Patient{
			ID:       user.ID,
			FullName: req.FullName,
			Email:    req.Email,
		})
	case models.RoleProfessional:
		err = s.Professionals.Create(ctx, &models.Professional{
			ID:        user.ID,
			Name:      req.FullName,
			Specialty: req.Specialty,
		})
	}
	if err != nil {
		logger.Error("Register: failed to create profile", zap.String("userID", user.ID), zap.Error(err))
		return nil, ErrUnknown
	}

	token, err := s.Tokens.GenerateToken(user.ID, user.Role, user.Admin, s.tokenTTL())
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResponse{
		ID:       user.ID,
		Token:    token,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}

// Authenticate verifies credentials and issues a session token. Failures
// are always reported with the fixed invalid-credentials message so the
// response does not reveal whether the email exists.
func (s *DefaultAuthService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		zap.L().Error("Authenticate: email lookup failed", zap.Error(err))
		return nil, ErrUnknown
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.Tokens.GenerateToken(user.ID, user.Role, user.Admin, s.tokenTTL())
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResponse{
		ID:        user.ID,
		Token:     token,
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      user.Role,
		AvatarURL: user.AvatarURL,
	}, nil
}

// Revoke denylists the token hash until the token would expire on its own.
func (s *DefaultAuthService) Revoke(ctx context.Context, token string) error {
	claims, err := s.Tokens.ValidateToken(token)
	if err != nil {
		// An invalid or already-expired token needs no denylisting.
		return nil
	}
	ttl := time.Until(claims.ExpiresAt)
	return utils.DenylistToken(ctx, s.AuthCache, utils.HashToken(token), ttl)
}

// CurrentUser returns the identity record for an authenticated session.
// A session without a matching record signs out (strict variant).
func (s *DefaultAuthService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrProfileMissing
	}
	return user, nil
}

// UpdateFCMToken stores the device token subsequent pushes target.
func (s *DefaultAuthService) UpdateFCMToken(ctx context.Context, userID, fcmToken string) error {
	return s.Users.UpdateFields(ctx, userID, map[string]any{"fcmToken": fcmToken})
}
