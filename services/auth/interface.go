package auth

import (
	"context"
	"time"

	patientRepo "reabilitepro/database/repository/patient"
	professionalRepo "reabilitepro/database/repository/professional"
	userRepo "reabilitepro/database/repository/user"
	"reabilitepro/models"
	"reabilitepro/utils"

	"github.com/go-redis/redis/v8"
)

// RegisterRequest carries a sign-up submission.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FullName  string `json:"fullName" binding:"required"`
	Role      string `json:"role" binding:"required"`
	Specialty string `json:"specialty,omitempty"`
}

// AuthResponse contains the identity and its session token.
type AuthResponse struct {
	ID        string `json:"id"`
	Token     string `json:"token"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Service handles registration, login and session revocation.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	// Revoke denylists the given token until its natural expiry.
	Revoke(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, userID string) (*models.User, error)
	// UpdateFCMToken stores the device token push notifications target.
	UpdateFCMToken(ctx context.Context, userID, fcmToken string) error
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Users         userRepo.Repository
	Patients      patientRepo.Repository
	Professionals professionalRepo.Repository
	Tokens        *utils.TokenManager
	AuthCache     *redis.Client
	TokenTTL      time.Duration
}
