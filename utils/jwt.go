package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// TokenClaims is what the service reads back out of a validated token.
type TokenClaims struct {
	UserID    string
	Role      string
	Admin     bool
	ExpiresAt time.Time
}

// TokenManager signs and validates the service's HS256 JWTs. It is
// constructed once in main with the configured secret and injected where
// needed.
type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// GenerateToken creates a signed JWT for the given identity. The role and
// admin flag travel in the token so middleware can authorize without a
// profile lookup.
func (tm *TokenManager) GenerateToken(userID, role string, admin bool, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"role":  role,
		"admin": admin,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// ValidateToken parses the token string and returns its claims.
func (tm *TokenManager) ValidateToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}
	role, _ := claims["role"].(string)
	admin, _ := claims["admin"].(bool)

	out := &TokenClaims{UserID: sub, Role: role, Admin: admin}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return out, nil
}

// HashToken computes a SHA-256 hash of the token string. Revoked tokens
// are denylisted by hash so raw tokens never sit in Redis.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
