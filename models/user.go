package models

import "time"

// Roles a registered identity can carry. The role is stored on the
// identity record and echoed into the JWT; it is never inferred from
// which profile collection happens to contain the user.
const (
	RolePatient      = "patient"
	RoleProfessional = "professional"
)

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	return role == RolePatient || role == RoleProfessional
}

// User is the normalized identity record backing authentication.
// Profile data lives in the role-matching patients/professionals document.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	FullName     string    `bson:"fullName" json:"fullName"`
	Role         string    `bson:"role" json:"role"`
	Admin        bool      `bson:"admin,omitempty" json:"admin,omitempty"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"fcmToken,omitempty"`
	AvatarURL    string    `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
