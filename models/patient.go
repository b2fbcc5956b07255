package models

import "time"

// Patient is the service-consuming profile, keyed by the identity user id.
// Professionals may also create patient records for people they manage;
// those carry the creating professional's id in CreatedBy.
type Patient struct {
	ID        string    `bson:"id" json:"id"`
	FullName  string    `bson:"fullName" json:"fullName"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	BirthDate string    `bson:"birthDate,omitempty" json:"birthDate,omitempty"`
	CPF       string    `bson:"cpf,omitempty" json:"cpf,omitempty"`
	Address   string    `bson:"address,omitempty" json:"address,omitempty"`
	AvatarURL string    `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	CreatedBy string    `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
