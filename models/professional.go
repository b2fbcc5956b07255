package models

import "time"

// Specialties offered on the platform.
const (
	SpecialtyNutritionist     = "nutritionist"
	SpecialtyPsychologist     = "psychologist"
	SpecialtyPhysicalEducator = "physical_educator"
	SpecialtyPhysiotherapist  = "physiotherapist"
)

// Professional is the service-providing profile, keyed by the identity
// user id and listed in the public directory.
type Professional struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Specialty       string    `bson:"specialty" json:"specialty"`
	Bio             string    `bson:"bio,omitempty" json:"bio,omitempty"`
	ConsultationFee float64   `bson:"consultationFee" json:"consultationFee"`
	Location        string    `bson:"location,omitempty" json:"location,omitempty"`
	Rating          float64   `bson:"rating,omitempty" json:"rating,omitempty"`
	Reviews         int       `bson:"reviews,omitempty" json:"reviews,omitempty"`
	AvatarURL       string    `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ProfileComplete reports whether the professional filled the fields the
// booking flow depends on.
func (p *Professional) ProfileComplete() bool {
	return p.Specialty != "" && p.ConsultationFee > 0
}
