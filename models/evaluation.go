package models

import "time"

// Evaluation is a free-text clinical note attached to a patient by a
// professional (avaliação).
type Evaluation struct {
	ID             string    `bson:"id" json:"id"`
	PatientID      string    `bson:"patientId" json:"patientId"`
	ProfessionalID string    `bson:"professionalId" json:"professionalId"`
	Title          string    `bson:"title" json:"title"`
	Date           string    `bson:"date" json:"date"`
	Content        string    `bson:"content" json:"content"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}
