package models

import "time"

// Appointment statuses. A patient creates an appointment as "scheduled";
// only the owning professional moves it between statuses afterwards.
const (
	StatusScheduled = "scheduled"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is a known appointment status.
func ValidStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment is a scheduled booking between one patient and one
// professional. Appointments are never deleted; cancelled ones keep their
// record. Version backs the conditional status update: writers supply the
// version they read and the update bumps it, so concurrent edits conflict
// instead of silently overwriting each other.
type Appointment struct {
	ID             string    `bson:"id" json:"id"`
	PatientID      string    `bson:"patientId" json:"patientId"`
	ProfessionalID string    `bson:"professionalId" json:"professionalId"`
	DateTime       time.Time `bson:"dateTime" json:"dateTime"`
	Status         string    `bson:"status" json:"status"`
	Notes          string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Version        int64     `bson:"version" json:"version"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CounterpartyOf returns the other participant's id, or "" when uid is not
// a participant of the appointment.
func (a *Appointment) CounterpartyOf(uid string) string {
	switch uid {
	case a.PatientID:
		return a.ProfessionalID
	case a.ProfessionalID:
		return a.PatientID
	}
	return ""
}
