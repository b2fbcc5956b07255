package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"reabilitepro/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoAppointmentRepo implements Repository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

func NewMongoAppointmentRepo(db *mongo.Database) Repository {
	repo := &MongoAppointmentRepo{coll: db.Collection("appointments")}
	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("failed to create appointment indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoAppointmentRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "patientId", Value: 1}}},
		{Keys: bson.D{{Key: "professionalId", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new appointment document.
func (r *MongoAppointmentRepo) Create(ctx context.Context, appointment *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, appointment); err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appointment models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appointment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch appointment with id %s: %w", id, err)
	}
	return &appointment, nil
}

func (r *MongoAppointmentRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.list(ctx, bson.M{"patientId": patientID})
}

func (r *MongoAppointmentRepo) ListByProfessional(ctx context.Context, professionalID string) ([]models.Appointment, error) {
	return r.list(ctx, bson.M{"professionalId": professionalID})
}

func (r *MongoAppointmentRepo) list(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appointments, nil
}

// UpdateStatus performs the conditional status write. The filter carries
// the expected version so a concurrent writer makes this a no-match
// instead of an overwrite.
func (r *MongoAppointmentRepo) UpdateStatus(ctx context.Context, id, status string, expectedVersion int64) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "version": expectedVersion}
	update := bson.M{
		"$set": bson.M{"status": status, "updatedAt": time.Now()},
		"$inc": bson.M{"version": 1},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Appointment
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to update appointment %s: %w", id, err)
	}

	// No match: either the appointment is gone or the version moved.
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, ErrVersionConflict
}
