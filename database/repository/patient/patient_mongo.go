package patientRepo

import (
	"context"
	"fmt"
	"time"

	"reabilitepro/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoPatientRepo implements Repository using MongoDB.
type MongoPatientRepo struct {
	coll *mongo.Collection
}

func NewMongoPatientRepo(db *mongo.Database) Repository {
	repo := &MongoPatientRepo{coll: db.Collection("patients")}
	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("failed to create patient indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoPatientRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "createdBy", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoPatientRepo) Create(ctx context.Context, patient *models.Patient) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	patient.CreatedAt = now
	patient.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, patient); err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (r *MongoPatientRepo) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var patient models.Patient
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&patient); err != nil {
		return nil, fmt.Errorf("failed to fetch patient with id %s: %w", id, err)
	}
	return &patient, nil
}

func (r *MongoPatientRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update patient with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("patient with id %s not found", id)
	}
	return nil
}

func (r *MongoPatientRepo) ListByCreator(ctx context.Context, professionalID string) ([]models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"createdBy": professionalID})
	if err != nil {
		return nil, fmt.Errorf("failed to list patients for professional %s: %w", professionalID, err)
	}
	defer cursor.Close(ctx)

	var patients []models.Patient
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("failed to decode patients: %w", err)
	}
	return patients, nil
}

func (r *MongoPatientRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete patient with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("patient with id %s not found", id)
	}
	return nil
}
