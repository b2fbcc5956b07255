package evaluationRepo

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

// MongoEvaluationRepo implements Repository using MongoDB.
type MongoEvaluationRepo struct {
	coll *mongo.Collection
}

func NewMongoEvaluationRepo(db *mongo.Database) Repository {
	repo := &MongoEvaluationRepo{coll: db.Collection("evaluations")}
	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("failed to create evaluation indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoEvaluationRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "date", Value: -1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoEvaluationRepo) Create(ctx context.Context, evaluation *models.Evaluation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	evaluation.CreatedAt = now
	evaluation.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, evaluation); err != nil {
		return fmt.Errorf("failed to create evaluation: %w", err)
	}
	return nil
}

func (r *MongoEvaluationRepo) GetByID(ctx context.Context, id string) (*models.Evaluation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var evaluation models.Evaluation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&evaluation); err != nil {
		return nil, fmt.Errorf("failed to fetch evaluation with id %s: %w", id, err)
	}
	return &evaluation, nil
}

func (r *MongoEvaluationRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Evaluation, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"patientId": patientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations for patient %s: %w", patientID, err)
	}
	defer cursor.Close(ctx)

	var evaluations []models.Evaluation
	if err := cursor.All(ctx, &evaluations); err != nil {
		return nil, fmt.Errorf("failed to decode evaluations: %w", err)
	}
	return evaluations, nil
}

func (r *MongoEvaluationRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update evaluation with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("evaluation with id %s not found", id)
	}
	return nil
}

func (r *MongoEvaluationRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete evaluation with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("evaluation with id %s not found", id)
	}
	return nil
}
