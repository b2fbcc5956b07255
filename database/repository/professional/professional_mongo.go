package professionalRepo

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

// MongoProfessionalRepo implements Repository using MongoDB.
type MongoProfessionalRepo struct {
	coll *mongo.Collection
}

func NewMongoProfessionalRepo(db *mongo.Database) Repository {
	repo := &MongoProfessionalRepo{coll: db.Collection("professionals")}
	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("failed to create professional indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoProfessionalRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "specialty", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoProfessionalRepo) Create(ctx context.Context, professional *models.Professional) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	professional.CreatedAt = now
	professional.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, professional); err != nil {
		return fmt.Errorf("failed to create professional: %w", err)
	}
	return nil
}

func (r *MongoProfessionalRepo) GetByID(ctx context.Context, id string) (*models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var professional models.Professional
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&professional); err != nil {
		return nil, fmt.Errorf("failed to fetch professional with id %s: %w", id, err)
	}
	return &professional, nil
}

func (r *MongoProfessionalRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update professional with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("professional with id %s not found", id)
	}
	return nil
}

func (r *MongoProfessionalRepo) List(ctx context.Context, specialty string) ([]models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if specialty != "" {
		filter["specialty"] = specialty
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list professionals: %w", err)
	}
	defer cursor.Close(ctx)

	var professionals []models.Professional
	if err := cursor.All(ctx, &professionals); err != nil {
		return nil, fmt.Errorf("failed to decode professionals: %w", err)
	}
	return professionals, nil
}
