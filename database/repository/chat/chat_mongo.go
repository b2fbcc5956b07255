package chatRepo

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

// MongoChatRepo implements Repository using MongoDB. A side "counters"
// collection hands out the per-conversation sequence numbers.
type MongoChatRepo struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

func NewMongoChatRepo(db *mongo.Database) Repository {
	repo := &MongoChatRepo{
		coll:     db.Collection("chatMessages"),
		counters: db.Collection("counters"),
	}
	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("failed to create chat indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoChatRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "conversationId", Value: 1}, {Key: "timestamp", Value: 1}, {Key: "seq", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// nextSeq atomically increments and returns the conversation's counter.
func (r *MongoChatRepo) nextSeq(ctx context.Context, conversationID string) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var doc struct {
		Value int64 `bson:"value"`
	}
	err := r.counters.FindOneAndUpdate(
		ctx,
		bson.M{"id": "chatSeq:" + conversationID},
		bson.M{"$inc": bson.M{"value": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate message sequence: %w", err)
	}
	return doc.Value, nil
}

// Insert stores a message with its allocated sequence number.
func (r *MongoChatRepo) Insert(ctx context.Context, msg *models.ChatMessage) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	seq, err := r.nextSeq(ctx, msg.ConversationID)
	if err != nil {
		return err
	}
	msg.Seq = seq

	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}
	return nil
}

// ListByConversation returns the ordered message history.
func (r *MongoChatRepo) ListByConversation(ctx context.Context, conversationID string) ([]models.ChatMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}, {Key: "seq", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"conversationId": conversationID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages for conversation %s: %w", conversationID, err)
	}
	defer cursor.Close(ctx)

	var messages []models.ChatMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode chat messages: %w", err)
	}
	return messages, nil
}

// LastByConversation returns the newest message for the conversation.
func (r *MongoChatRepo) LastByConversation(ctx context.Context, conversationID string) (*models.ChatMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "seq", Value: -1}})
	var msg models.ChatMessage
	err := r.coll.FindOne(ctx, bson.M{"conversationId": conversationID}, opts).Decode(&msg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch last message for conversation %s: %w", conversationID, err)
	}
	return &msg, nil
}
