package chatRepo

import (
	"context"

	"reabilitepro/models"
)

// Repository persists chat messages. Messages are immutable once created
// and never deleted.
type Repository interface {
	// Insert stores the message, assigning its per-conversation sequence
	// number.
	Insert(ctx context.Context, msg *models.ChatMessage) error
	// ListByConversation returns the full history ordered by
	// (timestamp ASC, seq ASC). Each read is a fresh snapshot.
	ListByConversation(ctx context.Context, conversationID string) ([]models.ChatMessage, error)
	// LastByConversation returns the newest message, or (nil, nil) when
	// the conversation has none yet.
	LastByConversation(ctx context.Context, conversationID string) (*models.ChatMessage, error)
}
