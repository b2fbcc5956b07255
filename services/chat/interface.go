package chat

import (
	"context"
	"errors"

	chatRepo "reabilitepro/database/repository/chat"
	patientRepo "reabilitepro/database/repository/patient"
	professionalRepo "reabilitepro/database/repository/professional"
	"reabilitepro/models"
	"reabilitepro/services/notification"
	"reabilitepro/services/schedule"

	"github.com/go-redis/redis/v8"
)

var (
	ErrNotParticipant = errors.New("user is not a participant of this conversation")
	ErrEmptyMessage   = errors.New("message text must not be empty")
)

// SendRequest carries a chat message submission.
type SendRequest struct {
	ConversationID string `json:"conversationId" binding:"required"`
	SenderID       string `json:"-"`
	ReceiverID     string `json:"receiverId" binding:"required"`
	Text           string `json:"text" binding:"required"`
}

// Service derives conversations from appointments and manages message
// history.
type Service interface {
	// Conversations lists the user's chat counterparties, one entry per
	// distinct peer across all of their appointments.
	Conversations(ctx context.Context, userID string) ([]models.Conversation, error)
	Send(ctx context.Context, req SendRequest) (*models.ChatMessage, error)
	// History returns the conversation's messages ordered ascending by
	// (timestamp, seq).
	History(ctx context.Context, conversationID, userID string) ([]models.ChatMessage, error)
}

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	Repo          chatRepo.Repository
	Appointments  schedule.Service
	Patients      patientRepo.Repository
	Professionals professionalRepo.Repository
	Notifier      notification.Service
	PeerCache     *redis.Client
}
