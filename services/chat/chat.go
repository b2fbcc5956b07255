package chat

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"reabilitepro/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// placeholderLastMessage shows until the conversation has real traffic.
const placeholderLastMessage = "Clique para ver as mensagens..."

const peerCacheTTL = 10 * time.Minute

// ConversationID derives the stable conversation id for two participants:
// the ids sorted lexicographically, joined with "_". Swapping the inputs
// yields the same id, so both sides compute it without coordination.
func ConversationID(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "_" + b
}

// participant reports whether uid is one of the conversation's two sides.
func participant(conversationID, uid string) bool {
	parts := strings.Split(conversationID, "_")
	if len(parts) != 2 {
		return false
	}
	return parts[0] == uid || parts[1] == uid
}

// peerProfile is the cached slice of a counterparty's profile.
type peerProfile struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Conversations derives the user's conversation list from their merged
// appointment set: one entry per distinct counterparty. A counterparty
// whose profile cannot be fetched is dropped from the list.
func (s *DefaultChatService) Conversations(ctx context.Context, userID string) ([]models.Conversation, error) {
	logger := zap.L()

	appointments, err := s.Appointments.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Distinct counterparties, remembering which side of the appointment
	// they sit on so the right profile collection is consulted.
	peerIsProfessional := make(map[string]bool)
	var peerIDs []string
	for _, appointment := range appointments {
		peerID := appointment.CounterpartyOf(userID)
		if peerID == "" {
			continue
		}
		if _, seen := peerIsProfessional[peerID]; !seen {
			peerIDs = append(peerIDs, peerID)
		}
		peerIsProfessional[peerID] = appointment.PatientID == userID
	}

	conversations := make([]models.Conversation, 0, len(peerIDs))
	for _, peerID := range peerIDs {
		profile, err := s.fetchPeer(ctx, peerID, peerIsProfessional[peerID])
		if err != nil {
			logger.Warn("Conversations: dropping peer, profile fetch failed",
				zap.String("peerID", peerID), zap.Error(err))
			continue
		}

		conversation := models.Conversation{
			ID:            ConversationID(userID, peerID),
			PeerID:        peerID,
			PeerName:      profile.Name,
			PeerAvatarURL: profile.AvatarURL,
			LastMessage:   placeholderLastMessage,
		}
		if last, err := s.Repo.LastByConversation(ctx, conversation.ID); err == nil && last != nil {
			conversation.LastMessage = last.Text
			conversation.LastMessageTimestamp = last.Timestamp
		}
		conversations = append(conversations, conversation)
	}
	return conversations, nil
}

// fetchPeer resolves the counterparty's display profile, going through the
// Redis cache first.
func (s *DefaultChatService) fetchPeer(ctx context.Context, peerID string, isProfessional bool) (*peerProfile, error) {
	cacheKey := "peerProfile:" + peerID
	if s.PeerCache != nil {
		if data, err := s.PeerCache.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached peerProfile
			if json.Unmarshal(data, &cached) == nil {
				return &cached, nil
			}
		}
	}

	var profile peerProfile
	if isProfessional {
		prof, err := s.Professionals.GetByID(ctx, peerID)
		if err != nil {
			return nil, err
		}
		profile = peerProfile{Name: prof.Name, AvatarURL: prof.AvatarURL}
	} else {
		patient, err := s.Patients.GetByID(ctx, peerID)
		if err != nil {
			return nil, err
		}
		profile = peerProfile{Name: patient.FullName, AvatarURL: patient.AvatarURL}
	}

	if s.PeerCache != nil {
		if data, err := json.Marshal(profile); err == nil {
			s.PeerCache.Set(ctx, cacheKey, data, peerCacheTTL)
		}
	}
	return &profile, nil
}

// Send validates the sender against the conversation id and stores the
// message. Messages are immutable once created.
func (s *DefaultChatService) Send(ctx context.Context, req SendRequest) (*models.ChatMessage, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyMessage
	}
	if ConversationID(req.SenderID, req.ReceiverID) != req.ConversationID {
		return nil, ErrNotParticipant
	}

	msg := &models.ChatMessage{
		ID:             uuid.New().String(),
		ConversationID: req.ConversationID,
		SenderID:       req.SenderID,
		ReceiverID:     req.ReceiverID,
		Text:           req.Text,
		Timestamp:      time.Now(),
	}
	if err := s.Repo.Insert(ctx, msg); err != nil {
		return nil, err
	}

	if err := s.Notifier.SendPush(ctx, req.ReceiverID,
		"Nova mensagem",
		req.Text,
		map[string]string{"conversationId": req.ConversationID},
	); err != nil {
		zap.L().Warn("Send: failed to notify receiver",
			zap.String("conversationID", req.ConversationID), zap.Error(err))
	}

	return msg, nil
}

// History returns the conversation's full message list for a participant,
// ordered ascending by timestamp with seq breaking ties.
func (s *DefaultChatService) History(ctx context.Context, conversationID, userID string) ([]models.ChatMessage, error) {
	if !participant(conversationID, userID) {
		return nil, ErrNotParticipant
	}
	messages, err := s.Repo.ListByConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	sortMessages(messages)
	return messages, nil
}

// sortMessages orders by timestamp ascending, per-conversation seq as the
// tie-break for equal timestamps.
func sortMessages(messages []models.ChatMessage) {
	sort.SliceStable(messages, func(i, j int) bool {
		if messages[i].Timestamp.Equal(messages[j].Timestamp) {
			return messages[i].Seq < messages[j].Seq
		}
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})
}
