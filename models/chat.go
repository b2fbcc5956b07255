package models

import "time"

// ChatMessage is immutable once created. Seq is a per-conversation
// monotonic counter assigned at insert; it breaks ties between messages
// carrying the same timestamp.
type ChatMessage struct {
	ID             string    `bson:"id" json:"id"`
	ConversationID string    `bson:"conversationId" json:"conversationId"`
	SenderID       string    `bson:"senderId" json:"senderId"`
	ReceiverID     string    `bson:"receiverId" json:"receiverId"`
	Text           string    `bson:"text" json:"text"`
	Timestamp      time.Time `bson:"timestamp" json:"timestamp"`
	Seq            int64     `bson:"seq" json:"seq"`
}

// Conversation is derived on every read from the user's appointments; it
// has no persisted lifecycle of its own. Its id is a pure, order-independent
// function of the two participant ids, so both sides compute the same id
// without coordination.
type Conversation struct {
	ID                   string    `json:"id"`
	PeerID               string    `json:"peerId"`
	PeerName             string    `json:"peerName"`
	PeerAvatarURL        string    `json:"peerAvatarUrl,omitempty"`
	LastMessage          string    `json:"lastMessage"`
	LastMessageTimestamp time.Time `json:"lastMessageTimestamp,omitempty"`
}
