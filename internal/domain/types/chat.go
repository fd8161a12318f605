package types

import "time"

// ChatUser is one conversation partner in the chat roster.
type ChatUser struct {
	ID              UserID    `json:"id"`
	Username        string    `json:"username"`
	Avatar          string    `json:"avatar"`
	LastMessageTime time.Time `json:"last_message_time"`
	HasUnread       bool      `json:"has_unread"`
}

// ChatMessage is a single direct message.
type ChatMessage struct {
	ID         string    `json:"id"`
	SenderID   UserID    `json:"sender_id"`
	ReceiverID UserID    `json:"receiver_id"`
	Text       string    `json:"text"`
	Image      string    `json:"image,omitempty"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

// Chat push event types delivered over the live socket.
const (
	EventNewMessage  = "newMessage"
	EventMessageRead = "messageRead"
)

// ChatEvent is one frame pushed by the backend over the chat socket.
// Message is set for newMessage events, MessageID for messageRead.
type ChatEvent struct {
	Type      string      `json:"type"`
	Message   ChatMessage `json:"message"`
	MessageID string      `json:"message_id"`
}
