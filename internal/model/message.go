package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	UserMessageKind   = "user"
	SystemMessageKind = "system"
)

type MessageList []Message

type Message struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	SenderID    uuid.UUID  `db:"sender_id" json:"sender_id"`
	RecipientID uuid.UUID  `db:"recipient_id" json:"recipient_id"`
	Kind        string     `db:"kind" json:"kind"`
	Content     *string    `db:"content" json:"content,omitempty"`
	MediaURL    *string    `db:"media_url" json:"media_url,omitempty"`
	ReplyToID   *uuid.UUID `db:"reply_to_id" json:"reply_to_id,omitempty"`
	EventDate   *time.Time `db:"event_date" json:"event_date,omitempty"`
	SentAt      time.Time  `db:"sent_at" json:"sent_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// IsBetween reports whether the message belongs to the dialog between the
// two given participants, in either direction.
func (m *Message) IsBetween(a, b uuid.UUID) bool {
	return (m.SenderID == a && m.RecipientID == b) ||
		(m.SenderID == b && m.RecipientID == a)
}

// NewMessage is the insert payload. The id is assigned by the store; the
// caller learns it from the change event that loops back.
type NewMessage struct {
	SenderID    uuid.UUID  `json:"sender_id"`
	RecipientID uuid.UUID  `json:"recipient_id"`
	Kind        string     `json:"kind"`
	Content     *string    `json:"content,omitempty"`
	MediaURL    *string    `json:"media_url,omitempty"`
	ReplyToID   *uuid.UUID `json:"reply_to_id,omitempty"`
	EventDate   *time.Time `json:"event_date,omitempty"`
}

// MessagePatch carries the editable fields only.
type MessagePatch struct {
	Content  *string `json:"content,omitempty"`
	MediaURL *string `json:"media_url,omitempty"`
}
