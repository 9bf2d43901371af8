package model

import (
	"time"

	"github.com/google/uuid"
)

type TypingState struct {
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Typing    bool      `db:"typing" json:"typing"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
