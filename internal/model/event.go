package model

import (
	"encoding/json"
	"fmt"
)

const (
	MessagesTable = "dialog_messages"
	TypingTable   = "dialog_typing"

	InsertOp = "INSERT"
	UpdateOp = "UPDATE"
	DeleteOp = "DELETE"
)

// ChangeEvent is one change notification from the store's live feed.
// Exactly one of Message/Typing is set, depending on Table.
type ChangeEvent struct {
	Table   string       `json:"table"`
	Op      string       `json:"op"`
	Message *Message     `json:"-"`
	Typing  *TypingState `json:"-"`
}

type rawChangeEvent struct {
	Table string          `json:"table"`
	Op    string          `json:"op"`
	Row   json.RawMessage `json:"row"`
}

// DecodeChangeEvent parses a NOTIFY payload produced by the feed triggers.
func DecodeChangeEvent(payload []byte) (*ChangeEvent, error) {
	var raw rawChangeEvent
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode change event: %v", err)
	}

	event := &ChangeEvent{Table: raw.Table, Op: raw.Op}

	switch raw.Table {
	case MessagesTable:
		var msg Message
		if err := json.Unmarshal(raw.Row, &msg); err != nil {
			return nil, fmt.Errorf("failed to decode message row: %v", err)
		}
		event.Message = &msg
	case TypingTable:
		var typing TypingState
		if err := json.Unmarshal(raw.Row, &typing); err != nil {
			return nil, fmt.Errorf("failed to decode typing row: %v", err)
		}
		event.Typing = &typing
	default:
		return nil, fmt.Errorf("unknown change event table %q", raw.Table)
	}

	return event, nil
}
