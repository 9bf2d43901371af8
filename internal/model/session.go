package model

const (
	SessionIdle    = "idle"
	SessionJoining = "joining"
	SessionActive  = "active"
	SessionLeaving = "leaving"
	SessionClosed  = "closed"
	SessionFailed  = "failed"
)

// DialogSnapshot is what the UI layer renders.
type DialogSnapshot struct {
	State           string      `json:"state"`
	Messages        MessageList `json:"messages"`
	CompanionTyping bool        `json:"companion_typing"`
	ExpiresSoon     bool        `json:"expires_soon"`
	QuotaBlocked    bool        `json:"quota_blocked"`
	Loading         bool        `json:"loading"`
	ReplyToID       *string     `json:"reply_to_id,omitempty"`
	Degraded        bool        `json:"degraded"`
}

const (
	PushMessageEvent = "message"
	PushTypingEvent  = "typing"
)

// DialogPushEvent is the payload published to the dialog's Centrifugo
// channel so the UI can react without polling.
type DialogPushEvent struct {
	Type    string       `json:"type"`
	Message *Message     `json:"message,omitempty"`
	Typing  *TypingState `json:"typing,omitempty"`
}
