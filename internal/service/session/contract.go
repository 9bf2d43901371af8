//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/dialog-service/internal/model"
)

type RemoteStore interface {
	FetchDialog(ctx context.Context, userID, companionID uuid.UUID) (model.MessageList, error)
	InsertMessage(ctx context.Context, message *model.NewMessage) error
	UpdateMessage(ctx context.Context, id uuid.UUID, patch model.MessagePatch) error
	DeleteMessage(ctx context.Context, id uuid.UUID) error
	CountMessagesSince(ctx context.Context, senderID uuid.UUID, since time.Time) (int64, error)
	UpsertTyping(ctx context.Context, userID uuid.UUID, typing bool) error
	AddParticipant(ctx context.Context, participant *model.Participant) error
	GetParticipant(ctx context.Context, userUUID string) (*model.Participant, error)
}

// EventSource opens live change feeds. Feed names match the NOTIFY channels
// installed by the migrations.
type EventSource interface {
	Subscribe(channel string) (Subscription, error)
}

type Subscription interface {
	Events() <-chan model.ChangeEvent
	Unsubscribe()
}

type FileStore interface {
	UploadFile(ctx context.Context, bucket, path string, data []byte, contentType string) (string, error)
	RemoveFile(ctx context.Context, bucket, path string) error
}

type Publisher interface {
	Publish(ctx context.Context, channel string, event model.DialogPushEvent) error
}

type Notifier interface {
	NotifyNewMessage(ctx context.Context, notice model.NewMessageNotification) error
}

type UserProvider interface {
	GetUserInfoByUUID(ctx context.Context, userUUID string) (*model.Participant, error)
}

// Session is the surface the UI layer consumes.
type Session interface {
	Snapshot() model.DialogSnapshot
	Send(ctx context.Context, draft SendDraft) error
	Edit(ctx context.Context, messageID uuid.UUID, content string) error
	Delete(ctx context.Context, messageID uuid.UUID) error
	SelectReply(messageID uuid.UUID) error
	CancelReply()
	Keystroke(ctx context.Context) error
	Refresh(ctx context.Context) error
	ReplyTarget(messageID uuid.UUID) *model.Message
}
