package user

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/dialog-service/internal/config"
)

type DBRepo interface {
	UpdateParticipantNickname(ctx context.Context, userUUID, newNickname string) error
	UpdateParticipantAvatar(ctx context.Context, userUUID, avatarLink string) error
}

// UpdatedMessage is the user-service change notification consumed from kafka.
type UpdatedMessage struct {
	UserUUID  string  `json:"user_uuid"`
	Nickname  *string `json:"nickname,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

type Handler struct {
	repository DBRepo
}

func New(repo DBRepo) *Handler {
	return &Handler{
		repository: repo,
	}
}

func (h *Handler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("UserUpdateHandler")

	var msg UpdatedMessage
	if err := json.Unmarshal(in, &msg); err != nil {
		logger.Error(fmt.Sprintf("failed to decode user update: %v", err))
		return
	}

	if msg.UserUUID == "" {
		logger.Error("user update without uuid, skipping")
		return
	}

	if msg.Nickname != nil {
		if err := h.repository.UpdateParticipantNickname(ctx, msg.UserUUID, *msg.Nickname); err != nil {
			logger.Error(fmt.Sprintf("failed to update nickname for %s: %v", msg.UserUUID, err))
		}
	}

	if msg.AvatarURL != nil {
		if err := h.repository.UpdateParticipantAvatar(ctx, msg.UserUUID, *msg.AvatarURL); err != nil {
			logger.Error(fmt.Sprintf("failed to update avatar for %s: %v", msg.UserUUID, err))
		}
	}
}
