package rest

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/dialog-service/internal/config"
	api "github.com/s21platform/dialog-service/internal/generated"
	"github.com/s21platform/dialog-service/internal/model"
	"github.com/s21platform/dialog-service/internal/pkg/tx"
	"github.com/s21platform/dialog-service/internal/service/session"
)

type Handler struct {
	sessions     SessionProvider
	validator    Validator
	jwtGenerator JWTGenerator
}

func New(
	sessions SessionProvider,
	validator Validator,
	jwtGenerator JWTGenerator,
) *Handler {
	return &Handler{
		sessions:     sessions,
		validator:    validator,
		jwtGenerator: jwtGenerator,
	}
}

func (h *Handler) JoinDialog(w http.ResponseWriter, r *http.Request, companionId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("JoinDialog")

	userID, companionID, ok := h.dialogIDs(w, r, logger, companionId)
	if !ok {
		return
	}

	sess, err := h.sessions.Join(r.Context(), userID, companionID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to join dialog: %v", err))
		h.writeError(w, fmt.Sprintf("failed to join dialog: %v", err), sessionErrorStatus(err))
		return
	}

	h.writeJSON(w, toStateResponse(sess.Snapshot()), http.StatusOK)
}

func (h *Handler) GetDialogState(w http.ResponseWriter, r *http.Request, companionId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetDialogState")

	sess, ok := h.activeSession(w, r, logger, companionId)
	if !ok {
		return
	}

	h.writeJSON(w, toStateResponse(sess.Snapshot()), http.StatusOK)
}

func (h *Handler) SendDialogMessage(w http.ResponseWriter, r *http.Request, companionId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendDialogMessage")

	var req api.SendDialogMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateSendMessage(&req); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	sess, ok := h.activeSession(w, r, logger, companionId)
	if !ok {
		return
	}

	if req.ReplyToId != nil && *req.ReplyToId != "" {
		replyID, err := uuid.Parse(*req.ReplyToId)
		if err != nil {
			logger.Error(fmt.Sprintf("invalid reply id: %v", err))
			h.writeError(w, "invalid reply id", http.StatusBadRequest)
			return
		}
		if err := sess.SelectReply(replyID); err != nil {
			logger.Error(fmt.Sprintf("failed to select reply target: %v", err))
			h.writeError(w, "reply target not found", http.StatusNotFound)
			return
		}
	}

	draft, err := toSendDraft(&req)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to read draft: %v", err))
		h.writeError(w, fmt.Sprintf("failed to read draft: %v", err), http.StatusBadRequest)
		return
	}

	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		return sess.Send(ctx, draft)
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to send message: %v", err))
		h.writeError(w, fmt.Sprintf("failed to send message: %v", err), sessionErrorStatus(err))
		return
	}

	h.writeJSON(w, toStateResponse(sess.Snapshot()), http.StatusOK)
}

func (h *Handler) EditDialogMessage(w http.ResponseWriter, r *http.Request, companionId string, messageId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("EditDialogMessage")

	var req api.EditDialogMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateEditMessage(&req); err != nil {
		logger.Error(fmt.Sprintf("edit validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("edit validation failed: %v", err), http.StatusBadRequest)
		return
	}

	messageID, err := uuid.Parse(messageId)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid message id: %v", err))
		h.writeError(w, "invalid message id", http.StatusBadRequest)
		return
	}

	sess, ok := h.activeSession(w, r, logger, companionId)
	if !ok {
		return
	}

	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		return sess.Edit(ctx, messageID, req.Content)
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to edit message: %v", err))
		h.writeError(w, fmt.Sprintf("failed to edit message: %v", err), sessionErrorStatus(err))
		return
	}

	h.writeJSON(w, toStateResponse(sess.Snapshot()), http.StatusOK)
}

func (h *Handler) DeleteDialogMessage(w http.ResponseWriter, r *http.Request, companionId string, messageId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteDialogMessage")

	messageID, err := uuid.Parse(messageId)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid message id: %v", err))
		h.writeError(w, "invalid message id", http.StatusBadRequest)
		return
	}

	sess, ok := h.activeSession(w, r, logger, companionId)
	if !ok {
		return
	}

	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		return sess.Delete(ctx, messageID)
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to delete message: %v", err))
		h.writeError(w, fmt.Sprintf("failed to delete message: %v", err), sessionErrorStatus(err))
		return
	}

	h.writeJSON(w, toStateResponse(sess.Snapshot()), http.StatusOK)
}

func (h *Handler) SetReply(w http.ResponseWriter, r *http.Request, companionId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SetReply")

	var req api.SetReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	sess, ok := h.activeSession(w, r, logger, companionId)
	if !ok {
		return
	}

	if req.MessageId == nil || *req.MessageId == "" {
		sess.CancelReply()
		h.writeJSON(w, toStateResponse(sess.Snapshot()), http.StatusOK)
		return
	}

	messageID, err := uuid.Parse(*req.MessageId)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid message id: %v", err))
		h.writeError(w, "invalid message id", http.StatusBadRequest)
		return
	}

	if err := sess.SelectReply(messageID); err != nil {
		logger.Error(fmt.Sprintf("failed to select reply target: %v", err))
		h.writeError(w, "reply target not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, toStateResponse(sess.Snapshot()), http.StatusOK)
}

func (h *Handler) NotifyTyping(w http.ResponseWriter, r *http.Request, companionId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("NotifyTyping")

	sess, ok := h.activeSession(w, r, logger, companionId)
	if !ok {
		return
	}

	if err := sess.Keystroke(r.Context()); err != nil {
		logger.Error(fmt.Sprintf("failed to register keystroke: %v", err))
		h.writeError(w, fmt.Sprintf("failed to register keystroke: %v", err), sessionErrorStatus(err))
		return
	}

	h.writeJSON(w, struct{}{}, http.StatusOK)
}

func (h *Handler) RefreshDialog(w http.ResponseWriter, r *http.Request, companionId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("RefreshDialog")

	sess, ok := h.activeSession(w, r, logger, companionId)
	if !ok {
		return
	}

	if err := sess.Refresh(r.Context()); err != nil {
		logger.Error(fmt.Sprintf("failed to refresh dialog: %v", err))
		h.writeError(w, fmt.Sprintf("failed to refresh dialog: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, toStateResponse(sess.Snapshot()), http.StatusOK)
}

func (h *Handler) LeaveDialog(w http.ResponseWriter, r *http.Request, companionId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("LeaveDialog")

	userID, companionID, ok := h.dialogIDs(w, r, logger, companionId)
	if !ok {
		return
	}

	h.sessions.Leave(userID, companionID)

	h.writeJSON(w, struct{}{}, http.StatusOK)
}

func (h *Handler) GetConnectAccessToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConnectAccessToken")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateConnectToken(userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate access token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate access token: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("generated access token for user %s", userUUID))

	response := api.GetConnectAccessTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetDialogSubscribeToken(w http.ResponseWriter, r *http.Request, companionId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetDialogSubscribeToken")

	userID, companionID, ok := h.dialogIDs(w, r, logger, companionId)
	if !ok {
		return
	}

	channel := session.DialogChannel(userID, companionID)

	token, expiresAt, err := h.jwtGenerator.GenerateSubscribeToken(userID.String(), channel)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate subscribe token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate subscribe token: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("generated subscribe token for user %s, channel %s", userID, channel))

	response := api.GetDialogSubscribeTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Channel:   channel,
	}

	h.writeJSON(w, response, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

func (h *Handler) dialogIDs(w http.ResponseWriter, r *http.Request, logger logger_lib.LoggerInterface, companionId string) (uuid.UUID, uuid.UUID, bool) {
	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return uuid.Nil, uuid.Nil, false
	}

	userID, err := uuid.Parse(userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid user UUID: %v", err))
		h.writeError(w, "invalid user UUID", http.StatusInternalServerError)
		return uuid.Nil, uuid.Nil, false
	}

	companionID, err := uuid.Parse(companionId)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid companion id: %v", err))
		h.writeError(w, "invalid companion id", http.StatusBadRequest)
		return uuid.Nil, uuid.Nil, false
	}

	return userID, companionID, true
}

func (h *Handler) activeSession(w http.ResponseWriter, r *http.Request, logger logger_lib.LoggerInterface, companionId string) (session.Session, bool) {
	userID, companionID, ok := h.dialogIDs(w, r, logger, companionId)
	if !ok {
		return nil, false
	}

	sess, ok := h.sessions.Get(userID, companionID)
	if !ok {
		logger.Error("dialog session not found")
		h.writeError(w, "dialog is not joined", http.StatusConflict)
		return nil, false
	}

	return sess, true
}

func toSendDraft(req *api.SendDialogMessageRequest) (session.SendDraft, error) {
	draft := session.SendDraft{}

	if req.Content != nil {
		draft.Content = *req.Content
	}

	if req.MediaFilename != nil && *req.MediaFilename != "" {
		data, err := base64.StdEncoding.DecodeString(*req.MediaData)
		if err != nil {
			return session.SendDraft{}, fmt.Errorf("media data is not valid base64: %v", err)
		}
		draft.MediaFilename = *req.MediaFilename
		draft.MediaData = data
	}

	if req.EventDate != nil && *req.EventDate != "" {
		eventDate, err := time.Parse(time.RFC3339, *req.EventDate)
		if err != nil {
			return session.SendDraft{}, fmt.Errorf("event date is not valid RFC3339: %v", err)
		}
		draft.EventDate = &eventDate
	}

	return draft, nil
}

func toStateResponse(snapshot model.DialogSnapshot) api.DialogStateResponse {
	messages := make([]api.Message, len(snapshot.Messages))
	for i, msg := range snapshot.Messages {
		var updatedAt *string
		if msg.UpdatedAt != nil {
			timestamp := msg.UpdatedAt.Format(time.RFC3339)
			updatedAt = &timestamp
		}

		var eventDate *string
		if msg.EventDate != nil {
			timestamp := msg.EventDate.Format(time.RFC3339)
			eventDate = &timestamp
		}

		var replyToId *string
		if msg.ReplyToID != nil {
			id := msg.ReplyToID.String()
			replyToId = &id
		}

		messages[i] = api.Message{
			Id:        msg.ID.String(),
			SenderId:  msg.SenderID.String(),
			Kind:      msg.Kind,
			Content:   msg.Content,
			MediaUrl:  msg.MediaURL,
			ReplyToId: replyToId,
			EventDate: eventDate,
			SentAt:    msg.SentAt.Format(time.RFC3339),
			UpdatedAt: updatedAt,
		}
	}

	return api.DialogStateResponse{
		State:           snapshot.State,
		Messages:        messages,
		CompanionTyping: snapshot.CompanionTyping,
		ExpiresSoon:     snapshot.ExpiresSoon,
		QuotaBlocked:    snapshot.QuotaBlocked,
		Loading:         snapshot.Loading,
		ReplyToId:       snapshot.ReplyToID,
		Degraded:        snapshot.Degraded,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}

func sessionErrorStatus(err error) int {
	switch {
	case errors.Is(err, session.ErrAuthRequired):
		return http.StatusUnauthorized
	case errors.Is(err, session.ErrQuotaExceeded):
		return http.StatusTooManyRequests
	case errors.Is(err, session.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrSessionClosed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
