package validator

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"

	api "github.com/s21platform/dialog-service/internal/generated"
)

const maxContentLength = 500

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateSendMessage(req *api.SendDialogMessageRequest) error {
	hasText := req.Content != nil && strings.TrimSpace(*req.Content) != ""
	hasMedia := req.MediaFilename != nil && strings.TrimSpace(*req.MediaFilename) != ""

	if !hasText && !hasMedia {
		return fmt.Errorf("message requires text content or media")
	}

	if hasText && len([]rune(*req.Content)) > maxContentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxContentLength)
	}

	if hasMedia {
		if req.MediaData == nil || *req.MediaData == "" {
			return fmt.Errorf("media filename provided without media data")
		}
		if _, err := base64.StdEncoding.DecodeString(*req.MediaData); err != nil {
			return fmt.Errorf("media data is not valid base64: %v", err)
		}
	}

	if req.ReplyToId != nil && *req.ReplyToId != "" {
		if _, err := uuid.Parse(*req.ReplyToId); err != nil {
			return fmt.Errorf("reply_to_id is not a valid uuid: %v", err)
		}
	}

	return nil
}

func (v *Validator) ValidateEditMessage(req *api.EditDialogMessageRequest) error {
	if strings.TrimSpace(req.Content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	if len([]rune(req.Content)) > maxContentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxContentLength)
	}

	return nil
}
