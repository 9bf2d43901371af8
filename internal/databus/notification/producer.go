package notification

import (
	"context"
	"fmt"

	"github.com/s21platform/dialog-service/internal/model"
)

// KafkaProducer is the piece of kafka-lib the databus relies on.
type KafkaProducer interface {
	ProduceMessage(ctx context.Context, message interface{}, key interface{}) error
}

type Service struct {
	producer KafkaProducer
}

func New(producer KafkaProducer) *Service {
	return &Service{
		producer: producer,
	}
}

// NotifyNewMessage publishes a new-message notice for the recipient. The
// caller treats failures as non-fatal; delivery is best effort.
func (s *Service) NotifyNewMessage(ctx context.Context, notice model.NewMessageNotification) error {
	if err := s.producer.ProduceMessage(ctx, notice, notice.RecipientID); err != nil {
		return fmt.Errorf("failed to produce notification: %v", err)
	}

	return nil
}
