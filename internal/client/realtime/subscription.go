package realtime

import (
	"fmt"
	"sync"

	"github.com/lib/pq"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/dialog-service/internal/model"
)

// Subscription is one live LISTEN session. Events are delivered on a single
// channel in emission order until Unsubscribe is called.
type Subscription struct {
	listener *pq.Listener
	events   chan model.ChangeEvent
	done     chan struct{}
	once     sync.Once
	logger   logger_lib.LoggerInterface
}

func (s *Subscription) Events() <-chan model.ChangeEvent {
	return s.events
}

// Unsubscribe tears the session down. Calling it more than once is a no-op.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		close(s.done)
		_ = s.listener.Close()
	})
}

func (s *Subscription) pump() {
	defer close(s.events)

	for {
		select {
		case <-s.done:
			return
		case notification, ok := <-s.listener.Notify:
			if !ok {
				return
			}
			// nil notification marks a connection re-establishment
			if notification == nil {
				continue
			}

			event, err := model.DecodeChangeEvent([]byte(notification.Extra))
			if err != nil {
				s.logger.Error(fmt.Sprintf("failed to decode notification on %s: %v", notification.Channel, err))
				continue
			}

			select {
			case s.events <- *event:
			case <-s.done:
				return
			}
		}
	}
}
