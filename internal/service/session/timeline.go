package session

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/dialog-service/internal/model"
)

// Timeline holds the ordered, deduplicated message view of one dialog.
// Messages are kept ascending by sent_at; messages sharing a timestamp keep
// their arrival order. Every mutation re-checks the seen set, since the
// subscription feed and a re-hydrate may race.
type Timeline struct {
	mu       sync.Mutex
	messages []model.Message
	seen     map[uuid.UUID]struct{}
}

func NewTimeline() *Timeline {
	return &Timeline{
		seen: make(map[uuid.UUID]struct{}),
	}
}

// Hydrate replaces the timeline with a fresh full fetch.
func (t *Timeline) Hydrate(rows model.MessageList) {
	t.mu.Lock()
	defer t.mu.Unlock()

	messages := make([]model.Message, len(rows))
	copy(messages, rows)
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].SentAt.Before(messages[j].SentAt)
	})

	seen := make(map[uuid.UUID]struct{}, len(messages))
	deduped := messages[:0]
	for _, msg := range messages {
		if _, ok := seen[msg.ID]; ok {
			continue
		}
		seen[msg.ID] = struct{}{}
		deduped = append(deduped, msg)
	}

	t.messages = deduped
	t.seen = seen
}

// ApplyInsert adds a message in sort position. Duplicate delivery of an id
// is ignored. The return value reports whether the timeline grew, which the
// caller uses as the scroll-to-end hint.
func (t *Timeline) ApplyInsert(msg model.Message) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.seen[msg.ID]; ok {
		return false
	}

	// first position strictly after msg, so equal timestamps keep arrival order
	idx := sort.Search(len(t.messages), func(i int) bool {
		return t.messages[i].SentAt.After(msg.SentAt)
	})

	t.messages = append(t.messages, model.Message{})
	copy(t.messages[idx+1:], t.messages[idx:])
	t.messages[idx] = msg
	t.seen[msg.ID] = struct{}{}

	return true
}

// ApplyUpdate replaces the stored message with the same id in place,
// preserving its position. Unknown ids are ignored.
func (t *Timeline) ApplyUpdate(msg model.Message) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.messages {
		if t.messages[i].ID == msg.ID {
			t.messages[i] = msg
			return true
		}
	}

	return false
}

// ApplyDelete drops the message with the given id, if present.
func (t *Timeline) ApplyDelete(id uuid.UUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.messages {
		if t.messages[i].ID == id {
			t.messages = append(t.messages[:i], t.messages[i+1:]...)
			delete(t.seen, id)
			return true
		}
	}

	return false
}

// ReplyTarget resolves a reply reference for display. A deleted target is
// expected and yields nil rather than an error.
func (t *Timeline) ReplyTarget(id uuid.UUID) *model.Message {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.messages {
		if t.messages[i].ID == id {
			msg := t.messages[i]
			return &msg
		}
	}

	return nil
}

// Get returns a copy of the message with the given id.
func (t *Timeline) Get(id uuid.UUID) *model.Message {
	return t.ReplyTarget(id)
}

// Messages returns a snapshot copy in display order.
func (t *Timeline) Messages() model.MessageList {
	t.mu.Lock()
	defer t.mu.Unlock()

	snapshot := make(model.MessageList, len(t.messages))
	copy(snapshot, t.messages)
	return snapshot
}

// HasSystemFrom reports whether the timeline already carries a system
// message authored by the given user. Used for the idempotent join notice.
func (t *Timeline) HasSystemFrom(userID uuid.UUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.messages {
		if t.messages[i].Kind == model.SystemMessageKind && t.messages[i].SenderID == userID {
			return true
		}
	}

	return false
}

// EarliestEventDate returns the earliest event-linked date found in the
// timeline, or nil when no message carries one.
func (t *Timeline) EarliestEventDate() *time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()

	var earliest *time.Time
	for i := range t.messages {
		date := t.messages[i].EventDate
		if date == nil {
			continue
		}
		if earliest == nil || date.Before(*earliest) {
			d := *date
			earliest = &d
		}
	}

	return earliest
}
