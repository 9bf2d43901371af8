package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"
)

// TypingPresence broadcasts the local user's typing state and tracks the
// companion's. The sender owns expiry: each keystroke upserts typing=true and
// re-arms a single auto-clear timer that upserts typing=false after the TTL.
type TypingPresence struct {
	store       RemoteStore
	logger      logger_lib.LoggerInterface
	userID      uuid.UUID
	companionID uuid.UUID
	ttl         time.Duration

	mu              sync.Mutex
	clearTimer      *time.Timer
	companionTyping bool
}

func NewTypingPresence(store RemoteStore, logger logger_lib.LoggerInterface, userID, companionID uuid.UUID, ttl time.Duration) *TypingPresence {
	return &TypingPresence{
		store:       store,
		logger:      logger,
		userID:      userID,
		companionID: companionID,
		ttl:         ttl,
	}
}

// Keystroke marks the local user typing and re-arms the auto-clear. At most
// one pending clear exists: the previous timer is cancelled before a new one
// is scheduled.
func (t *TypingPresence) Keystroke(ctx context.Context) error {
	if err := t.store.UpsertTyping(ctx, t.userID, true); err != nil {
		return fmt.Errorf("failed to broadcast typing state: %v", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.clearTimer != nil {
		t.clearTimer.Stop()
	}
	t.clearTimer = time.AfterFunc(t.ttl, t.clear)

	return nil
}

func (t *TypingPresence) clear() {
	t.mu.Lock()
	t.clearTimer = nil
	t.mu.Unlock()

	if err := t.store.UpsertTyping(context.Background(), t.userID, false); err != nil {
		t.logger.Error(fmt.Sprintf("failed to clear typing state: %v", err))
	}
}

// ApplyRemote records a typing update from the live feed. Only the
// companion's state is observed; self-originated updates are ignored.
func (t *TypingPresence) ApplyRemote(userID uuid.UUID, typing bool) {
	if userID != t.companionID {
		return
	}

	t.mu.Lock()
	t.companionTyping = typing
	t.mu.Unlock()
}

func (t *TypingPresence) CompanionTyping() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.companionTyping
}

// Stop cancels any pending auto-clear. Safe to call repeatedly; runs on
// every session exit path.
func (t *TypingPresence) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.clearTimer != nil {
		t.clearTimer.Stop()
		t.clearTimer = nil
	}
}
