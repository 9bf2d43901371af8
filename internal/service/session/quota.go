package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"
)

// QuotaGuard decides whether the user may open or continue a dialog today.
// It counts messages the user authored inside the trailing window, read once
// at join time.
type QuotaGuard struct {
	store  RemoteStore
	logger logger_lib.LoggerInterface
	limit  int64
	window time.Duration
}

func NewQuotaGuard(store RemoteStore, logger logger_lib.LoggerInterface, limit int, window time.Duration) *QuotaGuard {
	return &QuotaGuard{
		store:  store,
		logger: logger,
		limit:  int64(limit),
		window: window,
	}
}

// CheckAllowed is read-only. A failed count query fails open: the user keeps
// reading, the send path gates on the flag separately.
func (g *QuotaGuard) CheckAllowed(ctx context.Context, userID uuid.UUID) bool {
	since := time.Now().Add(-g.window)

	count, err := g.store.CountMessagesSince(ctx, userID, since)
	if err != nil {
		g.logger.Error(fmt.Sprintf("failed to count messages for quota, allowing: %v", err))
		return true
	}

	return count < g.limit
}
