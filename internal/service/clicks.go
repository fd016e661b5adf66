package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const defaultClickTimeout = 2 * time.Second

// ClickRecorder counts successful resolutions. It is best effort: a failed
// increment is logged and never fails the redirect.
type ClickRecorder struct {
	store   ClickStore
	timeout time.Duration
}

func NewClickRecorder(store ClickStore) *ClickRecorder {
	return &ClickRecorder{store: store, timeout: defaultClickTimeout}
}

// RecordClick increments the link's counter once. The increment outlives
// cancellation of ctx so a client hanging up after the decision still counts.
func (c *ClickRecorder) RecordClick(ctx context.Context, linkID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()

	if err := c.store.IncrementClicks(ctx, linkID); err != nil {
		slog.Warn("click not recorded", "link_id", linkID, "error", err)
	}
}
