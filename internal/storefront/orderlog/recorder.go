package orderlog

import (
	"context"
	"log/slog"
)

// Recorder writes entries to a Repository, tolerating a missing one.
// A nil *Recorder or nil repository discards entries silently, so callers
// never need to guard their Record calls. Write failures are logged and
// swallowed: the audit trail must never fail a checkout.
type Recorder struct {
	repo Repository
}

// NewRecorder wraps repo. repo may be nil to disable recording.
func NewRecorder(repo Repository) *Recorder {
	return &Recorder{repo: repo}
}

// Record persists the entry on a best-effort basis.
func (r *Recorder) Record(ctx context.Context, entry *Entry) {
	if r == nil || r.repo == nil {
		return
	}
	if err := r.repo.Save(ctx, entry); err != nil {
		slog.WarnContext(ctx, "order log write failed",
			"order_id", entry.OrderID,
			"status", entry.Status,
			"error", err,
		)
	}
}
