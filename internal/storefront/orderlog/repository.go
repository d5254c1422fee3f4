package orderlog

import "context"

// Repository persists order log entries. Implementations must be safe for
// concurrent use: several sessions may check out at once.
type Repository interface {
	Save(ctx context.Context, entry *Entry) error

	// GetLatest returns the most recent entry for a checkout attempt,
	// i.e. its current state.
	GetLatest(ctx context.Context, orderID string) (*Entry, error)
}
