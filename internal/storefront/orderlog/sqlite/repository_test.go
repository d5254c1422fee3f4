package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcuriel/toyshop-storefront/internal/storefront/orderlog"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "orders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSaveAndGetLatest(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, &orderlog.Entry{
		OrderID:   "att-1",
		Status:    orderlog.StatusSubmitted,
		Payload:   `{"total":15}`,
		UpdatedAt: base,
	}))
	require.NoError(t, repo.Save(ctx, &orderlog.Entry{
		OrderID:   "att-1",
		Status:    orderlog.StatusConfirmed,
		RemoteID:  "ord-9",
		UpdatedAt: base.Add(time.Second),
	}))

	latest, err := repo.GetLatest(ctx, "att-1")
	require.NoError(t, err)

	assert.Equal(t, orderlog.StatusConfirmed, latest.Status)
	assert.Equal(t, "ord-9", latest.RemoteID)
	assert.Empty(t, latest.Payload, "payload is written once on SUBMITTED only")
	assert.True(t, latest.UpdatedAt.Equal(base.Add(time.Second)))
}

func TestGetLatestUnknownOrder(t *testing.T) {
	repo := openTestRepo(t)

	_, err := repo.GetLatest(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSaveKeepsRejectedDetail(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &orderlog.Entry{
		OrderID:   "att-2",
		Status:    orderlog.StatusRejected,
		Detail:    "card declined",
		TraceID:   "4bf92f3577b34da6a3ce929d0e0e4736",
		SpanID:    "00f067aa0ba902b7",
		UpdatedAt: time.Now().UTC(),
	}))

	latest, err := repo.GetLatest(ctx, "att-2")
	require.NoError(t, err)
	assert.Equal(t, "card declined", latest.Detail)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", latest.TraceID)
}
