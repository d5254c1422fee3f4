// Package sqlite provides a SQLite-backed implementation of
// orderlog.Repository.
//
// WAL mode is enabled on Open so that readers never block writers and vice
// versa: checkouts append rows while an operator may be querying the log.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jcuriel/toyshop-storefront/internal/storefront/orderlog"

	// Register the pure-Go SQLite driver. modernc.org/sqlite avoids CGO,
	// which keeps the storefront a single static binary.
	_ "modernc.org/sqlite"
)

// schema is the DDL executed once on startup.
// The table is append-only: each row is an immutable event in a checkout
// attempt's lifecycle. MAX(updated_at) per order_id gives the current state.
const schema = `
CREATE TABLE IF NOT EXISTS order_logs (
    -- Surrogate primary key, auto-incremented by SQLite.
    id          INTEGER PRIMARY KEY AUTOINCREMENT,

    -- Local checkout attempt identifier. Not UNIQUE: multiple rows exist
    -- per attempt (one per transition).
    order_id    TEXT NOT NULL,

    -- Lifecycle state at the time this row was written.
    status      TEXT NOT NULL,

    -- Order ID assigned by the remote API. Empty until CONFIRMED.
    remote_id   TEXT NOT NULL DEFAULT '',

    -- JSON order payload. Written once on SUBMITTED, NULL after.
    payload     TEXT,

    -- Failure message on REJECTED rows.
    detail      TEXT NOT NULL DEFAULT '',

    -- W3C trace_id (32 hex chars) from the active OTel span.
    trace_id    TEXT NOT NULL DEFAULT '',

    -- W3C span_id (16 hex chars) within that trace.
    span_id     TEXT NOT NULL DEFAULT '',

    -- Wall-clock timestamp (RFC3339 stored as TEXT, SQLite idiom).
    updated_at  TEXT NOT NULL
);

-- The common query: "give me all events for attempt X in order".
CREATE INDEX IF NOT EXISTS idx_order_logs_order_id ON order_logs(order_id, updated_at);

-- The observability query: "find the checkout for trace Y".
CREATE INDEX IF NOT EXISTS idx_order_logs_trace_id ON order_logs(trace_id);
`

// Repository is the SQLite implementation of orderlog.Repository.
type Repository struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at the given path and applies
// the schema.
//
//	repo, err := sqlite.Open("./data/orders.db")
func Open(path string) (*Repository, error) {
	// The pure-Go driver takes _pragma query parameters for connection state.
	// WAL enables concurrent readers; busy_timeout waits for locks instead of
	// failing immediately.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)

	// "sqlite", not "sqlite3", for the modernc driver.
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// SQLite performs best with a single writer connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}

	return &Repository{db: db}, nil
}

// Close releases the database connection. Call it with defer in main().
func (r *Repository) Close() error {
	return r.db.Close()
}

// Save inserts a new order log row. Safe to call concurrently.
func (r *Repository) Save(ctx context.Context, entry *orderlog.Entry) error {
	const q = `
		INSERT INTO order_logs
			(order_id, status, remote_id, payload, detail, trace_id, span_id, updated_at)
		VALUES
			(?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		entry.OrderID,
		string(entry.Status),
		entry.RemoteID,
		nullableString(entry.Payload),
		entry.Detail,
		entry.TraceID,
		entry.SpanID,
		entry.UpdatedAt.UTC().Format("2006-01-02T15:04:05.999999999Z"),
	)
	if err != nil {
		return fmt.Errorf("sqlite: save order log for %q: %w", entry.OrderID, err)
	}
	return nil
}

// GetLatest returns the most recent row for a checkout attempt.
func (r *Repository) GetLatest(ctx context.Context, orderID string) (*orderlog.Entry, error) {
	const q = `
		SELECT order_id, status, remote_id, COALESCE(payload,''), detail,
		       trace_id, span_id, updated_at
		FROM   order_logs
		WHERE  order_id = ?
		ORDER  BY updated_at DESC, id DESC
		LIMIT  1`

	row := r.db.QueryRowContext(ctx, q, orderID)

	var entry orderlog.Entry
	var updatedAt string
	err := row.Scan(
		&entry.OrderID,
		&entry.Status,
		&entry.RemoteID,
		&entry.Payload,
		&entry.Detail,
		&entry.TraceID,
		&entry.SpanID,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("sqlite: order %q not found", orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: get latest for %q: %w", orderID, err)
	}

	entry.UpdatedAt, err = parseRFC3339(updatedAt)
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// nullableString returns nil for empty strings so SQLite stores NULL instead
// of an empty TEXT on non-SUBMITTED rows.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
