// Package orderlog defines a local, append-only audit trail of checkout
// attempts.
//
// Every checkout writes a short lifecycle of rows: SUBMITTED when the order
// payload leaves the storefront, then CONFIRMED (with the server's order ID)
// or REJECTED (with the failure detail). Each row carries the active trace
// and span IDs so a log row can be joined with the distributed trace of the
// request that produced it.
//
// The log is observability only: the cart never reads from it and no
// storefront behavior depends on its contents.
package orderlog

import "time"

// Status is the lifecycle state of a checkout attempt.
type Status string

const (
	StatusSubmitted Status = "SUBMITTED"
	StatusConfirmed Status = "CONFIRMED"
	StatusRejected  Status = "REJECTED"
)

// Entry is a single row in the order_logs table: a point-in-time snapshot of
// one checkout attempt.
type Entry struct {
	// OrderID identifies the checkout attempt locally. Several rows share
	// one OrderID (one per transition).
	OrderID string

	// Status is the lifecycle state this row records.
	Status Status

	// RemoteID is the order ID assigned by the remote API.
	// Empty until the attempt is CONFIRMED.
	RemoteID string

	// Payload is the JSON-serialised order. Written once on SUBMITTED so a
	// rejected attempt can be inspected (or replayed by hand) later.
	Payload string

	// Detail is the failure message on REJECTED rows.
	Detail string

	// TraceID is the W3C trace ID of the span active when this row was
	// written. Empty when no span was active (e.g. in tests).
	TraceID string

	// SpanID pinpoints the exact span within the trace.
	SpanID string

	// UpdatedAt is the wall-clock time of this row.
	UpdatedAt time.Time
}
