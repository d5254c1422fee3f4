package orderlog

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// NewEntry builds an Entry for the given transition, stamping it with the
// current time and the trace/span IDs of the span active in ctx. When the
// context carries no valid span both IDs are left empty.
func NewEntry(ctx context.Context, orderID string, status Status, remoteID, payload, detail string) *Entry {
	e := &Entry{
		OrderID:   orderID,
		Status:    status,
		RemoteID:  remoteID,
		Payload:   payload,
		Detail:    detail,
		UpdatedAt: time.Now().UTC(),
	}

	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		e.TraceID = sc.TraceID().String()
		e.SpanID = sc.SpanID().String()
	}
	return e
}
