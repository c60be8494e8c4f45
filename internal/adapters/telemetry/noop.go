// Package telemetry holds telemetry adapters that need no backend.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/sail/internal/core/ports"
)

// NoOp is a ports.Telemetry that records nothing.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex that discards its output. The vertex is still
// attached to the context so callers can tee output unconditionally.
func (t *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := NoOpVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (t *NoOp) Close() error { return nil }

// NoOpVertex is a ports.Vertex that discards everything.
type NoOpVertex struct{}

// Stdout returns io.Discard.
func (NoOpVertex) Stdout() io.Writer { return io.Discard }

// Stderr returns io.Discard.
func (NoOpVertex) Stderr() io.Writer { return io.Discard }

// Complete does nothing.
func (NoOpVertex) Complete(error) {}
