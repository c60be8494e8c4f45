// Package progrock records invocation phases on a progrock tape.
package progrock

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/sail/internal/core/ports"
)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
	seq atomic.Uint64
}

// New creates a new Recorder that logs a phase summary to logger on Close.
func New(logger ports.Logger) *Recorder {
	return NewRecorder(NewSummary(logger))
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts a vertex for one phase. Phases may share a name, so the
// digest also covers the order in which they were started.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	n := r.seq.Add(1)
	d := digest.FromString(strconv.FormatUint(n, 10) + "/" + name)
	vertex := &Vertex{vertex: r.rec.Vertex(d, name)}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close ends the recording session and closes the writer.
func (r *Recorder) Close() error {
	return r.w.Close()
}
