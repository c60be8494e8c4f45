package progrock

import (
	"sync"
	"time"

	"github.com/vito/progrock"
	"go.trai.ch/sail/internal/core/ports"
)

// Summary is a progrock.Writer that tracks vertex state and logs one line
// per phase when closed. Vertex logs are not retained.
type Summary struct {
	logger ports.Logger

	mu       sync.Mutex
	order    []string
	vertexes map[string]*progrock.Vertex
	closed   bool
}

// NewSummary creates a Summary reporting to logger.
func NewSummary(logger ports.Logger) *Summary {
	return &Summary{
		logger:   logger,
		vertexes: map[string]*progrock.Vertex{},
	}
}

// WriteStatus implements progrock.Writer.
func (s *Summary) WriteStatus(update *progrock.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range update.Vertexes {
		if _, seen := s.vertexes[v.Id]; !seen {
			s.order = append(s.order, v.Id)
		}
		s.vertexes[v.Id] = v
	}
	return nil
}

// Close implements progrock.Writer. Completed phases are logged at trace
// verbosity; failed or unfinished phases at information verbosity.
func (s *Summary) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	for _, id := range s.order {
		v := s.vertexes[id]
		args := []any{"phase", v.Name}
		if v.Started != nil && v.Completed != nil {
			d := v.Completed.AsTime().Sub(v.Started.AsTime())
			args = append(args, "duration", d.Round(time.Millisecond))
		}

		switch {
		case v.Completed == nil:
			s.logger.Info("phase did not finish", args...)
		case v.Error != nil:
			s.logger.Info("phase failed", append(args, "error", *v.Error)...)
		default:
			s.logger.Debug("phase completed", args...)
		}
	}
	return nil
}
