package ports

import "go.trai.ch/sail/internal/core/domain"

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Debug logs trace-level detail such as the output of fetch tools.
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(err error)
	// DebugError logs err and the metadata along its chain at trace verbosity.
	DebugError(err error)
	// SetVerbosity changes the threshold below which messages are dropped.
	SetVerbosity(v domain.Verbosity)
}
