package logger_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/sail/internal/adapters/logger"
	"go.trai.ch/sail/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Info("some message", "address", "https://example.com/")

	output := buf.String()
	assert.Contains(t, output, "some message")
	assert.Contains(t, output, "INFO")
	assert.Contains(t, output, "https://example.com/")
}

func TestLogger_Warn(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Warn("some warning")

	assert.Contains(t, buf.String(), "some warning")
	assert.Contains(t, buf.String(), "WARN")
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Error(zerr.With(zerr.Wrap(os.ErrPermission, "open workspace"), "path", "/tmp/x"))

	output := buf.String()
	assert.Contains(t, output, "permission denied")
	assert.Contains(t, output, "ERRO")
	assert.Contains(t, output, "/tmp/x")
}

func TestLogger_DebugError(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)
	err := zerr.With(zerr.Wrap(os.ErrNotExist, "fetch source"), "address", "https://example.com/x")

	lg.DebugError(err)
	assert.Empty(t, buf.String())

	lg.SetVerbosity(domain.VerbosityTrace)
	lg.DebugError(err)

	output := buf.String()
	assert.Contains(t, output, "file does not exist")
	assert.Contains(t, output, "DEBU")
	assert.NotContains(t, output, "ERRO")
	assert.Contains(t, output, "https://example.com/x")
}

func TestLogger_Error_Nil(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_DebugHiddenByDefault(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Debug("git output")
	assert.Empty(t, buf.String())

	lg.SetVerbosity(domain.VerbosityTrace)
	lg.Debug("git output")
	assert.Contains(t, buf.String(), "git output")
}

func TestLogger_SetVerbosity(t *testing.T) {
	tests := []struct {
		name      string
		verbosity domain.Verbosity
		infoShown bool
		errShown  bool
	}{
		{"trace", domain.VerbosityTrace, true, true},
		{"information", domain.VerbosityInformation, true, true},
		{"error", domain.VerbosityError, false, true},
		{"none", domain.VerbosityNone, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			lg := logger.NewWithWriter(&buf)
			lg.SetVerbosity(tt.verbosity)

			lg.Info("info-line")
			lg.Error(zerr.New("error-line"))

			output := buf.String()
			assert.Equal(t, tt.infoShown, strings.Contains(output, "info-line"))
			assert.Equal(t, tt.errShown, strings.Contains(output, "error-line"))
		})
	}
}

func TestLogger_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	lg := logger.NewWithWriter(&first)

	lg.SetOutput(&second)
	lg.Info("moved")

	assert.Empty(t, first.String())
	assert.Contains(t, second.String(), "moved")
}
