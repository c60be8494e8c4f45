package progrock_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sail/internal/adapters/logger"
	"go.trai.ch/sail/internal/adapters/telemetry/progrock"
	"go.trai.ch/sail/internal/core/domain"
	"go.trai.ch/sail/internal/core/ports"
)

func newLogger(verbosity domain.Verbosity) (*logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)
	lg.SetVerbosity(verbosity)
	return lg, &buf
}

func TestRecorder_Record(t *testing.T) {
	recorder := progrock.New(logger.NewWithWriter(io.Discard))

	ctx, vertex := recorder.Record(context.Background(), "fetch")
	got, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, got)

	_, err := vertex.Stdout().Write([]byte("Cloning into '.'...\n"))
	require.NoError(t, err)
	_, err = vertex.Stderr().Write([]byte("warning\n"))
	require.NoError(t, err)
	vertex.Complete(nil)

	assert.NoError(t, recorder.Close())
}

func TestRecorder_CloseLogsPhaseSummary(t *testing.T) {
	lg, buf := newLogger(domain.VerbosityTrace)
	recorder := progrock.New(lg)

	_, fetch := recorder.Record(context.Background(), "fetch github")
	fetch.Complete(nil)
	_, run := recorder.Record(context.Background(), "run run")
	run.Complete(errors.New("build failed"))
	_, prepare := recorder.Record(context.Background(), "prepare")

	assert.Empty(t, buf.String())
	require.NoError(t, recorder.Close())
	prepare.Complete(nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], "phase completed")
	assert.Contains(t, lines[0], "fetch github")
	assert.Contains(t, lines[0], "duration")

	assert.Contains(t, lines[1], "phase failed")
	assert.Contains(t, lines[1], "run run")
	assert.Contains(t, lines[1], "build failed")

	assert.Contains(t, lines[2], "phase did not finish")
	assert.Contains(t, lines[2], "prepare")
}

func TestRecorder_SummaryRespectsVerbosity(t *testing.T) {
	lg, buf := newLogger(domain.VerbosityInformation)
	recorder := progrock.New(lg)

	_, ok := recorder.Record(context.Background(), "fetch remote")
	ok.Complete(nil)
	_, failed := recorder.Record(context.Background(), "prepare")
	failed.Complete(domain.ErrProjectAlreadyExists)

	require.NoError(t, recorder.Close())

	output := buf.String()
	assert.NotContains(t, output, "phase completed")
	assert.Contains(t, output, "phase failed")
	assert.Contains(t, output, "prepare")
}

func TestRecorder_RepeatedNames(t *testing.T) {
	lg, buf := newLogger(domain.VerbosityTrace)
	recorder := progrock.New(lg)

	_, first := recorder.Record(context.Background(), "git")
	_, second := recorder.Record(context.Background(), "git")
	assert.NotSame(t, first, second)

	first.Complete(nil)
	second.Complete(errors.New("exit status 128"))
	require.NoError(t, recorder.Close())

	assert.Equal(t, 1, strings.Count(buf.String(), "phase completed"))
	assert.Equal(t, 1, strings.Count(buf.String(), "phase failed"))
}

func TestRecorder_CloseTwice(t *testing.T) {
	lg, buf := newLogger(domain.VerbosityTrace)
	recorder := progrock.New(lg)

	_, v := recorder.Record(context.Background(), "fetch")
	v.Complete(nil)

	require.NoError(t, recorder.Close())
	require.NoError(t, recorder.Close())
	assert.Equal(t, 1, strings.Count(buf.String(), "phase completed"))
}
