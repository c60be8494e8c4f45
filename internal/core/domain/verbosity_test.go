package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sail/internal/core/domain"
)

func TestParseVerbosity(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.Verbosity
	}{
		{"trace", domain.VerbosityTrace},
		{"T", domain.VerbosityTrace},
		{"Information", domain.VerbosityInformation},
		{"info", domain.VerbosityInformation},
		{"i", domain.VerbosityInformation},
		{"ERROR", domain.VerbosityError},
		{"e", domain.VerbosityError},
		{"none", domain.VerbosityNone},
		{"N", domain.VerbosityNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := domain.ParseVerbosity(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestParseVerbosity_Unknown(t *testing.T) {
	_, err := domain.ParseVerbosity("loud")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidVerbosity))
}

func TestVerbosity_Ordering(t *testing.T) {
	assert.Less(t, domain.VerbosityTrace, domain.VerbosityInformation)
	assert.Less(t, domain.VerbosityInformation, domain.VerbosityError)
	assert.Less(t, domain.VerbosityError, domain.VerbosityNone)
}

func TestVerbosity_String(t *testing.T) {
	assert.Equal(t, "Trace", domain.VerbosityTrace.String())
	assert.Equal(t, "None", domain.VerbosityNone.String())
	assert.Equal(t, "Information", domain.Verbosity(42).String())
}
