package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Verbosity is the ordered severity threshold for diagnostics. Messages below
// the configured verbosity are suppressed.
type Verbosity int

const (
	// VerbosityTrace shows everything, including the output of fetch tools.
	VerbosityTrace Verbosity = iota
	// VerbosityInformation shows progress messages.
	VerbosityInformation
	// VerbosityError shows failures only.
	VerbosityError
	// VerbosityNone silences all diagnostics.
	VerbosityNone
)

// String returns the string representation of the Verbosity.
func (v Verbosity) String() string {
	switch v {
	case VerbosityTrace:
		return "Trace"
	case VerbosityInformation:
		return "Information"
	case VerbosityError:
		return "Error"
	case VerbosityNone:
		return "None"
	default:
		return "Information"
	}
}

// ParseVerbosity maps a case-insensitive token, or its abbreviation, to a Verbosity.
func ParseVerbosity(s string) (Verbosity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace", "t":
		return VerbosityTrace, nil
	case "information", "info", "i":
		return VerbosityInformation, nil
	case "error", "e":
		return VerbosityError, nil
	case "none", "n":
		return VerbosityNone, nil
	default:
		return VerbosityInformation, zerr.With(zerr.Wrap(ErrInvalidVerbosity, ""), "value", s)
	}
}
