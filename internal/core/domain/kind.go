package domain

import "errors"

// ErrorKind classifies a pipeline failure for reporting.
type ErrorKind int

const (
	// KindUnknown is an error that does not belong to any known family.
	KindUnknown ErrorKind = iota
	// KindUserInput covers mistakes the user can fix by changing the invocation.
	KindUserInput
	// KindExternalTool covers non-zero exits from git or the build toolchain.
	KindExternalTool
	// KindFetch covers HTTP failures and malformed remote metadata.
	KindFetch
	// KindInternal covers broken invariants inside the tool itself.
	KindInternal
)

var kindTable = []struct {
	kind ErrorKind
	errs []error
}{
	{KindInternal, []error{ErrAbsoluteTargetPath, ErrTargetPathEscapes, ErrInvalidCloneURL}},
	{KindExternalTool, []error{ErrBuildFailed, ErrPublishFailed, ErrCommandFailed}},
	{KindFetch, []error{ErrFetchFailed, ErrUnexpectedStatus, ErrMalformedResponse, ErrUnsafeArchiveEntry}},
	{KindUserInput, []error{
		ErrNoSourceProvider,
		ErrNoProjectFound,
		ErrMultipleProjects,
		ErrProjectAlreadyExists,
		ErrUnknownRunner,
		ErrInvalidAddress,
		ErrInvalidConfiguration,
		ErrInvalidVerbosity,
	}},
}

// KindOf reports the family of err. The first matching family wins, so an
// internal error wrapped by a user-facing one is still reported as internal.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	for _, entry := range kindTable {
		for _, target := range entry.errs {
			if errors.Is(err, target) {
				return entry.kind
			}
		}
	}
	return KindUnknown
}

// String returns the string representation of the ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case KindUserInput:
		return "user input"
	case KindExternalTool:
		return "external tool"
	case KindFetch:
		return "fetch"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}
