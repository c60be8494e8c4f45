package domain

import "go.trai.ch/zerr"

var (
	// ErrNoSourceProvider is returned when no source provider recognizes the address.
	ErrNoSourceProvider = zerr.New("no source provider matched")

	// ErrNoProjectFound is returned when the fetched source contains nothing runnable.
	ErrNoProjectFound = zerr.New("no project found in the source")

	// ErrMultipleProjects is returned when more than one candidate project was found.
	ErrMultipleProjects = zerr.New("multiple projects found")

	// ErrProjectAlreadyExists is returned when a single-file project is prepared in a
	// directory that already holds a build descriptor.
	ErrProjectAlreadyExists = zerr.New("project file already exists")

	// ErrUnknownRunner is returned when the configured runner name matches no runner.
	ErrUnknownRunner = zerr.New("project runner not found")

	// ErrInvalidAddress is returned when an address matched a provider but its shape is malformed.
	ErrInvalidAddress = zerr.New("invalid source address")

	// ErrInvalidConfiguration is returned when a configuration source cannot be parsed.
	ErrInvalidConfiguration = zerr.New("invalid configuration")

	// ErrInvalidVerbosity is returned when a verbosity token is not recognized.
	ErrInvalidVerbosity = zerr.New("invalid verbosity")

	// ErrCommandFailed is returned when an external tool exits with a non-zero code
	// or cannot be started.
	ErrCommandFailed = zerr.New("command failed")

	// ErrBuildFailed is returned when the build step of the build-then-run strategy fails.
	ErrBuildFailed = zerr.New("build failed")

	// ErrPublishFailed is returned when the publish step of the publish-then-exec strategy fails.
	ErrPublishFailed = zerr.New("publish failed")

	// ErrFetchFailed is returned when downloading source content fails.
	ErrFetchFailed = zerr.New("fetch failed")

	// ErrUnexpectedStatus is returned when an HTTP request completes with a non-success status.
	ErrUnexpectedStatus = zerr.New("unexpected HTTP status")

	// ErrMalformedResponse is returned when remote metadata cannot be decoded.
	ErrMalformedResponse = zerr.New("malformed remote response")

	// ErrAbsoluteTargetPath is returned when a provider hands back a narrowing path that is absolute.
	ErrAbsoluteTargetPath = zerr.New("target path must be relative")

	// ErrTargetPathEscapes is returned when a narrowing path points outside the fetched tree.
	ErrTargetPathEscapes = zerr.New("target path leaves the fetched tree")

	// ErrInvalidCloneURL is returned when a git remote URL does not end with ".git".
	ErrInvalidCloneURL = zerr.New("clone URL must end with .git")

	// ErrUnsafeArchiveEntry is returned when an archive entry would be extracted outside its destination.
	ErrUnsafeArchiveEntry = zerr.New("archive entry escapes destination")
)
