package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"go.trai.ch/sail/internal/core/domain"
	"go.trai.ch/sail/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// remoteTargetDir is the source subdirectory that receives remote content.
	remoteTargetDir = "d"
	// remoteEntryFile is the name given to a downloaded single source file.
	remoteEntryFile = "Program.cs"

	remoteAccept = "application/x-zip-compressed, text/plain, */*;q=0.8"
)

var zipMagic = []byte("PK")

// RemoteProvider downloads an arbitrary HTTP resource, either a single source
// file or a zip archive.
type RemoteProvider struct {
	logger ports.Logger
	opts   options
}

// NewRemoteProvider creates a RemoteProvider.
func NewRemoteProvider(logger ports.Logger, opts ...Option) *RemoteProvider {
	return &RemoteProvider{logger: logger, opts: newOptions(opts)}
}

// Name implements ports.SourceProvider.
func (p *RemoteProvider) Name() string { return "remote" }

// Matches implements ports.SourceProvider.
func (p *RemoteProvider) Matches(address string) bool {
	return remotePattern.MatchString(address)
}

// Fetch implements ports.SourceProvider.
func (p *RemoteProvider) Fetch(ctx context.Context, address string, ws domain.Workspace) (domain.FetchResult, error) {
	p.logger.Info("downloading", "url", address)

	header := http.Header{}
	header.Set("Accept", remoteAccept)
	resp, err := p.opts.get(ctx, address, header)
	if err != nil {
		return domain.FetchResult{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	contentType := resp.Header.Get("Content-Type")
	p.logger.Debug("response received", "content_type", contentType)
	ext := extensionFor(contentType)

	download := filepath.Join(ws.SourceDir, "download."+ext)
	if err := writeBody(download, resp.Body); err != nil {
		return domain.FetchResult{}, zerr.With(zerr.Wrap(fmt.Errorf("%w: %w", domain.ErrFetchFailed, err), "failed to save download"), "url", address)
	}

	dest := filepath.Join(ws.SourceDir, remoteTargetDir)
	if err := os.MkdirAll(dest, 0o750); err != nil {
		return domain.FetchResult{}, zerr.With(zerr.Wrap(err, "failed to create target directory"), "path", dest)
	}

	isZip := ext == "zip"
	if ext == "bin" {
		if isZip, err = hasZipMagic(download); err != nil {
			return domain.FetchResult{}, zerr.With(zerr.Wrap(err, "failed to inspect download"), "path", download)
		}
	}

	if isZip {
		p.logger.Debug("extracting archive", "archive", download, "dest", dest)
		if err := extractZip(download, dest); err != nil {
			return domain.FetchResult{}, err
		}
		return domain.FetchResult{TargetPath: remoteTargetDir}, nil
	}

	entry := filepath.Join(dest, remoteEntryFile)
	p.logger.Debug("moving download", "from", download, "to", entry)
	if err := os.Rename(download, entry); err != nil {
		return domain.FetchResult{}, zerr.With(zerr.Wrap(err, "failed to move download"), "path", entry)
	}
	return domain.FetchResult{TargetPath: remoteTargetDir}, nil
}

func extensionFor(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "bin"
	}
	switch mediaType {
	case "text/plain":
		return "cs"
	case "application/zip", "application/x-zip-compressed":
		return "zip"
	default:
		return "bin"
	}
}

func writeBody(path string, body io.Reader) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is inside the workspace
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	_, err = io.Copy(f, body)
	return err
}

func hasZipMagic(path string) (bool, error) {
	f, err := os.Open(path) //nolint:gosec // path is inside the workspace
	if err != nil {
		return false, err
	}
	defer func() { _ = f.Close() }()

	head := make([]byte, len(zipMagic))
	if _, err := io.ReadFull(f, head); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return false, nil
		}
		return false, err
	}
	return bytes.Equal(head, zipMagic), nil
}
