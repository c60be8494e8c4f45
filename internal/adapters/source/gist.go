package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/sail/internal/core/domain"
	"go.trai.ch/sail/internal/core/ports"
	"go.trai.ch/zerr"
)

type (
	// gistResponse is the wire format of the gist API.
	gistResponse struct {
		Files map[string]gistFile `json:"files"`
	}

	gistFile struct {
		Filename  string `json:"filename"`
		Type      string `json:"type"`
		Language  string `json:"language"`
		RawURL    string `json:"raw_url"`
		Content   string `json:"content"`
		Truncated bool   `json:"truncated"`
	}
)

// GistProvider downloads every file of a gist.
type GistProvider struct {
	logger ports.Logger
	opts   options
}

// NewGistProvider creates a GistProvider.
func NewGistProvider(logger ports.Logger, opts ...Option) *GistProvider {
	return &GistProvider{logger: logger, opts: newOptions(opts)}
}

// Name implements ports.SourceProvider.
func (p *GistProvider) Name() string { return "gist" }

// Matches implements ports.SourceProvider.
func (p *GistProvider) Matches(address string) bool {
	_, ok := parseGistAddress(address)
	return ok
}

// Fetch implements ports.SourceProvider.
func (p *GistProvider) Fetch(ctx context.Context, address string, ws domain.Workspace) (domain.FetchResult, error) {
	addr, ok := parseGistAddress(address)
	if !ok {
		return domain.FetchResult{}, zerr.With(zerr.Wrap(domain.ErrInvalidAddress, "not a gist address"), "address", address)
	}

	url := p.opts.gistBaseURL + "/gists/" + addr.ID
	if addr.Revision != "" {
		url += "/" + addr.Revision
	}
	p.logger.Info("fetching gist", "id", addr.ID, "revision", addr.Revision)

	gist, err := p.describe(ctx, url)
	if err != nil {
		return domain.FetchResult{}, err
	}

	names := make([]string, 0, len(gist.Files))
	for name := range gist.Files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		f := gist.Files[name]
		if f.Filename == "" {
			f.Filename = name
		}
		content := f.Content
		if f.Truncated {
			p.logger.Debug("gist file truncated, downloading raw content", "file", f.Filename)
			if content, err = p.raw(ctx, f.RawURL); err != nil {
				return domain.FetchResult{}, err
			}
		}

		dest := filepath.Join(ws.SourceDir, filepath.Base(f.Filename))
		if err := os.WriteFile(dest, []byte(content), 0o644); err != nil { //nolint:gosec // source files are not secret
			return domain.FetchResult{}, zerr.With(zerr.Wrap(err, "failed to write gist file"), "path", dest)
		}
		p.logger.Debug("wrote gist file", "path", dest, "bytes", len(content))
	}

	return domain.FetchResult{}, nil
}

func (p *GistProvider) describe(ctx context.Context, url string) (*gistResponse, error) {
	header := http.Header{}
	header.Set("Accept", "application/vnd.github+json")
	header.Set("X-GitHub-Api-Version", "2022-11-28")

	resp, err := p.opts.get(ctx, url, header)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var gist gistResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxJSONResponseBytes)).Decode(&gist); err != nil {
		return nil, zerr.With(zerr.Wrap(fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err), "failed to decode gist"), "url", url)
	}
	return &gist, nil
}

func (p *GistProvider) raw(ctx context.Context, url string) (string, error) {
	if url == "" {
		return "", zerr.Wrap(domain.ErrMalformedResponse, "truncated gist file has no raw_url")
	}
	resp, err := p.opts.get(ctx, url, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", zerr.With(zerr.Wrap(fmt.Errorf("%w: %w", domain.ErrFetchFailed, err), "failed to read gist file"), "url", url)
	}
	return string(body), nil
}
