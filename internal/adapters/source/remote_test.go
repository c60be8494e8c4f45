package source_test

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sail/internal/adapters/logger"
	"go.trai.ch/sail/internal/adapters/source"
	"go.trai.ch/sail/internal/core/domain"
)

func zipBytes(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = io.WriteString(w, content)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func serve(t *testing.T, contentType string, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/x-zip-compressed, text/plain, */*;q=0.8", r.Header.Get("Accept"))
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRemoteProvider_FetchSourceFile(t *testing.T) {
	srv := serve(t, "text/plain; charset=utf-8", []byte(`Console.WriteLine("remote");`))
	ws := newWorkspace(t)

	p := source.NewRemoteProvider(logger.NewWithWriter(io.Discard), source.WithHTTPClient(srv.Client()))
	res, err := p.Fetch(context.Background(), srv.URL+"/hello", ws)
	require.NoError(t, err)
	assert.Equal(t, "d", res.TargetPath)

	content, err := os.ReadFile(filepath.Join(ws.SourceDir, "d", "Program.cs"))
	require.NoError(t, err)
	assert.Equal(t, `Console.WriteLine("remote");`, string(content))
	assert.NoFileExists(t, filepath.Join(ws.SourceDir, "download.cs"))
}

func TestRemoteProvider_FetchArchive(t *testing.T) {
	body := zipBytes(t, map[string]string{
		"App/App.csproj": "<Project />",
		"App/Program.cs": "class P {}",
	})

	for _, contentType := range []string{"application/zip", "application/x-zip-compressed", "application/octet-stream"} {
		t.Run(contentType, func(t *testing.T) {
			srv := serve(t, contentType, body)
			ws := newWorkspace(t)

			p := source.NewRemoteProvider(logger.NewWithWriter(io.Discard))
			res, err := p.Fetch(context.Background(), srv.URL+"/app.zip", ws)
			require.NoError(t, err)
			assert.Equal(t, "d", res.TargetPath)

			assert.FileExists(t, filepath.Join(ws.SourceDir, "d", "App", "App.csproj"))
			assert.FileExists(t, filepath.Join(ws.SourceDir, "d", "App", "Program.cs"))
		})
	}
}

func TestRemoteProvider_FetchUnknownTypeWithoutMagic(t *testing.T) {
	srv := serve(t, "application/octet-stream", []byte("using System;"))
	ws := newWorkspace(t)

	p := source.NewRemoteProvider(logger.NewWithWriter(io.Discard))
	_, err := p.Fetch(context.Background(), srv.URL, ws)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(ws.SourceDir, "d", "Program.cs"))
	require.NoError(t, err)
	assert.Equal(t, "using System;", string(content))
}

func TestRemoteProvider_FetchRejectsEscapingEntries(t *testing.T) {
	srv := serve(t, "application/zip", zipBytes(t, map[string]string{"../evil.cs": "x"}))
	ws := newWorkspace(t)

	p := source.NewRemoteProvider(logger.NewWithWriter(io.Discard))
	_, err := p.Fetch(context.Background(), srv.URL, ws)
	require.ErrorIs(t, err, domain.ErrUnsafeArchiveEntry)
	assert.NoFileExists(t, filepath.Join(ws.SourceDir, "evil.cs"))
}

func TestRemoteProvider_FetchStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := source.NewRemoteProvider(logger.NewWithWriter(io.Discard))
	_, err := p.Fetch(context.Background(), srv.URL, newWorkspace(t))
	require.ErrorIs(t, err, domain.ErrUnexpectedStatus)
	assert.Equal(t, domain.KindFetch, domain.KindOf(err))
}

func TestRemoteProvider_FetchCancelled(t *testing.T) {
	srv := serve(t, "text/plain", []byte("x"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := source.NewRemoteProvider(logger.NewWithWriter(io.Discard))
	_, err := p.Fetch(ctx, srv.URL, newWorkspace(t))
	require.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.ErrorIs(t, err, context.Canceled)
}
