package source

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/sail/internal/core/domain"
	"go.trai.ch/zerr"
)

// extractZip unpacks every entry of the archive into dest. Entries that would
// land outside dest are rejected before anything is written for them.
func extractZip(archive, dest string) error {
	r, err := zip.OpenReader(archive)
	if errors.Is(err, zip.ErrInsecurePath) {
		if r != nil {
			_ = r.Close()
		}
		return zerr.With(zerr.Wrap(domain.ErrUnsafeArchiveEntry, "archive contains an insecure path"), "path", archive)
	}
	if err != nil {
		return zerr.With(zerr.Wrap(fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err), "failed to open archive"), "path", archive)
	}
	defer func() { _ = r.Close() }()

	absDest, err := filepath.Abs(dest)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve extraction directory")
	}

	for _, file := range r.File {
		destPath := filepath.Join(absDest, filepath.FromSlash(file.Name))
		rel, relErr := filepath.Rel(absDest, destPath)
		if relErr != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return zerr.With(zerr.Wrap(domain.ErrUnsafeArchiveEntry, "archive entry escapes target directory"), "entry", file.Name)
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(destPath, 0o750); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", destPath)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(destPath), 0o750); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create parent directory"), "path", destPath)
		}
		if err := extractFile(file, destPath); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to extract entry"), "entry", file.Name)
		}
	}
	return nil
}

func extractFile(file *zip.File, destPath string) (err error) {
	rc, err := file.Open()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := rc.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	mode := file.Mode().Perm()
	if mode == 0 {
		mode = 0o644
	}
	out, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode) //nolint:gosec // path validated by caller
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	_, err = io.Copy(out, rc) //nolint:gosec // archives come from the address the user asked to run
	return err
}
