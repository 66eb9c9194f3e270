// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// maxNameAttempts bounds the "name (n).ext" search for a free filename.
const maxNameAttempts = 1000

// Saved describes a workbook written by a Downloader.
type Saved struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
	Size int64  `json:"size_bytes" yaml:"size_bytes"`
}

// Downloader performs the save-as step for a converted workbook.
type Downloader interface {
	// Save writes the contents of r under the suggested name.
	Save(ctx context.Context, name string, r io.Reader) (Saved, error)
}

// DirDownloader saves workbooks into a directory. Only the base of the
// suggested name is used, so a name from the service cannot escape Dir.
type DirDownloader struct {
	Dir string
}

// Save writes r to Dir/name through a temporary file that is moved into
// place on success and removed on any failure. An existing file is never
// replaced: when the name is taken, "name (1).ext", "name (2).ext" and so on
// are tried in turn.
func (d DirDownloader) Save(ctx context.Context, name string, r io.Reader) (Saved, error) {
	if err := ctx.Err(); err != nil {
		return Saved{}, err
	}

	base := filepath.Base(filepath.Clean("/" + name))
	if base == "/" || base == "." {
		return Saved{}, fmt.Errorf("invalid download filename %q", name)
	}

	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return Saved{}, fmt.Errorf("creating directory %s: %w", d.Dir, err)
	}
	tmpFile, err := os.CreateTemp(d.Dir, ".download-*.tmp")
	if err != nil {
		return Saved{}, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	n, copyErr := io.Copy(tmpFile, r)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return Saved{}, fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return Saved{}, fmt.Errorf("closing temp file: %w", closeErr)
	}

	saved, err := placeNoClobber(tmpPath, d.Dir, base)
	os.Remove(tmpPath)
	if err != nil {
		return Saved{}, err
	}
	saved.Size = n
	return saved, nil
}

// placeNoClobber hard-links tmpPath to the first free variant of base in dir.
// os.Link fails when the destination exists, so a concurrent writer can never
// be overwritten. The caller removes tmpPath.
func placeNoClobber(tmpPath, dir, base string) (Saved, error) {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	for i := 0; i < maxNameAttempts; i++ {
		name := base
		if i > 0 {
			name = fmt.Sprintf("%s (%d)%s", stem, i, ext)
		}
		destPath := filepath.Join(dir, name)
		err := os.Link(tmpPath, destPath)
		if err == nil {
			return Saved{Name: name, Path: destPath}, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return Saved{}, fmt.Errorf("moving download into place: %w", err)
		}
	}
	return Saved{}, fmt.Errorf("no free filename for %s in %s", base, dir)
}
