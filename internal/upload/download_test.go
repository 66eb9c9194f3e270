// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package upload

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirDownloader_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "workbooks")
	d := DirDownloader{Dir: dir}

	saved, err := d.Save(context.Background(), "out.xlsx", strings.NewReader("PK-data"))
	require.NoError(t, err)
	assert.Equal(t, Saved{Name: "out.xlsx", Path: filepath.Join(dir, "out.xlsx"), Size: 7}, saved)

	data, err := os.ReadFile(saved.Path)
	require.NoError(t, err)
	assert.Equal(t, "PK-data", string(data))
	assertNoTempFiles(t, dir)
}

func TestDirDownloader_StaysInsideDir(t *testing.T) {
	dir := t.TempDir()
	saved, err := DirDownloader{Dir: dir}.Save(context.Background(), "../../etc/evil.xlsx", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "evil.xlsx"), saved.Path)
}

func TestDirDownloader_RejectsEmptyName(t *testing.T) {
	_, err := DirDownloader{Dir: t.TempDir()}.Save(context.Background(), "/", strings.NewReader("x"))
	assert.ErrorContains(t, err, "invalid download filename")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestDirDownloader_RemovesTempOnReadFailure(t *testing.T) {
	dir := t.TempDir()
	_, err := DirDownloader{Dir: dir}.Save(context.Background(), "out.xlsx", failingReader{})
	assert.ErrorContains(t, err, "connection reset")
	assertNoTempFiles(t, dir)
	assert.NoFileExists(t, filepath.Join(dir, "out.xlsx"))
}

func TestDirDownloader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := DirDownloader{Dir: t.TempDir()}.Save(ctx, "out.xlsx", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".download-"), "leftover temp file %s", e.Name())
	}
}

func TestDirDownloader_KeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	d := DirDownloader{Dir: dir}

	var paths []string
	for _, body := range []string{"first", "second", "third"} {
		saved, err := d.Save(context.Background(), "report.xlsx", strings.NewReader(body))
		require.NoError(t, err)
		paths = append(paths, saved.Path)
	}

	assert.Equal(t, []string{
		filepath.Join(dir, "report.xlsx"),
		filepath.Join(dir, "report (1).xlsx"),
		filepath.Join(dir, "report (2).xlsx"),
	}, paths)
	for i, body := range []string{"first", "second", "third"} {
		data, err := os.ReadFile(paths[i])
		require.NoError(t, err)
		assert.Equal(t, body, string(data))
	}
	assertNoTempFiles(t, dir)
}
