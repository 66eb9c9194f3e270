// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/filing-converter/pkg/types"
)

// User-facing messages for local validation failures.
const (
	msgUnsupportedType = "Only .xml or .xbrl files are supported."
	msgNoFileChosen    = "Please choose an XBRL file before uploading."
)

// allowedExtensions lists the accepted filing extensions, lower-case.
var allowedExtensions = map[string]bool{
	".xml":  true,
	".xbrl": true,
}

// AllowedExtension reports whether name has a filing extension. The check is
// case-insensitive.
func AllowedExtension(name string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(name))]
}

// tooLargeMessage is the rejection text for a file over limit bytes.
func tooLargeMessage(limit int64) string {
	return fmt.Sprintf("File is too large. Maximum allowed size is %s.", FormatBytes(limit))
}

var byteUnits = []string{"B", "KB", "MB", "GB"}

// FormatBytes renders n with a 1024-based unit and two decimals, e.g.
// "15.00 MB". Values past the largest unit stay in GB.
func FormatBytes(n int64) string {
	if n <= 0 {
		return "0 B"
	}
	value := float64(n)
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s", value, byteUnits[unit])
}

// FileFromPath describes the document at path as a SelectedFile whose payload
// is read from disk when the upload starts.
func FileFromPath(path string) (*types.SelectedFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	return &types.SelectedFile{
		Name: filepath.Base(path),
		Size: info.Size(),
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}, nil
}
