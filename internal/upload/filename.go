// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package upload

import (
	"strconv"
	"strings"
	"time"
)

// fallbackPrefix names workbooks when the service does not suggest a filename.
const fallbackPrefix = "xbrl-export-"

// FilenameFromDisposition extracts the filename= token from a
// Content-Disposition header, stripping surrounding quotes. A quoted name is
// read up to its closing quote, so it may contain ';'. It returns ""
// when there is no usable token.
func FilenameFromDisposition(header string) string {
	idx := strings.Index(strings.ToLower(header), "filename=")
	if idx < 0 {
		return ""
	}
	value := strings.TrimSpace(header[idx+len("filename="):])
	if value != "" && (value[0] == '"' || value[0] == '\'') {
		// A quoted name runs to its closing quote and may contain ';'.
		if end := strings.IndexByte(value[1:], value[0]); end >= 0 {
			return strings.TrimSpace(value[1 : end+1])
		}
	}
	if end := strings.IndexByte(value, ';'); end >= 0 {
		value = value[:end]
	}
	return strings.Trim(strings.TrimSpace(value), `"'`)
}

// FallbackFilename builds a workbook name from the current time.
func FallbackFilename(now time.Time) string {
	return fallbackPrefix + strconv.FormatInt(now.UnixMilli(), 10) + ".xlsx"
}
