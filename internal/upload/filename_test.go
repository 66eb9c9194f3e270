// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package upload

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilenameFromDisposition(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{`attachment; filename="out.xlsx"`, "out.xlsx"},
		{`attachment; filename=xbrl-export-20240101-120000.xlsx`, "xbrl-export-20240101-120000.xlsx"},
		{`attachment; filename='single.xlsx'`, "single.xlsx"},
		{`attachment; FILENAME="Upper.xlsx"`, "Upper.xlsx"},
		{`attachment; filename="a.xlsx"; size=10`, "a.xlsx"},
		{`attachment; filename=  spaced.xlsx  `, "spaced.xlsx"},
		{`attachment`, ""},
		{``, ""},
		{`attachment; filename=""`, ""},
		{`attachment; filename="Q1; final.xlsx"`, "Q1; final.xlsx"},
		{`attachment; filename="Q1; final.xlsx"; size=10`, "Q1; final.xlsx"},
		{`attachment; filename="unterminated.xlsx`, "unterminated.xlsx"},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, FilenameFromDisposition(tt.header))
		})
	}
}

func TestFallbackFilename(t *testing.T) {
	assert.Equal(t, "xbrl-export-1700000000123.xlsx", FallbackFilename(time.UnixMilli(1700000000123)))
}
