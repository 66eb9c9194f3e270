// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workbook reads back a converted spreadsheet to report what it holds.
package workbook

import (
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"
)

// Sheet is one worksheet and its used dimension (e.g. "A1:F42").
type Sheet struct {
	Name      string `json:"name" yaml:"name"`
	Dimension string `json:"dimension,omitempty" yaml:"dimension,omitempty"`
}

// Summary lists the worksheets of a workbook in tab order.
type Summary struct {
	Sheets []Sheet `json:"sheets" yaml:"sheets"`
}

// Names returns the worksheet names.
func (s Summary) Names() []string {
	names := make([]string, len(s.Sheets))
	for i, sh := range s.Sheets {
		names[i] = sh.Name
	}
	return names
}

// Inspect parses an xlsx stream and lists its worksheets.
func Inspect(r io.Reader) (Summary, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Summary{}, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	var s Summary
	for _, name := range f.GetSheetList() {
		dim, err := f.GetSheetDimension(name)
		if err != nil {
			return Summary{}, fmt.Errorf("reading sheet %s: %w", name, err)
		}
		s.Sheets = append(s.Sheets, Sheet{Name: name, Dimension: dim})
	}
	return s, nil
}

// InspectFile is Inspect for a workbook on disk.
func InspectFile(path string) (Summary, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer fh.Close()
	return Inspect(fh)
}
