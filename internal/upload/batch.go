// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package upload

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/filing-converter/pkg/types"
)

// Outcome is the result of converting one input path.
type Outcome struct {
	Input    string             `json:"input" yaml:"input"`
	State    types.UploadState  `json:"state" yaml:"state"`
	Message  string             `json:"message,omitempty" yaml:"message,omitempty"`
	Error    *types.UploadError `json:"error,omitempty" yaml:"error,omitempty"`
	Download *Saved             `json:"download,omitempty" yaml:"download,omitempty"`
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int       `json:"converted" yaml:"converted"`
	Failed    int       `json:"failed" yaml:"failed"`
	Outcomes  []Outcome `json:"outcomes" yaml:"outcomes"`
}

// Total returns the total number of inputs processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any input failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// RunBatch chooses and submits each path in turn through c, printing
// per-file status to w and returning a summary. It continues after
// individual failures; each file gets exactly one attempt.
func RunBatch(ctx context.Context, c *Controller, paths []string, w io.Writer) BatchResult {
	var result BatchResult
	for _, p := range paths {
		out := convertPath(ctx, c, p)
		result.Outcomes = append(result.Outcomes, out)

		if out.State == types.StateSuccess {
			result.Converted++
			fmt.Fprintf(w, "converted: %s -> %s\n", p, out.Download.Path)
			continue
		}
		result.Failed++
		fmt.Fprintf(w, "failed:    %s (%s)\n", p, out.Error.Message)
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	return result
}

func convertPath(ctx context.Context, c *Controller, path string) Outcome {
	out := Outcome{Input: path}

	file, err := FileFromPath(path)
	if err != nil {
		out.State = types.StateError
		out.Error = &types.UploadError{Message: err.Error()}
		return out
	}

	err = c.Choose(file)
	if err == nil {
		err = c.Submit(ctx)
	}
	if errors.Is(err, ErrUploadInProgress) {
		out.State = types.StateError
		out.Error = &types.UploadError{Message: err.Error()}
		return out
	}

	snap := c.Snapshot()
	if snap.Error != nil {
		// A rejected choice leaves the workflow state alone; the file still failed.
		out.State = types.StateError
		out.Error = snap.Error
		return out
	}
	out.State = snap.State
	out.Message = snap.Message
	out.Download = snap.Download
	return out
}
