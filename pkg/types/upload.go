// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "io"

// UploadState is the workflow state of the upload controller.
type UploadState string

const (
	StateIdle      UploadState = "idle"
	StateUploading UploadState = "uploading"
	StateSuccess   UploadState = "success"
	StateError     UploadState = "error"
)

// String returns the state name.
func (s UploadState) String() string { return string(s) }

// SelectedFile is a filing document chosen for conversion. The payload is
// opened lazily so large files are streamed into the request body.
type SelectedFile struct {
	// Name is the original filename, including extension.
	Name string `json:"name" yaml:"name"`

	// Size is the document size in bytes.
	Size int64 `json:"size_bytes" yaml:"size_bytes"`

	// Open returns a fresh reader over the document bytes.
	Open func() (io.ReadCloser, error) `json:"-" yaml:"-"`
}

// UploadError is a user-facing failure surfaced by the upload controller.
// Message is always set; Details optionally carries diagnostic text.
type UploadError struct {
	Message string `json:"message" yaml:"message"`
	Details string `json:"details,omitempty" yaml:"details,omitempty"`
}

// Error implements the error interface.
func (e *UploadError) Error() string {
	return e.Message
}
