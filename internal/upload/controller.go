// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package upload implements the filing upload workflow: choosing a document,
// submitting it to the conversion service, classifying rejections, and saving
// the returned workbook.
//
// States move idle -> uploading -> success | error, and from success or error
// back to uploading on the next submit. There is no transition back to idle.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/filing-converter/pkg/types"
)

const (
	msgConverted      = "Conversion complete. Your Excel download has started."
	msgTransportError = "Unexpected error while uploading the file."
)

// ErrUploadInProgress is returned by Choose and Submit while a conversion is
// in flight. The controller state is left untouched.
var ErrUploadInProgress = errors.New("an upload is already in progress")

// Snapshot is a consistent view of the controller for presentation.
type Snapshot struct {
	State    types.UploadState   `json:"state" yaml:"state"`
	File     *types.SelectedFile `json:"file,omitempty" yaml:"file,omitempty"`
	Error    *types.UploadError  `json:"error,omitempty" yaml:"error,omitempty"`
	Message  string              `json:"message,omitempty" yaml:"message,omitempty"`
	Download *Saved              `json:"download,omitempty" yaml:"download,omitempty"`
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for request tracing and swallowed
// error-body failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithClock overrides the time source used for fallback filenames.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithInputReset registers a hook fired when a rejected choice must be
// discarded by the input control.
func WithInputReset(fn func()) Option {
	return func(c *Controller) { c.resetInput = fn }
}

// Controller owns the upload workflow state for one view.
type Controller struct {
	client     *http.Client
	url        string
	maxSize    int64
	downloader Downloader
	logger     *slog.Logger
	now        func() time.Time
	resetInput func()

	mu       sync.Mutex
	state    types.UploadState
	file     *types.SelectedFile
	failure  *types.UploadError
	message  string
	download *Saved
}

// New creates a controller in the idle state that posts to cfg.URL() with
// client and hands successful workbooks to d.
func New(cfg types.ConverterConfig, client *http.Client, d Downloader, opts ...Option) *Controller {
	maxSize := cfg.MaxFileSize
	if maxSize <= 0 {
		maxSize = types.DefaultMaxFileSize
	}
	c := &Controller{
		client:     client,
		url:        cfg.URL(),
		maxSize:    maxSize,
		downloader: d,
		logger:     slog.New(slog.DiscardHandler),
		now:        time.Now,
		state:      types.StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns the current state, selection and messages.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{State: c.state, Message: c.message}
	if c.file != nil {
		f := *c.file
		s.File = &f
	}
	if c.failure != nil {
		e := *c.failure
		s.Error = &e
	}
	if c.download != nil {
		d := *c.download
		s.Download = &d
	}
	return s
}

// Choose sets the selected document. It clears the current error, the success
// message and the previous download, but never changes the state: after a
// success the state stays success until the next Submit. A nil file clears the
// selection. A file
// with an unsupported extension or over the size limit is rejected: the
// selection is cleared, the input reset hook fires, and the returned
// *types.UploadError is also recorded as the current error.
func (c *Controller) Choose(file *types.SelectedFile) error {
	c.mu.Lock()
	if c.state == types.StateUploading {
		c.mu.Unlock()
		return ErrUploadInProgress
	}

	c.failure = nil
	c.message = ""
	c.download = nil

	var rejected *types.UploadError
	switch {
	case file == nil:
		c.file = nil
	case !AllowedExtension(file.Name):
		rejected = &types.UploadError{Message: msgUnsupportedType}
	case file.Size > c.maxSize:
		rejected = &types.UploadError{
			Message: tooLargeMessage(c.maxSize),
			Details: fmt.Sprintf("%s is %s", file.Name, FormatBytes(file.Size)),
		}
	default:
		f := *file
		c.file = &f
	}

	if rejected != nil {
		c.file = nil
		c.failure = rejected
	}
	c.mu.Unlock()

	if rejected != nil {
		if c.resetInput != nil {
			c.resetInput()
		}
		return rejected
	}
	return nil
}

// Submit uploads the selected document and waits for the outcome. It returns
// nil on success, *types.UploadError on any failure, and ErrUploadInProgress
// if another Submit is still running. Without a selection it fails at once
// and leaves the state unchanged.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state == types.StateUploading {
		c.mu.Unlock()
		return ErrUploadInProgress
	}
	if c.file == nil {
		c.failure = &types.UploadError{Message: msgNoFileChosen}
		c.message = ""
		failure := c.failure
		c.mu.Unlock()
		return failure
	}

	file := *c.file
	c.state = types.StateUploading
	c.failure = nil
	c.message = ""
	c.download = nil
	c.mu.Unlock()

	requestID := uuid.NewString()
	log := c.logger.With("request_id", requestID, "file", file.Name)
	log.Info("uploading filing", "size", file.Size, "url", c.url)

	saved, failure := c.convert(ctx, file, requestID, log)

	c.mu.Lock()
	defer c.mu.Unlock()
	if failure != nil {
		log.Warn("conversion failed", "error", failure.Message)
		c.state = types.StateError
		c.failure = failure
		return failure
	}
	log.Info("workbook saved", "path", saved.Path, "size", saved.Size)
	c.state = types.StateSuccess
	c.message = msgConverted
	c.download = &saved
	return nil
}

// convert performs the single request and maps every outcome to either a
// saved workbook or a user-facing failure.
func (c *Controller) convert(ctx context.Context, file types.SelectedFile, requestID string, log *slog.Logger) (Saved, *types.UploadError) {
	req, err := newUploadRequest(ctx, c.url, file, requestID)
	if err != nil {
		return Saved{}, transportFailure(err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Saved{}, transportFailure(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Saved{}, c.rejection(resp, log)
	}

	name := FilenameFromDisposition(resp.Header.Get("Content-Disposition"))
	if name == "" {
		name = FallbackFilename(c.now())
	}

	saved, err := c.downloader.Save(ctx, name, resp.Body)
	if err != nil {
		return Saved{}, transportFailure(err)
	}
	return saved, nil
}

// rejection classifies a non-success response. Failures reading or decoding
// the body are logged and replaced by the generic message.
func (c *Controller) rejection(resp *http.Response, log *slog.Logger) *types.UploadError {
	status := resp.StatusCode
	details := fmt.Sprintf("HTTP %d", status)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn("reading error response body", "status", status, "error", err)
		return &types.UploadError{Message: GenericFailure(status), Details: details}
	}

	classified := ClassifyErrorBody(resp.Header.Get("Content-Type"), body)
	if classified.Kind == BodyUnparseable {
		log.Warn("parsing error response body", "status", status, "error", classified.Cause)
	}
	log.Debug("classified error response", "status", status, "kind", classified.Kind.String())
	return &types.UploadError{Message: classified.Message(status), Details: details}
}

// transportFailure surfaces err's message, or a generic one if it has none.
func transportFailure(err error) *types.UploadError {
	msg := err.Error()
	if msg == "" {
		msg = msgTransportError
	}
	return &types.UploadError{Message: msg}
}
