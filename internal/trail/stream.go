// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trail

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/pdiddy/filing-converter/internal/pointer"
	"github.com/pdiddy/filing-converter/pkg/types"
)

// Frame is one published chain, as written by Stream.
type Frame struct {
	Frame  int64              `json:"frame"`
	Points []types.TrailPoint `json:"points"`
}

// StreamOptions controls a Stream session.
type StreamOptions struct {
	// Frames drives the animation. Required.
	Frames FrameSource

	// Limit stops the session after this many frames. Zero means no limit.
	Limit int64

	// Settle is the number of frames to keep animating after the event
	// input ends. Zero keeps running until Limit or cancellation.
	Settle int64

	// Logger receives warnings for malformed event lines.
	Logger *slog.Logger
}

// Stream mounts a tracker and animator for one session: pointer events are
// read as JSON lines from in, and every frame is written to out as a JSON
// line. It returns once the session ends and the animator has stopped.
//
// When the session ends through Limit or ctx while in is still open, the
// goroutine reading in stays blocked until the next line or EOF. Callers that
// keep running after Stream returns should close in to release it.
func Stream(ctx context.Context, in io.Reader, out io.Writer, opts StreamOptions) error {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tracker := pointer.NewTracker()
	enc := json.NewEncoder(out)

	var (
		mu       sync.Mutex
		written  int64
		writeErr error
		ticked   = make(chan int64, 1)
	)

	onFrame := func(c types.TrailChain) {
		mu.Lock()
		written++
		n := written
		if err := enc.Encode(Frame{Frame: n, Points: c[:]}); err != nil && writeErr == nil {
			writeErr = fmt.Errorf("writing frame: %w", err)
			cancel()
		}
		mu.Unlock()

		if opts.Limit > 0 && n >= opts.Limit {
			cancel()
		}
		select {
		case <-ticked:
		default:
		}
		ticked <- n
	}

	stop := NewAnimator(tracker, opts.Frames, onFrame).Start(ctx)
	defer stop()

	readDone := make(chan error, 1)
	go func() { readDone <- readEvents(in, tracker, log) }()

	var readErr error
	select {
	case <-ctx.Done():
	case readErr = <-readDone:
	}

	if readErr == nil && ctx.Err() == nil {
		mu.Lock()
		target := written + opts.Settle
		mu.Unlock()
		waitSettle(ctx, ticked, target, opts.Settle > 0)
	}

	stop()
	mu.Lock()
	defer mu.Unlock()
	if readErr != nil {
		return readErr
	}
	return writeErr
}

// waitSettle blocks until frame target has been published or ctx ends.
// Without a bounded settle it waits for ctx alone.
func waitSettle(ctx context.Context, ticked <-chan int64, target int64, bounded bool) {
	if !bounded {
		<-ctx.Done()
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case n := <-ticked:
			if n >= target {
				return
			}
		}
	}
}

// readEvents feeds every event line of in to tracker. Blank lines are
// ignored and malformed lines are logged and skipped.
func readEvents(in io.Reader, tracker *pointer.Tracker, log *slog.Logger) error {
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}
		ev, err := pointer.ParseEvent(text)
		if err != nil {
			log.Warn("skipping pointer event", "line", line, "error", err)
			continue
		}
		tracker.Handle(ev)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading pointer events: %w", err)
	}
	return nil
}
