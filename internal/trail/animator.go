// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trail

import (
	"context"
	"sync"
	"time"

	"github.com/pdiddy/filing-converter/pkg/types"
)

// TargetReader supplies the pointer target read at every frame.
type TargetReader interface {
	Target() types.PointerTarget
}

// FrameSource delivers one tick per display frame.
type FrameSource interface {
	// Frames returns the channel that receives a value each frame.
	Frames() <-chan time.Time

	// Stop releases the source. No further frames are delivered.
	Stop()
}

type tickerSource struct {
	ticker *time.Ticker
}

// NewTicker returns a FrameSource that ticks every interval.
func NewTicker(interval time.Duration) FrameSource {
	return &tickerSource{ticker: time.NewTicker(interval)}
}

func (s *tickerSource) Frames() <-chan time.Time { return s.ticker.C }
func (s *tickerSource) Stop()                    { s.ticker.Stop() }

// Animator owns a trail chain for the lifetime of one view and steps it on
// every frame delivered by its FrameSource.
type Animator struct {
	targets TargetReader
	frames  FrameSource
	onFrame func(types.TrailChain)

	mu    sync.RWMutex
	chain types.TrailChain
}

// NewAnimator creates an animator with an all-zero chain. onFrame, if non-nil,
// receives every new chain after it has been published.
func NewAnimator(targets TargetReader, frames FrameSource, onFrame func(types.TrailChain)) *Animator {
	return &Animator{
		targets: targets,
		frames:  frames,
		onFrame: onFrame,
	}
}

// Chain returns the most recently published chain.
func (a *Animator) Chain() types.TrailChain {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.chain
}

// Run steps the chain once per frame until ctx is cancelled. The frame source
// is stopped on return. Once ctx is done no further chain is published.
func (a *Animator) Run(ctx context.Context) {
	defer a.frames.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-a.frames.Frames():
		}

		next := Step(a.Chain(), a.targets.Target())

		a.mu.Lock()
		if ctx.Err() != nil {
			a.mu.Unlock()
			return
		}
		a.chain = next
		a.mu.Unlock()

		if a.onFrame != nil {
			a.onFrame(next)
		}
	}
}

// Start runs the animator in its own goroutine. The returned stop function
// cancels the loop and blocks until it has exited; it is safe to call more
// than once.
func (a *Animator) Start(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		a.Run(ctx)
	}()

	return func() {
		cancel()
		<-done
	}
}
