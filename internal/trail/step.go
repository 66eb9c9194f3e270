// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package trail animates a fixed-length chain of follower points that lag
// behind the pointer. Each frame the head eases toward the pointer target and
// every follower eases toward the freshly computed position of the point
// ahead of it, so the whole chain responds within a single frame.
package trail

import (
	"math"

	"github.com/pdiddy/filing-converter/pkg/types"
)

// Easing factors. The head is slightly slower than the followers, which pulls
// the chain taut behind a moving pointer and lets it relax when it stops.
const (
	HeadEase     = 0.20
	FollowerEase = 0.24
	FadeEase     = 0.18

	// BaseOpacity is the head opacity while the pointer is active; each
	// follower is OpacityFalloff dimmer than the one ahead of it.
	BaseOpacity    = 0.85
	OpacityFalloff = 0.13
)

// Step advances the chain by one frame toward target and returns the new chain.
// prev is not modified.
func Step(prev types.TrailChain, target types.PointerTarget) types.TrailChain {
	var next types.TrailChain
	leadX, leadY := target.X, target.Y

	for i, p := range prev {
		ease := FollowerEase
		if i == 0 {
			ease = HeadEase
		}

		x := p.X + (leadX-p.X)*ease
		y := p.Y + (leadY-p.Y)*ease
		want := TargetOpacity(i, target.Active)

		next[i] = types.TrailPoint{
			X:       x,
			Y:       y,
			Opacity: p.Opacity + (want-p.Opacity)*FadeEase,
		}
		leadX, leadY = x, y
	}
	return next
}

// TargetOpacity is the opacity point i settles at: a linear falloff by index
// while the pointer is active, zero otherwise.
func TargetOpacity(i int, active bool) float64 {
	if !active {
		return 0
	}
	return math.Max(0, BaseOpacity-float64(i)*OpacityFalloff)
}
