// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TrailLength is the number of follower points in a trail chain.
const TrailLength = 6

// PointerTarget is the latest known pointer position and whether the pointer
// is currently over the view.
type PointerTarget struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Active bool    `json:"active" yaml:"active"`
}

// TrailPoint is one follower in the trail chain.
type TrailPoint struct {
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
	Opacity float64 `json:"opacity" yaml:"opacity"`
}

// TrailChain is the ordered set of followers. Index 0 is the head, closest to
// the pointer; the last index is the tail. Each element chases the one before it.
type TrailChain [TrailLength]TrailPoint
