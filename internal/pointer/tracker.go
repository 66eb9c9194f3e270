// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pointer records the latest pointer position and whether the pointer
// is over the view. The tracker is the only writer of its PointerTarget; the
// trail animator reads it once per frame.
package pointer

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/pdiddy/filing-converter/pkg/types"
)

// EventKind identifies a pointer input event.
type EventKind string

const (
	EventMove  EventKind = "move"
	EventEnter EventKind = "enter"
	EventDown  EventKind = "down"
	EventLeave EventKind = "leave"
)

// Event is a pointer input event in page coordinates.
type Event struct {
	Kind EventKind `json:"type"`
	X    float64   `json:"x"`
	Y    float64   `json:"y"`
}

// ParseEvent decodes one JSON event line such as {"type":"move","x":10,"y":20}.
func ParseEvent(line []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(line, &ev); err != nil {
		return Event{}, fmt.Errorf("decoding pointer event: %w", err)
	}
	ev.Kind = EventKind(strings.ToLower(strings.TrimSpace(string(ev.Kind))))
	switch ev.Kind {
	case EventMove, EventEnter, EventDown, EventLeave:
		return ev, nil
	default:
		return Event{}, fmt.Errorf("unknown pointer event type %q", ev.Kind)
	}
}

// Tracker holds the pointer target for the lifetime of one view.
type Tracker struct {
	mu     sync.RWMutex
	target types.PointerTarget
}

// NewTracker returns a tracker at the origin with the pointer inactive.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Handle applies an event. Move, enter and down set the position and mark the
// pointer active; leave marks it inactive and keeps the last position.
func (t *Tracker) Handle(ev Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch ev.Kind {
	case EventMove, EventEnter, EventDown:
		t.target = types.PointerTarget{X: ev.X, Y: ev.Y, Active: true}
	case EventLeave:
		t.target.Active = false
	}
}

// Target returns a copy of the current pointer target.
func (t *Tracker) Target() types.PointerTarget {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.target
}
