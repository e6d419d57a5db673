package control

import "sync"

// Event is the unified control output of a controller for one frame.
type Event struct {
	// RotationDelta is the rotation to apply this frame, in radians.
	RotationDelta float64
	// ZoomDelta is the camera advance to apply this frame, in world units.
	// Positive moves the camera toward its look-at target.
	ZoomDelta float64
	// ModeRequest is the display mode asserted by the frame's posture.
	// Valid only when HasMode is set; an absent request leaves the current
	// mode in place.
	ModeRequest Mode
	HasMode     bool
	// Engaged reports whether a hand or pointer is actively driving input.
	Engaged bool
}

// State is the single-slot mailbox between the input controllers and the
// per-tick physics integrator. Writes overwrite (latest value wins, no
// backlog); Take consumes the transient deltas so a stale delta is never
// applied twice.
type State struct {
	mu       sync.Mutex
	rotation float64
	zoom     float64
	mode     Mode
	hasMode  bool
	engaged  bool
}

// NewState creates an empty mailbox.
func NewState() *State {
	return &State{}
}

// Publish stores a controller's event. Rotation and zoom deltas replace any
// unconsumed previous values; a mode request latches until the next Take.
func (s *State) Publish(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rotation = ev.RotationDelta
	s.zoom = ev.ZoomDelta
	if ev.HasMode {
		s.mode = ev.ModeRequest
		s.hasMode = true
	}
	s.engaged = ev.Engaged
}

// SetEngaged updates only the engagement flag, leaving pending deltas alone.
func (s *State) SetEngaged(engaged bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engaged = engaged
}

// Clear zeroes the transient deltas without touching engagement or mode.
// Called when an input source disengages so no stale motion carries over.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rotation = 0
	s.zoom = 0
}

// Take returns the current event and consumes the transient parts: deltas
// and the pending mode request are zeroed, the engagement level is kept.
// The integrator calls this exactly once per render tick.
func (s *State) Take() Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev := Event{
		RotationDelta: s.rotation,
		ZoomDelta:     s.zoom,
		ModeRequest:   s.mode,
		HasMode:       s.hasMode,
		Engaged:       s.engaged,
	}
	s.rotation = 0
	s.zoom = 0
	s.hasMode = false
	return ev
}
