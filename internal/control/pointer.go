package control

// PointerConfig holds tuning constants for the pointer input path.
type PointerConfig struct {
	// Sensitivity scales horizontal drag pixels into radians of rotation.
	Sensitivity float64
}

// DefaultPointerConfig returns the stock pointer tuning.
func DefaultPointerConfig() PointerConfig {
	return PointerConfig{Sensitivity: 0.005}
}

// PointerController converts pointer/touch drags into the same control-event
// shape as the gesture path. Pointer input is already low-noise, so drags
// bypass the filters entirely; post-release inertia is the integrator's job,
// seeded by the last non-zero delta observed while pressed.
type PointerController struct {
	config  PointerConfig
	state   *State
	tracker *Engagement
	pressed bool
}

// NewPointerController creates a controller writing into the given mailbox.
func NewPointerController(config PointerConfig, state *State) *PointerController {
	return &PointerController{
		config:  config,
		state:   state,
		tracker: &Engagement{},
	}
}

// Tracker returns the engagement state machine so lifecycle callbacks can be
// attached at pipeline setup.
func (p *PointerController) Tracker() *Engagement {
	return p.tracker
}

// Press begins a drag session.
func (p *PointerController) Press() {
	if p.pressed {
		return
	}
	p.pressed = true
	p.tracker.Observe(true)
	p.state.SetEngaged(true)
}

// Drag applies a horizontal movement delta, in pixels, while pressed.
// Deltas arriving while released are ignored.
func (p *PointerController) Drag(dx float64) {
	if !p.pressed {
		return
	}
	p.state.Publish(Event{
		RotationDelta: dx * p.config.Sensitivity,
		Engaged:       true,
	})
}

// Release ends the drag session and zeroes the pending rotation delta so no
// stale motion is carried by the pointer path itself.
func (p *PointerController) Release() {
	if !p.pressed {
		return
	}
	p.pressed = false
	p.tracker.Observe(false)
	p.state.Clear()
	p.state.SetEngaged(false)
}
