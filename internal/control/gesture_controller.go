package control

import (
	"github.com/Muyueming/my-christmas-tree/internal/gesture"
	"github.com/Muyueming/my-christmas-tree/internal/recognizer"
)

// GestureConfig holds tuning constants for the gesture input path.
type GestureConfig struct {
	// RotationSensitivity scales filtered wrist motion (normalized frame
	// units) into radians of rotation per frame.
	RotationSensitivity float64
	// ZoomSensitivity scales filtered hand-span change into camera advance
	// per frame.
	ZoomSensitivity float64
	// LossGraceFrames is how many consecutive frames without a hand are
	// tolerated before the engagement session ends.
	LossGraceFrames int
}

// DefaultGestureConfig returns the stock gesture tuning.
func DefaultGestureConfig() GestureConfig {
	return GestureConfig{
		RotationSensitivity: 2.5,
		ZoomSensitivity:     8.0,
		LossGraceFrames:     0,
	}
}

// GestureController orchestrates posture classification, engagement tracking
// and per-channel filtering for each recognizer frame, publishing one control
// event into the shared mailbox per frame with a visible hand.
type GestureController struct {
	config   GestureConfig
	state    *State
	tracker  *Engagement
	rotation *Filter
	zoom     *Filter
}

// NewGestureController creates a controller writing into the given mailbox.
// The filters are owned by the controller and span one engagement session.
func NewGestureController(config GestureConfig, state *State) *GestureController {
	return &GestureController{
		config:   config,
		state:    state,
		tracker:  &Engagement{GraceFrames: config.LossGraceFrames},
		rotation: NewFilter(RotationFilterConfig()),
		zoom:     NewFilter(ZoomFilterConfig()),
	}
}

// Tracker returns the engagement state machine so lifecycle callbacks can be
// attached at pipeline setup.
func (c *GestureController) Tracker() *Engagement {
	return c.tracker
}

// HandleFrame processes one recognizer result. A nil hand means no hand was
// visible this frame.
func (c *GestureController) HandleFrame(hand *recognizer.Hand) {
	if hand == nil {
		if c.tracker.Observe(false) == TransitionEnded {
			// Tracking loss: drop any unconsumed motion so the integrator
			// falls back to inertia instead of replaying a stale delta.
			c.state.Clear()
			c.state.SetEngaged(false)
		}
		return
	}

	justEngaged := c.tracker.Observe(true) == TransitionStarted
	if justEngaged {
		c.rotation.Reset()
		c.zoom.Reset()
	}

	ev := Event{Engaged: true}

	// Posture is a level-driven signal: open asserts chaos, a fist asserts
	// formed, neutral asserts nothing and the previous mode persists.
	switch gesture.Classify(hand).Posture {
	case gesture.PostureOpen:
		ev.ModeRequest = ModeChaos
		ev.HasMode = true
	case gesture.PostureClosed:
		ev.ModeRequest = ModeFormed
		ev.HasMode = true
	}

	wristX := hand.Points[recognizer.Wrist].X
	span := hand.Span()

	if baseX, baseSpan, ok := c.tracker.Baseline(); ok {
		// The camera image is mirrored relative to the user, so wrist motion
		// is sign-inverted to make the scene follow the hand.
		rot := c.rotation.Update(wristX-baseX, justEngaged)
		ev.RotationDelta = -rot * c.config.RotationSensitivity

		// A growing span means the hand is approaching the camera, which
		// maps to a dolly toward the target.
		z := c.zoom.Update(span-baseSpan, justEngaged)
		ev.ZoomDelta = z * c.config.ZoomSensitivity
	} else {
		// First frame of a session has no prior sample; prime the filters
		// with a zero so decay state is consistent.
		c.rotation.Update(0, justEngaged)
		c.zoom.Update(0, justEngaged)
	}

	c.tracker.SetBaseline(wristX, span)
	c.state.Publish(ev)
}
