package control

// Transition reports what an engagement observation changed.
type Transition int

const (
	// TransitionNone means the engagement state did not change.
	TransitionNone Transition = iota
	// TransitionStarted means input became active this observation.
	TransitionStarted
	// TransitionEnded means input became inactive this observation.
	TransitionEnded
)

// Engagement tracks whether the gesture path is actively receiving input.
// It is a two-state machine (idle, engaged) that fires lifecycle callbacks
// on each edge and owns the baseline references deltas are computed against.
type Engagement struct {
	// GraceFrames is how many consecutive absent frames are tolerated before
	// the session ends. Zero disengages on the first dropped frame, favoring
	// responsiveness over robustness to brief occlusion.
	GraceFrames int

	// OnStart is invoked when input becomes active. The renderer uses it to
	// suspend ambient auto-rotation.
	OnStart func()
	// OnEnd is invoked when input becomes inactive.
	OnEnd func()

	engaged      bool
	absentStreak int

	baselineX    float64
	baselineSpan float64
	hasBaseline  bool
}

// Engaged reports whether a session is active.
func (e *Engagement) Engaged() bool {
	return e.engaged
}

// Observe feeds one frame's hand presence into the state machine and returns
// the transition it caused, if any. Callbacks fire inside the call, so by the
// time Observe returns the outside world has already been notified.
func (e *Engagement) Observe(present bool) Transition {
	if present {
		e.absentStreak = 0
		if e.engaged {
			return TransitionNone
		}
		e.engaged = true
		if e.OnStart != nil {
			e.OnStart()
		}
		return TransitionStarted
	}

	if !e.engaged {
		return TransitionNone
	}
	e.absentStreak++
	if e.absentStreak <= e.GraceFrames {
		return TransitionNone
	}

	e.engaged = false
	e.absentStreak = 0
	e.clearBaseline()
	if e.OnEnd != nil {
		e.OnEnd()
	}
	return TransitionEnded
}

// SetBaseline records the wrist-axis position and hand span the next frame's
// deltas will be measured against. Called every engaged frame, so deltas are
// frame-to-frame rather than session-cumulative.
func (e *Engagement) SetBaseline(wristX, span float64) {
	e.baselineX = wristX
	e.baselineSpan = span
	e.hasBaseline = true
}

// Baseline returns the stored references. ok is false on the first frame of
// a session, before any baseline has been captured.
func (e *Engagement) Baseline() (wristX, span float64, ok bool) {
	return e.baselineX, e.baselineSpan, e.hasBaseline
}

func (e *Engagement) clearBaseline() {
	e.baselineX = 0
	e.baselineSpan = 0
	e.hasBaseline = false
}
