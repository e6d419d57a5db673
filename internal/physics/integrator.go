// Package physics integrates control events into camera motion once per
// render tick: rotation velocity with inertia and friction, consume-once
// zoom, and the global display mode.
package physics

import (
	"math"
	"sync"

	"github.com/Muyueming/my-christmas-tree/internal/control"
)

// Integrator tuning constants.
const (
	// Friction is the per-tick decay factor applied to rotation velocity
	// while no input is engaged.
	Friction = 0.95
	// VelocityEpsilon is the magnitude below which velocity snaps to exactly
	// zero, cutting off the infinite decay tail.
	VelocityEpsilon = 1e-5
	// ZoomEpsilon is the magnitude below which a zoom delta is discarded.
	ZoomEpsilon = 1e-4
)

// Config holds user-adjustable integrator parameters.
type Config struct {
	// BaseRotationSpeed is the ambient auto-rotation applied per tick while
	// no input is engaged, in radians.
	BaseRotationSpeed float64
}

// DefaultConfig returns the stock integrator parameters.
func DefaultConfig() Config {
	return Config{BaseRotationSpeed: 0.002}
}

// Snapshot is the read-only physics state handed to the renderer each tick.
// RotationVelocity is the angular advance to apply this tick; ZoomDelta is
// consume-once camera advance toward the look-at target (clamping to the
// scene's distance bounds is the renderer's job).
type Snapshot struct {
	RotationVelocity float64      `json:"rotationVelocity"`
	ZoomDelta        float64      `json:"zoomDelta"`
	Mode             control.Mode `json:"-"`
	Engaged          bool         `json:"engaged"`
}

// Integrator consumes one control event per render tick and maintains
// rotation velocity, transient zoom and the current display mode.
type Integrator struct {
	config Config

	// OnModeChange is invoked when the display mode actually changes.
	// Repeated requests for the current mode do not fire it.
	OnModeChange func(control.Mode)

	mu       sync.Mutex
	velocity float64
	mode     control.Mode
}

// NewIntegrator creates an Integrator starting in the formed mode with the
// camera at rest.
func NewIntegrator(config Config) *Integrator {
	return &Integrator{config: config}
}

// SetBaseRotationSpeed adjusts the ambient auto-rotation term.
func (i *Integrator) SetBaseRotationSpeed(speed float64) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.config.BaseRotationSpeed = speed
}

// Mode returns the current display mode.
func (i *Integrator) Mode() control.Mode {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.mode
}

// Step integrates one tick. The event must come from a single State.Take
// call, so its deltas are already consume-once.
func (i *Integrator) Step(ev control.Event) Snapshot {
	i.mu.Lock()
	defer i.mu.Unlock()

	var advance float64
	if ev.Engaged {
		// Direct drive: while actively driven there is no inertia lag. A
		// zero delta while engaged keeps the previous velocity so a paused
		// hand does not stutter the scene.
		if ev.RotationDelta != 0 {
			i.velocity = ev.RotationDelta
		}
		advance = i.velocity
	} else {
		// Coasting: existing velocity plus the ambient auto-rotation term,
		// then friction, with a snap to zero to avoid floating-point drift.
		advance = i.velocity + i.config.BaseRotationSpeed
		i.velocity *= Friction
		if math.Abs(i.velocity) < VelocityEpsilon {
			i.velocity = 0
		}
	}

	zoom := ev.ZoomDelta
	if math.Abs(zoom) <= ZoomEpsilon {
		zoom = 0
	}

	if ev.HasMode && ev.ModeRequest != i.mode {
		i.mode = ev.ModeRequest
		if i.OnModeChange != nil {
			i.OnModeChange(i.mode)
		}
	}

	return Snapshot{
		RotationVelocity: advance,
		ZoomDelta:        zoom,
		Mode:             i.mode,
		Engaged:          ev.Engaged,
	}
}
