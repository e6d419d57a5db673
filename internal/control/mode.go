// Package control turns hand-landmark and pointer input into a stable camera
// control signal: posture-driven display mode, filtered rotation and zoom
// deltas, and engagement lifecycle callbacks.
package control

// Mode is the global display mode of the scene.
type Mode int

const (
	// ModeFormed assembles the particles into the tree shape.
	ModeFormed Mode = iota
	// ModeChaos scatters the particles.
	ModeChaos
)

// String returns the wire name of the mode.
func (m Mode) String() string {
	if m == ModeChaos {
		return "chaos"
	}
	return "formed"
}
