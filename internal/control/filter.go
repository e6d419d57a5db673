package control

import "math"

// FilterConfig holds the tuning constants for one signal channel.
type FilterConfig struct {
	// Deadzone is the raw input magnitude below which the sample is treated
	// as zero.
	Deadzone float64
	// AttackAlpha is the smoothing pole while input is active. Small values
	// snap the output quickly to new motion.
	AttackAlpha float64
	// DecayAlpha is the smoothing pole while input is absent. Large values
	// bleed the output off gradually instead of halting abruptly.
	DecayAlpha float64
	// Epsilon is the output magnitude below which the channel emits zero.
	Epsilon float64
}

// RotationFilterConfig returns the tuning for the rotation channel.
func RotationFilterConfig() FilterConfig {
	return FilterConfig{
		Deadzone:    0.0015,
		AttackAlpha: 0.1,
		DecayAlpha:  0.9,
		Epsilon:     1e-4,
	}
}

// ZoomFilterConfig returns the tuning for the zoom channel. The deadzone is
// wider than rotation's to reject involuntary hand "breathing", and the decay
// pole is heavier because perceived depth changes are more nausea-prone than
// yaw changes.
func ZoomFilterConfig() FilterConfig {
	return FilterConfig{
		Deadzone:    0.004,
		AttackAlpha: 0.1,
		DecayAlpha:  0.95,
		Epsilon:     1e-4,
	}
}

// Filter is a single-pole exponential smoother with a deadzone and asymmetric
// attack/decay. One instance is owned per channel by the controller that
// constructed it; the smoothed value spans one engagement session and is
// zeroed on every engagement start.
type Filter struct {
	config FilterConfig
	value  float64
}

// NewFilter creates a Filter with the given channel tuning.
func NewFilter(config FilterConfig) *Filter {
	return &Filter{config: config}
}

// Update feeds one raw sample through the filter and returns the gated
// output. When justTransitioned is set, the smoothed value is reset to zero
// before the sample is blended in, so a stale previous session can never
// leak a spike into the new one.
func (f *Filter) Update(raw float64, justTransitioned bool) float64 {
	if justTransitioned {
		f.value = 0
	}

	effective := raw
	if math.Abs(raw) < f.config.Deadzone {
		effective = 0
	}

	alpha := f.config.AttackAlpha
	if effective == 0 {
		alpha = f.config.DecayAlpha
	}
	f.value = f.value*alpha + effective*(1-alpha)

	return f.Output()
}

// Output returns the current smoothed value, gated to zero while its
// magnitude is below epsilon so near-zero control events are not emitted
// every frame.
func (f *Filter) Output() float64 {
	if math.Abs(f.value) <= f.config.Epsilon {
		return 0
	}
	return f.value
}

// Reset zeroes the smoothed value.
func (f *Filter) Reset() {
	f.value = 0
}
