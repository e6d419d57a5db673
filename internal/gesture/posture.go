// Package gesture classifies hand posture from landmark geometry.
package gesture

import (
	"github.com/Muyueming/my-christmas-tree/internal/recognizer"
)

// Posture represents the classified pose of one hand for one frame.
type Posture int

const (
	// PostureNeutral means neither the open nor the closed criteria were met.
	// The frame asserts no display mode.
	PostureNeutral Posture = iota
	// PostureOpen means the hand is open (at least 2 of 4 fingers extended).
	PostureOpen
	// PostureClosed means the hand is a fist (at least 3 of 4 fingers curled
	// and the open criteria not met).
	PostureClosed
)

// String returns a human-readable name for the posture.
func (p Posture) String() string {
	switch p {
	case PostureOpen:
		return "open"
	case PostureClosed:
		return "closed"
	default:
		return "neutral"
	}
}

// Classification thresholds.
const (
	// ExtensionRatio is the tip-to-proximal distance ratio above which a
	// finger counts as extended. The 1.1 slack tolerates foreshortening when
	// the hand is angled side-on or toward the camera.
	ExtensionRatio = 1.1
	// MinExtendedFingers is how many of the four non-thumb fingers must be
	// extended for the hand to count as open.
	MinExtendedFingers = 2
	// MinCurledFingers is how many of the four non-thumb fingers must be
	// curled for the hand to count as closed. Stricter than the open test to
	// avoid false fist positives mid-transition.
	MinCurledFingers = 3
)

// fingerJoints lists tip and proximal (PIP) landmark indices for the four
// non-thumb fingers. The thumb folds sideways rather than toward the wrist,
// so it is excluded from both tests.
var fingerJoints = [4]struct{ tip, pip int }{
	{recognizer.IndexTip, recognizer.IndexPIP},
	{recognizer.MiddleTip, recognizer.MiddlePIP},
	{recognizer.RingTip, recognizer.RingPIP},
	{recognizer.PinkyTip, recognizer.PinkyPIP},
}

// Sample is the classification result for a single frame. It is recomputed
// every frame and never retained.
type Sample struct {
	Posture  Posture
	Extended int // fingers passing the extension test
	Curled   int // fingers passing the curl test
}

// Classify evaluates one hand's landmarks and returns its posture.
//
// A finger is extended when its tip is further from the wrist than 1.1 times
// the proximal joint distance, and curled when the tip is strictly closer
// than the proximal joint. Each frame is classified independently; stability
// against jitter is left to the downstream mode policy, which treats repeated
// assertions of the same mode as no-ops.
func Classify(hand *recognizer.Hand) Sample {
	wrist := hand.Points[recognizer.Wrist]

	var extended, curled int
	for _, f := range fingerJoints {
		dTip := recognizer.Distance(wrist, hand.Points[f.tip])
		dPip := recognizer.Distance(wrist, hand.Points[f.pip])

		if dTip > dPip*ExtensionRatio {
			extended++
		}
		if dTip < dPip {
			curled++
		}
	}

	s := Sample{Extended: extended, Curled: curled}
	switch {
	case extended >= MinExtendedFingers:
		s.Posture = PostureOpen
	case curled >= MinCurledFingers:
		s.Posture = PostureClosed
	default:
		s.Posture = PostureNeutral
	}
	return s
}
