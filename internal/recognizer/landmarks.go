// Package recognizer provides hand landmark recognition for the interaction pipeline.
package recognizer

import "math"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point represents a 2D landmark position normalized to [0,1] video-frame space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Hand represents the 21 landmarks of one tracked hand.
type Hand struct {
	Points     [NumLandmarks]Point `json:"points"`
	Handedness string              `json:"handedness"` // "Left" or "Right"
	Score      float64             `json:"score"`
}

// Distance calculates the Euclidean distance between two landmark points.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Span returns the distance from the wrist to the base of the middle finger.
// That bone segment is rigid, so the value is invariant to finger pose and
// serves as a stable proxy for how close the hand is to the camera.
func (h *Hand) Span() float64 {
	return Distance(h.Points[Wrist], h.Points[MiddleMCP])
}
