package recognizer

import (
	"gocv.io/x/gocv"
)

// MockRecognizer is a test implementation of the Recognizer interface.
// It returns either a fixed hand or a scripted frame-by-frame sequence.
type MockRecognizer struct {
	hand     *Hand
	err      error
	sequence []*Hand
	index    int
	scripted bool
}

// NewMockRecognizer creates a new MockRecognizer instance.
func NewMockRecognizer() *MockRecognizer {
	return &MockRecognizer{}
}

// SetHand sets the hand that will be returned by Recognize.
// Pass nil to simulate no hand in view.
func (m *MockRecognizer) SetHand(hand *Hand) {
	m.hand = hand
	m.scripted = false
}

// SetError sets the error that will be returned by Recognize.
func (m *MockRecognizer) SetError(err error) {
	m.err = err
}

// SetSequence scripts the results of successive Recognize calls.
// A nil entry simulates a frame with no hand. After the sequence is
// exhausted, Recognize keeps returning the final entry.
func (m *MockRecognizer) SetSequence(hands []*Hand) {
	m.sequence = hands
	m.index = 0
	m.scripted = true
}

// Recognize returns the pre-configured hand or error.
func (m *MockRecognizer) Recognize(frame *gocv.Mat, timestampMs int64) (*Hand, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.scripted {
		if len(m.sequence) == 0 {
			return nil, nil
		}
		h := m.sequence[m.index]
		if m.index < len(m.sequence)-1 {
			m.index++
		}
		return h, nil
	}
	return m.hand, nil
}

// Close is a no-op for the mock recognizer.
func (m *MockRecognizer) Close() error {
	return nil
}

// OpenHand returns a preset Hand with all four non-thumb fingers extended,
// palm facing the camera. Fingertips sit well past the proximal joints, so
// every finger passes the extension ratio test.
func OpenHand() Hand {
	hand := Hand{
		Handedness: "Right",
		Score:      0.96,
	}

	hand.Points[Wrist] = Point{X: 0.50, Y: 0.85}

	// Thumb off to the side; the thumb does not participate in posture tests.
	hand.Points[ThumbCMC] = Point{X: 0.43, Y: 0.80}
	hand.Points[ThumbMCP] = Point{X: 0.38, Y: 0.74}
	hand.Points[ThumbIP] = Point{X: 0.35, Y: 0.68}
	hand.Points[ThumbTip] = Point{X: 0.33, Y: 0.63}

	// Index finger extended upward
	hand.Points[IndexMCP] = Point{X: 0.42, Y: 0.62}
	hand.Points[IndexPIP] = Point{X: 0.41, Y: 0.48}
	hand.Points[IndexDIP] = Point{X: 0.40, Y: 0.36}
	hand.Points[IndexTip] = Point{X: 0.40, Y: 0.25}

	// Middle finger extended upward
	hand.Points[MiddleMCP] = Point{X: 0.47, Y: 0.60}
	hand.Points[MiddlePIP] = Point{X: 0.47, Y: 0.45}
	hand.Points[MiddleDIP] = Point{X: 0.47, Y: 0.32}
	hand.Points[MiddleTip] = Point{X: 0.47, Y: 0.20}

	// Ring finger extended upward
	hand.Points[RingMCP] = Point{X: 0.53, Y: 0.60}
	hand.Points[RingPIP] = Point{X: 0.54, Y: 0.46}
	hand.Points[RingDIP] = Point{X: 0.54, Y: 0.34}
	hand.Points[RingTip] = Point{X: 0.55, Y: 0.23}

	// Pinky extended upward
	hand.Points[PinkyMCP] = Point{X: 0.58, Y: 0.62}
	hand.Points[PinkyPIP] = Point{X: 0.60, Y: 0.50}
	hand.Points[PinkyDIP] = Point{X: 0.61, Y: 0.40}
	hand.Points[PinkyTip] = Point{X: 0.62, Y: 0.31}

	return hand
}

// Fist returns a preset Hand with all four non-thumb fingers curled into the
// palm. Fingertips sit closer to the wrist than the proximal joints, so every
// finger passes the strict curl test.
func Fist() Hand {
	hand := Hand{
		Handedness: "Right",
		Score:      0.94,
	}

	hand.Points[Wrist] = Point{X: 0.50, Y: 0.85}

	// Thumb wrapped across the front of the fist
	hand.Points[ThumbCMC] = Point{X: 0.44, Y: 0.80}
	hand.Points[ThumbMCP] = Point{X: 0.41, Y: 0.74}
	hand.Points[ThumbIP] = Point{X: 0.43, Y: 0.70}
	hand.Points[ThumbTip] = Point{X: 0.46, Y: 0.69}

	// Index finger curled: knuckle out, tip folded back toward the palm
	hand.Points[IndexMCP] = Point{X: 0.42, Y: 0.62}
	hand.Points[IndexPIP] = Point{X: 0.41, Y: 0.55}
	hand.Points[IndexDIP] = Point{X: 0.42, Y: 0.61}
	hand.Points[IndexTip] = Point{X: 0.44, Y: 0.68}

	// Middle finger curled
	hand.Points[MiddleMCP] = Point{X: 0.47, Y: 0.60}
	hand.Points[MiddlePIP] = Point{X: 0.46, Y: 0.53}
	hand.Points[MiddleDIP] = Point{X: 0.47, Y: 0.60}
	hand.Points[MiddleTip] = Point{X: 0.48, Y: 0.68}

	// Ring finger curled
	hand.Points[RingMCP] = Point{X: 0.53, Y: 0.60}
	hand.Points[RingPIP] = Point{X: 0.54, Y: 0.54}
	hand.Points[RingDIP] = Point{X: 0.53, Y: 0.61}
	hand.Points[RingTip] = Point{X: 0.52, Y: 0.68}

	// Pinky curled
	hand.Points[PinkyMCP] = Point{X: 0.58, Y: 0.62}
	hand.Points[PinkyPIP] = Point{X: 0.59, Y: 0.57}
	hand.Points[PinkyDIP] = Point{X: 0.58, Y: 0.63}
	hand.Points[PinkyTip] = Point{X: 0.56, Y: 0.69}

	return hand
}

// RestingHand returns a preset Hand in a relaxed half-open pose: only the
// index finger passes the extension test and no finger passes the curl test,
// so the posture is neither open nor closed.
func RestingHand() Hand {
	hand := OpenHand()

	// Pull middle, ring and pinky tips back to just past their proximal
	// joints: beyond the curl boundary but short of the extension ratio.
	hand.Points[MiddleDIP] = Point{X: 0.47, Y: 0.49}
	hand.Points[MiddleTip] = Point{X: 0.465, Y: 0.44}
	hand.Points[RingDIP] = Point{X: 0.54, Y: 0.50}
	hand.Points[RingTip] = Point{X: 0.545, Y: 0.45}
	hand.Points[PinkyDIP] = Point{X: 0.605, Y: 0.53}
	hand.Points[PinkyTip] = Point{X: 0.61, Y: 0.49}

	return hand
}

// Translated returns a copy of the hand with every landmark shifted by
// (dx, dy). Useful for simulating wrist motion across frames.
func (h Hand) Translated(dx, dy float64) Hand {
	out := h
	for i := range out.Points {
		out.Points[i].X += dx
		out.Points[i].Y += dy
	}
	return out
}

// Scaled returns a copy of the hand with every landmark scaled about the
// wrist by the given factor. Useful for simulating the hand moving toward
// (factor > 1) or away from (factor < 1) the camera.
func (h Hand) Scaled(factor float64) Hand {
	out := h
	wrist := h.Points[Wrist]
	for i := range out.Points {
		out.Points[i].X = wrist.X + (h.Points[i].X-wrist.X)*factor
		out.Points[i].Y = wrist.Y + (h.Points[i].Y-wrist.Y)*factor
	}
	return out
}
