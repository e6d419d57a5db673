package recognizer

import "gocv.io/x/gocv"

// Recognizer defines the interface for hand landmark recognition implementations.
type Recognizer interface {
	// Recognize analyzes a video frame and returns the landmarks of the most
	// confident hand, or nil if no hand is visible. The timestamp is the
	// monotonic capture time of the frame in milliseconds.
	Recognize(frame *gocv.Mat, timestampMs int64) (*Hand, error)

	// Close releases any resources held by the recognizer.
	Close() error
}

// Config holds configuration options for hand recognition.
type Config struct {
	// MinConfidence is the minimum detection confidence threshold (0.0-1.0).
	MinConfidence float64

	// MinTrackingConf is the minimum tracking confidence threshold (0.0-1.0).
	MinTrackingConf float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		MinConfidence:   0.5,
		MinTrackingConf: 0.5,
	}
}
