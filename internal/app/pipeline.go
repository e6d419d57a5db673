package app

import (
	"log"
	"time"

	"github.com/Muyueming/my-christmas-tree/internal/capture"
)

// runFrameLoop is the sequential gesture pipeline: one frame is read,
// recognized and classified at a time, at the camera's cadence. A frame's
// failure is logged and skipped; the next frame resumes with intact state.
//
// Motion gates recognition: while the picture is still and no hand is
// engaged, landmark inference is skipped and the camera idles at a low frame
// rate. Any motion switches to the active rate; two quiet seconds switch
// back.
func (a *App) runFrameLoop(stopCh chan struct{}) {
	defer a.wg.Done()

	a.mu.RLock()
	rec := a.recognizer
	a.mu.RUnlock()

	activeMode := false
	lastMotionTime := time.Now()

	frameInterval := time.Second / time.Duration(capture.IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				// Disabling mid-session counts as losing the hand.
				a.gesture.HandleFrame(nil)
				continue
			}

			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			motionDetected, _ := a.motion.Detect(frame)
			engaged := a.gesture.Tracker().Engaged()

			if motionDetected || engaged {
				lastMotionTime = time.Now()

				if !activeMode {
					activeMode = true
					a.camera.SetFPS(capture.ActiveFPS)
					frameInterval = time.Second / time.Duration(capture.ActiveFPS)
					ticker.Reset(frameInterval)
				}
			} else if activeMode && time.Since(lastMotionTime) > IdleTimeout {
				activeMode = false
				a.camera.SetFPS(capture.IdleFPS)
				frameInterval = time.Second / time.Duration(capture.IdleFPS)
				ticker.Reset(frameInterval)
			}

			if !activeMode {
				frame.Close()
				continue
			}

			timestampMs := time.Since(a.started).Milliseconds()
			hand, err := rec.Recognize(frame, timestampMs)
			frame.Close()

			if err != nil {
				// Transient inference failure: skip the frame, keep state.
				log.Printf("Error recognizing hand: %v", err)
				continue
			}

			a.gesture.HandleFrame(hand)
		}
	}
}
