// Package app wires the capture, recognition, control and physics layers
// into the running interaction pipeline.
package app

import (
	"log"
	"sync"
	"time"

	"github.com/Muyueming/my-christmas-tree/internal/capture"
	"github.com/Muyueming/my-christmas-tree/internal/control"
	"github.com/Muyueming/my-christmas-tree/internal/physics"
	"github.com/Muyueming/my-christmas-tree/internal/recognizer"
)

// Pipeline timing constants.
const (
	// TickRate is the render-tick frequency, one integrator pass per tick.
	TickRate = 60
	// IdleTimeout is how long after the last motion the camera drops back to
	// the idle frame rate.
	IdleTimeout = 2 * time.Second
)

// Config holds configuration options for the application.
type Config struct {
	CameraID     int
	MotionThresh float64
	Gesture      control.GestureConfig
	Pointer      control.PointerConfig
	Physics      physics.Config
}

// App owns the interaction pipeline: the frame loop feeding the gesture
// controller and the tick loop running the physics integrator.
type App struct {
	config     Config
	camera     capture.Camera
	motion     *capture.MotionDetector
	recognizer recognizer.Recognizer
	state      *control.State
	gesture    *control.GestureController
	pointer    *control.PointerController
	integrator *physics.Integrator

	// OnSnapshot receives the physics snapshot once per render tick.
	OnSnapshot func(physics.Snapshot)
	// OnEngagement receives engagement start (true) and end (false) edges
	// from either input path.
	OnEngagement func(bool)

	enabled bool
	mu      sync.RWMutex
	stopCh  chan struct{}
	wg      sync.WaitGroup
	started time.Time
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // Default threshold: 1% pixel change
	}

	state := control.NewState()

	a := &App{
		config:     config,
		camera:     capture.NewCamera(config.CameraID),
		motion:     capture.NewMotionDetector(motionThreshold),
		state:      state,
		gesture:    control.NewGestureController(config.Gesture, state),
		pointer:    control.NewPointerController(config.Pointer, state),
		integrator: physics.NewIntegrator(config.Physics),
		enabled:    true,
		started:    time.Now(),
	}

	a.gesture.Tracker().OnStart = func() { a.notifyEngagement(true) }
	a.gesture.Tracker().OnEnd = func() { a.notifyEngagement(false) }
	a.pointer.Tracker().OnStart = func() { a.notifyEngagement(true) }
	a.pointer.Tracker().OnEnd = func() { a.notifyEngagement(false) }

	// The recognizer is optional: when the MediaPipe sidecar is missing the
	// gesture path stays disabled and pointer input remains fully functional.
	if mp, err := recognizer.NewMediaPipeRecognizer(recognizer.DefaultConfig()); err == nil {
		a.recognizer = mp
		log.Println("Using MediaPipe hand recognition")
	} else {
		log.Printf("Hand recognition unavailable (%v), pointer input only", err)
	}

	return a
}

func (a *App) notifyEngagement(active bool) {
	if a.OnEngagement != nil {
		a.OnEngagement(active)
	}
}

// SetEnabled enables or disables the gesture input path.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether the gesture input path is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetRecognizer sets the hand recognizer implementation to use.
func (a *App) SetRecognizer(r recognizer.Recognizer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.recognizer = r
}

// SetCamera replaces the camera implementation. Intended for tests.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// GestureAvailable reports whether the gesture input path can run.
func (a *App) GestureAvailable() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.recognizer != nil
}

// Start begins the frame and tick loops.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if a.recognizer != nil {
		if err := a.camera.Open(); err != nil {
			// Camera failure disables the gesture path, it does not kill the
			// pipeline: the pointer path and the tick loop keep running.
			log.Printf("Camera unavailable (%v), pointer input only", err)
			a.recognizer.Close()
			a.recognizer = nil
		} else {
			a.camera.SetFPS(capture.IdleFPS)
		}
	}

	a.stopCh = make(chan struct{})

	if a.recognizer != nil {
		a.wg.Add(1)
		go a.runFrameLoop(a.stopCh)
	}
	a.wg.Add(1)
	go a.runTickLoop(a.stopCh)

	log.Println("Interaction pipeline started")
	return nil
}

// Stop halts both loops and releases capture and recognizer resources.
// No callback fires after Stop returns.
func (a *App) Stop() {
	a.mu.Lock()
	if a.stopCh == nil {
		a.mu.Unlock()
		return
	}
	close(a.stopCh)
	a.stopCh = nil
	a.mu.Unlock()

	// Loops must be fully drained before devices are torn down.
	a.wg.Wait()

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.motion.Close()

	if a.recognizer != nil {
		if err := a.recognizer.Close(); err != nil {
			log.Printf("Error closing recognizer: %v", err)
		}
	}

	log.Println("Interaction pipeline stopped")
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.camera
}

// Pointer returns the pointer input controller.
func (a *App) Pointer() *control.PointerController {
	return a.pointer
}

// Integrator returns the physics integrator.
func (a *App) Integrator() *physics.Integrator {
	return a.integrator
}

// MotionDetector returns the motion detector instance.
func (a *App) MotionDetector() *capture.MotionDetector {
	return a.motion
}
