package recognizer

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"gocv.io/x/gocv"
)

// mediapipeIdleShutdown is how long the Python sidecar may sit unused before
// it is stopped to free its model memory. It restarts lazily on the next frame.
const mediapipeIdleShutdown = 30 * time.Second

// MediaPipeRecognizer implements Recognizer using a Python MediaPipe subprocess.
// Frames are shipped as length-prefixed JPEG over stdin; the sidecar answers
// with one JSON line per frame listing detected hands.
type MediaPipeRecognizer struct {
	config    Config
	cmd       *exec.Cmd
	stdin     io.WriteCloser
	stdout    *bufio.Reader
	mu        sync.Mutex
	started   bool
	lastUsed  time.Time
	idleTimer *time.Timer
}

// NewMediaPipeRecognizer creates a new MediaPipe recognizer.
// The Python process is started lazily on the first frame.
func NewMediaPipeRecognizer(config Config) (*MediaPipeRecognizer, error) {
	if findSidecarScript() == "" {
		return nil, fmt.Errorf("hand_landmarker.py not found")
	}

	return &MediaPipeRecognizer{
		config: config,
	}, nil
}

// Recognize analyzes a frame and returns the most confident hand, or nil.
func (r *MediaPipeRecognizer) Recognize(frame *gocv.Mat, timestampMs int64) (*Hand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureStarted(); err != nil {
		return nil, err
	}

	buf, err := gocv.IMEncode(".jpg", *frame)
	if err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	defer buf.Close()

	data := buf.GetBytes()

	// Write length (4 bytes big-endian) + data
	length := make([]byte, 4)
	binary.BigEndian.PutUint32(length, uint32(len(data)))

	if _, err := r.stdin.Write(length); err != nil {
		return nil, fmt.Errorf("write length: %w", err)
	}
	if _, err := r.stdin.Write(data); err != nil {
		return nil, fmt.Errorf("write data: %w", err)
	}

	line, err := r.stdout.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var response struct {
		Hands []jsonHand `json:"hands"`
	}
	if err := json.Unmarshal([]byte(line), &response); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	r.lastUsed = time.Now()
	r.resetIdleTimer()

	return bestHand(response.Hands, r.config.MinConfidence), nil
}

// bestHand picks the highest-scoring hand at or above the confidence floor.
// The pipeline tracks a single hand only.
func bestHand(hands []jsonHand, minConfidence float64) *Hand {
	var best *jsonHand
	for i := range hands {
		if hands[i].Score < minConfidence {
			continue
		}
		if best == nil || hands[i].Score > best.Score {
			best = &hands[i]
		}
	}
	if best == nil {
		return nil
	}
	h := best.toHand()
	return &h
}

// Close shuts down the Python process.
func (r *MediaPipeRecognizer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shutdown()
}

func (r *MediaPipeRecognizer) ensureStarted() error {
	if r.started {
		return nil
	}

	scriptPath := findSidecarScript()
	if scriptPath == "" {
		return fmt.Errorf("hand_landmarker.py not found")
	}

	pythonPath := findVenvPython()
	if pythonPath == "" {
		pythonPath = "python3"
	}

	r.cmd = exec.Command(pythonPath, scriptPath)

	stdin, err := r.cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("create stdin pipe: %w", err)
	}

	stdout, err := r.cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("create stdout pipe: %w", err)
	}

	r.cmd.Stderr = os.Stderr

	if err := r.cmd.Start(); err != nil {
		return fmt.Errorf("start hand landmarker: %w", err)
	}

	r.stdin = stdin
	r.stdout = bufio.NewReader(stdout)
	r.started = true
	r.lastUsed = time.Now()

	return nil
}

func (r *MediaPipeRecognizer) shutdown() error {
	if !r.started {
		return nil
	}

	if r.idleTimer != nil {
		r.idleTimer.Stop()
		r.idleTimer = nil
	}

	if r.stdin != nil {
		r.stdin.Close()
	}

	err := r.cmd.Wait()
	r.started = false
	r.cmd = nil
	r.stdin = nil
	r.stdout = nil

	return err
}

func (r *MediaPipeRecognizer) resetIdleTimer() {
	if r.idleTimer != nil {
		r.idleTimer.Stop()
	}
	r.idleTimer = time.AfterFunc(mediapipeIdleShutdown, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.shutdown()
	})
}

func findSidecarScript() string {
	execPath, err := os.Executable()
	var execDir string
	if err == nil {
		execDir = filepath.Dir(execPath)
	}

	candidates := []string{
		"scripts/hand_landmarker.py",
		"../scripts/hand_landmarker.py",
		filepath.Join(execDir, "scripts/hand_landmarker.py"),
		filepath.Join(os.Getenv("HOME"), ".christmas-tree/scripts/hand_landmarker.py"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				return absPath
			}
			return path
		}
	}
	return ""
}

// findVenvPython looks for a Python interpreter in a virtual environment.
func findVenvPython() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}
	execDir := filepath.Dir(execPath)

	candidates := []string{
		"venv/bin/python",
		"../venv/bin/python",
		filepath.Join(execDir, "venv/bin/python"),
		filepath.Join(os.Getenv("HOME"), ".christmas-tree/venv/bin/python"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				return absPath
			}
			return path
		}
	}
	return ""
}

// jsonHand represents the JSON structure from the Python sidecar.
type jsonHand struct {
	Points     []jsonPoint `json:"points"`
	Handedness string      `json:"handedness"`
	Score      float64     `json:"score"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (h jsonHand) toHand() Hand {
	hand := Hand{
		Handedness: h.Handedness,
		Score:      h.Score,
	}

	for i := 0; i < NumLandmarks && i < len(h.Points); i++ {
		hand.Points[i] = Point{
			X: h.Points[i].X,
			Y: h.Points[i].Y,
		}
	}

	return hand
}
