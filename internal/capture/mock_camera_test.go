package capture

import (
	"errors"
	"testing"
)

func TestMockCamera_OpenClose(t *testing.T) {
	c := NewMockCamera(nil, false)

	if c.IsOpen() {
		t.Error("camera should start closed")
	}

	if err := c.Open(); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if !c.IsOpen() {
		t.Error("camera should be open after Open()")
	}

	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if c.IsOpen() {
		t.Error("camera should be closed after Close()")
	}
}

func TestMockCamera_ReadClosedFails(t *testing.T) {
	c := NewMockCamera(nil, false)

	if _, err := c.ReadFrame(); !errors.Is(err, ErrCameraNotOpen) {
		t.Errorf("ReadFrame() error = %v, want ErrCameraNotOpen", err)
	}
}

func TestMockCamera_FPS(t *testing.T) {
	c := NewMockCamera(nil, false)

	c.SetFPS(IdleFPS)
	if got := c.FPS(); got != IdleFPS {
		t.Errorf("FPS() = %d, want %d", got, IdleFPS)
	}

	// Invalid rates are ignored.
	c.SetFPS(0)
	if got := c.FPS(); got != IdleFPS {
		t.Errorf("FPS() after SetFPS(0) = %d, want %d", got, IdleFPS)
	}
}

func TestMockCamera_EmptyPlayback(t *testing.T) {
	c := NewMockCamera(nil, true)
	c.Open()

	if _, err := c.ReadFrame(); err == nil {
		t.Error("ReadFrame() with no frames should fail")
	}
}
