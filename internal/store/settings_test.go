package store

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func TestSettings_SetGet(t *testing.T) {
	s := newTestStore(t)
	settings := s.Settings()

	if err := settings.Set(KeyBaseRotationSpeed, "0.003"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := settings.Get(KeyBaseRotationSpeed)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "0.003" {
		t.Errorf("Get() = %q, want %q", got, "0.003")
	}
}

func TestSettings_GetMissingKey(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Settings().Get("no_such_key")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestSettings_SetOverwrites(t *testing.T) {
	s := newTestStore(t)
	settings := s.Settings()

	settings.Set(KeyCameraID, "0")
	settings.Set(KeyCameraID, "2")

	got, err := settings.Get(KeyCameraID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "2" {
		t.Errorf("Get() = %q, want %q", got, "2")
	}
}

func TestSettings_TypedAccessors(t *testing.T) {
	s := newTestStore(t)
	settings := s.Settings()

	if got := settings.GetFloat(KeyZoomSensitivity, 8.0); got != 8.0 {
		t.Errorf("GetFloat(missing) = %v, want fallback 8.0", got)
	}

	settings.SetFloat(KeyZoomSensitivity, 12.5)
	if got := settings.GetFloat(KeyZoomSensitivity, 8.0); got != 12.5 {
		t.Errorf("GetFloat() = %v, want 12.5", got)
	}

	settings.SetInt(KeyLossGraceFrames, 3)
	if got := settings.GetInt(KeyLossGraceFrames, 0); got != 3 {
		t.Errorf("GetInt() = %v, want 3", got)
	}

	settings.SetBool(KeyGestureEnabled, false)
	if got := settings.GetBool(KeyGestureEnabled, true); got {
		t.Error("GetBool() = true, want false")
	}

	// Malformed values fall back rather than failing.
	settings.Set(KeyLossGraceFrames, "not-a-number")
	if got := settings.GetInt(KeyLossGraceFrames, 7); got != 7 {
		t.Errorf("GetInt(malformed) = %v, want fallback 7", got)
	}
}

func TestSettings_All(t *testing.T) {
	s := newTestStore(t)
	settings := s.Settings()

	settings.Set(KeyCameraID, "1")
	settings.Set(KeyMouseSensitivity, "0.004")

	all, err := settings.All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("All() returned %d entries, want 2", len(all))
	}
	if all[KeyCameraID] != "1" || all[KeyMouseSensitivity] != "0.004" {
		t.Errorf("All() = %v", all)
	}
}
