// Package tray provides a system tray toggle for the gesture input path.
package tray

import (
	"sync"

	"github.com/getlantern/systray"
)

// Tray represents the system tray menu for the scene.
type Tray struct {
	onToggle func(enabled bool)
	onOpen   func()
	onQuit   func()
	enabled  bool
	mu       sync.RWMutex

	menuToggle *systray.MenuItem
	menuMode   *systray.MenuItem
}

// New creates a new Tray with gesture control enabled by default.
func New() *Tray {
	return &Tray{
		enabled: true,
	}
}

// OnToggle sets the callback invoked when gesture control is toggled.
func (t *Tray) OnToggle(fn func(enabled bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggle = fn
}

// OnOpen sets the callback invoked when the viewer menu item is clicked.
func (t *Tray) OnOpen(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onOpen = fn
}

// OnQuit sets the callback invoked when the quit menu item is clicked.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// SetMode updates the mode line shown in the menu.
func (t *Tray) SetMode(mode string) {
	t.mu.RLock()
	item := t.menuMode
	t.mu.RUnlock()
	if item != nil {
		item.SetTitle("Mode: " + mode)
	}
}

// Run starts the system tray. Blocks until systray.Quit is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

func (t *Tray) onReady() {
	systray.SetTitle("Tree")
	systray.SetTooltip("Christmas Tree Scene")

	t.menuToggle = systray.AddMenuItem("● Hand control on", "Toggle hand gesture control")
	systray.AddSeparator()

	t.menuMode = systray.AddMenuItem("Mode: formed", "Current display mode")
	t.menuMode.Disable()
	systray.AddSeparator()

	menuOpen := systray.AddMenuItem("Open viewer...", "Open the scene in a browser")
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit")

	go func() {
		for {
			select {
			case <-t.menuToggle.ClickedCh:
				t.toggle()
			case <-menuOpen.ClickedCh:
				t.mu.RLock()
				fn := t.onOpen
				t.mu.RUnlock()
				if fn != nil {
					fn()
				}
			case <-menuQuit.ClickedCh:
				systray.Quit()
				return
			}
		}
	}()
}

func (t *Tray) toggle() {
	t.mu.Lock()
	t.enabled = !t.enabled
	enabled := t.enabled
	fn := t.onToggle
	t.mu.Unlock()

	if enabled {
		t.menuToggle.SetTitle("● Hand control on")
	} else {
		t.menuToggle.SetTitle("○ Hand control off")
	}

	if fn != nil {
		fn(enabled)
	}
}

func (t *Tray) onExit() {
	t.mu.RLock()
	fn := t.onQuit
	t.mu.RUnlock()
	if fn != nil {
		fn()
	}
}
