package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Muyueming/my-christmas-tree/internal/app"
	"github.com/Muyueming/my-christmas-tree/internal/control"
	"github.com/Muyueming/my-christmas-tree/internal/physics"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// pointerMessage is the inbound message shape from the browser renderer.
type pointerMessage struct {
	Type   string  `json:"type"`
	Action string  `json:"action"`
	DX     float64 `json:"dx"`
}

// client is one connected renderer. Broadcasts arrive from several
// goroutines (tick loop, frame loop, pointer reader), so writes are
// serialized per connection.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) send(v interface{}) error {
	msg, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, msg)
}

// ControlHandler bridges the renderer and the interaction pipeline over one
// WebSocket: physics snapshots, mode changes and engagement edges flow out;
// pointer press/drag/release events flow in.
type ControlHandler struct {
	app     *app.App
	clients map[string]*client
	mu      sync.RWMutex
}

// NewControlHandler creates a ControlHandler and attaches it to the
// application's outbound callbacks.
func NewControlHandler(a *app.App) *ControlHandler {
	h := &ControlHandler{
		app:     a,
		clients: make(map[string]*client),
	}

	a.OnSnapshot = h.broadcastSnapshot
	a.OnEngagement = h.broadcastEngagement
	a.Integrator().OnModeChange = h.broadcastMode

	return h
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *ControlHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	id := uuid.NewString()
	c := &client{conn: conn}

	h.mu.Lock()
	h.clients[id] = c
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, id)
		h.mu.Unlock()
		// A vanished client must not leave a drag stuck engaged.
		h.app.Pointer().Release()
	}()

	c.send(map[string]interface{}{
		"type":             "hello",
		"id":               id,
		"mode":             h.app.Integrator().Mode().String(),
		"gestureAvailable": h.app.GestureAvailable(),
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg pointerMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("websocket message parse error: %v", err)
			continue
		}
		if msg.Type != "pointer" {
			continue
		}

		switch msg.Action {
		case "press":
			h.app.Pointer().Press()
		case "drag":
			h.app.Pointer().Drag(msg.DX)
		case "release":
			h.app.Pointer().Release()
		}
	}
}

// broadcastSnapshot sends the per-tick physics state to every renderer.
func (h *ControlHandler) broadcastSnapshot(s physics.Snapshot) {
	h.broadcast(map[string]interface{}{
		"type":             "state",
		"rotationVelocity": s.RotationVelocity,
		"zoomDelta":        s.ZoomDelta,
		"mode":             s.Mode.String(),
		"engaged":          s.Engaged,
	})
}

// broadcastMode announces an actual mode change. Repeated requests for the
// current mode never reach this point.
func (h *ControlHandler) broadcastMode(m control.Mode) {
	h.broadcast(map[string]interface{}{
		"type": "mode",
		"mode": m.String(),
	})
}

// broadcastEngagement announces interaction start and end edges so the
// renderer can suspend and resume its ambient behavior.
func (h *ControlHandler) broadcastEngagement(active bool) {
	h.broadcast(map[string]interface{}{
		"type":   "engagement",
		"active": active,
	})
}

func (h *ControlHandler) broadcast(v interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients {
		if err := c.send(v); err != nil {
			// Reader goroutine notices the dead connection and cleans up.
			continue
		}
	}
}
