package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Muyueming/my-christmas-tree/internal/app"
	"github.com/Muyueming/my-christmas-tree/internal/control"
	"github.com/Muyueming/my-christmas-tree/internal/physics"
)

func newTestApp() *app.App {
	return app.New(app.Config{
		MotionThresh: 1.0,
		Gesture:      control.DefaultGestureConfig(),
		Pointer:      control.DefaultPointerConfig(),
		Physics:      physics.DefaultConfig(),
	})
}

func dialControl(t *testing.T, a *app.App) (*websocket.Conn, func()) {
	t.Helper()

	h := NewControlHandler(a)
	ts := httptest.NewServer(h)

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		ts.Close()
		t.Fatalf("dial error = %v", err)
	}

	return conn, func() {
		conn.Close()
		ts.Close()
	}
}

func readMessage(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read error = %v", err)
	}

	var msg map[string]interface{}
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("invalid JSON message: %v", err)
	}
	return msg
}

func TestControlHandler_Hello(t *testing.T) {
	a := newTestApp()
	conn, cleanup := dialControl(t, a)
	defer cleanup()

	hello := readMessage(t, conn)
	if hello["type"] != "hello" {
		t.Fatalf("first message type = %v, want hello", hello["type"])
	}
	if hello["mode"] != "formed" {
		t.Errorf("initial mode = %v, want formed", hello["mode"])
	}
	if _, ok := hello["gestureAvailable"]; !ok {
		t.Error("hello should report gesture availability")
	}
}

func TestControlHandler_SnapshotBroadcast(t *testing.T) {
	a := newTestApp()
	conn, cleanup := dialControl(t, a)
	defer cleanup()

	readMessage(t, conn) // hello

	// The handler attached itself as the app's snapshot sink; pushing one
	// snapshot must reach the connected renderer.
	a.OnSnapshot(physics.Snapshot{
		RotationVelocity: 0.01,
		Mode:             control.ModeChaos,
		Engaged:          true,
	})

	msg := readMessage(t, conn)
	if msg["type"] != "state" {
		t.Fatalf("message type = %v, want state", msg["type"])
	}
	if msg["rotationVelocity"].(float64) != 0.01 {
		t.Errorf("rotationVelocity = %v, want 0.01", msg["rotationVelocity"])
	}
	if msg["mode"] != "chaos" {
		t.Errorf("mode = %v, want chaos", msg["mode"])
	}
	if msg["engaged"] != true {
		t.Errorf("engaged = %v, want true", msg["engaged"])
	}
}

func TestControlHandler_PointerMessages(t *testing.T) {
	a := newTestApp()
	conn, cleanup := dialControl(t, a)
	defer cleanup()

	readMessage(t, conn) // hello

	send := func(action string, dx float64) {
		msg, _ := json.Marshal(pointerMessage{Type: "pointer", Action: action, DX: dx})
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			t.Fatalf("write error = %v", err)
		}
	}

	send("press", 0)
	send("drag", 15)

	// A press fires the engagement start edge, which the handler
	// broadcasts back.
	msg := readMessage(t, conn)
	if msg["type"] != "engagement" || msg["active"] != true {
		t.Fatalf("message = %v, want engagement start", msg)
	}

	send("release", 0)
	msg = readMessage(t, conn)
	if msg["type"] != "engagement" || msg["active"] != false {
		t.Fatalf("message = %v, want engagement end", msg)
	}
}
