// Package server provides the HTTP surface of the interactive scene: the
// static web renderer, the control WebSocket, a settings API and a debug
// camera stream.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Muyueming/my-christmas-tree/internal/app"
	"github.com/Muyueming/my-christmas-tree/internal/store"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store
	App       *app.App
}

// Server represents the HTTP server for the scene.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.Store != nil {
		s.mux.HandleFunc("/api/settings", s.handleSettings)
	}

	if s.config.App != nil {
		s.mux.Handle("/ws/control", NewControlHandler(s.config.App))
		s.mux.Handle("/api/stream", NewStreamHandler(s.config.App.Camera()))
	}

	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health. Besides liveness it
// reports whether the gesture input path is available; the renderer uses the
// flag to fall back to pointer-only interaction.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(s.start).String(),
	}
	if s.config.App != nil {
		response["gestureAvailable"] = s.config.App.GestureAvailable()
		response["gestureEnabled"] = s.config.App.IsEnabled()
	}

	writeJSON(w, http.StatusOK, response)
}

// handleSettings handles GET and PUT requests to /api/settings.
func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	settings := s.config.Store.Settings()

	switch r.Method {
	case http.MethodGet:
		all, err := settings.All()
		if err != nil {
			http.Error(w, "Failed to load settings", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, all)

	case http.MethodPut:
		var updates map[string]string
		if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		for key, value := range updates {
			if err := settings.Set(key, value); err != nil {
				http.Error(w, "Failed to save settings", http.StatusInternalServerError)
				return
			}
		}
		s.applySettings(updates)
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// applySettings pushes live-tunable settings into the running pipeline.
func (s *Server) applySettings(updates map[string]string) {
	if s.config.App == nil {
		return
	}
	settings := s.config.Store.Settings()
	if _, ok := updates[store.KeyBaseRotationSpeed]; ok {
		speed := settings.GetFloat(store.KeyBaseRotationSpeed, 0.002)
		s.config.App.Integrator().SetBaseRotationSpeed(speed)
	}
	if _, ok := updates[store.KeyGestureEnabled]; ok {
		s.config.App.SetEnabled(settings.GetBool(store.KeyGestureEnabled, true))
	}
	if _, ok := updates[store.KeyMotionThreshold]; ok {
		s.config.App.MotionDetector().SetThreshold(settings.GetFloat(store.KeyMotionThreshold, 1.0))
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
