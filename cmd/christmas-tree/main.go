package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/caarlos0/env/v11"

	"github.com/Muyueming/my-christmas-tree/internal/app"
	"github.com/Muyueming/my-christmas-tree/internal/control"
	"github.com/Muyueming/my-christmas-tree/internal/physics"
	"github.com/Muyueming/my-christmas-tree/internal/server"
	"github.com/Muyueming/my-christmas-tree/internal/store"
	"github.com/Muyueming/my-christmas-tree/internal/tray"
)

// envConfig holds process-level configuration from the environment. Tuning
// that survives restarts (sensitivities, speeds) lives in the settings store
// instead.
type envConfig struct {
	Addr      string `env:"TREE_ADDR" envDefault:":8080"`
	CameraID  int    `env:"TREE_CAMERA_ID" envDefault:"0"`
	StaticDir string `env:"TREE_WEB_DIR"`
	DataDir   string `env:"TREE_DATA_DIR"`
	Tray      bool   `env:"TREE_TRAY" envDefault:"false"`
}

func main() {
	fmt.Println("Christmas Tree - gesture-driven interactive scene")

	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Failed to parse environment: %v", err)
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to get home directory: %v", err)
		}
		dataDir = filepath.Join(homeDir, ".christmas-tree")
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	st, err := store.New(filepath.Join(dataDir, "settings.db"))
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	settings := st.Settings()

	gestureCfg := control.DefaultGestureConfig()
	gestureCfg.RotationSensitivity = settings.GetFloat(store.KeyRotationSensitivity, gestureCfg.RotationSensitivity)
	gestureCfg.ZoomSensitivity = settings.GetFloat(store.KeyZoomSensitivity, gestureCfg.ZoomSensitivity)
	gestureCfg.LossGraceFrames = settings.GetInt(store.KeyLossGraceFrames, gestureCfg.LossGraceFrames)

	pointerCfg := control.DefaultPointerConfig()
	pointerCfg.Sensitivity = settings.GetFloat(store.KeyMouseSensitivity, pointerCfg.Sensitivity)

	physicsCfg := physics.DefaultConfig()
	physicsCfg.BaseRotationSpeed = settings.GetFloat(store.KeyBaseRotationSpeed, physicsCfg.BaseRotationSpeed)

	application := app.New(app.Config{
		CameraID:     settings.GetInt(store.KeyCameraID, cfg.CameraID),
		MotionThresh: settings.GetFloat(store.KeyMotionThreshold, 1.0),
		Gesture:      gestureCfg,
		Pointer:      pointerCfg,
		Physics:      physicsCfg,
	})
	application.SetEnabled(settings.GetBool(store.KeyGestureEnabled, true))

	if err := application.Start(); err != nil {
		log.Fatalf("Failed to start pipeline: %v", err)
	}
	defer application.Stop()

	webDir := cfg.StaticDir
	if webDir == "" {
		webDir = findWebDir()
	}
	if webDir != "" {
		fmt.Printf("Serving renderer from: %s\n", webDir)
	}

	srv := server.New(server.Config{
		StaticDir: webDir,
		Store:     st,
		App:       application,
	})

	if !cfg.Tray {
		fmt.Printf("Starting server on %s\n", cfg.Addr)
		if err := srv.ListenAndServe(cfg.Addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
		return
	}

	go func() {
		fmt.Printf("Starting server on %s\n", cfg.Addr)
		if err := srv.ListenAndServe(cfg.Addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	tr := tray.New()
	tr.OnToggle(func(enabled bool) {
		application.SetEnabled(enabled)
		settings.SetBool(store.KeyGestureEnabled, enabled)
	})
	tr.OnOpen(func() {
		openBrowser("http://localhost" + cfg.Addr)
	})
	tr.Run()
}

// findWebDir searches for the renderer's web directory in common locations.
func findWebDir() string {
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".christmas-tree", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}

func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("Failed to open browser: %v", err)
	}
}
