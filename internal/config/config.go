// Package config handles demo configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/gimbal/internal/animation"
	"github.com/Faultbox/gimbal/internal/control"
	"github.com/Faultbox/gimbal/internal/keyframe"
	"github.com/Faultbox/gimbal/internal/session"
)

// Config holds all demo settings.
type Config struct {
	Window     WindowConfig        `yaml:"window"`
	Animation  AnimationConfig     `yaml:"animation"`
	Camera     CameraConfig        `yaml:"camera"`
	Assets     AssetsConfig        `yaml:"assets"`
	Keys       map[string][]string `yaml:"keys"` // action -> key names
	Screenshot ScreenshotConfig    `yaml:"screenshot"`
	Logging    LoggingConfig       `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// AnimationConfig holds keyframe playback and drag settings.
type AnimationConfig struct {
	DurationMs       float64 `yaml:"duration_ms"`
	KeyframeCapacity int     `yaml:"keyframe_capacity"`
	DragSensitivity  float32 `yaml:"drag_sensitivity"` // degrees per pixel
	DragButton       string  `yaml:"drag_button"`      // left, middle or right
}

// CameraConfig holds the demo camera settings.
type CameraConfig struct {
	Distance    float32 `yaml:"distance"`
	MinDistance float32 `yaml:"min_distance"`
	MaxDistance float32 `yaml:"max_distance"`
	FOVDegrees  float32 `yaml:"fov_degrees"`
	ZoomStep    float32 `yaml:"zoom_step"`    // fraction of distance per wheel notch
	ZoomEaseMs  float32 `yaml:"zoom_ease_ms"` // 0 disables easing
}

// AssetsConfig holds asset file paths.
type AssetsConfig struct {
	MeshPath string `yaml:"mesh_path"` // .obj, .gltf or .glb; empty uses the built-in model
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
	Format string `yaml:"format"` // png, webp or bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns a Config with the stock demo values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Euler Angle (Blue) VS. Quaternion (Red)",
			Width:      1920,
			Height:     1080,
			Fullscreen: false,
			VSync:      true,
		},
		Animation: AnimationConfig{
			DurationMs:       animation.DefaultDurationMs,
			KeyframeCapacity: keyframe.DefaultCapacity,
			DragSensitivity:  control.DefaultSensitivity,
			DragButton:       "left",
		},
		Camera: CameraConfig{
			Distance:    60,
			MinDistance: 15,
			MaxDistance: 300,
			FOVDegrees:  30,
			ZoomStep:    0.1,
			ZoomEaseMs:  150,
		},
		Keys: session.DefaultBindings(),
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "gimbal",
			Format: "png",
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

// Validate checks values that would leave the demo unusable.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Animation.DurationMs <= 0 {
		return fmt.Errorf("animation.duration_ms must be positive, got %v", c.Animation.DurationMs)
	}
	if c.Animation.KeyframeCapacity < 2 {
		return fmt.Errorf("animation.keyframe_capacity must be at least 2, got %d", c.Animation.KeyframeCapacity)
	}
	if c.Animation.DragSensitivity <= 0 {
		return fmt.Errorf("animation.drag_sensitivity must be positive, got %v", c.Animation.DragSensitivity)
	}
	switch c.Animation.DragButton {
	case "left", "middle", "right":
	default:
		return fmt.Errorf("animation.drag_button must be left, middle or right, got %q", c.Animation.DragButton)
	}
	if c.Camera.MinDistance <= 0 || c.Camera.MinDistance > c.Camera.MaxDistance {
		return fmt.Errorf("camera distance range [%v, %v] is invalid", c.Camera.MinDistance, c.Camera.MaxDistance)
	}
	if c.Camera.FOVDegrees <= 0 || c.Camera.FOVDegrees >= 180 {
		return fmt.Errorf("camera.fov_degrees must be in (0, 180), got %v", c.Camera.FOVDegrees)
	}
	switch c.Screenshot.Format {
	case "png", "webp", "bmp":
	default:
		return fmt.Errorf("screenshot.format must be png, webp or bmp, got %q", c.Screenshot.Format)
	}
	if _, err := session.NewKeyMap(c.Keys); err != nil {
		return fmt.Errorf("keys: %w", err)
	}
	return nil
}

// SessionOptions returns the session settings derived from the config.
func (c *Config) SessionOptions() session.Options {
	return session.Options{
		KeyframeCapacity: c.Animation.KeyframeCapacity,
		DurationMs:       c.Animation.DurationMs,
		DragSensitivity:  c.Animation.DragSensitivity,
	}
}
