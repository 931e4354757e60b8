// Package app runs the orientation demo: it owns the window, renderer and
// session and drives the poll, tick, render, present loop.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/gimbal/internal/config"
	"github.com/Faultbox/gimbal/internal/engine/camera"
	"github.com/Faultbox/gimbal/internal/engine/debug"
	"github.com/Faultbox/gimbal/internal/engine/input"
	"github.com/Faultbox/gimbal/internal/engine/lighting"
	"github.com/Faultbox/gimbal/internal/engine/mesh"
	"github.com/Faultbox/gimbal/internal/engine/renderer"
	"github.com/Faultbox/gimbal/internal/engine/window"
	"github.com/Faultbox/gimbal/internal/session"
)

// modelRadius is the size the loaded mesh is scaled to, in world units.
const modelRadius = 10

// App is the running demo.
type App struct {
	cfg *config.Config
	log *zap.Logger

	window     *window.Window
	renderer   *renderer.Renderer
	input      *input.Input
	dispatcher *input.Dispatcher

	clock      *Clock
	session    *session.Session
	camera     *camera.OrbitCamera
	lights     *lighting.LightSet
	screenshot *debug.ScreenshotCapture

	layout      renderer.Layout
	running     bool
	pendingShot bool
	lastTitle   string
}

// New creates the window, GL renderer and session from cfg.
func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}

	keys, err := session.NewKeyMap(cfg.Keys)
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}
	dragButton, err := input.ParseButton(cfg.Animation.DragButton)
	if err != nil {
		return nil, err
	}
	shotFormat, err := debug.ParseFormat(cfg.Screenshot.Format)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:        cfg,
		log:        log,
		input:      input.New(),
		dispatcher: input.NewDispatcher(),
		clock:      NewClock(),
		session:    session.New(cfg.SessionOptions(), log.Named("session")),
		camera: camera.NewOrbitCamera(camera.Config{
			Distance:    cfg.Camera.Distance,
			MinDistance: cfg.Camera.MinDistance,
			MaxDistance: cfg.Camera.MaxDistance,
			FOVDegrees:  cfg.Camera.FOVDegrees,
			ZoomStep:    cfg.Camera.ZoomStep,
			ZoomEaseMs:  cfg.Camera.ZoomEaseMs,
		}),
		lights:     lighting.DemoLights(),
		screenshot: debug.NewScreenshotCapture(cfg.Screenshot.Dir, cfg.Screenshot.Prefix, shotFormat),
	}

	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Samples:    4,
	}, log.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The GL context must exist before the renderer
	fbW, fbH := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      fbW,
		Height:     fbH,
		ClearColor: colorClear,
		LineWidth:  5,
	}, log.Named("renderer"))
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	a.renderer.SetLights(a.lights)
	a.resize()

	a.loadMesh(cfg.Assets.MeshPath)

	c := &controls{
		session:    a.session,
		camera:     a.camera,
		keys:       keys,
		dragButton: dragButton,
		clock:      a.clock,
		onAction:   a.handleAction,
		log:        log,
	}
	c.register(a.dispatcher)
	a.dispatcher.On(input.EventWindowResize, func(input.Event) { a.resize() })
	a.dispatcher.On(input.EventQuit, func(input.Event) { a.running = false })

	log.Info("demo initialized",
		zap.Int("keyframes", cfg.Animation.KeyframeCapacity),
		zap.Float64("duration_ms", cfg.Animation.DurationMs),
	)
	return a, nil
}

// loadMesh uploads the configured model, or the built-in glider when no
// path is set or loading fails.
func (a *App) loadMesh(path string) {
	m := mesh.Glider()
	if path != "" {
		loaded, err := mesh.Load(path)
		if err != nil {
			a.log.Error("failed to load mesh, using built-in model", zap.String("path", path), zap.Error(err))
		} else {
			m = loaded
		}
	}
	a.renderer.UploadMesh(m, m.FitTransform(modelRadius))
}

// resize re-reads the framebuffer size and recomputes the layout.
func (a *App) resize() {
	w, h := a.window.DrawableSize()
	a.renderer.Resize(w, h)
	a.layout = renderer.ComputeLayout(w, h, a.session.Status().Capacity)
}

// handleAction runs the actions that are not session state.
func (a *App) handleAction(act session.Action) {
	switch act {
	case session.ActionToggleLight:
		on := a.lights.Toggle()
		a.log.Info("lights toggled", zap.Bool("on", on))
	case session.ActionLogCamera:
		pos := a.camera.Position()
		a.log.Info("camera",
			zap.Float32("x", pos.X),
			zap.Float32("y", pos.Y),
			zap.Float32("z", pos.Z),
			zap.Float32("distance", a.camera.Distance()),
		)
	case session.ActionScreenshot:
		// Read back after the next frame is drawn
		a.pendingShot = true
	case session.ActionQuit:
		a.running = false
	}
}

// Run drives the loop until quit.
func (a *App) Run() error {
	a.running = true

	last := a.clock.NowMs()
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting main loop")

	for a.running {
		now := a.clock.NowMs()
		dt := now - last
		last = now

		a.input.Update()
		a.dispatcher.DispatchAll(a.input.Events())
		if !a.running {
			break
		}

		a.session.Tick(now)
		a.camera.Update(float32(dt))

		a.renderer.Begin()
		drawScene(a.renderer, a.layout, a.session, a.camera)
		a.renderer.End()

		if a.pendingShot {
			a.pendingShot = false
			a.takeScreenshot()
		}

		a.window.SwapBuffers()
		a.updateTitle()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	a.log.Info("main loop stopped")
	return nil
}

func (a *App) takeScreenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.screenshot.CaptureFromPixels(pixels, w, h)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

func (a *App) updateTitle() {
	title := windowTitle(a.cfg.Window.Title, a.session.Status())
	if title != a.lastTitle {
		a.window.SetTitle(title)
		a.lastTitle = title
	}
}

// Close releases GL and window resources.
func (a *App) Close() {
	a.log.Info("closing demo")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
