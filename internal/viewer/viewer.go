// Package viewer runs the interactive STL viewer window.
package viewer

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/stlview/internal/engine/camera"
	"github.com/Faultbox/stlview/internal/engine/input"
	"github.com/Faultbox/stlview/internal/engine/renderer"
	"github.com/Faultbox/stlview/internal/engine/screenshot"
	"github.com/Faultbox/stlview/internal/engine/theme"
	"github.com/Faultbox/stlview/internal/engine/window"
	"github.com/Faultbox/stlview/internal/logger"
	"github.com/Faultbox/stlview/pkg/stl"
)

// Config holds viewer configuration.
type Config struct {
	Title         string
	Width         int
	Height        int
	Fullscreen    bool
	VSync         bool
	Theme         theme.Theme
	Projection    camera.Projection
	ScreenshotDir string
}

// LoadFunc decodes the STL file at path. It is used for dropped files.
type LoadFunc func(path string) (*stl.ModelData, error)

// App is the viewer instance.
type App struct {
	config   Config
	log      *zap.Logger
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	controls *controls
	shots    *screenshot.Capture

	load  LoadFunc
	model *stl.ModelData
}

// New opens the window and uploads model. load may be nil, in which case
// dropped files are ignored.
func New(cfg Config, model *stl.ModelData, load LoadFunc) (*App, error) {
	a := &App{
		config: cfg,
		log:    logger.Named("viewer"),
		load:   load,
		shots:  screenshot.New(cfg.ScreenshotDir, "stlview"),
	}

	a.log.Info("initializing viewer",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Stringer("theme", cfg.Theme),
		zap.Stringer("projection", cfg.Projection),
	)

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: cfg.Fullscreen,
		VSync:      cfg.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	fbw, fbh := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{Width: fbw, Height: fbh})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()

	w, h := a.window.Size()
	cam := camera.New(w, h)
	cam.SetProjection(cfg.Projection)
	a.controls = newControls(cam, cfg.Theme)

	if err := a.show(model); err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

// show replaces the displayed model and reframes the camera.
func (a *App) show(m *stl.ModelData) error {
	if err := a.renderer.Upload(m); err != nil {
		return err
	}
	a.model = m
	a.controls.fit(m.Bounds)
	a.window.SetTitle(a.title())
	return nil
}

func (a *App) title() string {
	name := a.config.Title
	if a.model != nil {
		label := strings.TrimSpace(a.model.Name)
		if label == "" {
			label = "untitled"
		}
		name = fmt.Sprintf("%s - %s (%d triangles, %s, %s)", a.config.Title, label,
			a.model.TriangleCount(), a.controls.cam.Projection(), a.controls.theme)
	}
	return name
}

// Run starts the main loop and returns when the window is closed.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting main loop")

	for a.running {
		a.input.Update()

		for _, event := range a.input.Events() {
			a.dispatch(event)
		}
		if !a.running {
			break
		}

		cam := a.controls.cam
		a.renderer.Draw(renderer.View{
			Model:      cam.ModelMatrix(),
			View:       cam.ViewMatrix(),
			Projection: cam.ProjectionMatrix(),
			ShowBounds: a.controls.showBounds,
		}, a.controls.theme.Palette())

		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) dispatch(event input.Event) {
	switch a.controls.handle(event) {
	case cmdQuit:
		a.running = false
	case cmdResize:
		a.renderer.Resize(a.window.DrawableSize())
	case cmdRetitle:
		a.window.SetTitle(a.title())
	case cmdScreenshot:
		a.screenshot()
	case cmdOpen:
		a.open(event.Path)
	}
}

// screenshot renders the current view and writes it to disk.
func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.shots.Save(pixels, w, h)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// open loads a dropped file. Failures are logged and the current model stays.
func (a *App) open(path string) {
	if a.load == nil {
		return
	}
	m, err := a.load(path)
	if err != nil {
		a.log.Error("failed to open model", zap.String("file", filepath.Base(path)), zap.Error(err))
		return
	}
	if err := a.show(m); err != nil {
		a.log.Error("failed to show model", zap.String("file", filepath.Base(path)), zap.Error(err))
	}
}

// Close releases the renderer and window.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
