// Package main is the entry point for the stlview desktop viewer.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/stlview/internal/config"
	"github.com/Faultbox/stlview/internal/engine/camera"
	"github.com/Faultbox/stlview/internal/engine/theme"
	"github.com/Faultbox/stlview/internal/logger"
	"github.com/Faultbox/stlview/internal/viewer"
	"github.com/Faultbox/stlview/pkg/stl"
)

func main() {
	start := time.Now()

	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("config: %+v", cfg)

	if config.SaveRequested() {
		path, err := cfg.Save()
		if err != nil {
			logger.Error("failed to save config", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("config saved", zap.String("path", path))
	}

	if err := run(cfg, start); err != nil {
		logger.Error("stlview failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, start time.Time) error {
	th, err := theme.Parse(cfg.Viewer.Theme)
	if err != nil {
		return err
	}
	proj, err := camera.ParseProjection(cfg.Viewer.Projection)
	if err != nil {
		return err
	}

	path, err := modelPath(config.Args())
	if err != nil {
		return err
	}
	if path == "" {
		logger.Info("no file selected")
		return nil
	}

	opts := stl.Options{
		MaxWorkers: cfg.Loader.MaxWorkers,
		Unindexed:  cfg.Loader.Unindexed,
		Start:      start,
		Logger:     logger.Named("loader"),
	}

	// Decode before the window opens so a bad file never flashes a window.
	model, err := stl.Load(path, opts)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	// Dropped files are timed from the drop, not from process start.
	load := func(p string) (*stl.ModelData, error) {
		o := opts
		o.Start = time.Now()
		return stl.Load(p, o)
	}

	app, err := viewer.New(viewer.Config{
		Title:         "stlview",
		Width:         cfg.Window.Width,
		Height:        cfg.Window.Height,
		Fullscreen:    cfg.Window.Fullscreen,
		VSync:         cfg.Window.VSync,
		Theme:         th,
		Projection:    proj,
		ScreenshotDir: ".",
	}, model, load)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Run()
}

// modelPath returns the file named on the command line, or asks for one
// with a native dialog. An empty path means the user cancelled.
func modelPath(args []string) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("expected one STL file, got %d arguments", len(args))
	}
	if len(args) == 1 {
		return args[0], nil
	}

	filename, err := dialog.File().
		Filter("STL Models", "stl").
		Filter("All Files", "*").
		Title("Open STL Model").
		Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("file dialog: %w", err)
	}
	return filename, nil
}
