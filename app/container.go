package app

import (
	"log/slog"

	"github.com/overcam/faceoverlay/capture"
	"github.com/overcam/faceoverlay/config"
	"github.com/overcam/faceoverlay/detect"
	"github.com/overcam/faceoverlay/feed"
	"github.com/overcam/faceoverlay/overlay"
)

// Container assembles the source, detector, feed, analyzer and renderer.
type Container struct {
	Config   *config.Config
	Logger   *slog.Logger
	Source   capture.FrameSource
	Detector detect.Detector
	Feed     *feed.Feed
	Analyzer *feed.Analyzer
	Renderer *overlay.Renderer

	// redrawCh coalesces redraw signals from the feed; the run loop is its
	// single consumer.
	redrawCh chan struct{}
}

// BuildContainer constructs all components around the given frame source and
// detector. Side effects are limited to wiring.
func BuildContainer(cfg *config.Config, logger *slog.Logger, source capture.FrameSource, detector detect.Detector) *Container {
	c := &Container{
		Config:   cfg,
		Logger:   logger,
		Source:   source,
		Detector: detector,
		redrawCh: make(chan struct{}, 1),
	}
	c.Feed = feed.New(func() {
		select {
		case c.redrawCh <- struct{}{}:
		default:
		}
	})
	c.Analyzer = feed.NewAnalyzer(detector, c.Feed, cfg.MaxAnalysisFPS, logger)
	c.Renderer = overlay.NewRenderer(cfg.StrokeWidth, cfg.MarkerRadius, logger)
	c.Feed.UpdateState(feed.CameraState{
		Preview:    cfg.Preview(),
		Convention: cfg.Convention(),
	})
	return c
}
