package capture

import (
	"log/slog"
	"sync/atomic"
	"time"
)

const sourceStatsLogInterval = 5 * time.Second

// FrameGrabber produces one analysis frame per call. Implementations:
// WebcamGrabber, ScreenGrabber.
type FrameGrabber interface {
	Grab() (*AnalysisFrame, error)
	Close() error
}

// FrameSource runs a grabber in a loop and exposes the latest frame alongside
// instrumentation data. Use NewFrameSource to construct an instance.
type FrameSource interface {
	Start()
	Stop()
	LatestFrame() *AnalysisFrame
	Running() bool
	Stats() SourceStats
}

// SourceStats summarises grab-loop behaviour for instrumentation.
type SourceStats struct {
	Grabs          uint64
	Skipped        uint64
	AvgGrab        time.Duration
	LastGrab       time.Time
	LatestFrameAge time.Duration
	Sequence       uint64
}

type frameSource struct {
	grabber   FrameGrabber
	logger    *slog.Logger
	running   atomic.Bool
	latest    atomic.Pointer[AnalysisFrame]
	grabs     atomic.Uint64
	skipped   atomic.Uint64
	grabNanos atomic.Uint64
	sequence  atomic.Uint64
}

// NewFrameSource constructs a frame source over the given grabber.
func NewFrameSource(grabber FrameGrabber, logger *slog.Logger) FrameSource {
	return &frameSource{grabber: grabber, logger: logger}
}

func (s *frameSource) LatestFrame() *AnalysisFrame { return s.latest.Load() }

func (s *frameSource) Running() bool { return s.running.Load() }

func (s *frameSource) Stats() SourceStats {
	grabs := s.grabs.Load()
	total := s.grabNanos.Load()
	var avg time.Duration
	if grabs > 0 && total > 0 {
		avg = time.Duration(total / grabs)
	}
	stats := SourceStats{
		Grabs:   grabs,
		Skipped: s.skipped.Load(),
		AvgGrab: avg,
	}
	if frame := s.latest.Load(); frame != nil {
		stats.LastGrab = frame.CapturedAt
		stats.LatestFrameAge = time.Since(frame.CapturedAt)
		stats.Sequence = frame.Sequence
	}
	return stats
}

func (s *frameSource) Start() {
	if s.running.Load() {
		return
	}
	s.running.Store(true)
	go s.loop()
}

func (s *frameSource) Stop() {
	if !s.running.Load() {
		return
	}
	s.running.Store(false)
}

func (s *frameSource) loop() {
	logTicker := time.NewTicker(sourceStatsLogInterval)
	defer logTicker.Stop()
	for s.running.Load() {
		start := time.Now()
		frame, err := s.grabber.Grab()
		if err != nil {
			if s.logger != nil {
				s.logger.Error("capture grab", "error", err)
			}
			s.skipped.Add(1)
			time.Sleep(1 * time.Millisecond)
			continue
		}
		if frame == nil {
			s.skipped.Add(1)
			time.Sleep(1 * time.Millisecond)
			continue
		}

		elapsed := time.Since(start)
		s.grabNanos.Add(uint64(elapsed.Nanoseconds()))
		s.grabs.Add(1)
		frame.Sequence = s.sequence.Add(1)
		frame.CapturedAt = time.Now()
		s.latest.Store(frame)

		select {
		case <-logTicker.C:
			s.logStats()
		default:
		}

		time.Sleep(200 * time.Microsecond)
	}
}

func (s *frameSource) logStats() {
	if s.logger == nil {
		return
	}
	stats := s.Stats()
	s.logger.Debug("capture.stats",
		"grabs", stats.Grabs,
		"skipped", stats.Skipped,
		"avg_grab", stats.AvgGrab,
		"age", stats.LatestFrameAge,
	)
}
