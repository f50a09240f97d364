package feed

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/overcam/faceoverlay/capture"
	"github.com/overcam/faceoverlay/detect"
)

// Analyzer runs detection off the rendering path on a single worker at a
// bounded rate. Frames beyond the rate budget, and frames arriving while the
// worker is busy, are dropped rather than queued.
type Analyzer struct {
	detector detect.Detector
	feed     *Feed
	limiter  *rate.Limiter
	logger   *slog.Logger
	gen      uuid.UUID

	workerOnce sync.Once
	workCh     chan *capture.AnalysisFrame

	lastSeq  atomic.Uint64
	analyzed atomic.Uint64
	dropped  atomic.Uint64
	failures atomic.Uint64
}

// AnalyzerStats summarises analyzer behaviour for instrumentation.
type AnalyzerStats struct {
	Analyzed uint64
	Dropped  uint64
	Failures uint64
}

// NewAnalyzer constructs an analyzer publishing into feed under its current
// generation. maxFPS caps analyzed frames per second; zero or negative means
// unlimited.
func NewAnalyzer(detector detect.Detector, feed *Feed, maxFPS float64, logger *slog.Logger) *Analyzer {
	limit := rate.Inf
	if maxFPS > 0 {
		limit = rate.Limit(maxFPS)
	}
	return &Analyzer{
		detector: detector,
		feed:     feed,
		limiter:  rate.NewLimiter(limit, 1),
		logger:   logger,
		gen:      feed.Generation(),
		workCh:   make(chan *capture.AnalysisFrame, 1),
	}
}

// Offer hands a frame to the worker. Frames are shed when the frame was
// already offered (same sequence), the FPS budget is spent, or the one-slot
// work channel is full with a newer frame.
func (a *Analyzer) Offer(frame *capture.AnalysisFrame) {
	if frame == nil {
		return
	}
	if frame.Sequence != 0 && frame.Sequence == a.lastSeq.Load() {
		return
	}
	if !a.limiter.Allow() {
		a.dropped.Add(1)
		return
	}
	a.lastSeq.Store(frame.Sequence)
	a.ensureWorker()
	select {
	case a.workCh <- frame:
	default:
		// Replace the stale pending frame with this one.
		select {
		case <-a.workCh:
			a.dropped.Add(1)
		default:
		}
		select {
		case a.workCh <- frame:
		default:
			a.dropped.Add(1)
		}
	}
}

// Stop closes the work channel; the in-flight detection, if any, completes
// and its result is discarded by the feed's generation check after Close.
func (a *Analyzer) Stop() {
	a.ensureWorker()
	close(a.workCh)
}

// Stats returns analyzed/dropped/failure counters.
func (a *Analyzer) Stats() AnalyzerStats {
	return AnalyzerStats{
		Analyzed: a.analyzed.Load(),
		Dropped:  a.dropped.Load(),
		Failures: a.failures.Load(),
	}
}

func (a *Analyzer) ensureWorker() {
	a.workerOnce.Do(func() {
		go a.runWorker()
	})
}

func (a *Analyzer) runWorker() {
	for frame := range a.workCh {
		res, err := a.detector.Detect(frame)
		if err != nil {
			a.failures.Add(1)
			if a.logger != nil {
				a.logger.Error("detect", "error", err, "sequence", frame.Sequence)
			}
			continue
		}
		a.analyzed.Add(1)
		a.feed.Publish(a.gen, res)
	}
}
