package feed

import (
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/overcam/faceoverlay/capture"
	"github.com/overcam/faceoverlay/detect"
	"github.com/overcam/faceoverlay/geometry"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// flakyDetector fails on selected sequence numbers.
type flakyDetector struct {
	failSeq  uint64
	detected atomic.Uint64
}

func (d *flakyDetector) Detect(frame *capture.AnalysisFrame) (detect.Result, error) {
	if frame.Sequence == d.failSeq {
		return detect.Result{}, errors.New("model error")
	}
	d.detected.Add(1)
	return detect.Result{Frame: frame.Meta}, nil
}

func (d *flakyDetector) Close() error { return nil }

func frameWithSeq(seq uint64) *capture.AnalysisFrame {
	return &capture.AnalysisFrame{
		Sequence: seq,
		Meta:     geometry.FrameMetadata{AbsoluteSize: geometry.Size{Width: 2, Height: 2}},
	}
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("timeout waiting for condition")
}

func TestAnalyzer_FailureOnFrameNDoesNotAffectFrameN1(t *testing.T) {
	f := New(nil)
	f.UpdateState(testState())
	det := &flakyDetector{failSeq: 1}
	a := NewAnalyzer(det, f, 0, discardLogger)
	defer a.Stop()

	a.Offer(frameWithSeq(1))
	waitFor(t, time.Second, func() bool { return a.Stats().Failures == 1 })
	if _, ok := f.Snapshot(); ok {
		t.Fatal("failed frame must not publish a result")
	}

	a.Offer(frameWithSeq(2))
	waitFor(t, time.Second, func() bool { return a.Stats().Analyzed == 1 })
	if _, ok := f.Snapshot(); !ok {
		t.Fatal("frame after a failure must be processed normally")
	}
}

func TestAnalyzer_RateBudgetShedsExcessFrames(t *testing.T) {
	f := New(nil)
	det := &flakyDetector{}
	// 1 fps with burst 1: the second immediate offer exceeds the budget.
	a := NewAnalyzer(det, f, 1, discardLogger)
	defer a.Stop()

	a.Offer(frameWithSeq(1))
	a.Offer(frameWithSeq(2))
	waitFor(t, time.Second, func() bool { return a.Stats().Dropped >= 1 })
	if got := a.Stats().Dropped; got != 1 {
		t.Fatalf("dropped: got %d, want 1", got)
	}
}

func TestAnalyzer_SameSequenceOfferedOnce(t *testing.T) {
	f := New(nil)
	det := &flakyDetector{}
	a := NewAnalyzer(det, f, 0, discardLogger)
	defer a.Stop()

	a.Offer(frameWithSeq(7))
	a.Offer(frameWithSeq(7))
	a.Offer(frameWithSeq(7))
	waitFor(t, time.Second, func() bool { return a.Stats().Analyzed == 1 })
	time.Sleep(20 * time.Millisecond)
	if got := a.Stats().Analyzed; got != 1 {
		t.Fatalf("analyzed: got %d, want 1", got)
	}
}

func TestAnalyzer_ResultAfterFeedCloseIsDiscarded(t *testing.T) {
	f := New(nil)
	f.UpdateState(testState())
	det := &flakyDetector{}
	a := NewAnalyzer(det, f, 0, discardLogger)
	defer a.Stop()

	f.Close()
	a.Offer(frameWithSeq(1))
	waitFor(t, time.Second, func() bool { return a.Stats().Analyzed == 1 })
	if _, ok := f.Snapshot(); ok {
		t.Fatal("result published after close must be discarded")
	}
}
