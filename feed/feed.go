// Package feed merges the latest camera/orientation state with the latest
// detection result and signals a redraw whenever either changes. One atomic
// slot per channel, no buffering, no replay.
package feed

import (
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/overcam/faceoverlay/detect"
	"github.com/overcam/faceoverlay/geometry"
)

// CameraState is the sensor/orientation side of the merge: the preview's
// rendered geometry plus the host's platform convention. Changes on layout
// events and camera switches, stable across many frames otherwise.
type CameraState struct {
	Preview    geometry.PreviewGeometry
	Convention geometry.Convention
}

// RenderFrame pairs the most recent value of both channels for one render
// pass.
type RenderFrame struct {
	State  CameraState
	Result detect.Result
}

// Feed holds the two latest-value slots. There is at most one producer per
// slot and one consumer, so replace-on-write atomics are the only
// synchronization.
type Feed struct {
	state  atomic.Pointer[CameraState]
	result atomic.Pointer[detect.Result]
	gen    atomic.Pointer[uuid.UUID]
	redraw func()
	closed atomic.Bool
}

// New constructs a feed. redraw is invoked after every accepted update; it
// must be cheap (typically a coalescing signal on a 1-slot channel).
func New(redraw func()) *Feed {
	f := &Feed{redraw: redraw}
	gen := uuid.New()
	f.gen.Store(&gen)
	return f
}

// Generation returns the token that publishers must present. It changes on
// Close, orphaning any in-flight detection.
func (f *Feed) Generation() uuid.UUID { return *f.gen.Load() }

// UpdateState replaces the camera/orientation slot and triggers a redraw.
func (f *Feed) UpdateState(s CameraState) {
	if f.closed.Load() {
		return
	}
	f.state.Store(&s)
	f.signal()
}

// Publish replaces the detection-result slot and triggers a redraw. Results
// carrying a stale generation token are discarded: the detection they came
// from outlived its subscription.
func (f *Feed) Publish(gen uuid.UUID, r detect.Result) {
	if f.closed.Load() || gen != *f.gen.Load() {
		return
	}
	f.result.Store(&r)
	f.signal()
}

// Snapshot returns the latest value of both channels. ok is false until both
// have produced at least once; callers draw nothing rather than rendering
// from stale or default geometry.
func (f *Feed) Snapshot() (RenderFrame, bool) {
	state := f.state.Load()
	result := f.result.Load()
	if state == nil || result == nil {
		return RenderFrame{}, false
	}
	return RenderFrame{State: *state, Result: *result}, true
}

// Close tears the feed down. The generation token rotates so results from
// still-running detection compare unequal and are dropped.
func (f *Feed) Close() {
	if f.closed.Swap(true) {
		return
	}
	gen := uuid.New()
	f.gen.Store(&gen)
}

func (f *Feed) signal() {
	if f.redraw != nil {
		f.redraw()
	}
}
