package feed

import (
	"image"
	"testing"

	"github.com/overcam/faceoverlay/detect"
	"github.com/overcam/faceoverlay/geometry"
)

func testState() CameraState {
	return CameraState{
		Preview: geometry.PreviewGeometry{PreviewSize: geometry.Size{Width: 1000, Height: 1000}},
	}
}

func testResult() detect.Result {
	return detect.Result{
		Faces: []detect.Face{{Contours: []detect.Contour{
			{Kind: detect.ContourFaceOval, Points: []image.Point{image.Pt(1, 2)}},
		}}},
		Frame: geometry.FrameMetadata{AbsoluteSize: geometry.Size{Width: 600, Height: 600}},
	}
}

func TestFeed_SuppressedUntilBothChannelsProduce(t *testing.T) {
	f := New(nil)
	if _, ok := f.Snapshot(); ok {
		t.Fatal("empty feed must suppress rendering")
	}
	f.UpdateState(testState())
	if _, ok := f.Snapshot(); ok {
		t.Fatal("state without any detection result must suppress rendering")
	}
	f.Publish(f.Generation(), testResult())
	if _, ok := f.Snapshot(); !ok {
		t.Fatal("expected snapshot once both channels produced")
	}
}

func TestFeed_StateOnlyChangeReusesLastResult(t *testing.T) {
	redraws := 0
	f := New(func() { redraws++ })
	f.UpdateState(testState())
	f.Publish(f.Generation(), testResult())
	before := redraws

	// Orientation change without a new detection result.
	next := testState()
	next.Preview.PreviewSize = geometry.Size{Width: 500, Height: 500}
	f.UpdateState(next)

	if redraws != before+1 {
		t.Fatalf("redraws: got %d, want %d", redraws, before+1)
	}
	rf, ok := f.Snapshot()
	if !ok {
		t.Fatal("expected snapshot")
	}
	if rf.State.Preview.PreviewSize.Width != 500 {
		t.Fatalf("state not updated: %+v", rf.State.Preview.PreviewSize)
	}
	if len(rf.Result.Faces) != 1 {
		t.Fatalf("expected last known detection result, got %+v", rf.Result)
	}
}

func TestFeed_LatestResultWins(t *testing.T) {
	f := New(nil)
	f.UpdateState(testState())
	gen := f.Generation()
	first := testResult()
	f.Publish(gen, first)
	second := testResult()
	second.Frame.AbsoluteSize = geometry.Size{Width: 320, Height: 240}
	f.Publish(gen, second)

	rf, _ := f.Snapshot()
	if rf.Result.Frame.AbsoluteSize.Width != 320 {
		t.Fatalf("expected latest result, got %+v", rf.Result.Frame.AbsoluteSize)
	}
}

func TestFeed_StaleGenerationDiscarded(t *testing.T) {
	f := New(nil)
	f.UpdateState(testState())
	old := f.Generation()
	f.Close()
	f.Publish(old, testResult())
	if _, ok := f.Snapshot(); ok {
		t.Fatal("result from an orphaned detection must be discarded")
	}
}
