package geometry

import (
	"errors"
	"image"
	"math"
	"testing"
)

func TestResolve_NoCropUsesAbsoluteSize(t *testing.T) {
	meta := FrameMetadata{AbsoluteSize: Size{600, 600}}
	preview := PreviewGeometry{PreviewSize: Size{1000, 1000}}
	proj, err := Resolve(meta, preview, Convention{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if proj.CroppedSize != (Size{600, 600}) {
		t.Fatalf("cropped size: got %+v, want 600x600", proj.CroppedSize)
	}
	if math.Abs(proj.ScaleRatio-1000.0/600.0) > 1e-9 {
		t.Fatalf("scale ratio: got %v, want %v", proj.ScaleRatio, 1000.0/600.0)
	}
}

func TestResolve_CropRectWins(t *testing.T) {
	crop := image.Rect(100, 50, 500, 450)
	meta := FrameMetadata{AbsoluteSize: Size{640, 480}, CropRect: &crop}
	proj, err := Resolve(meta, PreviewGeometry{PreviewSize: Size{800, 800}}, Convention{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if proj.CroppedSize != (Size{400, 400}) {
		t.Fatalf("cropped size: got %+v, want 400x400", proj.CroppedSize)
	}
	if proj.ScaleRatio != 2.0 {
		t.Fatalf("scale ratio: got %v, want 2", proj.ScaleRatio)
	}
}

func TestResolve_ZeroAreaCropFallsBackToFullFrame(t *testing.T) {
	crop := image.Rect(10, 10, 10, 300) // zero width
	meta := FrameMetadata{AbsoluteSize: Size{320, 240}, CropRect: &crop}
	proj, err := Resolve(meta, PreviewGeometry{PreviewSize: Size{640, 480}}, Convention{})
	if err != nil {
		t.Fatalf("zero-area crop must not error: %v", err)
	}
	if proj.CroppedSize != (Size{320, 240}) {
		t.Fatalf("cropped size: got %+v, want full 320x240", proj.CroppedSize)
	}
}

func TestResolve_TransposedConventionSwapsAbsoluteSize(t *testing.T) {
	meta := FrameMetadata{AbsoluteSize: Size{480, 640}}
	proj, err := Resolve(meta, PreviewGeometry{PreviewSize: Size{640, 480}}, Convention{TransposedFrame: true})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if proj.CroppedSize != (Size{640, 480}) {
		t.Fatalf("cropped size: got %+v, want swapped 640x480", proj.CroppedSize)
	}
}

func TestResolve_GuardsEmptyGeometry(t *testing.T) {
	_, err := Resolve(FrameMetadata{}, PreviewGeometry{PreviewSize: Size{100, 100}}, Convention{})
	if !errors.Is(err, ErrEmptyFrame) {
		t.Fatalf("empty frame: got %v, want ErrEmptyFrame", err)
	}
	_, err = Resolve(FrameMetadata{AbsoluteSize: Size{100, 100}}, PreviewGeometry{}, Convention{})
	if !errors.Is(err, ErrEmptyPreview) {
		t.Fatalf("empty preview: got %v, want ErrEmptyPreview", err)
	}
}
