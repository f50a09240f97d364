package geometry

import "image"

// Size is a width/height pair in pixels.
type Size struct {
	Width  int
	Height int
}

// PointF is a point in rendering-surface coordinates.
type PointF struct {
	X float64
	Y float64
}

// Rotation is the clockwise rotation of the analysis frame relative to the
// sensor's natural orientation.
type Rotation int

const (
	Rotation0 Rotation = iota
	Rotation90
	Rotation180
	Rotation270
)

func (r Rotation) String() string {
	switch r {
	case Rotation0:
		return "0"
	case Rotation90:
		return "90"
	case Rotation180:
		return "180"
	case Rotation270:
		return "270"
	default:
		return "unknown"
	}
}

// RotationFromDegrees maps a degree value onto a Rotation. Values outside
// {0,90,180,270} report ok=false.
func RotationFromDegrees(deg int) (Rotation, bool) {
	switch deg {
	case 0:
		return Rotation0, true
	case 90:
		return Rotation90, true
	case 180:
		return Rotation180, true
	case 270:
		return Rotation270, true
	default:
		return Rotation0, false
	}
}

// CameraPosition identifies which sensor produced the frame.
type CameraPosition int

const (
	PositionBack CameraPosition = iota
	PositionFront
)

func (p CameraPosition) String() string {
	if p == PositionFront {
		return "front"
	}
	return "back"
}

// Convention carries the per-platform geometry capabilities supplied by the
// host at initialization. There are no runtime platform checks anywhere else;
// every platform-conditional branch keys off these two flags.
type Convention struct {
	// MirroredStream is true when the analysis stream is already mirrored
	// to match the preview. The orientation table is bypassed entirely.
	MirroredStream bool
	// TransposedFrame is true when the rotation convention transposes the
	// absolute frame's width/height relative to the logical frame.
	TransposedFrame bool
}

// OrientedSize applies the width/height swap convention to the absolute frame
// size. Crop-size derivation and crop-diff computation must both go through
// here so the two stay consistent.
func (c Convention) OrientedSize(s Size) Size {
	if c.TransposedFrame {
		return Size{Width: s.Height, Height: s.Width}
	}
	return s
}

// FrameMetadata describes the geometry of one analysis frame. Immutable once
// emitted; consumed by exactly one transform/render step.
type FrameMetadata struct {
	// AbsoluteSize is the full sensor-sampled frame size, pre-crop.
	AbsoluteSize Size
	Rotation     Rotation
	// CropRect is the sub-region actually visible in the preview.
	// nil means the entire frame is visible.
	CropRect *image.Rectangle
	Position CameraPosition
}

// PreviewGeometry is the size and placement of the rendered preview surface.
// Supplied by the host; changes only on layout/rotation events.
type PreviewGeometry struct {
	PreviewSize Size
	PreviewRect image.Rectangle
}
