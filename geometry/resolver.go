package geometry

import "errors"

var (
	// ErrEmptyFrame reports a frame whose visible region has no area.
	ErrEmptyFrame = errors.New("geometry: visible frame region has no area")
	// ErrEmptyPreview reports a preview surface with no width.
	ErrEmptyPreview = errors.New("geometry: preview surface has no width")
)

// Projection holds the derived per-frame mapping factors: the size of the
// analysis-frame region visible in the preview and the scale between that
// region and the preview's rendered width.
type Projection struct {
	CroppedSize Size
	ScaleRatio  float64
}

// Resolve derives the projection for one frame. A nil or zero-area crop rect
// falls back to the full (orientation-adjusted) absolute size rather than
// erroring. Non-positive dimensions anywhere are an error and the caller
// skips rendering for the frame.
func Resolve(meta FrameMetadata, preview PreviewGeometry, conv Convention) (Projection, error) {
	cropped := conv.OrientedSize(meta.AbsoluteSize)
	if r := meta.CropRect; r != nil && r.Dx() > 0 && r.Dy() > 0 {
		cropped = Size{Width: r.Dx(), Height: r.Dy()}
	}
	if cropped.Width <= 0 || cropped.Height <= 0 {
		return Projection{}, ErrEmptyFrame
	}
	if preview.PreviewSize.Width <= 0 || preview.PreviewSize.Height <= 0 {
		return Projection{}, ErrEmptyPreview
	}
	ratio := float64(preview.PreviewSize.Width) / float64(cropped.Width)
	return Projection{CroppedSize: cropped, ScaleRatio: ratio}, nil
}
