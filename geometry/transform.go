package geometry

import "image"

// TransformPoint re-projects one detected point from analysis-frame pixels
// into rendering-surface coordinates. Pure: identical inputs produce
// bit-identical output.
//
// Steps: recenter the crop window inside the full frame, optionally swap the
// point's axes, scale crop-space to preview pixels, then center the
// letterboxed preview inside the surface. The same width/height convention
// used for crop derivation applies to the absolute size here.
func TransformPoint(pt image.Point, proj Projection, flipXY bool, absolute Size, surface Size, conv Convention) (PointF, error) {
	if proj.CroppedSize.Width <= 0 || proj.CroppedSize.Height <= 0 {
		return PointF{}, ErrEmptyFrame
	}
	oriented := conv.OrientedSize(absolute)
	diffX := float64(oriented.Width - proj.CroppedSize.Width)
	diffY := float64(oriented.Height - proj.CroppedSize.Height)

	x := float64(pt.X)
	y := float64(pt.Y)
	if flipXY {
		x, y = y, x
	}

	x -= diffX / 2
	y -= diffY / 2

	x *= proj.ScaleRatio
	y *= proj.ScaleRatio

	x += (float64(surface.Width) - float64(proj.CroppedSize.Width)*proj.ScaleRatio) / 2
	y += (float64(surface.Height) - float64(proj.CroppedSize.Height)*proj.ScaleRatio) / 2

	return PointF{X: x, Y: y}, nil
}
