package geometry

// AxisFlip is a ±1 scale per canvas axis.
type AxisFlip struct {
	X int
	Y int
}

// OrientationEntry describes how raw detector coordinates and the rendering
// surface must be adjusted for one rotation × camera-position combination on
// hosts whose analysis stream is not pre-mirrored.
type OrientationEntry struct {
	// FlipXY swaps raw (x,y) to (y,x) before the crop/scale transform.
	FlipXY bool
	// Flip is the canvas pre-transform's axis scale.
	Flip AxisFlip
}

// Identity is the entry used when the analysis stream already matches the
// preview's presentation.
var Identity = OrientationEntry{Flip: AxisFlip{X: 1, Y: 1}}

type orientationKey struct {
	rot Rotation
	pos CameraPosition
}

// The canvas pre-transform is scale(Flip) followed by a translation that pulls
// flipped axes back onto the surface: -W when X is flipped, -H when Y is.
var orientationTable = map[orientationKey]OrientationEntry{
	{Rotation0, PositionBack}:    {FlipXY: true, Flip: AxisFlip{-1, 1}},
	{Rotation0, PositionFront}:   {FlipXY: true, Flip: AxisFlip{-1, -1}},
	{Rotation90, PositionBack}:   {Flip: AxisFlip{1, 1}},
	{Rotation90, PositionFront}:  {Flip: AxisFlip{1, -1}},
	{Rotation180, PositionBack}:  {FlipXY: true, Flip: AxisFlip{1, -1}},
	{Rotation180, PositionFront}: {FlipXY: true, Flip: AxisFlip{1, 1}},
	{Rotation270, PositionBack}:  {Flip: AxisFlip{-1, -1}},
	{Rotation270, PositionFront}: {Flip: AxisFlip{-1, 1}},
}

// LookupOrientation returns the entry for the given rotation and camera
// position. Mirrored-stream hosts always get Identity without consulting the
// table.
func LookupOrientation(rot Rotation, pos CameraPosition, conv Convention) OrientationEntry {
	if conv.MirroredStream {
		return Identity
	}
	if e, ok := orientationTable[orientationKey{rot, pos}]; ok {
		return e
	}
	return Identity
}

// CanvasTranslation returns the translation component of the canvas
// pre-transform for a surface of the given size.
func (e OrientationEntry) CanvasTranslation(surface Size) (dx, dy float64) {
	if e.Flip.X < 0 {
		dx = -float64(surface.Width)
	}
	if e.Flip.Y < 0 {
		dy = -float64(surface.Height)
	}
	return dx, dy
}

// Apply maps a surface-space point through the canvas pre-transform. The Mat
// canvas has no transform stack, so the scale-then-translate the surface would
// carry is folded into each point instead: p' = flip*(p + translate).
func (e OrientationEntry) Apply(p PointF, surface Size) PointF {
	dx, dy := e.CanvasTranslation(surface)
	return PointF{
		X: float64(e.Flip.X) * (p.X + dx),
		Y: float64(e.Flip.Y) * (p.Y + dy),
	}
}
