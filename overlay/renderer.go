package overlay

import (
	"image"
	"image/color"
	"log/slog"
	"math"

	"gocv.io/x/gocv"

	"github.com/overcam/faceoverlay/feed"
	"github.com/overcam/faceoverlay/geometry"
)

// Renderer issues the overlay draw calls for one render frame: a stroked
// outline per contour polygon and a small marker at each contributing point.
type Renderer struct {
	logger       *slog.Logger
	strokeColor  color.RGBA
	markerColor  color.RGBA
	strokeWidth  int
	markerRadius int
}

// NewRenderer constructs a renderer with the given stroke/marker sizing.
// Non-positive sizes fall back to 2px strokes and 3px markers.
func NewRenderer(strokeWidth, markerRadius int, logger *slog.Logger) *Renderer {
	if strokeWidth <= 0 {
		strokeWidth = 2
	}
	if markerRadius <= 0 {
		markerRadius = 3
	}
	return &Renderer{
		logger:       logger,
		strokeColor:  color.RGBA{0, 255, 0, 255},
		markerColor:  color.RGBA{255, 0, 0, 255},
		strokeWidth:  strokeWidth,
		markerRadius: markerRadius,
	}
}

// Draw renders the frame's polygons onto the canvas. Geometry guard failures
// (empty preview, empty frame) skip the frame: the canvas is left untouched
// and the previous overlay remains on screen.
func (r *Renderer) Draw(canvas *gocv.Mat, rf feed.RenderFrame) {
	polys, err := BuildPolygons(rf)
	if err != nil {
		if r.logger != nil {
			r.logger.Warn("overlay skipped", "error", err)
		}
		return
	}
	for _, poly := range polys {
		pts := roundPoints(poly.Points)
		if len(pts) > 1 {
			for i := range pts {
				gocv.Line(canvas, pts[i], pts[(i+1)%len(pts)], r.strokeColor, r.strokeWidth)
			}
		}
		for _, p := range pts {
			gocv.Circle(canvas, p, r.markerRadius, r.markerColor, -1)
		}
	}
}

func roundPoints(pts []geometry.PointF) []image.Point {
	out := make([]image.Point, 0, len(pts))
	for _, p := range pts {
		out = append(out, image.Pt(int(math.Round(p.X)), int(math.Round(p.Y))))
	}
	return out
}
