// Package overlay turns detection results into draw commands against a 2D
// canvas confined to the preview surface.
package overlay

import (
	"github.com/overcam/faceoverlay/detect"
	"github.com/overcam/faceoverlay/feed"
	"github.com/overcam/faceoverlay/geometry"
)

// Polygon is one contour re-projected into rendering-surface coordinates.
type Polygon struct {
	Kind   detect.ContourKind
	Points []geometry.PointF
}

// BuildPolygons transforms every contour of every face in the render frame
// into surface-space polygons. Absent contours are dropped. The output order
// is faces in detector order, contours in stored order, so a frame renders
// identically however often it is rebuilt.
//
// The orientation entry's canvas pre-transform is folded into each point;
// the Mat canvas carries no transform state of its own.
func BuildPolygons(rf feed.RenderFrame) ([]Polygon, error) {
	meta := rf.Result.Frame
	conv := rf.State.Convention
	proj, err := geometry.Resolve(meta, rf.State.Preview, conv)
	if err != nil {
		return nil, err
	}
	entry := geometry.LookupOrientation(meta.Rotation, meta.Position, conv)
	surface := rf.State.Preview.PreviewSize

	var polys []Polygon
	for _, face := range rf.Result.Faces {
		for _, contour := range face.Contours {
			if contour.Empty() {
				continue
			}
			points := make([]geometry.PointF, 0, len(contour.Points))
			for _, raw := range contour.Points {
				p, err := geometry.TransformPoint(raw, proj, entry.FlipXY, meta.AbsoluteSize, surface, conv)
				if err != nil {
					return nil, err
				}
				points = append(points, entry.Apply(p, surface))
			}
			polys = append(polys, Polygon{Kind: contour.Kind, Points: points})
		}
	}
	return polys, nil
}
