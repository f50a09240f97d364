package detect

import (
	"fmt"
	"image"
	"math"

	"gocv.io/x/gocv"

	"github.com/overcam/faceoverlay/capture"
)

const ovalSegments = 16

// CascadeDetector adapts an OpenCV Haar cascade to the Detector contract.
// Cascades yield bounding boxes rather than landmarks, so the emitted
// contours are coarse: an elliptical face oval sampled from the box plus eye
// and nose-bottom markers at canonical positions within it. It is a stand-in
// for a landmark model with the same output shape.
type CascadeDetector struct {
	classifier gocv.CascadeClassifier
}

// NewCascadeDetector loads a Haar cascade XML file.
func NewCascadeDetector(cascadePath string) (*CascadeDetector, error) {
	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(cascadePath) {
		classifier.Close()
		return nil, fmt.Errorf("load cascade %q failed", cascadePath)
	}
	return &CascadeDetector{classifier: classifier}, nil
}

func (d *CascadeDetector) Detect(frame *capture.AnalysisFrame) (Result, error) {
	mat, err := frame.DecodeMat()
	if err != nil {
		return Result{}, err
	}
	defer mat.Close()

	rects := d.classifier.DetectMultiScale(mat)
	faces := make([]Face, 0, len(rects))
	for _, r := range rects {
		faces = append(faces, faceFromBox(r))
	}
	return Result{Faces: faces, Frame: frame.Meta}, nil
}

func (d *CascadeDetector) Close() error { return d.classifier.Close() }

// faceFromBox synthesizes contours from a face bounding box, emitted in
// ascending ContourKind order.
func faceFromBox(r image.Rectangle) Face {
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	rx := float64(r.Dx()) / 2
	ry := float64(r.Dy()) / 2

	oval := make([]image.Point, 0, ovalSegments)
	for i := 0; i < ovalSegments; i++ {
		a := 2 * math.Pi * float64(i) / ovalSegments
		oval = append(oval, image.Pt(
			int(math.Round(cx+rx*math.Cos(a))),
			int(math.Round(cy+ry*math.Sin(a))),
		))
	}

	leftEye := image.Pt(int(math.Round(cx-rx*0.4)), int(math.Round(cy-ry*0.25)))
	rightEye := image.Pt(int(math.Round(cx+rx*0.4)), int(math.Round(cy-ry*0.25)))
	noseBottom := image.Pt(int(math.Round(cx)), int(math.Round(cy+ry*0.2)))

	return Face{Contours: []Contour{
		{Kind: ContourFaceOval, Points: oval},
		{Kind: ContourLeftEye, Points: []image.Point{leftEye}},
		{Kind: ContourRightEye, Points: []image.Point{rightEye}},
		{Kind: ContourNoseBottom, Points: []image.Point{noseBottom}},
	}}
}
