package detect

import (
	"image"

	"github.com/overcam/faceoverlay/capture"
	"github.com/overcam/faceoverlay/geometry"
)

// ContourKind names a facial feature outline. The numeric order is also the
// rendering order within a frame.
type ContourKind int

const (
	ContourFaceOval ContourKind = iota
	ContourLeftEyebrowTop
	ContourLeftEyebrowBottom
	ContourRightEyebrowTop
	ContourRightEyebrowBottom
	ContourLeftEye
	ContourRightEye
	ContourUpperLipTop
	ContourUpperLipBottom
	ContourLowerLipTop
	ContourLowerLipBottom
	ContourNoseBridge
	ContourNoseBottom
	ContourLeftCheek
	ContourRightCheek
)

func (k ContourKind) String() string {
	switch k {
	case ContourFaceOval:
		return "faceOval"
	case ContourLeftEyebrowTop:
		return "leftEyebrowTop"
	case ContourLeftEyebrowBottom:
		return "leftEyebrowBottom"
	case ContourRightEyebrowTop:
		return "rightEyebrowTop"
	case ContourRightEyebrowBottom:
		return "rightEyebrowBottom"
	case ContourLeftEye:
		return "leftEye"
	case ContourRightEye:
		return "rightEye"
	case ContourUpperLipTop:
		return "upperLipTop"
	case ContourUpperLipBottom:
		return "upperLipBottom"
	case ContourLowerLipTop:
		return "lowerLipTop"
	case ContourLowerLipBottom:
		return "lowerLipBottom"
	case ContourNoseBridge:
		return "noseBridge"
	case ContourNoseBottom:
		return "noseBottom"
	case ContourLeftCheek:
		return "leftCheek"
	case ContourRightCheek:
		return "rightCheek"
	default:
		return "unknown"
	}
}

// Contour is an ordered point sequence in analysis-frame pixels outlining one
// facial feature. A contour with no points is absent.
type Contour struct {
	Kind   ContourKind
	Points []image.Point
}

// Empty reports whether the contour carries no landmark points.
func (c Contour) Empty() bool { return len(c.Points) == 0 }

// Face is the ordered set of contours detected for one face. Detectors emit
// contours in ascending ContourKind order; absent contours are omitted.
type Face struct {
	Contours []Contour
}

// Result is the output of one analyzed frame: the detected faces plus the
// geometry metadata of the frame they were detected in. Immutable once
// emitted.
type Result struct {
	Faces []Face
	Frame geometry.FrameMetadata
}

// Detector turns an analysis frame into a detection result. Implementations
// own their decode path; the geometry layer never inspects pixels.
type Detector interface {
	Detect(frame *capture.AnalysisFrame) (Result, error)
	Close() error
}
