package capture

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/overcam/faceoverlay/geometry"
)

// WebcamGrabber reads frames from a V4L/AVFoundation device through OpenCV
// and emits them as BGRA analysis frames.
type WebcamGrabber struct {
	cam      *gocv.VideoCapture
	position geometry.CameraPosition
	rotation geometry.Rotation
	bgr      gocv.Mat
	bgra     gocv.Mat
}

// OpenWebcam opens the given capture device and requests the target analysis
// resolution. The driver may deliver a different size; the real size is
// reported per frame in the metadata.
func OpenWebcam(deviceID int, width, height int, position geometry.CameraPosition, rotation geometry.Rotation) (*WebcamGrabber, error) {
	cam, err := gocv.OpenVideoCapture(deviceID)
	if err != nil {
		return nil, fmt.Errorf("open webcam %d: %w", deviceID, err)
	}
	if width > 0 {
		cam.Set(gocv.VideoCaptureFrameWidth, float64(width))
	}
	if height > 0 {
		cam.Set(gocv.VideoCaptureFrameHeight, float64(height))
	}
	return &WebcamGrabber{
		cam:      cam,
		position: position,
		rotation: rotation,
		bgr:      gocv.NewMat(),
		bgra:     gocv.NewMat(),
	}, nil
}

func (g *WebcamGrabber) Grab() (*AnalysisFrame, error) {
	if ok := g.cam.Read(&g.bgr); !ok || g.bgr.Empty() {
		return nil, fmt.Errorf("webcam read failed")
	}
	gocv.CvtColor(g.bgr, &g.bgra, gocv.ColorBGRToBGRA)
	w := g.bgra.Cols()
	h := g.bgra.Rows()
	data := g.bgra.ToBytes()
	return &AnalysisFrame{
		Format: FormatBGRA,
		Planes: []Plane{{Data: data, RowStride: w * 4, PixelStride: 4}},
		Meta: geometry.FrameMetadata{
			AbsoluteSize: geometry.Size{Width: w, Height: h},
			Rotation:     g.rotation,
			Position:     g.position,
		},
	}, nil
}

func (g *WebcamGrabber) Close() error {
	g.bgr.Close()
	g.bgra.Close()
	return g.cam.Close()
}
