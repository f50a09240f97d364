package capture

import (
	"fmt"

	"github.com/vova616/screenshot"

	"github.com/overcam/faceoverlay/geometry"
)

// ScreenGrabber treats the desktop as a fixed, unmirrored back camera. Useful
// for exercising the pipeline on machines without camera hardware.
type ScreenGrabber struct{}

// NewScreenGrabber constructs a screen grabber for the active monitor.
func NewScreenGrabber() *ScreenGrabber { return &ScreenGrabber{} }

func (g *ScreenGrabber) Grab() (*AnalysisFrame, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, fmt.Errorf("capture screen: %w", err)
	}
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	// The screenshot library returns RGBA; swizzle into a pooled BGRA plane.
	buf := acquirePlane(w * h * 4)
	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+w*4]
		dst := buf[y*w*4 : (y+1)*w*4]
		for x := 0; x < w*4; x += 4 {
			dst[x+0] = src[x+2]
			dst[x+1] = src[x+1]
			dst[x+2] = src[x+0]
			dst[x+3] = src[x+3]
		}
	}
	return &AnalysisFrame{
		Format: FormatBGRA,
		Planes: []Plane{{Data: buf, RowStride: w * 4, PixelStride: 4}},
		Meta: geometry.FrameMetadata{
			AbsoluteSize: geometry.Size{Width: w, Height: h},
			Rotation:     geometry.Rotation0,
			Position:     geometry.PositionBack,
		},
	}, nil
}

func (g *ScreenGrabber) Close() error { return nil }
