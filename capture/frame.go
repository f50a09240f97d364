package capture

import (
	"fmt"
	"time"

	"gocv.io/x/gocv"

	"github.com/overcam/faceoverlay/geometry"
)

// PixelFormat tags the byte layout of an analysis frame. Exactly the variants
// the decoder supports exist; DecodeMat switches over them exhaustively.
type PixelFormat int

const (
	// FormatBGRA is a single interleaved 8-bit BGRA plane.
	FormatBGRA PixelFormat = iota
	// FormatNV21 is a full-resolution Y plane followed by an interleaved
	// half-resolution VU plane.
	FormatNV21
)

func (f PixelFormat) String() string {
	switch f {
	case FormatBGRA:
		return "bgra"
	case FormatNV21:
		return "nv21"
	default:
		return "unknown"
	}
}

// Plane is one plane of raw pixel data.
type Plane struct {
	Data        []byte
	RowStride   int
	PixelStride int
}

// AnalysisFrame is the image buffer delivered to the detector together with
// its geometry metadata. Immutable once emitted by a source.
type AnalysisFrame struct {
	Format     PixelFormat
	Planes     []Plane
	Meta       geometry.FrameMetadata
	CapturedAt time.Time
	Sequence   uint64
}

// DecodeMat converts the frame's pixel data into a BGR Mat for detector
// input. The caller owns the returned Mat and must Close it.
func (f *AnalysisFrame) DecodeMat() (gocv.Mat, error) {
	w := f.Meta.AbsoluteSize.Width
	h := f.Meta.AbsoluteSize.Height
	if w <= 0 || h <= 0 {
		return gocv.Mat{}, fmt.Errorf("decode: frame has no area (%dx%d)", w, h)
	}
	if len(f.Planes) == 0 {
		return gocv.Mat{}, fmt.Errorf("decode: frame has no planes")
	}
	switch f.Format {
	case FormatBGRA:
		if want := w * h * 4; len(f.Planes[0].Data) < want {
			return gocv.Mat{}, fmt.Errorf("decode: bgra plane is %d bytes, need %d", len(f.Planes[0].Data), want)
		}
		raw, err := gocv.NewMatFromBytes(h, w, gocv.MatTypeCV8UC4, f.Planes[0].Data)
		if err != nil {
			return gocv.Mat{}, fmt.Errorf("decode bgra: %w", err)
		}
		defer raw.Close()
		out := gocv.NewMat()
		gocv.CvtColor(raw, &out, gocv.ColorBGRAToBGR)
		return out, nil
	case FormatNV21:
		// Y plane stacked above the interleaved VU plane: h*3/2 rows.
		if want := w * h * 3 / 2; len(f.Planes[0].Data) < want {
			return gocv.Mat{}, fmt.Errorf("decode: nv21 plane is %d bytes, need %d", len(f.Planes[0].Data), want)
		}
		raw, err := gocv.NewMatFromBytes(h*3/2, w, gocv.MatTypeCV8UC1, f.Planes[0].Data)
		if err != nil {
			return gocv.Mat{}, fmt.Errorf("decode nv21: %w", err)
		}
		defer raw.Close()
		out := gocv.NewMat()
		gocv.CvtColor(raw, &out, gocv.ColorYUVToBGRNV21)
		return out, nil
	default:
		return gocv.Mat{}, fmt.Errorf("decode: unsupported pixel format %d", f.Format)
	}
}
