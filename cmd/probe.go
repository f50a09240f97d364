package cmd

import (
	"encoding/json"
	"image"
	"os"

	"github.com/spf13/cobra"

	"github.com/overcam/faceoverlay/geometry"
)

// probeReport is the JSON shape printed by the probe command.
type probeReport struct {
	CroppedSize geometry.Size              `json:"cropped_size"`
	ScaleRatio  float64                    `json:"scale_ratio"`
	FlipXY      bool                       `json:"flip_xy"`
	AxisFlip    geometry.AxisFlip          `json:"axis_flip"`
	Translation [2]float64                 `json:"translation"`
	Corners     map[string]geometry.PointF `json:"corners"`
}

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Dump the geometry mapping for the configured camera and preview",
	Long: `Computes the crop/scale projection, the orientation entry, and where the
four corners of the visible frame land on the preview surface. Useful when a
host reports misaligned overlays.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conv := cfg.Convention()
		meta := geometry.FrameMetadata{
			AbsoluteSize: geometry.Size{Width: cfg.AnalysisWidth, Height: cfg.AnalysisHeight},
			Rotation:     cfg.Rotation(),
			Position:     cfg.Position(),
		}
		preview := cfg.Preview()
		proj, err := geometry.Resolve(meta, preview, conv)
		if err != nil {
			return err
		}
		entry := geometry.LookupOrientation(meta.Rotation, meta.Position, conv)
		dx, dy := entry.CanvasTranslation(preview.PreviewSize)

		corners := map[string]image.Point{
			"top_left":     image.Pt(0, 0),
			"top_right":    image.Pt(proj.CroppedSize.Width, 0),
			"bottom_left":  image.Pt(0, proj.CroppedSize.Height),
			"bottom_right": image.Pt(proj.CroppedSize.Width, proj.CroppedSize.Height),
		}
		report := probeReport{
			CroppedSize: proj.CroppedSize,
			ScaleRatio:  proj.ScaleRatio,
			FlipXY:      entry.FlipXY,
			AxisFlip:    entry.Flip,
			Translation: [2]float64{dx, dy},
			Corners:     make(map[string]geometry.PointF, len(corners)),
		}
		for name, c := range corners {
			p, err := geometry.TransformPoint(c, proj, entry.FlipXY, meta.AbsoluteSize, preview.PreviewSize, conv)
			if err != nil {
				return err
			}
			report.Corners[name] = entry.Apply(p, preview.PreviewSize)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
}
