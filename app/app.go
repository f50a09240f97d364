package app

import (
	"context"
	"image"
	"time"

	"gocv.io/x/gocv"
)

const framePumpInterval = 15 * time.Millisecond

// Run owns the preview window and canvas Mat and is the single consumer of
// the feed's redraw signal. Frames are pumped from the source to the analyzer
// off the render path; the transform+render step runs here, synchronously.
// Returns when ctx is cancelled or the window is closed with Esc.
func (c *Container) Run(ctx context.Context) error {
	window := gocv.NewWindow("faceoverlay")
	defer window.Close()

	canvas := gocv.NewMatWithSize(c.Config.PreviewHeight, c.Config.PreviewWidth, gocv.MatTypeCV8UC3)
	defer canvas.Close()

	c.Source.Start()
	defer func() {
		c.Analyzer.Stop()
		c.Source.Stop()
		c.Feed.Close()
		if err := c.Detector.Close(); err != nil && c.Logger != nil {
			c.Logger.Error("detector close", "error", err)
		}
	}()

	pump := time.NewTicker(framePumpInterval)
	defer pump.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-pump.C:
			if frame := c.Source.LatestFrame(); frame != nil {
				c.Analyzer.Offer(frame)
			}
		case <-c.redrawCh:
			rf, ok := c.Feed.Snapshot()
			if !ok {
				continue
			}
			c.blitPreview(&canvas)
			c.Renderer.Draw(&canvas, rf)
			window.IMShow(canvas)
			if window.WaitKey(1) == 27 {
				return nil
			}
		}
	}
}

// blitPreview paints the latest camera frame into the canvas as the preview
// background, letterbox-scaled the same way the overlay geometry expects.
// Decode failures leave the previous canvas contents in place.
func (c *Container) blitPreview(canvas *gocv.Mat) {
	frame := c.Source.LatestFrame()
	if frame == nil {
		return
	}
	mat, err := frame.DecodeMat()
	if err != nil {
		if c.Logger != nil {
			c.Logger.Warn("preview decode", "error", err)
		}
		return
	}
	defer mat.Close()

	// Width-based scale with vertical centering, matching the transform's
	// letterbox translation.
	ratio := float64(canvas.Cols()) / float64(mat.Cols())
	h := int(float64(mat.Rows()) * ratio)
	if h <= 0 {
		return
	}
	scaled := gocv.NewMat()
	defer scaled.Close()
	gocv.Resize(mat, &scaled, image.Pt(canvas.Cols(), h), 0, 0, gocv.InterpolationLinear)

	canvas.SetTo(gocv.NewScalar(0, 0, 0, 0))
	if h <= canvas.Rows() {
		y := (canvas.Rows() - h) / 2
		roi := canvas.Region(image.Rect(0, y, canvas.Cols(), y+h))
		scaled.CopyTo(&roi)
		roi.Close()
		return
	}
	top := (h - canvas.Rows()) / 2
	center := scaled.Region(image.Rect(0, top, scaled.Cols(), top+canvas.Rows()))
	center.CopyTo(canvas)
	center.Close()
}
