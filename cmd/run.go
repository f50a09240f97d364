package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/overcam/faceoverlay/app"
	"github.com/overcam/faceoverlay/capture"
	"github.com/overcam/faceoverlay/detect"
)

var (
	sourceName  string
	deviceID    int
	cascadeFlag string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the live preview with the face contour overlay",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cascadeFlag != "" {
			cfg.CascadePath = cascadeFlag
		}
		if cfg.CascadePath == "" {
			return fmt.Errorf("no cascade model configured; set cascade_path or --cascade")
		}
		detector, err := detect.NewCascadeDetector(cfg.CascadePath)
		if err != nil {
			return err
		}

		grabber, err := openGrabber()
		if err != nil {
			detector.Close()
			return err
		}
		source := capture.NewFrameSource(grabber, logger)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		defer grabber.Close()

		container := app.BuildContainer(cfg, logger, source, detector)
		logger.Info("pipeline starting",
			"source", sourceName,
			"max_fps", cfg.MaxAnalysisFPS,
			"position", cfg.CameraPosition,
			"rotation", cfg.CameraRotation,
		)
		return container.Run(ctx)
	},
}

func openGrabber() (capture.FrameGrabber, error) {
	switch sourceName {
	case "webcam":
		return capture.OpenWebcam(deviceID, cfg.AnalysisWidth, cfg.AnalysisHeight, cfg.Position(), cfg.Rotation())
	case "screen":
		return capture.NewScreenGrabber(), nil
	default:
		return nil, fmt.Errorf("unknown source %q (want webcam or screen)", sourceName)
	}
}

func init() {
	runCmd.Flags().StringVar(&sourceName, "source", "webcam", "frame source: webcam or screen")
	runCmd.Flags().IntVar(&deviceID, "device", 0, "webcam device id")
	runCmd.Flags().StringVar(&cascadeFlag, "cascade", "", "path to a Haar cascade XML (overrides config)")
	rootCmd.AddCommand(runCmd)
}
