package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/overcam/faceoverlay/config"
)

// Version is the application version.
const Version = "0.0.1"

var (
	cfgPath string
	debug   bool

	// cfg and logger are shared by subcommands, populated in the
	// persistent pre-run.
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:     "faceoverlay",
	Short:   "Face contour overlay pipeline for live camera previews",
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config %q: %w", cfgPath, err)
		}
		if debug {
			cfg.Debug = true
		}
		level := slog.LevelInfo
		if cfg.Debug {
			level = slog.LevelDebug
		}
		logger = newLogger(level)
		return nil
	},
}

// newLogger returns a structured slog.Logger with the given level.
func newLogger(level slog.Leveler) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "faceoverlay.json", "path to the JSON configuration file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
