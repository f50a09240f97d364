package config

import (
	"encoding/json"
	"os"

	"github.com/overcam/faceoverlay/geometry"
)

// Config holds runtime configuration for the overlay pipeline.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Analysis parameters
	AnalysisWidth  int     `json:"analysis_width"`
	AnalysisHeight int     `json:"analysis_height"`
	MaxAnalysisFPS float64 `json:"max_analysis_fps"`

	// Initial camera description
	CameraPosition string `json:"camera_position"` // "back" or "front"
	CameraRotation int    `json:"camera_rotation"` // 0, 90, 180, 270

	// Host platform capabilities
	MirroredStream  bool `json:"mirrored_stream"`
	TransposedFrame bool `json:"transposed_frame"`

	// Preview surface
	PreviewWidth  int `json:"preview_width"`
	PreviewHeight int `json:"preview_height"`

	// Overlay styling
	StrokeWidth  int `json:"stroke_width"`
	MarkerRadius int `json:"marker_radius"`

	// Detector
	CascadePath string `json:"cascade_path"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:          false,
		AnalysisWidth:  640,
		AnalysisHeight: 480,
		MaxAnalysisFPS: 15,
		CameraPosition: "back",
		CameraRotation: 0,
		PreviewWidth:   1000,
		PreviewHeight:  1000,
		StrokeWidth:    2,
		MarkerRadius:   3,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.AnalysisWidth <= 0 {
		c.AnalysisWidth = 640
	}
	if c.AnalysisHeight <= 0 {
		c.AnalysisHeight = 480
	}
	if c.MaxAnalysisFPS < 0 {
		c.MaxAnalysisFPS = 15
	}
	if c.CameraPosition != "front" {
		c.CameraPosition = "back"
	}
	if _, ok := geometry.RotationFromDegrees(c.CameraRotation); !ok {
		c.CameraRotation = 0
	}
	if c.PreviewWidth <= 0 {
		c.PreviewWidth = 1000
	}
	if c.PreviewHeight <= 0 {
		c.PreviewHeight = 1000
	}
	if c.StrokeWidth <= 0 {
		c.StrokeWidth = 2
	}
	if c.MarkerRadius <= 0 {
		c.MarkerRadius = 3
	}
	return nil
}

// Position returns the configured camera position.
func (c *Config) Position() geometry.CameraPosition {
	if c.CameraPosition == "front" {
		return geometry.PositionFront
	}
	return geometry.PositionBack
}

// Rotation returns the configured frame rotation.
func (c *Config) Rotation() geometry.Rotation {
	r, _ := geometry.RotationFromDegrees(c.CameraRotation)
	return r
}

// Convention returns the platform capability flags for the geometry layer.
func (c *Config) Convention() geometry.Convention {
	return geometry.Convention{
		MirroredStream:  c.MirroredStream,
		TransposedFrame: c.TransposedFrame,
	}
}

// Preview returns the preview surface geometry.
func (c *Config) Preview() geometry.PreviewGeometry {
	return geometry.PreviewGeometry{
		PreviewSize: geometry.Size{Width: c.PreviewWidth, Height: c.PreviewHeight},
	}
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
