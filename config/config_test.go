package config

import (
	"path/filepath"
	"testing"

	"github.com/overcam/faceoverlay/geometry"
)

func TestValidate_ClampsBadValues(t *testing.T) {
	cfg := &Config{
		AnalysisWidth:  -10,
		MaxAnalysisFPS: -1,
		CameraPosition: "sideways",
		CameraRotation: 45,
		StrokeWidth:    0,
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.AnalysisWidth != 640 {
		t.Fatalf("analysis width: got %d, want 640", cfg.AnalysisWidth)
	}
	if cfg.MaxAnalysisFPS != 15 {
		t.Fatalf("max fps: got %v, want 15", cfg.MaxAnalysisFPS)
	}
	if cfg.CameraPosition != "back" {
		t.Fatalf("position: got %q, want back", cfg.CameraPosition)
	}
	if cfg.CameraRotation != 0 {
		t.Fatalf("rotation: got %d, want 0", cfg.CameraRotation)
	}
	if cfg.StrokeWidth != 2 {
		t.Fatalf("stroke width: got %d, want 2", cfg.StrokeWidth)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AnalysisWidth != 640 || cfg.PreviewWidth != 1000 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.json")
	cfg := DefaultConfig()
	cfg.CameraPosition = "front"
	cfg.CameraRotation = 270
	cfg.MirroredStream = true
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Position() != geometry.PositionFront {
		t.Fatalf("position: got %v, want front", loaded.Position())
	}
	if loaded.Rotation() != geometry.Rotation270 {
		t.Fatalf("rotation: got %v, want 270", loaded.Rotation())
	}
	if !loaded.Convention().MirroredStream {
		t.Fatal("mirrored stream flag lost in round trip")
	}
}
