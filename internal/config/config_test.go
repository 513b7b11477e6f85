package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0 {
		t.Error("screen size should be positive")
	}
	if cfg.Gesture.Name != "sweep" {
		t.Errorf("expected gesture sweep, got %s", cfg.Gesture.Name)
	}
	if cfg.FrameRate <= 0 {
		t.Error("frame rate should be positive")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trackball.yaml")

	cfg := DefaultConfig()
	cfg.Screen.Width = 1920
	cfg.Screen.Height = 1080
	cfg.Gesture.Name = "spiral"
	cfg.Gesture.Turns = 5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Screen.Width != 1920 || loaded.Screen.Height != 1080 {
		t.Errorf("screen lost: %+v", loaded.Screen)
	}
	if loaded.Gesture.Name != "spiral" || loaded.Gesture.Turns != 5 {
		t.Errorf("gesture lost: %+v", loaded.Gesture)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGestureSpec(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gesture.Name = "line"
	cfg.Gesture.ToX = 800
	cfg.Gesture.Samples = 60

	spec := cfg.GestureSpec()

	if spec.Name != "line" || spec.ToX != 800 || spec.Samples != 60 {
		t.Errorf("spec mapping lost fields: %+v", spec)
	}
}
