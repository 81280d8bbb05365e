package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.World.RenderDistance != 8 {
		t.Errorf("default render distance = %d, want 8", cfg.World.RenderDistance)
	}
	if cfg.Noise.Octaves != 4 {
		t.Errorf("default octaves = %d, want 4", cfg.Noise.Octaves)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voxworld.yaml")
	data := `
world:
  render_distance: 12
  seed: 99
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.World.RenderDistance != 12 {
		t.Errorf("render distance = %d, want 12", cfg.World.RenderDistance)
	}
	if cfg.World.Seed != 99 {
		t.Errorf("seed = %d, want 99", cfg.World.Seed)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
	// Fields absent from the file keep defaults.
	if cfg.Noise.Octaves != 4 {
		t.Errorf("octaves = %d, want default 4", cfg.Noise.Octaves)
	}
}

func TestLoadClampsRenderDistance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voxworld.yaml")
	data := "world:\n  render_distance: 500\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.World.RenderDistance != 50 {
		t.Errorf("render distance = %d, want clamped 50", cfg.World.RenderDistance)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestClampRenderDistance(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 2}, {2, 2}, {25, 25}, {50, 50}, {51, 50},
	}
	for _, c := range cases {
		if got := ClampRenderDistance(c.in); got != c.want {
			t.Errorf("ClampRenderDistance(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
