package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if len(cfg.Cloths) != 2 {
		t.Fatalf("default scene should hold two cloths, got %d", len(cfg.Cloths))
	}
	if cfg.Cloths[1].StartX-cfg.Cloths[0].StartX != 200 {
		t.Fatalf("second cloth offset: got %v want 200", cfg.Cloths[1].StartX-cfg.Cloths[0].StartX)
	}
}

func TestLoadConfigEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") failed: %v", err)
	}
	if cfg.WindowW != 800 || cfg.WindowH != 600 {
		t.Fatalf("unexpected default window: %dx%d", cfg.WindowW, cfg.WindowH)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	blob := []byte(`
window_w: 1024
window_h: 768
cloths:
  - width: 5
    height: 4
    spacing: 12
    start_x: 30
    start_y: 40
    elasticity: 8
`)
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		t.Fatalf("write scene file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.WindowW != 1024 || cfg.WindowH != 768 {
		t.Fatalf("window not overridden: %dx%d", cfg.WindowW, cfg.WindowH)
	}
	if len(cfg.Cloths) != 1 {
		t.Fatalf("cloth list not replaced, got %d entries", len(cfg.Cloths))
	}
	c := cfg.Cloths[0]
	if c.Width != 5 || c.Height != 4 || c.Spacing != 12 || c.Elasticity != 8 {
		t.Fatalf("cloth spec mismatch: %+v", c)
	}
}

func TestLoadConfigRejectsBadScene(t *testing.T) {
	cases := map[string]string{
		"no cloths":     "window_w: 800\nwindow_h: 600\ncloths: []\n",
		"zero spacing":  "cloths:\n  - {width: 2, height: 2, spacing: 0, elasticity: 1}\n",
		"negative elas": "cloths:\n  - {width: 2, height: 2, spacing: 10, elasticity: -1}\n",
		"tiny grid":     "cloths:\n  - {width: 0, height: 2, spacing: 10, elasticity: 1}\n",
	}

	for name, blob := range cases {
		path := filepath.Join(t.TempDir(), "scene.yaml")
		if err := os.WriteFile(path, []byte(blob), 0o644); err != nil {
			t.Fatalf("%s: write scene file: %v", name, err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}
