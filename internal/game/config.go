package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type ClothSpec struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Spacing    float64 `yaml:"spacing"`
	StartX     float64 `yaml:"start_x"`
	StartY     float64 `yaml:"start_y"`
	Elasticity float64 `yaml:"elasticity"`
}

type Config struct {
	WindowW int `yaml:"window_w"`
	WindowH int `yaml:"window_h"`

	// Optional backdrop image path; empty means plain clear color.
	Backdrop string `yaml:"backdrop"`

	Cloths []ClothSpec `yaml:"cloths"`
}

// DefaultConfig is the two-cloth demo scene: side-by-side 20x20 grids
// hanging from the upper half of an 800x600 window.
func DefaultConfig() Config {
	const (
		winW, winH = 800, 600
		gridW      = 20
		gridH      = 20
		spacing    = 10.0
	)
	base := ClothSpec{
		Width:      gridW,
		Height:     gridH,
		Spacing:    spacing,
		StartX:     winW/2 - gridW*spacing,
		StartY:     winH / 10,
		Elasticity: 10.0,
	}
	second := base
	second.StartX += 200

	return Config{
		WindowW: winW,
		WindowH: winH,
		Cloths:  []ClothSpec{base, second},
	}
}

// LoadConfig reads a yaml scene file over the defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	blob, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read scene config: %w", err)
	}
	if err := yaml.Unmarshal(blob, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode scene config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid scene config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.WindowW <= 0 || c.WindowH <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowW, c.WindowH)
	}
	if len(c.Cloths) == 0 {
		return fmt.Errorf("scene has no cloths")
	}
	for i, spec := range c.Cloths {
		if spec.Width < 1 || spec.Height < 1 {
			return fmt.Errorf("cloth %d: grid must be at least 1x1, got %dx%d", i, spec.Width, spec.Height)
		}
		if spec.Spacing <= 0 {
			return fmt.Errorf("cloth %d: spacing must be positive, got %v", i, spec.Spacing)
		}
		if spec.Elasticity < 0 {
			return fmt.Errorf("cloth %d: elasticity must be >= 0, got %v", i, spec.Elasticity)
		}
	}
	return nil
}
