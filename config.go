package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the editor settings. Zero or missing fields fall back to the
// defaults, which reproduce the classic 800x600 / 20px geometry.
type Config struct {
	Title        string      `yaml:"title"`
	WindowWidth  int         `yaml:"window_width"`
	WindowHeight int         `yaml:"window_height"`
	CellSize     int         `yaml:"cell_size"`
	OutputPath   string      `yaml:"output_path"`
	Colors       ColorConfig `yaml:"colors"`
	Keys         KeyConfig   `yaml:"keys"`
}

// ColorConfig holds display colors as "#rrggbb" hex strings.
type ColorConfig struct {
	Background string `yaml:"background"`
	GridLine   string `yaml:"grid_line"`
	Wall       string `yaml:"wall"`
	Button     string `yaml:"button"`
	ButtonText string `yaml:"button_text"`
}

// KeyConfig maps actions to single-letter key names.
type KeyConfig struct {
	Place string `yaml:"place"`
	Erase string `yaml:"erase"`
	Copy  string `yaml:"copy"`
}

func DefaultConfig() Config {
	return Config{
		Title:        "Map Editor",
		WindowWidth:  800,
		WindowHeight: 600,
		CellSize:     20,
		OutputPath:   "map.txt",
		Colors: ColorConfig{
			Background: "#ffffff",
			GridLine:   "#808080",
			Wall:       "#000000",
			Button:     "#ff0000",
			ButtonText: "#ffffff",
		},
		Keys: KeyConfig{
			Place: "P",
			Erase: "D",
			Copy:  "C",
		},
	}
}

// LoadConfig reads a yaml config from path, layered over the defaults.
// An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.CellSize <= 0 || c.CellSize > c.WindowWidth || c.CellSize > c.WindowHeight {
		return fmt.Errorf("invalid cell size: %d", c.CellSize)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path must not be empty")
	}
	for _, name := range []string{c.Keys.Place, c.Keys.Erase, c.Keys.Copy} {
		if _, ok := keyForName(name); !ok {
			return fmt.Errorf("unknown key name %q", name)
		}
	}
	return nil
}

// GridCols and GridRows derive the grid dimensions from the window geometry.
func (c Config) GridCols() int { return c.WindowWidth / c.CellSize }
func (c Config) GridRows() int { return c.WindowHeight / c.CellSize }

// keyForName resolves a single-letter key name ("P") to an ebiten key.
func keyForName(name string) (ebiten.Key, bool) {
	if len(name) != 1 {
		return 0, false
	}
	r := name[0]
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < 'A' || r > 'Z' {
		return 0, false
	}
	return ebiten.KeyA + ebiten.Key(r-'A'), true
}

// parseHexColor parses a color in the form #rrggbb. Returns fallback if parse fails.
func parseHexColor(s string, fallback color.RGBA) color.RGBA {
	if len(s) != 7 || s[0] != '#' {
		return fallback
	}
	var ri, gi, bi uint32
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &ri, &gi, &bi); err != nil {
		return fallback
	}
	return color.RGBA{R: uint8(ri), G: uint8(gi), B: uint8(bi), A: 0xff}
}
