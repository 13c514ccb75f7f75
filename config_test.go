package main

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Title != "Map Editor" {
		t.Fatalf("title = %q", cfg.Title)
	}
	if cfg.WindowWidth != 800 || cfg.WindowHeight != 600 || cfg.CellSize != 20 {
		t.Fatalf("geometry = %dx%d cell %d", cfg.WindowWidth, cfg.WindowHeight, cfg.CellSize)
	}
	if cfg.GridCols() != 40 || cfg.GridRows() != 30 {
		t.Fatalf("grid = %dx%d, want 40x30", cfg.GridCols(), cfg.GridRows())
	}
	if cfg.OutputPath != "map.txt" {
		t.Fatalf("output path = %q", cfg.OutputPath)
	}
	if cfg.Keys.Place != "P" || cfg.Keys.Erase != "D" {
		t.Fatalf("keys = %+v", cfg.Keys)
	}
}

func TestLoadConfigPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.yaml")
	data := "title: Dungeon Editor\noutput_path: dungeon.txt\ncolors:\n  wall: \"#222222\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Title != "Dungeon Editor" || cfg.OutputPath != "dungeon.txt" {
		t.Fatalf("overrides not applied: %q %q", cfg.Title, cfg.OutputPath)
	}
	if cfg.Colors.Wall != "#222222" {
		t.Fatalf("wall color = %q", cfg.Colors.Wall)
	}
	// untouched fields keep the defaults
	if cfg.WindowWidth != 800 || cfg.CellSize != 20 || cfg.Colors.Background != "#ffffff" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"zero_cell_size", "cell_size: 0\n"},
		{"cell_larger_than_window", "cell_size: 900\n"},
		{"negative_window", "window_width: -1\n"},
		{"empty_output", "output_path: \"\"\n"},
		{"bad_key_name", "keys:\n  place: \"F1\"\n"},
		{"wrong_type", "cell_size: twenty\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "editor.yaml")
			if err := os.WriteFile(path, []byte(c.data), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Fatalf("expected error for %q", c.data)
			}
		})
	}
}

func TestKeyForName(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		want   ebiten.Key
		wantOK bool
	}{
		{"upper_p", "P", ebiten.KeyP, true},
		{"lower_d", "d", ebiten.KeyD, true},
		{"upper_a", "A", ebiten.KeyA, true},
		{"upper_z", "Z", ebiten.KeyZ, true},
		{"digit", "1", 0, false},
		{"empty", "", 0, false},
		{"multi_char", "PD", 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := keyForName(c.in)
			if ok != c.wantOK {
				t.Fatalf("keyForName(%q) ok = %v, want %v", c.in, ok, c.wantOK)
			}
			if ok && got != c.want {
				t.Fatalf("keyForName(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	fallback := color.RGBA{R: 1, G: 2, B: 3, A: 0xff}

	cases := []struct {
		name string
		in   string
		want color.RGBA
	}{
		{"red", "#ff0000", color.RGBA{R: 0xff, A: 0xff}},
		{"gray", "#808080", color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}},
		{"white", "#ffffff", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"missing_hash", "ff0000", fallback},
		{"too_short", "#fff", fallback},
		{"garbage", "#zzzzzz", fallback},
		{"empty", "", fallback},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := parseHexColor(c.in, fallback); got != c.want {
				t.Fatalf("parseHexColor(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}
