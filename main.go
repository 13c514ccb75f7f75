package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"
)

const ticksPerSecond = 30

func main() {
	configPath := flag.String("config", "", "path to an editor config yaml (optional)")
	outPath := flag.String("out", "", "map output path (overrides the config)")
	genPath := flag.String("gen", "", "tengo script that pre-fills the map (optional)")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *outPath != "" {
		cfg.OutputPath = *outPath
	}

	editor, err := NewEditor(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if *genPath != "" {
		src, err := os.ReadFile(*genPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := RunGenerator(src, editor.Grid()); err != nil {
			log.Fatal(err)
		}
	}

	if err := editor.InitUI(); err != nil {
		log.Fatal(err)
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		editor.clipboardReady = true
	}

	if *configPath != "" {
		watcher, err := NewConfigWatcher(*configPath)
		if err != nil {
			log.Printf("config watcher disabled: %v", err)
		} else {
			defer watcher.Close()
			editor.SetWatcher(watcher)
		}
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(ticksPerSecond)

	if err := ebiten.RunGame(editor); err != nil {
		log.Fatal(err)
	}
}
