package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"mapeditor/grid"
)

// Mode selects what a click does to a cell.
type Mode int

const (
	ModePlace Mode = iota
	ModeErase
)

func (m Mode) String() string {
	switch m {
	case ModePlace:
		return "Place"
	case ModeErase:
		return "Erase"
	default:
		return "Unknown"
	}
}

// Editor owns all editor state: the grid, the input mode, and the rendering
// resources. It implements ebiten.Game and lives from startup to window close.
type Editor struct {
	cfg  Config
	grid *grid.Grid

	mode     Mode
	keyPlace ebiten.Key
	keyErase ebiten.Key
	keyCopy  ebiten.Key

	clipboardReady bool

	ui    *ebitenui.UI
	watch *ConfigWatcher

	background  color.RGBA
	wallImg     *ebiten.Image
	borderImg   *ebiten.Image
	hoverImg    *ebiten.Image
	imagesDirty bool
}

// NewEditor builds the editor state without touching the display, so it is
// usable headless. Call InitUI before ebiten.RunGame.
func NewEditor(cfg Config) (*Editor, error) {
	g, err := grid.New(cfg.GridCols(), cfg.GridRows())
	if err != nil {
		return nil, err
	}
	e := &Editor{
		cfg:  cfg,
		grid: g,
		mode: ModePlace,
	}
	e.applyConfig(cfg)
	return e, nil
}

// InitUI constructs the ebitenui widgets; must run before the game loop starts.
func (e *Editor) InitUI() error {
	ui, err := BuildEditorUI(e.cfg, e.saveMap)
	if err != nil {
		return err
	}
	e.ui = ui
	return nil
}

// Grid exposes the editor's grid for startup generators.
func (e *Editor) Grid() *grid.Grid {
	return e.grid
}

// SetWatcher attaches a config watcher whose events are drained each tick.
func (e *Editor) SetWatcher(w *ConfigWatcher) {
	e.watch = w
}

// applyConfig takes over the non-geometry settings from cfg. Grid dimensions
// and cell size are fixed for the process lifetime, so geometry fields of a
// reloaded config are ignored.
func (e *Editor) applyConfig(cfg Config) {
	e.cfg.Title = cfg.Title
	e.cfg.OutputPath = cfg.OutputPath
	e.cfg.Colors = cfg.Colors
	e.cfg.Keys = cfg.Keys

	e.keyPlace, _ = keyForName(cfg.Keys.Place)
	e.keyErase, _ = keyForName(cfg.Keys.Erase)
	e.keyCopy, _ = keyForName(cfg.Keys.Copy)

	e.background = parseHexColor(cfg.Colors.Background, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	e.imagesDirty = true

	ebiten.SetWindowTitle(e.cfg.Title)
}

func (e *Editor) reloadConfig(path string) {
	cfg, err := LoadConfig(path)
	if err != nil {
		log.Printf("reload config: %v", err)
		return
	}
	e.applyConfig(cfg)
	log.Printf("config reloaded from %s", path)
}

func (e *Editor) drainWatcher() {
	if e.watch == nil {
		return
	}
	for {
		select {
		case path, ok := <-e.watch.Events:
			if !ok {
				e.watch = nil
				return
			}
			e.reloadConfig(path)
		case err, ok := <-e.watch.Errors:
			if !ok {
				e.watch = nil
				return
			}
			log.Printf("config watcher: %v", err)
		default:
			return
		}
	}
}

func (e *Editor) Update() error {
	if e.ui != nil {
		e.ui.Update()
	}

	e.drainWatcher()

	if inpututil.IsKeyJustPressed(e.keyPlace) {
		e.setMode(ModePlace)
	}
	if inpututil.IsKeyJustPressed(e.keyErase) {
		e.setMode(ModeErase)
	}
	if e.clipboardReady && inpututil.IsKeyJustPressed(e.keyCopy) {
		clipboard.Write(clipboard.FmtText, e.grid.Encode())
		log.Println("map copied to clipboard")
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		e.handleClick(mx, my, ebuiinput.UIHovered)
	}

	return nil
}

// setMode switches the click mode. Pressing the same key twice is a no-op.
func (e *Editor) setMode(m Mode) {
	if e.mode == m {
		return
	}
	e.mode = m
	log.Printf("switched to %s mode", m)
}

// handleClick applies a mouse press at screen position (mx, my). The save
// button is checked first: clicks the UI consumed never reach the grid, so the
// button zone overlapping the last grid cells behaves like the original.
// Out-of-range positions are a no-op.
func (e *Editor) handleClick(mx, my int, overUI bool) {
	if overUI {
		return
	}
	cx, cy, ok := e.grid.CellAt(mx, my, e.cfg.CellSize)
	if !ok {
		return
	}
	v := grid.Wall
	if e.mode == ModeErase {
		v = grid.Empty
	}
	e.grid.Set(cx, cy, v)
}

// saveMap persists the grid to the configured output path. Runs synchronously
// inside the event step; the file is small enough that this never stalls a frame.
func (e *Editor) saveMap() {
	if err := e.grid.WriteFile(e.cfg.OutputPath); err != nil {
		log.Printf("save map: %v", err)
		return
	}
	log.Printf("map saved to %s", e.cfg.OutputPath)
}

func (e *Editor) rebuildImages() {
	cs := e.cfg.CellSize

	wallColor := parseHexColor(e.cfg.Colors.Wall, color.RGBA{A: 0xff})
	e.wallImg = ebiten.NewImage(cs, cs)
	e.wallImg.Fill(wallColor)

	lineColor := parseHexColor(e.cfg.Colors.GridLine, color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff})
	e.borderImg = borderImage(cs, lineColor)

	e.hoverImg = ebiten.NewImage(cs, cs)
	e.hoverImg.Fill(color.RGBA{R: 128, G: 128, B: 128, A: 0x88})

	e.imagesDirty = false
}

func (e *Editor) Draw(screen *ebiten.Image) {
	if e.imagesDirty {
		e.rebuildImages()
	}

	screen.Fill(e.background)

	cs := e.cfg.CellSize
	for y := 0; y < e.grid.Height(); y++ {
		for x := 0; x < e.grid.Width(); x++ {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x*cs), float64(y*cs))
			if e.grid.At(x, y) == grid.Wall {
				screen.DrawImage(e.wallImg, op)
			}
			screen.DrawImage(e.borderImg, op)
		}
	}

	if !ebuiinput.UIHovered {
		mx, my := ebiten.CursorPosition()
		if cx, cy, ok := e.grid.CellAt(mx, my, cs); ok {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(cx*cs), float64(cy*cs))
			screen.DrawImage(e.hoverImg, op)
		}
	}

	if e.ui != nil {
		e.ui.Draw(screen)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("mode: %s    walls: %d    out: %s", e.mode, e.grid.Count(grid.Wall), e.cfg.OutputPath))
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.cfg.WindowWidth, e.cfg.WindowHeight
}
