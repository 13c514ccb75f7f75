package grid

import "fmt"

// Value is the state of a single cell.
type Value int

const (
	Empty Value = 0
	Wall  Value = 1
)

// Grid is a fixed-size 2D map of cell values stored row-major. Dimensions are
// set at construction and never change for the lifetime of the grid.
type Grid struct {
	width  int
	height int
	cells  []Value
}

// New creates an all-empty grid with the given dimensions in cells.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions: %dx%d", width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Value, width*height),
	}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// At returns the value at (x, y), or Empty if the coordinate is out of range.
func (g *Grid) At(x, y int) Value {
	if !g.inBounds(x, y) {
		return Empty
	}
	return g.cells[y*g.width+x]
}

// Set writes v at (x, y). Out-of-range coordinates are a no-op and return false.
func (g *Grid) Set(x, y int, v Value) bool {
	if !g.inBounds(x, y) {
		return false
	}
	g.cells[y*g.width+x] = v
	return true
}

// CellAt maps a pixel position to a cell coordinate given the cell size in
// pixels. ok is false when the pixel falls outside the grid area.
func (g *Grid) CellAt(px, py, cellSize int) (int, int, bool) {
	if cellSize <= 0 || px < 0 || py < 0 {
		return 0, 0, false
	}
	cx := px / cellSize
	cy := py / cellSize
	if !g.inBounds(cx, cy) {
		return 0, 0, false
	}
	return cx, cy, true
}

// Count returns how many cells currently hold v.
func (g *Grid) Count(v Value) int {
	n := 0
	for _, c := range g.cells {
		if c == v {
			n++
		}
	}
	return n
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}
