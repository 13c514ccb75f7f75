package grid

import (
	"bufio"
	"bytes"
	"io"
	"os"
)

// EncodeTo writes the grid as text: one line per row, each line the
// concatenated digits of that row's cell values, newline terminated.
func (g *Grid) EncodeTo(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.height; y++ {
		row := g.cells[y*g.width : (y+1)*g.width]
		for _, v := range row {
			if err := bw.WriteByte(byte('0') + byte(v)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Encode returns the text encoding as a byte slice.
func (g *Grid) Encode() []byte {
	var buf bytes.Buffer
	buf.Grow(g.height * (g.width + 1))
	_ = g.EncodeTo(&buf)
	return buf.Bytes()
}

// WriteFile saves the grid to path, overwriting any existing file.
func (g *Grid) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := g.EncodeTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
