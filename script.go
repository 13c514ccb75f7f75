package main

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"mapeditor/grid"
)

const generatorDispatch = `
__walls = generate(__width, __height)
`

// RunGenerator executes a map generator script against g. The script must
// define generate(width, height) returning an array of [x, y] wall
// coordinates. Out-of-range coordinates are dropped by the bounds-checked
// grid write.
func RunGenerator(src []byte, g *grid.Grid) error {
	full := string(src) + "\n" + generatorDispatch
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__width", g.Width())
	_ = script.Add("__height", g.Height())
	_ = script.Add("__walls", []interface{}{})

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Run()
	if err != nil {
		return fmt.Errorf("run generator script: %w", err)
	}

	for i, entry := range compiled.Get("__walls").Array() {
		pair, ok := entry.([]interface{})
		if !ok || len(pair) != 2 {
			return fmt.Errorf("generator result %d: expected an [x, y] pair", i)
		}
		x, okX := scriptInt(pair[0])
		y, okY := scriptInt(pair[1])
		if !okX || !okY {
			return fmt.Errorf("generator result %d: non-integer coordinate", i)
		}
		g.Set(x, y, grid.Wall)
	}
	return nil
}

func scriptInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int64:
		return int(n), true
	case int:
		return n, true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
