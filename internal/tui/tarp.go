package tui

import (
	"math"
	"strings"

	"pitchtarp/internal/service"
	"pitchtarp/internal/trajectory"
)

// Terminal cells per foot of tarp. Cells are roughly twice as tall as wide.
const (
	tarpCellWidth  = 6
	tarpCellHeight = 3
)

type tarpCell int

const (
	cellEmpty tarpCell = iota
	cellLine
	cellMarker
	cellTarget
)

// tarpCanvas is the inside of the tarp border, one rune per terminal cell
type tarpCanvas struct {
	runes [][]rune
	kinds [][]tarpCell
}

func newTarpCanvas() *tarpCanvas {
	w := trajectory.GridSize*tarpCellWidth - 1
	h := trajectory.GridSize*tarpCellHeight - 1

	c := &tarpCanvas{
		runes: make([][]rune, h),
		kinds: make([][]tarpCell, h),
	}
	for y := 0; y < h; y++ {
		c.runes[y] = make([]rune, w)
		c.kinds[y] = make([]tarpCell, w)
		for x := 0; x < w; x++ {
			c.runes[y][x], c.kinds[y][x] = gridRune(x+1, y+1)
		}
	}
	return c
}

// gridRune returns the background at absolute grid position (x, y), border included
func gridRune(x, y int) (rune, tarpCell) {
	onCol := x%tarpCellWidth == 0
	onRow := y%tarpCellHeight == 0
	switch {
	case onCol && onRow:
		if trajectory.IsMarker(x/tarpCellWidth, y/tarpCellHeight) {
			return '+', cellMarker
		}
		return '┼', cellLine
	case onCol:
		return '│', cellLine
	case onRow:
		return '─', cellLine
	}
	return ' ', cellEmpty
}

func (c *tarpCanvas) width() int  { return len(c.runes[0]) }
func (c *tarpCanvas) height() int { return len(c.runes) }

// put writes s starting at (x, y), clipped to the canvas
func (c *tarpCanvas) put(x, y int, s string, kind tarpCell) {
	if y < 0 || y >= c.height() {
		return
	}
	for i, r := range []rune(s) {
		if xx := x + i; xx >= 0 && xx < c.width() {
			c.runes[y][xx] = r
			c.kinds[y][xx] = kind
		}
	}
}

func (c *tarpCanvas) render() string {
	lines := make([]string, c.height())
	for y := range c.runes {
		var b strings.Builder
		for x, r := range c.runes[y] {
			switch c.kinds[y][x] {
			case cellLine:
				b.WriteString(gridLineStyle.Render(string(r)))
			case cellMarker:
				b.WriteString(gridMarkerStyle.Render(string(r)))
			case cellTarget:
				b.WriteString(targetStyle.Render(string(r)))
			default:
				b.WriteRune(r)
			}
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// RenderTarp draws the 8x8 ft tarp grid with the pitch location marked.
// A nil coordinate, or one that is not finite or lands off the grid, draws the
// grid without a target.
func RenderTarp(coord *trajectory.TarpCoordinate) string {
	canvas := newTarpCanvas()

	if coord != nil {
		if col, row, ok := trajectory.GridCell(*coord); ok {
			x := clampInt(int(math.Round(col*tarpCellWidth))-1, 0, canvas.width()-1)
			y := clampInt(int(math.Round(row*tarpCellHeight))-1, 0, canvas.height()-1)

			canvas.put(x, y, "●", cellTarget)

			label := service.FormatCoordinate(*coord)
			lx := clampInt(x-len(label)/2, 0, canvas.width()-len(label))
			ly := y - 1
			if ly < 0 {
				ly = y + 1
			}
			canvas.put(lx, ly, label, cellTarget)
		}
	}

	return tarpStyle.Render(canvas.render())
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
