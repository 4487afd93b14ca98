package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Region represents a rectangular area of a screen
// All coordinates are relative to the region's origin
type Region struct {
	Screen tcell.Screen
	X, Y   int // Absolute position on screen
	W, H   int // Region dimensions
}

// NewRegion creates a region covering the whole screen
func NewRegion(screen tcell.Screen) Region {
	w, h := screen.Size()
	return Region{Screen: screen, W: w, H: h}
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Region{
		Screen: r.Screen,
		X:      r.X + x,
		Y:      r.Y + y,
		W:      w,
		H:      h,
	}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Empty reports whether nothing can be drawn in the region
func (r Region) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	r.Screen.SetContent(r.X+x, r.Y+y, ch, nil, style)
}

// Text draws s starting at (x, y), clipped to the region
// Returns the number of columns consumed
func (r Region) Text(x, y int, s string, style tcell.Style) int {
	col := x
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w < 1 {
			w = 1
		}
		if col+w > r.W {
			break
		}
		r.Cell(col, y, ch, style)
		col += w
	}
	return col - x
}

// TextCenter draws s horizontally centered on row y
func (r Region) TextCenter(y int, s string, style tcell.Style) {
	s = runewidth.Truncate(s, r.W, "…")
	x := (r.W - runewidth.StringWidth(s)) / 2
	r.Text(max(0, x), y, s, style)
}

// ShowCursor places the terminal cursor at (x, y) when inside the region
func (r Region) ShowCursor(x, y int) bool {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return false
	}
	r.Screen.ShowCursor(r.X+x, r.Y+y)
	return true
}
