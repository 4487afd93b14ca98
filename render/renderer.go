// Package render draws the alphabet pane and the text pane on a tcell screen.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pangram/alphabet"
	"github.com/lixenwraith/pangram/constants"
)

// View is the read-only controller surface the renderer needs
type View interface {
	DisplayedText() string
	CursorScreenPosition(width int) (col, row int)
	IsPangramComplete() bool
	LettersSnapshot() [alphabet.Size]bool
}

// Renderer handles all terminal rendering
type Renderer struct {
	screen tcell.Screen
	theme  Theme
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen tcell.Screen, theme Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// RenderFrame redraws both panes from v and flushes the screen
func (r *Renderer) RenderFrame(v View) {
	r.screen.Clear()
	r.screen.HideCursor()

	full := NewRegion(r.screen)
	if full.W < constants.MinScreenWidth || full.H < constants.AlphabetPaneHeight+constants.MinInputPaneHeight {
		full.TextCenter(full.H/2, constants.TooSmallMessage, tcell.StyleDefault.Foreground(r.theme.Incomplete))
		r.screen.Show()
		return
	}

	border := tcell.StyleDefault.Foreground(r.theme.BorderColor(v.IsPangramComplete()))
	title := tcell.StyleDefault.Foreground(r.theme.Title).Bold(true)

	top := full.Sub(0, 0, full.W, constants.AlphabetPaneHeight)
	r.drawAlphabet(top.Card(r.theme.AlphabetTitle, r.theme.Line, border, title), v.LettersSnapshot())

	bottom := full.Sub(0, constants.AlphabetPaneHeight, full.W, full.H-constants.AlphabetPaneHeight)
	r.drawText(bottom.Card(r.theme.InputTitle, r.theme.Line, border, title), v)

	r.screen.Show()
}

// AlphabetLine formats the progress line, letter when seen and placeholder otherwise
func AlphabetLine(seen [alphabet.Size]bool) string {
	line := make([]rune, alphabet.Size)
	for i, ok := range seen {
		if ok {
			line[i] = 'A' + rune(i)
		} else {
			line[i] = alphabet.Placeholder
		}
	}
	return string(line)
}

func (r *Renderer) drawAlphabet(inner Region, seen [alphabet.Size]bool) {
	if inner.Empty() {
		return
	}
	style := tcell.StyleDefault.Foreground(r.theme.Text)
	inner.TextCenter(0, AlphabetLine(seen), style)
}

// drawText hard-wraps the buffer at the pane width and scrolls so the cursor row stays visible
func (r *Renderer) drawText(inner Region, v View) {
	if inner.Empty() {
		return
	}

	col, row := v.CursorScreenPosition(inner.W)
	scroll := ScrollOffset(row, inner.H)

	style := tcell.StyleDefault.Foreground(r.theme.Text)
	for i, ch := range []rune(v.DisplayedText()) {
		y := i/inner.W - scroll
		if y < 0 {
			continue
		}
		if y >= inner.H {
			break
		}
		inner.Cell(i%inner.W, y, ch, style)
	}

	inner.ShowCursor(col, row-scroll)
}

// ScrollOffset returns the first visible wrapped row for a cursor on row
func ScrollOffset(row, height int) int {
	if height < 1 || row < height {
		return 0
	}
	return row - height + 1
}
