package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/pangram/config"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineRounded                 // ╭─╮│╰╯
	LineDouble                  // ╔═╗║╚╝
)

// Box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
}

// ParseLineType resolves a border style name; empty selects rounded
func ParseLineType(name string) (LineType, error) {
	switch name {
	case config.BorderRounded, "":
		return LineRounded, nil
	case config.BorderSingle:
		return LineSingle, nil
	case config.BorderDouble:
		return LineDouble, nil
	}
	return LineRounded, fmt.Errorf("unknown line style %q", name)
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Box draws border around region edge
func (r Region) Box(line LineType, style tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	chars := boxChars[line]

	r.Cell(0, 0, chars[boxTL], style)
	r.Cell(r.W-1, 0, chars[boxTR], style)
	r.Cell(0, r.H-1, chars[boxBL], style)
	r.Cell(r.W-1, r.H-1, chars[boxBR], style)

	for x := 1; x < r.W-1; x++ {
		r.Cell(x, 0, chars[boxH], style)
		r.Cell(x, r.H-1, chars[boxH], style)
	}
	for y := 1; y < r.H-1; y++ {
		r.Cell(0, y, chars[boxV], style)
		r.Cell(r.W-1, y, chars[boxV], style)
	}
}

// Card draws a bordered pane with its title centered on the top edge and
// returns the content region inside the border
func (r Region) Card(title string, line LineType, border, titleStyle tcell.Style) Region {
	r.Box(line, border)

	if title != "" && r.W > 4 {
		display := runewidth.Truncate(title, r.W-4, "…")
		x := (r.W - runewidth.StringWidth(display) - 2) / 2
		r.Text(x, 0, " "+display+" ", titleStyle)
	}

	return r.Inset(1)
}
