package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pangram/config"
	"github.com/lixenwraith/pangram/constants"
)

// Theme holds resolved colors and pane titles
type Theme struct {
	Incomplete tcell.Color
	Complete   tcell.Color
	Text       tcell.Color
	Title      tcell.Color

	AlphabetTitle string
	InputTitle    string

	Line LineType
}

// DefaultTheme returns the built-in red/green scheme
func DefaultTheme() Theme {
	return Theme{
		Incomplete:    tcell.ColorRed,
		Complete:      tcell.ColorGreen,
		Text:          tcell.ColorWhite,
		Title:         tcell.ColorWhite,
		AlphabetTitle: constants.AlphabetTitle,
		InputTitle:    constants.InputTitle,
		Line:          LineRounded,
	}
}

// ThemeFromConfig resolves configured color names
func ThemeFromConfig(cfg *config.Config) (Theme, error) {
	line, err := ParseLineType(cfg.Border)
	if err != nil {
		return Theme{}, fmt.Errorf("border: %w", err)
	}
	t := Theme{
		AlphabetTitle: cfg.Titles.Alphabet,
		InputTitle:    cfg.Titles.Input,
		Line:          line,
	}

	for _, c := range []struct {
		name  string
		value string
		dst   *tcell.Color
	}{
		{"incomplete", cfg.Colors.Incomplete, &t.Incomplete},
		{"complete", cfg.Colors.Complete, &t.Complete},
		{"text", cfg.Colors.Text, &t.Text},
		{"title", cfg.Colors.Title, &t.Title},
	} {
		color, err := config.ParseColor(c.value)
		if err != nil {
			return Theme{}, fmt.Errorf("colors.%s: %w", c.name, err)
		}
		*c.dst = color
	}
	return t, nil
}

// BorderColor is a pure function of the completion flag
func (t Theme) BorderColor(complete bool) tcell.Color {
	if complete {
		return t.Complete
	}
	return t.Incomplete
}
