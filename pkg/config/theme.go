package config

import "github.com/gdamore/tcell/v2"

// Colors is the YAML form of a Theme: color names or "#rrggbb" values.
// Empty entries keep the default.
type Colors struct {
	Text             string `yaml:"text"`
	Gutter           string `yaml:"gutter"`
	StatusForeground string `yaml:"status_fg"`
	StatusBackground string `yaml:"status_bg"`
	Message          string `yaml:"message"`
	Error            string `yaml:"error"`
}

// Theme holds the colors the renderer draws with.
type Theme struct {
	Text             tcell.Color
	Gutter           tcell.Color
	StatusForeground tcell.Color
	StatusBackground tcell.Color
	Message          tcell.Color
	Error            tcell.Color
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Text:             tcell.ColorWhite,
		Gutter:           tcell.ColorGray,
		StatusForeground: tcell.ColorBlack,
		StatusBackground: tcell.ColorWhite,
		Message:          tcell.ColorWhite,
		Error:            tcell.ColorRed,
	}
}

// Theme resolves c over the default theme. Unknown names keep the default.
func (c Colors) Theme() Theme {
	t := DefaultTheme()
	pick(&t.Text, c.Text)
	pick(&t.Gutter, c.Gutter)
	pick(&t.StatusForeground, c.StatusForeground)
	pick(&t.StatusBackground, c.StatusBackground)
	pick(&t.Message, c.Message)
	pick(&t.Error, c.Error)
	return t
}

func pick(dst *tcell.Color, name string) {
	if name == "" {
		return
	}
	if col := tcell.GetColor(name); col != tcell.ColorDefault {
		*dst = col
	}
}
