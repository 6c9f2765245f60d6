package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/desertthunder/bottles/internal/shared"
)

var styles = NewPalette("#7D56F4", "#04B575", "#FF0000", "#FFA500", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	warn  lipgloss.Style
	help  lipgloss.Style
}

func NewPalette(t, s, e, w, h string) *Palette {
	return &Palette{
		title: NewBold(t).MarginBottom(1),
		ok:    NewBold(s),
		err:   NewBold(e),
		warn:  NewStyle(w),
		help:  NewEm(h),
	}
}

// Configure replaces the package palette with colors from the [ui] config
// section. Empty fields keep their defaults.
func Configure(cfg shared.UIConfig) {
	pick := func(color, fallback string) string {
		if color == "" {
			return fallback
		}
		return color
	}
	styles = NewPalette(
		pick(cfg.TitleColor, "#7D56F4"),
		pick(cfg.OkColor, "#04B575"),
		pick(cfg.ErrColor, "#FF0000"),
		pick(cfg.WarnColor, "#FFA500"),
		pick(cfg.HelpColor, "#626262"),
	)
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}
