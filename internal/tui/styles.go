package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pdxmph/todo-tui/internal/notify"
)

// styles holds every lipgloss style for one theme
type styles struct {
	accent lipgloss.Color

	title       lipgloss.Style
	chip        lipgloss.Style
	chipActive  lipgloss.Style
	selected    lipgloss.Style
	done        lipgloss.Style
	meta        lipgloss.Style
	badgeActive lipgloss.Style
	badgeDone   lipgloss.Style
	help        lipgloss.Style
	border      lipgloss.Style

	toastInfo    lipgloss.Style
	toastSuccess lipgloss.Style
	toastError   lipgloss.Style
}

type palette struct {
	accent, text, muted, faint, selectedBg, selectedFg, success, danger lipgloss.Color
}

var palettes = map[string]palette{
	"dark": {
		accent:     lipgloss.Color("63"),
		text:       lipgloss.Color("230"),
		muted:      lipgloss.Color("241"),
		faint:      lipgloss.Color("238"),
		selectedBg: lipgloss.Color("62"),
		selectedFg: lipgloss.Color("230"),
		success:    lipgloss.Color("42"),
		danger:     lipgloss.Color("196"),
	},
	"light": {
		accent:     lipgloss.Color("27"),
		text:       lipgloss.Color("235"),
		muted:      lipgloss.Color("244"),
		faint:      lipgloss.Color("250"),
		selectedBg: lipgloss.Color("153"),
		selectedFg: lipgloss.Color("16"),
		success:    lipgloss.Color("28"),
		danger:     lipgloss.Color("160"),
	},
}

func newStyles(theme string) styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes["dark"]
	}

	return styles{
		accent: p.accent,

		title: lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		chip:  lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1),
		chipActive: lipgloss.NewStyle().
			Foreground(p.selectedFg).
			Background(p.accent).
			Padding(0, 1),
		selected: lipgloss.NewStyle().
			Background(p.selectedBg).
			Foreground(p.selectedFg),
		done:        lipgloss.NewStyle().Strikethrough(true).Foreground(p.muted),
		meta:        lipgloss.NewStyle().Foreground(p.muted),
		badgeActive: lipgloss.NewStyle().Foreground(p.accent),
		badgeDone:   lipgloss.NewStyle().Foreground(p.success),
		help:        lipgloss.NewStyle().Foreground(p.faint),
		border: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.muted),

		toastInfo:    lipgloss.NewStyle().Foreground(p.text),
		toastSuccess: lipgloss.NewStyle().Foreground(p.success),
		toastError:   lipgloss.NewStyle().Foreground(p.danger).Bold(true),
	}
}

func (s styles) toast(level notify.Level) lipgloss.Style {
	switch level {
	case notify.Success:
		return s.toastSuccess
	case notify.Error:
		return s.toastError
	default:
		return s.toastInfo
	}
}
