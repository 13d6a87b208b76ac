package controller

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// StyledUI is a SimpleUI that colours headings and verdicts for terminals.
type StyledUI struct {
	*SimpleUI
}

// NewStyledUI creates a StyledUI writing to out.
func NewStyledUI(out io.Writer) *StyledUI {
	renderer := lipgloss.NewRenderer(out)

	styles := map[tone]lipgloss.Style{
		toneHeading: renderer.NewStyle().Bold(true),
		toneGood:    renderer.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		toneWarn:    renderer.NewStyle().Foreground(lipgloss.Color("3")),
		toneBad:     renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}

	simple := NewSimpleUI(out)
	simple.decorate = func(t tone, s string) string {
		style, ok := styles[t]
		if !ok {
			return s
		}

		return style.Render(s)
	}

	return &StyledUI{SimpleUI: simple}
}
