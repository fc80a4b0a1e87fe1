// Package tui holds the palette and styles shared by the CLI and the
// terminal explorer.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorSecondary = lipgloss.Color("#10B981")
	ColorAccent    = lipgloss.Color("#F59E0B")
	ColorError     = lipgloss.Color("#EF4444")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	FocusedBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorFg).
			Bold(true)

	GoodStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	WarnStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)
)

// RenderTitle renders a section title
func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}

// RenderError renders an error line
func RenderError(err error) string {
	return ErrorStyle.Render("error: " + err.Error())
}

// RenderFlag renders ok in green and anything else in amber
func RenderFlag(ok bool, text string) string {
	if ok {
		return GoodStyle.Render(text)
	}
	return WarnStyle.Render(text)
}

// KV renders aligned label/value rows
func KV(rows ...[2]string) string {
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r[0]))
	}
	var b strings.Builder
	for _, r := range rows {
		label := LabelStyle.Render(r[0] + strings.Repeat(" ", width-lipgloss.Width(r[0])))
		fmt.Fprintf(&b, "  %s  %s\n", label, ValueStyle.Render(r[1]))
	}
	return b.String()
}

// Table renders a header and rows in padded columns
func Table(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, r := range rows {
		for i := range r {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(r[i]))
			}
		}
	}
	pad := func(cells []string, style *lipgloss.Style) string {
		parts := make([]string, len(cells))
		for i, c := range cells {
			cell := c
			if i < len(widths) {
				cell += strings.Repeat(" ", widths[i]-lipgloss.Width(c))
			}
			if style != nil {
				cell = style.Render(cell)
			}
			parts[i] = cell
		}
		return "  " + strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	var b strings.Builder
	b.WriteString(pad(header, &TableHeaderStyle))
	b.WriteByte('\n')
	for _, r := range rows {
		b.WriteString(pad(r, nil))
		b.WriteByte('\n')
	}
	return b.String()
}
