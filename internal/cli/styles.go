// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	primaryColor   = lipgloss.Color("#A40000")
	accentColor    = lipgloss.Color("#FFA500")
	successColor   = lipgloss.Color("#00AA00")
	mutedColor     = lipgloss.Color("#888888")
	highlightColor = lipgloss.Color("#FFFF00")
	textColor      = lipgloss.Color("#FFFFFF")
)

type styles struct {
	title     lipgloss.Style
	subtitle  lipgloss.Style
	err       lipgloss.Style
	success   lipgloss.Style
	highlight lipgloss.Style
	key       lipgloss.Style
	value     lipgloss.Style
}

// newStyles binds the palette to w, so colour is only emitted when w is a terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		title:     r.NewStyle().Bold(true).Foreground(accentColor),
		subtitle:  r.NewStyle().Foreground(mutedColor).Italic(true),
		err:       r.NewStyle().Bold(true).Foreground(primaryColor),
		success:   r.NewStyle().Bold(true).Foreground(successColor),
		highlight: r.NewStyle().Bold(true).Foreground(highlightColor),
		key:       r.NewStyle().Foreground(mutedColor),
		value:     r.NewStyle().Bold(true).Foreground(textColor),
	}
}
