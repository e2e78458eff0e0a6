package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// headerColors maps theme names to lipgloss header colors.
var headerColors = map[string]lipgloss.TerminalColor{
	DarkTheme.Name:  lipgloss.Color("#4488FF"),
	LightTheme.Name: lipgloss.Color("#1F3FAF"),
}

// RenderHeader styles a section header for out, detecting the color profile
// of out. With colors disabled the title is returned unchanged.
func RenderHeader(out io.Writer, title string) string {
	return renderHeader(lipgloss.NewRenderer(out), title)
}

// RenderHeaderWithProfile is RenderHeader with an explicit termenv profile
// instead of terminal detection.
func RenderHeaderWithProfile(out io.Writer, profile termenv.Profile, title string) string {
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(profile)
	return renderHeader(r, title)
}

func renderHeader(r *lipgloss.Renderer, title string) string {
	color, ok := headerColors[GetCurrentTheme().Name]
	if !ok {
		return title
	}
	return r.NewStyle().Bold(true).Foreground(color).Render(title)
}
