package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderGallery draws the current slide with arrows, dots and a counter
func (r *Renderer) renderGallery(vs ViewState, width int) string {
	g := vs.Gallery
	var b strings.Builder
	b.WriteString(r.renderHeader("Gallery", "Explore our beautiful villa and its stunning surroundings"))

	if g.Len == 0 {
		b.WriteString(r.styles.Dim.Render("No photos yet."))
		return b.String()
	}

	slideWidth := max(width-8, 16)
	slide := r.styles.Slide.Width(slideWidth).Render(
		r.styles.Highlight.Render(g.Image.Alt) + "\n\n" + r.styles.Dim.Render(g.Image.Src),
	)
	arrowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Padding(0, 1)
	row := lipgloss.JoinHorizontal(lipgloss.Center,
		arrowStyle.Render("‹"),
		slide,
		arrowStyle.Render("›"),
	)
	b.WriteString(row)
	b.WriteString("\n\n")

	counter := fmt.Sprintf("%d / %d", g.Index+1, g.Len)
	if !g.Running {
		counter += "  (paused)"
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, r.renderDots(g.Len, g.Index)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, counter))
	return b.String()
}
