package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"villaoasis/internal/ui/input/modes"
)

var helpSections = []string{"Sections", "Carousels", "Attractions", "Other"}

// RenderHelpText renders the key reference from the key map. Column i of
// FullHelp is printed under helpSections[i].
func RenderHelpText(title string, keys modes.KeyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	help.WriteString(titleStyle.Render(title))
	help.WriteString("\n")

	for i, column := range keys.FullHelp() {
		name := "More"
		if i < len(helpSections) {
			name = helpSections[i]
		}
		help.WriteString(sectionStyle.Render(name))
		help.WriteString("\n")
		for _, b := range column {
			help.WriteString(helpLine(b, keyStyle, descStyle))
		}
	}
	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  Drag the mouse across a photo to swipe"))

	return strings.TrimRight(help.String(), "\n")
}

func helpLine(b key.Binding, keyStyle, descStyle lipgloss.Style) string {
	h := b.Help()
	return fmt.Sprintf("  %s%s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc))
}

// renderHelpContent renders the scrolled window of the help text
func (r *Renderer) renderHelpContent(vs ViewState) string {
	lines := strings.Split(RenderHelpText(vs.Villa.Name+" Help", vs.Keys), "\n")
	totalLines := len(lines)

	// Calculate visible window (account for popup border and padding)
	visibleHeight := max(vs.Height-4, 5)
	if totalLines <= visibleHeight || vs.Height <= 0 {
		return strings.Join(lines, "\n")
	}

	scrollOffset := min(max(vs.HelpScrollOffset, 0), totalLines-visibleHeight)
	endLine := scrollOffset + visibleHeight
	lines = lines[scrollOffset:endLine]

	if scrollOffset > 0 {
		lines[0] = r.styles.Scroll.Render("↑ (more above)")
	}
	if endLine < totalLines {
		lines[len(lines)-1] = r.styles.Scroll.Render("↓ (more below)")
	}
	return strings.Join(lines, "\n")
}
