package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var amenityIcons = map[string]string{
	"pool":     "≈",
	"washer":   "◎",
	"wifi":     "⌁",
	"ac":       "❄",
	"outdoor":  "☂",
	"parking":  "P",
	"bbq":      "♨",
	"beach":    "⛱",
	"mountain": "▲",
}

func (r *Renderer) renderHome(vs ViewState, width int) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render(vs.Villa.Name))
	b.WriteString("\n\n")

	chips := make([]string, 0, len(vs.Headline))
	for _, phrase := range vs.Headline {
		chips = append(chips, r.styles.Chip.Render(phrase))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, chips...))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Width(width).Render(
		"Your peaceful escape on the Dalmatian Coast. Private pool, mountain views, and Mediterranean charm in Marina, Croatia."))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Button.Render("Book Your Stay"))
	b.WriteString("  ")
	b.WriteString(r.styles.Link.Render(vs.Villa.BookingURL))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Dim.Render("tab to explore ↓"))
	return b.String()
}

func (r *Renderer) renderAmenities(vs ViewState, width int) string {
	var b strings.Builder
	b.WriteString(r.renderHeader("Amenities", "Everything you need for a comfortable and memorable stay"))

	cols := 3
	if width < 60 {
		cols = 1
	}
	colWidth := width / cols
	cell := lipgloss.NewStyle().Width(colWidth)

	var rows []string
	for i := 0; i < len(vs.Amenities); i += cols {
		var cells []string
		for _, a := range vs.Amenities[i:min(i+cols, len(vs.Amenities))] {
			icon, ok := amenityIcons[a.Icon]
			if !ok {
				icon = "•"
			}
			cells = append(cells, cell.Render(r.styles.Highlight.Render(icon)+"  "+a.Name))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	b.WriteString(strings.Join(rows, "\n"))
	return b.String()
}

func (r *Renderer) renderAttractions(vs ViewState, width int) string {
	var b strings.Builder
	b.WriteString(r.renderHeader("Nearby Attractions", "Discover the rich history, stunning nature, and vibrant culture of the Dalmatian Coast"))

	desc := lipgloss.NewStyle().Width(max(width-4, 10)).PaddingLeft(4)
	for i, a := range vs.Attractions {
		marker := "  "
		title := a.Title
		if i == vs.AttractionCursor {
			marker = r.styles.Cursor.Render("▸ ")
			title = r.styles.Highlight.Render(title)
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n", marker, title, r.styles.Dim.Render(a.Distance)))
		if i == vs.AttractionCursor {
			b.WriteString(desc.Render(firstSentence(a.Description)))
			b.WriteString("\n")
			b.WriteString(desc.Render(r.styles.Link.Render("Learn more (enter)")))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) renderRestaurants(vs ViewState, width int) string {
	var b strings.Builder
	b.WriteString(r.renderHeader("Nearby Restaurants", "Authentic Dalmatian cuisine and fresh seafood just minutes from the villa"))

	desc := lipgloss.NewStyle().Width(max(width-2, 10)).PaddingLeft(2)
	for i, rest := range vs.Restaurants {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			r.styles.Highlight.Render(rest.Name),
			r.styles.Chip.Render(rest.Cuisine),
			r.styles.Badge.Render(rest.PriceRange)))
		b.WriteString(desc.Render(r.styles.Dim.Render(rest.Distance) + "  " + rest.Description))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) renderLocation(vs ViewState, width int) string {
	var b strings.Builder
	b.WriteString(r.renderHeader("Location", "Nestled in the peaceful hills above Marina, just minutes from the coast"))
	b.WriteString(r.styles.Highlight.Render("⌖ " + vs.Villa.Name))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Render(vs.Villa.Address))
	return b.String()
}

func (r *Renderer) renderContact(vs ViewState, width int) string {
	var b strings.Builder
	b.WriteString(r.renderHeader("Get In Touch", fmt.Sprintf("Have questions about your stay? %s is here to help", vs.Contact.Name)))

	label := lipgloss.NewStyle().Width(12).Bold(true)
	b.WriteString(label.Render("Your Host") + vs.Contact.Name + "\n")
	b.WriteString(label.Render("Phone") + vs.Contact.Phone + "\n")
	b.WriteString(label.Render("WhatsApp") + r.styles.Link.Render(vs.Contact.WhatsAppURL()) + "\n")
	b.WriteString(label.Render("Email") + r.styles.Link.Render(vs.Contact.Email) + "\n\n")

	b.WriteString(r.styles.Heading.Render("Follow Us"))
	b.WriteString("\n")
	b.WriteString(label.Render("Instagram") + r.styles.Link.Render(vs.Villa.Instagram) + "\n")
	b.WriteString(label.Render("X") + r.styles.Link.Render(vs.Villa.X) + "\n\n")
	b.WriteString(r.styles.Button.Render("Book on VRBO"))
	return b.String()
}

// firstSentence shortens a description for the list preview
func firstSentence(s string) string {
	if i := strings.Index(s, ". "); i >= 0 {
		return s[:i+1]
	}
	return s
}
