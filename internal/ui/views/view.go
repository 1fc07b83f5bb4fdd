package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"villaoasis/internal/domain"
	"villaoasis/internal/ui/input/modes"
	"villaoasis/internal/ui/state"
)

// GalleryView is the visible slide of the gallery carousel
type GalleryView struct {
	Image   domain.GalleryImage
	Index   int
	Len     int
	Running bool
}

// ReviewsView is the visible page of the reviews carousel
type ReviewsView struct {
	Cards      []domain.Review // always PageSize long, backfilled from the head
	Index      int
	PageSize   int
	PageCount  int
	ActivePage int
	Len        int
	Running    bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width            int
	Height           int
	Section          state.Section
	Villa            domain.Villa
	Contact          domain.Contact
	Headline         []string
	Gallery          GalleryView
	Reviews          ReviewsView
	Amenities        []domain.Amenity
	Attractions      []domain.Attraction
	AttractionCursor int
	Restaurants      []domain.Restaurant
	StatusMessage    string
	ShowHelp         bool
	HelpScrollOffset int
	HelpModel        help.Model
	Keys             modes.KeyMap
	Year             int
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	if vs.ShowHelp {
		helpContent := r.renderHelpContent(vs)
		return r.popupRender.RenderPopup(helpContent, vs.Height, vs.Width, r.styles.InfoBox)
	}

	width := vs.Width
	if width <= 0 {
		width = 80 // Default terminal width
	}
	// Account for main container padding
	inner := max(width-4, 20)

	content := &strings.Builder{}
	content.WriteString(r.renderNavbar(vs, inner))
	content.WriteString("\n\n")
	content.WriteString(r.renderSection(vs, inner))

	footer := r.renderFooter(vs, inner)

	// Push the footer to the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	footerLines := strings.Count(footer, "\n") + 1
	availableLines := vs.Height - 2 // Padding(1, 2)
	if paddingNeeded := availableLines - currentLines - footerLines; paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	mainStyle := r.styles.Main
	if vs.Height > 0 {
		mainStyle = mainStyle.MaxHeight(vs.Height)
	}
	return mainStyle.Render(content.String())
}

// renderNavbar renders the villa name and one tab per section
func (r *Renderer) renderNavbar(vs ViewState, width int) string {
	logo := r.styles.Title.Render(vs.Villa.Name)

	tabs := make([]string, 0, len(state.Sections()))
	for _, s := range state.Sections() {
		if s == vs.Section {
			tabs = append(tabs, r.styles.NavActive.Render(s.String()))
			continue
		}
		tabs = append(tabs, r.styles.NavItem.Render(s.String()))
	}
	nav := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	if lipgloss.Width(logo)+lipgloss.Width(nav)+2 > width {
		return logo + "\n" + nav
	}
	padding := strings.Repeat(" ", width-lipgloss.Width(logo)-lipgloss.Width(nav))
	return logo + padding + nav
}

func (r *Renderer) renderSection(vs ViewState, width int) string {
	switch vs.Section {
	case state.SectionGallery:
		return r.renderGallery(vs, width)
	case state.SectionAmenities:
		return r.renderAmenities(vs, width)
	case state.SectionReviews:
		return r.renderReviews(vs, width)
	case state.SectionAttractions:
		return r.renderAttractions(vs, width)
	case state.SectionRestaurants:
		return r.renderRestaurants(vs, width)
	case state.SectionLocation:
		return r.renderLocation(vs, width)
	case state.SectionContact:
		return r.renderContact(vs, width)
	default:
		return r.renderHome(vs, width)
	}
}

// renderFooter renders the status line, key help, quick links and copyright
func (r *Renderer) renderFooter(vs ViewState, width int) string {
	var lines []string

	if vs.StatusMessage != "" {
		lines = append(lines, r.styles.Status.Render(vs.StatusMessage))
	}

	hm := vs.HelpModel
	hm.Width = width
	lines = append(lines, hm.View(vs.Keys))

	links := make([]string, 0, len(state.Sections()))
	for _, s := range state.Sections() {
		// Restaurants has no quick link
		if s == state.SectionRestaurants {
			continue
		}
		links = append(links, s.String())
	}
	lines = append(lines, r.styles.Dim.Render("Quick Links: "+strings.Join(links, " · ")))
	lines = append(lines, r.styles.Dim.Render(fmt.Sprintf("© %d %s. All rights reserved.", vs.Year, vs.Villa.Name)))

	return strings.Join(lines, "\n")
}

// renderDots draws one indicator per slot with the active one highlighted
func (r *Renderer) renderDots(count, active int) string {
	var b strings.Builder
	for i := 0; i < count; i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		if i == active {
			b.WriteString(r.styles.DotActive.Render("●"))
		} else {
			b.WriteString(r.styles.DotInactive.Render("○"))
		}
	}
	return b.String()
}

func (r *Renderer) renderHeader(title, subtitle string) string {
	return r.styles.Heading.Render(title) + "\n" + r.styles.Subtitle.Render(subtitle) + "\n\n"
}
