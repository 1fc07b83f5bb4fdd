package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"villaoasis/internal/domain"
)

const cardGap = 1

// renderReviews lays out exactly PageSize cards side by side. The cards
// slice is already backfilled, so the last page never shows a short row.
func (r *Renderer) renderReviews(vs ViewState, width int) string {
	rv := vs.Reviews
	var b strings.Builder
	b.WriteString(r.renderHeader("Guest Reviews", "Rated 10/10 by our guests - read their experiences"))

	if len(rv.Cards) == 0 {
		b.WriteString(r.styles.Dim.Render("No reviews yet."))
		return b.String()
	}

	cols := len(rv.Cards)
	cardWidth := max((width-cardGap*(cols-1))/cols, 20)
	cards := make([]string, 0, cols*2)
	for i, review := range rv.Cards {
		if i > 0 {
			cards = append(cards, strings.Repeat(" ", cardGap))
		}
		cards = append(cards, r.renderReviewCard(review, cardWidth))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n\n")

	nav := "‹  " + r.renderDots(rv.PageCount, rv.ActivePage) + "  ›"
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, nav))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, r.styles.Button.Render("Join Our Happy Guests")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, r.styles.Link.Render(vs.Villa.BookingURL)))
	return b.String()
}

func (r *Renderer) renderReviewCard(review domain.Review, width int) string {
	// Border and padding take four columns
	textWidth := max(width-4, 10)
	text := lipgloss.NewStyle().Width(textWidth)

	lines := []string{
		r.renderStars(review.Stars()) + "  " + r.styles.Badge.Render(fmt.Sprintf("%d/10", review.Rating)),
		text.Bold(true).Render(review.Title),
		text.Italic(true).Render("“" + review.Comment + "”"),
		"",
		text.Bold(true).Render(review.Name),
		r.styles.Dim.Width(textWidth).Render(review.Date + " · " + review.StayDuration),
	}
	return r.styles.Card.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// renderStars draws filled stars out of five
func (r *Renderer) renderStars(filled int) string {
	filled = min(max(filled, 0), 5)
	return r.styles.Star.Render(strings.Repeat("★", filled)) +
		r.styles.StarEmpty.Render(strings.Repeat("☆", 5-filled))
}
