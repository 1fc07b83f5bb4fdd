package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"villaoasis/internal/domain"
)

const documentWidth = 72

// ReviewsDocument renders every review for the pager
func ReviewsDocument(villa domain.Villa, reviews []domain.Review) string {
	s := NewStyles()
	r := &Renderer{styles: s}
	body := lipgloss.NewStyle().Width(documentWidth)

	var b strings.Builder
	b.WriteString(s.Title.Render(fmt.Sprintf("Guest Reviews · %s", villa.Name)))
	b.WriteString("\n")
	b.WriteString(s.Subtitle.Render(fmt.Sprintf("%d reviews", len(reviews))))
	b.WriteString("\n\n")

	for i, review := range reviews {
		b.WriteString(fmt.Sprintf("%s  %s\n", r.renderStars(review.Stars()), s.Badge.Render(fmt.Sprintf("%d/10", review.Rating))))
		b.WriteString(s.Heading.Render(review.Title))
		b.WriteString("\n")
		b.WriteString(body.Render("“" + review.Comment + "”"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s, %s · %s\n", review.Name, review.Date, review.StayDuration))
		if i < len(reviews)-1 {
			b.WriteString(s.Dim.Render(strings.Repeat("─", documentWidth)))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString("Join Our Happy Guests: " + villa.BookingURL)
	b.WriteString("\n")
	return b.String()
}

// AttractionDocument renders the detail page of one attraction
func AttractionDocument(villa domain.Villa, a domain.Attraction) string {
	s := NewStyles()
	body := lipgloss.NewStyle().Width(documentWidth)

	var b strings.Builder
	b.WriteString(s.Dim.Render(villa.Name + "  ›  Nearby Attractions"))
	b.WriteString("\n\n")
	b.WriteString(s.Title.Render(a.Title))
	b.WriteString("\n")
	b.WriteString(s.Highlight.Render(fmt.Sprintf("⌖ %s from %s", a.Distance, villa.Name)))
	b.WriteString("\n\n")
	for _, para := range strings.Split(a.Description, "\n\n") {
		b.WriteString(body.Render(strings.TrimSpace(para)))
		b.WriteString("\n\n")
	}
	b.WriteString(s.Heading.Render("Stay nearby"))
	b.WriteString("\n")
	b.WriteString(body.Render(fmt.Sprintf("%s, %s", villa.Name, villa.Address)))
	b.WriteString("\n")
	b.WriteString("Book your stay: " + villa.BookingURL)
	b.WriteString("\n\n")
	b.WriteString(s.Dim.Render("q to go back home"))
	b.WriteString("\n")
	return b.String()
}
