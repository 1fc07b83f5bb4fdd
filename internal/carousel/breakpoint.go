package carousel

// Breakpoints are the viewport widths at which a paged carousel shows two
// and three items
type Breakpoints struct {
	Medium int
	Large  int
}

// DefaultBreakpoints matches the md and lg layout widths
var DefaultBreakpoints = Breakpoints{Medium: 768, Large: 1024}

// PageSizeForWidth maps a viewport width to 1, 2 or 3 items per page
func PageSizeForWidth(width int, bp Breakpoints) int {
	switch {
	case width >= bp.Large:
		return 3
	case width >= bp.Medium:
		return 2
	default:
		return 1
	}
}
