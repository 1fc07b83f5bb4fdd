package state

import "villaoasis/internal/carousel"

// Section is one page of the brochure
type Section int

const (
	SectionHome Section = iota
	SectionGallery
	SectionAmenities
	SectionReviews
	SectionAttractions
	SectionRestaurants
	SectionLocation
	SectionContact
	sectionCount
)

var sectionNames = [...]string{
	SectionHome:        "Home",
	SectionGallery:     "Gallery",
	SectionAmenities:   "Amenities",
	SectionReviews:     "Reviews",
	SectionAttractions: "Attractions",
	SectionRestaurants: "Restaurants",
	SectionLocation:    "Location",
	SectionContact:     "Contact",
}

func (s Section) String() string {
	if s < 0 || s >= sectionCount {
		return "Unknown"
	}
	return sectionNames[s]
}

// Sections returns every section in navbar order
func Sections() []Section {
	out := make([]Section, 0, sectionCount)
	for s := SectionHome; s < sectionCount; s++ {
		out = append(out, s)
	}
	return out
}

// AppState contains all the application state that is not owned by a carousel
type AppState struct {
	Section Section

	// Attraction list
	AttractionCursor int
	AttractionCount  int

	// UI state
	Width            int
	Height           int
	ShowHelp         bool
	HelpScrollOffset int
	StatusMessage    string
	statusSeq        int
}

// NewAppState creates a new application state
func NewAppState(attractions int) *AppState {
	return &AppState{
		Section:         SectionHome,
		AttractionCount: attractions,
	}
}

// CycleSection moves delta sections along the navbar, wrapping at both ends
func (s *AppState) CycleSection(delta int) (from, to Section) {
	from = s.Section
	s.Section = Section(carousel.Normalize(int(s.Section)+delta, int(sectionCount)))
	return from, s.Section
}

// SetSection jumps to a section and reports whether it changed
func (s *AppState) SetSection(sec Section) bool {
	if sec < 0 || sec >= sectionCount || sec == s.Section {
		return false
	}
	s.Section = sec
	return true
}

// MoveCursor moves the attraction cursor, clamped to the list
func (s *AppState) MoveCursor(delta int) {
	if s.AttractionCount == 0 {
		s.AttractionCursor = 0
		return
	}
	s.AttractionCursor = min(max(s.AttractionCursor+delta, 0), s.AttractionCount-1)
}

// ScrollHelp scrolls the help popup; the renderer clamps the upper bound
func (s *AppState) ScrollHelp(delta int) {
	s.HelpScrollOffset = max(s.HelpScrollOffset+delta, 0)
}

// SetStatus shows a status message and returns its sequence number.
// Only the clear carrying the latest sequence removes the message.
func (s *AppState) SetStatus(msg string) int {
	s.statusSeq++
	s.StatusMessage = msg
	return s.statusSeq
}

// ClearStatus clears the status message if seq is still current
func (s *AppState) ClearStatus(seq int) bool {
	if seq != s.statusSeq {
		return false
	}
	s.StatusMessage = ""
	return true
}

// SetDimensions records the terminal size
func (s *AppState) SetDimensions(width, height int) {
	s.Width = width
	s.Height = height
}
