package types

import "villaoasis/internal/ui/state"

// Section navigation
type CycleSectionAction struct {
	Delta int // +1 forward, -1 back; wraps around
}

func (a CycleSectionAction) Type() string { return "cycle_section" }

type GoToSectionAction struct {
	Section state.Section
}

func (a GoToSectionAction) Type() string { return "goto_section" }

// Carousel actions apply to the carousel of the visible section
type CarouselStepAction struct {
	Delta int // items on the gallery, pages on the reviews grid
}

func (a CarouselStepAction) Type() string { return "carousel_step" }

type CarouselJumpAction struct {
	Slot int // zero-based image or page
}

func (a CarouselJumpAction) Type() string { return "carousel_jump" }

// List actions
type MoveCursorAction struct {
	Delta int
}

func (a MoveCursorAction) Type() string { return "move_cursor" }

type OpenAttractionAction struct{}

func (a OpenAttractionAction) Type() string { return "open_attraction" }

type OpenReviewsAction struct{}

func (a OpenReviewsAction) Type() string { return "open_reviews" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Help popup
type ShowHelpAction struct {
	Visible bool
}

func (a ShowHelpAction) Type() string { return "show_help" }

type ScrollHelpAction struct {
	Delta int
}

func (a ScrollHelpAction) Type() string { return "scroll_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
