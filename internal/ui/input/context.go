package input

import "villaoasis/internal/ui/state"

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

// Section returns the visible section
func (c *ModelContext) Section() state.Section {
	return c.State.Section
}

// AttractionCount returns the length of the attraction list
func (c *ModelContext) AttractionCount() int {
	return c.State.AttractionCount
}
