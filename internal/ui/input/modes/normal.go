package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"villaoasis/internal/ui/input/types"
	"villaoasis/internal/ui/state"
)

type NormalMode struct {
	keys KeyMap
}

func NewNormalMode(keys KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeHelp}}, true

	case key.Matches(msg, m.keys.NextSection):
		return []types.Action{types.CycleSectionAction{Delta: 1}}, true
	case key.Matches(msg, m.keys.PrevSection):
		return []types.Action{types.CycleSectionAction{Delta: -1}}, true
	case key.Matches(msg, m.keys.Home):
		return []types.Action{types.GoToSectionAction{Section: state.SectionHome}}, true
	}

	switch ctx.Section() {
	case state.SectionGallery, state.SectionReviews:
		return m.handleCarouselKey(msg, ctx)
	case state.SectionAttractions:
		return m.handleListKey(msg, ctx)
	}
	return nil, false
}

func (m *NormalMode) handleCarouselKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Prev):
		return []types.Action{types.CarouselStepAction{Delta: -1}}, true
	case key.Matches(msg, m.keys.Next):
		return []types.Action{types.CarouselStepAction{Delta: 1}}, true
	case key.Matches(msg, m.keys.Jump):
		// Jump only binds the runes 1-9
		slot := int(msg.Runes[0] - '1')
		return []types.Action{types.CarouselJumpAction{Slot: slot}}, true
	case key.Matches(msg, m.keys.AllReviews) && ctx.Section() == state.SectionReviews:
		return []types.Action{types.OpenReviewsAction{}}, true
	}
	return nil, false
}

func (m *NormalMode) handleListKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if ctx.AttractionCount() == 0 {
		return nil, false
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.MoveCursorAction{Delta: -1}}, true
	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.MoveCursorAction{Delta: 1}}, true
	case key.Matches(msg, m.keys.Open):
		return []types.Action{types.OpenAttractionAction{}}, true
	}
	return nil, false
}
