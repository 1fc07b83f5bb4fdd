package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"villaoasis/internal/ui/input/modes"
	"villaoasis/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	keys        modes.KeyMap
}

func New() *Handler {
	keys := modes.DefaultKeyMap()

	h := &Handler{
		currentMode: types.ModeNormal,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        keys,
	}

	// Register all mode handlers
	h.RegisterMode(types.ModeNormal, modes.NewNormalMode(keys))
	h.RegisterMode(types.ModeHelp, modes.NewHelpMode(keys))

	return h
}

// HandleKey routes a key to the current mode. Mode changes are applied
// here and replaced by the Exit/Enter actions of the modes involved.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return nil
	}

	var allActions []types.Action
	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		if changeMode.Mode == h.currentMode {
			continue
		}
		if current := h.modes[h.currentMode]; current != nil {
			allActions = append(allActions, current.Exit(ctx)...)
		}
		h.currentMode = changeMode.Mode
		if next := h.modes[h.currentMode]; next != nil {
			allActions = append(allActions, next.Enter(ctx)...)
		}
	}
	return allActions
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// Keys returns the bindings shared by every mode
func (h *Handler) Keys() modes.KeyMap {
	return h.keys
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
}
