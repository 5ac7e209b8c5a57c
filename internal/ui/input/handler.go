package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cishsite/internal/ui/input/modes"
	"cishsite/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared text input for text modes
}

func New() *Handler {
	ti := textinput.New()
	ti.CharLimit = 120

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput)
	h.modes[types.ModeNewsletter] = modes.NewNewsletterMode(h.textInput)
	h.modes[types.ModeMenu] = modes.NewMenuMode()
	h.modes[types.ModeDialog] = modes.NewDialogMode()

	return h
}

// HandleKey routes a key to the current mode and applies mode changes
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.switchMode(changeMode.Mode, changeMode.Data, ctx)...)
			if h.isTextMode(h.currentMode) {
				cmd = textinput.Blink
			}
		} else {
			allActions = append(allActions, action)
		}
	}

	// Unhandled keys in a text mode edit the text
	if h.isTextMode(h.currentMode) && !consumed {
		before := h.textInput.Value()
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		if h.textInput.Value() != before {
			allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value(), Mode: h.currentMode})
		}
	}

	return allActions, cmd
}

// Enter switches mode from outside a key press, for example when a dialog
// opens after a mouse click
func (h *Handler) Enter(mode types.Mode, data string, ctx types.Context) ([]types.Action, tea.Cmd) {
	actions := h.switchMode(mode, data, ctx)
	if h.isTextMode(mode) {
		return actions, textinput.Blink
	}
	return actions, nil
}

func (h *Handler) switchMode(mode types.Mode, data string, ctx types.Context) []types.Action {
	var actions []types.Action
	if h.modes[h.currentMode] != nil {
		actions = append(actions, h.modes[h.currentMode].Exit(ctx)...)
	}

	h.currentMode = mode

	if h.modes[h.currentMode] != nil {
		actions = append(actions, h.modes[h.currentMode].Enter(ctx)...)
	}

	if h.isTextMode(h.currentMode) {
		h.textInput.SetValue(data)
		h.textInput.CursorEnd()
		h.textInput.Focus()
	} else {
		h.textInput.Blur()
	}
	return actions
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// CurrentModeName names the active mode for logs
func (h *Handler) CurrentModeName() string {
	if m := h.modes[h.currentMode]; m != nil {
		return m.Name()
	}
	return h.currentMode.String()
}

// TextInput returns the shared text input while a text mode is active
func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	switch mode {
	case types.ModeSearch, types.ModeNewsletter:
		return true
	default:
		return false
	}
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
