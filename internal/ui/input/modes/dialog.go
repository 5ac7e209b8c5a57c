package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"cishsite/internal/ui/input/types"
)

// DialogMode keeps focus on an open details dialog until it is dismissed
type DialogMode struct{}

func NewDialogMode() *DialogMode {
	return &DialogMode{}
}

func (m *DialogMode) Name() string {
	return "dialog"
}

func (m *DialogMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DialogMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.CloseDialogAction{}}
}

func (m *DialogMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "enter", "q", " ", "backspace":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}
	return nil, true
}
