package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"cishsite/internal/ui/input/types"
)

// MenuMode drives the header navigation dropdown
type MenuMode struct{}

func NewMenuMode() *MenuMode {
	return &MenuMode{}
}

func (m *MenuMode) Name() string {
	return "menu"
}

func (m *MenuMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *MenuMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.CloseMenuAction{}}
}

func (m *MenuMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	key := msg.String()
	switch key {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "m", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "up", "k", "shift+tab":
		return []types.Action{types.MenuMoveAction{Delta: -1}}, true
	case "down", "j", "tab":
		return []types.Action{types.MenuMoveAction{Delta: 1}}, true
	case "enter":
		return []types.Action{
			types.MenuSelectAction{Index: -1},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	if len(key) == 1 && key[0] >= '1' && int(key[0]-'0') <= ctx.MenuSize() {
		return []types.Action{
			types.MenuSelectAction{Index: int(key[0] - '1')},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	// The menu is modal
	return nil, true
}
