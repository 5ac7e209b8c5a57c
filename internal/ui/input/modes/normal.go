package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"cishsite/internal/ui/input/types"
	"cishsite/internal/ui/services/navigation"
)

// facetKeys maps facet shortcuts to themselves; uppercase cycles backwards
var facetKeys = map[string]string{
	"c": "c", "C": "c", // category
	"s": "s", "S": "s", // status
	"r": "r", "R": "r", // region
	"t": "t", "T": "t", // type
}

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
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
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		return nil, false

	case tea.KeyTab:
		return []types.Action{types.FocusAction{Delta: 1}}, true

	case tea.KeyShiftTab:
		return []types.Action{types.FocusAction{Delta: -1}}, true

	case tea.KeyUp:
		return []types.Action{types.ScrollAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.ScrollAction{Direction: "down"}}, true

	case tea.KeyLeft:
		return []types.Action{types.MoveAction{Delta: -1}}, true

	case tea.KeyRight:
		return []types.Action{types.MoveAction{Delta: 1}}, true

	case tea.KeyPgUp:
		return []types.Action{types.ScrollAction{Direction: "pageup"}}, true

	case tea.KeyPgDown, tea.KeySpace:
		return []types.Action{types.ScrollAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.ScrollAction{Direction: "top"}}, true

	case tea.KeyEnd:
		return []types.Action{types.ScrollAction{Direction: "bottom"}}, true

	case tea.KeyEnter:
		return []types.Action{types.ActivateAction{}}, true

	case tea.KeyBackspace:
		if ctx.OnHome() {
			return nil, false
		}
		return []types.Action{types.NavigateAction{Event: navigation.BackToHome{}}}, true
	}

	key := msg.String()
	if facet, ok := facetKeys[key]; ok {
		delta := 1
		if key != facet {
			delta = -1
		}
		return []types.Action{types.CycleFacetAction{Key: facet, Delta: delta}}, true
	}
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return []types.Action{types.JumpAction{Index: int(key[0] - '1')}}, true
	}

	switch key {
	case "q":
		return []types.Action{types.QuitAction{}}, true

	case "j":
		return []types.Action{types.ScrollAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.ScrollAction{Direction: "up"}}, true

	case "h":
		return []types.Action{types.MoveAction{Delta: -1}}, true

	case "l":
		return []types.Action{types.MoveAction{Delta: 1}}, true

	case "g":
		return []types.Action{types.ScrollAction{Direction: "top"}}, true

	case "G":
		return []types.Action{types.ScrollAction{Direction: "bottom"}}, true

	case "/":
		if !ctx.CanSearch() {
			return nil, false
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.SearchText()}}, true

	case "x":
		return []types.Action{types.ResetFiltersAction{}}, true

	case "p":
		return []types.Action{types.ToggleAutoplayAction{}}, true

	case "b":
		if ctx.OnHome() {
			return nil, false
		}
		return []types.Action{types.NavigateAction{Event: navigation.BackToHome{}}}, true

	case "P":
		return []types.Action{types.NavigateAction{Event: navigation.ShowResearchProjects{}}}, true

	case "N":
		return []types.Action{types.NavigateAction{Event: navigation.ShowNews{}}}, true

	case "m":
		if ctx.MenuSize() == 0 {
			return nil, false
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeMenu}}, true

	case "n":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNewsletter}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
