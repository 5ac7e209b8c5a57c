package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cishsite/internal/ui/input/types"
	"cishsite/internal/ui/services/navigation"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func homeCtx() *ModelContext {
	return &ModelContext{Searchable: true, MenuItems: 5, Home: true}
}

func TestNormalModeKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want types.Action
	}{
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, types.FocusAction{Delta: 1}},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, types.FocusAction{Delta: -1}},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, types.MoveAction{Delta: 1}},
		{"h", runes("h"), types.MoveAction{Delta: -1}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, types.ActivateAction{}},
		{"category", runes("c"), types.CycleFacetAction{Key: "c", Delta: 1}},
		{"status back", runes("S"), types.CycleFacetAction{Key: "s", Delta: -1}},
		{"jump", runes("3"), types.JumpAction{Index: 2}},
		{"autoplay", runes("p"), types.ToggleAutoplayAction{}},
		{"projects", runes("P"), types.NavigateAction{Event: navigation.ShowResearchProjects{}}},
		{"news", runes("N"), types.NavigateAction{Event: navigation.ShowNews{}}},
		{"bottom", runes("G"), types.ScrollAction{Direction: "bottom"}},
		{"quit", runes("q"), types.QuitAction{}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, types.QuitAction{Force: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New()
			actions, _ := h.HandleKey(tt.msg, homeCtx())
			require.Len(t, actions, 1)
			assert.Equal(t, tt.want, actions[0])
			assert.Equal(t, types.ModeNormal, h.CurrentMode())
		})
	}
}

func TestBackIsIgnoredOnHome(t *testing.T) {
	h := New()
	actions, _ := h.HandleKey(runes("b"), homeCtx())
	assert.Empty(t, actions)

	actions, _ = h.HandleKey(runes("b"), &ModelContext{})
	require.Len(t, actions, 1)
	assert.Equal(t, types.NavigateAction{Event: navigation.BackToHome{}}, actions[0])
}

func TestSearchFiltersOnEveryKeystroke(t *testing.T) {
	h := New()
	ctx := homeCtx()

	_, cmd := h.HandleKey(runes("/"), ctx)
	assert.NotNil(t, cmd)
	require.Equal(t, types.ModeSearch, h.CurrentMode())
	require.NotNil(t, h.TextInput())

	actions, _ := h.HandleKey(runes("m"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "m", Mode: types.ModeSearch}, actions[0])

	actions, _ = h.HandleKey(runes("a"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "ma", Mode: types.ModeSearch}, actions[0])

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.SubmitTextAction{Text: "ma", Mode: types.ModeSearch}, actions[0])
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestSearchStartsFromCurrentText(t *testing.T) {
	h := New()
	ctx := homeCtx()
	ctx.Search = "lucknow"

	h.HandleKey(runes("/"), ctx)
	assert.Equal(t, "lucknow", h.TextInput().Value())

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.CancelTextAction{Mode: types.ModeSearch}, actions[0])
}

func TestSearchNeedsSearchableSection(t *testing.T) {
	h := New()
	actions, _ := h.HandleKey(runes("/"), &ModelContext{Home: true})
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestMenuMode(t *testing.T) {
	h := New()
	ctx := homeCtx()

	h.HandleKey(runes("m"), ctx)
	require.Equal(t, types.ModeMenu, h.CurrentMode())

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, ctx)
	assert.Equal(t, []types.Action{types.MenuMoveAction{Delta: 1}}, actions)

	actions, _ = h.HandleKey(runes("x"), ctx)
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeMenu, h.CurrentMode())

	actions, _ = h.HandleKey(runes("4"), ctx)
	assert.Equal(t, []types.Action{types.MenuSelectAction{Index: 3}, types.CloseMenuAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestDialogModeCloses(t *testing.T) {
	h := New()
	ctx := homeCtx()

	h.Enter(types.ModeDialog, "", ctx)
	actions, _ := h.HandleKey(runes("c"), ctx)
	assert.Empty(t, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.CloseDialogAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestReenteringNewsletterKeepsText(t *testing.T) {
	h := New()
	ctx := homeCtx()
	assert.Equal(t, "normal", h.CurrentModeName())

	h.HandleKey(runes("n"), ctx)
	assert.Equal(t, "newsletter", h.CurrentModeName())
	for _, r := range "a@b" {
		h.HandleKey(runes(string(r)), ctx)
	}

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.SubmitTextAction{Text: "a@b", Mode: types.ModeNewsletter}}, actions)
	assert.Nil(t, h.TextInput())

	_, cmd := h.Enter(types.ModeNewsletter, "a@b", ctx)
	assert.NotNil(t, cmd)
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "a@b", h.TextInput().Value())
}
