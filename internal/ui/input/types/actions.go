package types

import "cishsite/internal/ui/services/navigation"

// Scrolling actions
type ScrollAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "top", "bottom"
}

func (a ScrollAction) Type() string { return "scroll" }

// FocusAction moves focus between the sections of a page
type FocusAction struct {
	Delta int
}

func (a FocusAction) Type() string { return "focus" }

// MoveAction moves inside the focused section: carousel slides, grid cards, tabs
type MoveAction struct {
	Delta int
}

func (a MoveAction) Type() string { return "move" }

// JumpAction selects a carousel slide directly
type JumpAction struct {
	Index int
}

func (a JumpAction) Type() string { return "jump" }

// ActivateAction triggers the focused section's primary action
type ActivateAction struct{}

func (a ActivateAction) Type() string { return "activate" }

// CycleFacetAction steps through a facet's options. Key is the facet shortcut.
type CycleFacetAction struct {
	Key   string
	Delta int
}

func (a CycleFacetAction) Type() string { return "cycle_facet" }

type ResetFiltersAction struct{}

func (a ResetFiltersAction) Type() string { return "reset_filters" }

type ToggleAutoplayAction struct{}

func (a ToggleAutoplayAction) Type() string { return "toggle_autoplay" }

// NavigateAction asks the view switcher for another page
type NavigateAction struct {
	Event navigation.Event
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
	Mode Mode
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct {
	Mode Mode
}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Menu actions
type MenuMoveAction struct {
	Delta int
}

func (a MenuMoveAction) Type() string { return "menu_move" }

type MenuSelectAction struct {
	Index int // -1 for the highlighted entry
}

func (a MenuSelectAction) Type() string { return "menu_select" }

type CloseMenuAction struct{}

func (a CloseMenuAction) Type() string { return "close_menu" }

type CloseDialogAction struct{}

func (a CloseDialogAction) Type() string { return "close_dialog" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
