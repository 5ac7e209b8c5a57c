package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeNewsletter
	ModeMenu
	ModeDialog
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeNewsletter:
		return "newsletter"
	case ModeMenu:
		return "menu"
	case ModeDialog:
		return "dialog"
	}
	return "normal"
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	// CanSearch reports whether the focused section has a search box
	CanSearch() bool
	// SearchText is the focused section's current search text
	SearchText() string
	// MenuSize is the number of entries in the navigation menu
	MenuSize() int
	// OnHome reports whether the home page is showing
	OnHome() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
