package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"cishsite/internal/ui/input/types"
)

// SearchMode filters the focused section on every keystroke
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "type to filter", ti),
	}
}
