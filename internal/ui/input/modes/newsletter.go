package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"cishsite/internal/ui/input/types"
)

// NewsletterMode edits the footer subscription address
type NewsletterMode struct {
	TextInputMode
}

func NewNewsletterMode(ti *textinput.Model) *NewsletterMode {
	return &NewsletterMode{
		TextInputMode: NewTextInputMode(types.ModeNewsletter, "newsletter", "you@example.com", ti),
	}
}
