package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap describes the bindings shown by the help bar. Dispatch itself lives
// in the input modes.
type keyMap struct {
	Sections  key.Binding
	Scroll    key.Binding
	Move      key.Binding
	Jump      key.Binding
	Select    key.Binding
	Search    key.Binding
	Filter    key.Binding
	Reset     key.Binding
	Autoplay  key.Binding
	Projects  key.Binding
	News      key.Binding
	Back      key.Binding
	Menu      key.Binding
	Subscribe key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Sections:  key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next section")),
		Scroll:    key.NewBinding(key.WithKeys("up", "down", "j", "k", "pgup", "pgdown"), key.WithHelp("↑/↓", "scroll")),
		Move:      key.NewBinding(key.WithKeys("left", "right", "h", "l"), key.WithHelp("←/→", "move")),
		Jump:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "go to slide")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Filter:    key.NewBinding(key.WithKeys("c", "s", "r", "t"), key.WithHelp("c/s/r/t", "cycle filter")),
		Reset:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filters")),
		Autoplay:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause/play")),
		Projects:  key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "research projects")),
		News:      key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "news")),
		Back:      key.NewBinding(key.WithKeys("b", "backspace"), key.WithHelp("b", "back home")),
		Menu:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Subscribe: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "newsletter")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Sections, k.Move, k.Select, k.Search, k.Menu, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Sections, k.Scroll, k.Move, k.Jump, k.Select},
		{k.Search, k.Filter, k.Reset, k.Autoplay},
		{k.Projects, k.News, k.Back, k.Menu},
		{k.Subscribe, k.Help, k.Quit},
	}
}
