package navigation

import "fmt"

// View is one of the site's pages
type View int

const (
	Home View = iota
	Research
	News
)

// Views lists every page in navigation order
func Views() []View {
	return []View{Home, Research, News}
}

func (v View) String() string {
	switch v {
	case Home:
		return "home"
	case Research:
		return "research"
	case News:
		return "news"
	}
	return fmt.Sprintf("view(%d)", int(v))
}

// Title is the page heading shown in the header breadcrumb
func (v View) Title() string {
	switch v {
	case Research:
		return "Research Projects"
	case News:
		return "News & Updates"
	}
	return "Home"
}

// Valid reports whether v is a known page
func (v View) Valid() bool {
	return v >= Home && v <= News
}

// ParseView maps a config or flag value to a View
func ParseView(s string) (View, error) {
	for _, v := range Views() {
		if v.String() == s {
			return v, nil
		}
	}
	return Home, fmt.Errorf("unknown view %q", s)
}

// Event requests a page transition
type Event interface {
	target(current View) View
}

// ShowResearchProjects opens the research projects listing
type ShowResearchProjects struct{}

// ShowNews opens the news listing
type ShowNews struct{}

// BackToHome returns to the home page
type BackToHome struct{}

// GoTo opens an arbitrary page
type GoTo struct {
	View View
}

func (ShowResearchProjects) target(View) View { return Research }
func (ShowNews) target(View) View             { return News }
func (BackToHome) target(View) View           { return Home }

func (e GoTo) target(current View) View {
	if !e.View.Valid() {
		return current
	}
	return e.View
}

// State holds the current page and the focused section on it
type State struct {
	Current  View
	Previous View
	Focus    int
	MaxFocus int
}
