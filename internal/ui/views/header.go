package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CompactWidth is the terminal width below which the navigation collapses into a menu
const CompactWidth = 90

// HeaderState is what the header needs to draw itself
type HeaderState struct {
	Name     string
	Title    string
	Tagline  string
	NavItems []string
	Active   string // nav item of the current view, may be empty
	Scrolled bool
	Width    int
}

// Collapsed reports whether the navigation is shown as a menu button
func (h HeaderState) Collapsed() bool {
	return h.Width < CompactWidth
}

// Header renders the site header. Scrolled pages get a single-line bar.
func Header(styles *Styles, h HeaderState) string {
	brand := styles.Brand.Render(h.Name)
	if !h.Scrolled && h.Title != "" {
		brand += " " + styles.Tagline.Render(h.Title)
	}

	var nav string
	if h.Collapsed() {
		nav = styles.NavActive.Render("☰ Menu (m)")
	} else {
		items := make([]string, len(h.NavItems))
		for i, item := range h.NavItems {
			if item == h.Active {
				items[i] = styles.NavActive.Render(item)
			} else {
				items[i] = styles.Nav.Render(item)
			}
		}
		nav = strings.Join(items, "")
	}

	style := styles.Header
	if h.Scrolled {
		style = styles.HeaderCompact
	}
	inner := h.Width - style.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	gap := inner - lipgloss.Width(brand) - lipgloss.Width(nav)
	var bar string
	if gap >= 1 {
		bar = brand + strings.Repeat(" ", gap) + nav
	} else {
		bar = lipgloss.JoinVertical(lipgloss.Left, brand, nav)
	}
	if !h.Scrolled && h.Tagline != "" {
		bar += "\n" + styles.Tagline.Render(h.Tagline)
	}
	return style.Width(h.Width).Render(bar)
}

// Menu renders the collapsed navigation dropdown
func Menu(styles *Styles, items []string, selected int) string {
	lines := make([]string, len(items))
	for i, item := range items {
		label := item
		if i < 9 {
			label = string(rune('1'+i)) + " " + item
		}
		if i == selected {
			lines[i] = styles.MenuItemActive.Render("▸ " + label)
		} else {
			lines[i] = styles.MenuItem.Render("  " + label)
		}
	}
	return styles.Menu.Render(strings.Join(lines, "\n"))
}

// SectionHeading renders a section title, accented when the section has focus
func SectionHeading(styles *Styles, title, subtitle string, focused bool) string {
	style := styles.SectionTitle
	marker := "  "
	if focused {
		style = styles.SectionFocused
		marker = "▌ "
	}
	out := style.Render(marker + title)
	if subtitle != "" {
		out += "\n" + styles.Subtitle.Render("  "+subtitle)
	}
	return out
}

// Tabs renders a row of tabs with one active
func Tabs(styles *Styles, labels []string, active int) string {
	out := make([]string, len(labels))
	for i, l := range labels {
		if i == active {
			out[i] = styles.TabActive.Render(l)
		} else {
			out[i] = styles.Tab.Render(l)
		}
	}
	return strings.Join(out, " ")
}
