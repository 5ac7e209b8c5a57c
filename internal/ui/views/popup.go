package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centers a popup on top of a greyed out copy of the main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	// Keep the modal inside a small margin
	maxW := width - 6
	if maxW < 20 {
		maxW = width
	}
	if popupStyle.GetWidth() > maxW {
		popupStyle = popupStyle.Width(maxW)
	}
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := (width - modalW) / 2
	y := (height - modalH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	base := fitHeight(Desaturate(mainContent), height)
	return Overlay(base, styledPopup, x, y)
}

// RenderDropdown places a box at a fixed offset without dimming the page
func (pr *PopupRenderer) RenderDropdown(mainContent, box string, x, y int) string {
	return Overlay(mainContent, box, x, y)
}

// Overlay draws box over base with its top-left corner at column x, row y.
// Base cells left and right of the box are kept.
func Overlay(base, box string, x, y int) string {
	baseLines := strings.Split(base, "\n")
	boxLines := strings.Split(box, "\n")

	for len(baseLines) < y+len(boxLines) {
		baseLines = append(baseLines, "")
	}

	for k, boxLine := range boxLines {
		row := y + k
		line := baseLines[row]
		boxW := ansi.StringWidth(boxLine)

		left := ansi.Truncate(line, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ""
		if ansi.StringWidth(line) > x+boxW {
			right = ansi.TruncateLeft(line, x+boxW, "")
		}
		baseLines[row] = left + "\x1b[0m" + boxLine + "\x1b[0m" + right
	}
	return strings.Join(baseLines, "\n")
}

// Desaturate strips styling and recolors text dim gray
func Desaturate(s string) string {
	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	lines := strings.Split(ansi.Strip(s), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = gray.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func fitHeight(s string, height int) string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
