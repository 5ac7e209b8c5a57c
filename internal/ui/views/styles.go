package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette, as 256-color codes
const (
	ColorLeafDark = "22"
	ColorLeaf     = "34"
	ColorMango    = "214"
	ColorSun      = "220"
	ColorText     = "252"
	ColorMuted    = "245"
	ColorBorder   = "241"
	ColorSurface  = "236"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Brand          lipgloss.Style
	Tagline        lipgloss.Style
	Header         lipgloss.Style
	HeaderCompact  lipgloss.Style
	Nav            lipgloss.Style
	NavActive      lipgloss.Style
	Menu           lipgloss.Style
	MenuItem       lipgloss.Style
	MenuItemActive lipgloss.Style
	Hero           lipgloss.Style
	HeroTitle      lipgloss.Style
	Cursor         lipgloss.Style
	SectionTitle   lipgloss.Style
	SectionFocused lipgloss.Style
	Subtitle       lipgloss.Style
	Body           lipgloss.Style
	Dim            lipgloss.Style
	Card           lipgloss.Style
	CardSelected   lipgloss.Style
	CardTitle      lipgloss.Style
	Badge          lipgloss.Style
	Tag            lipgloss.Style
	Highlight      lipgloss.Style
	Counter        lipgloss.Style
	Tab            lipgloss.Style
	TabActive      lipgloss.Style
	Facet          lipgloss.Style
	FacetActive    lipgloss.Style
	Dot            lipgloss.Style
	DotActive      lipgloss.Style
	Progress       lipgloss.Style
	ProgressTrack  lipgloss.Style
	Empty          lipgloss.Style
	Footer         lipgloss.Style
	FooterHeading  lipgloss.Style
	Success        lipgloss.Style
	Error          lipgloss.Style
	Dialog         lipgloss.Style
	Help           lipgloss.Style
	Prompt         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1)

	return &Styles{
		Brand: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorSun)),
		Tagline: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
		Header: lipgloss.NewStyle().
			Padding(1, 2).
			Background(lipgloss.Color(ColorLeafDark)),
		HeaderCompact: lipgloss.NewStyle().
			Padding(0, 2).
			Background(lipgloss.Color(ColorSurface)),
		Nav:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorText)).Padding(0, 1),
		NavActive: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMango)).Bold(true).Underline(true).Padding(0, 1),
		Menu: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(ColorLeaf)).
			Padding(0, 1),
		MenuItem:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorText)),
		MenuItemActive: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMango)).Bold(true),
		Hero: lipgloss.NewStyle().
			Padding(2, 2).
			Align(lipgloss.Center),
		HeroTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorSun)).
			MarginBottom(1),
		Cursor: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMango)).Blink(true),
		SectionTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorLeaf)).
			MarginTop(1),
		SectionFocused: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorMango)).
			MarginTop(1),
		Subtitle:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)).Italic(true),
		Body:          lipgloss.NewStyle().Foreground(lipgloss.Color(ColorText)),
		Dim:           lipgloss.NewStyle().Faint(true),
		Card:          card,
		CardSelected:  card.BorderForeground(lipgloss.Color(ColorMango)),
		CardTitle:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorText)),
		Badge:         lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("16")),
		Tag:           lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLeaf)),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Counter:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorMango)),
		Tab:           lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)).Padding(0, 1),
		TabActive:     lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color(ColorLeaf)).Padding(0, 1),
		Facet:         lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
		FacetActive:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMango)),
		Dot:           lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder)),
		DotActive:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMango)),
		Progress:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLeaf)),
		ProgressTrack: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder)),
		Empty:         lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)).Italic(true).Padding(1, 2),
		Footer: lipgloss.NewStyle().
			Padding(1, 2).
			MarginTop(1).
			Background(lipgloss.Color(ColorSurface)),
		FooterHeading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorSun)),
		Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorLeaf)).
			Padding(1, 2).
			Width(72),
		Help:   lipgloss.NewStyle().Faint(true),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMango)).Bold(true),
	}
}

// StatusColor returns the badge color for a research project status
func StatusColor(status string) string {
	switch status {
	case "Ongoing":
		return "33" // blue
	case "Completed":
		return "78" // green
	case "Planning":
		return "220" // yellow
	default:
		return "245"
	}
}

// CategoryColor returns the badge color for a news category
func CategoryColor(category string) string {
	switch category {
	case "Research Breakthrough":
		return "78"
	case "Events":
		return "75"
	case "Sustainability":
		return "42"
	case "Technology":
		return "141"
	case "Collaboration":
		return "215"
	case "Training":
		return "105"
	case "Research":
		return "37"
	case "Innovation":
		return "211"
	default:
		return "250"
	}
}

// DemandColor returns the color for a variety's market demand
func DemandColor(demand string) string {
	switch demand {
	case "Very High":
		return "78"
	case "High":
		return "75"
	case "Growing":
		return "141"
	case "Stable", "Steady":
		return "220"
	default:
		return "245"
	}
}
