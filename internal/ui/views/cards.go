package views

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cishsite/internal/domain"
)

// MinCardWidth is the narrowest a card is laid out
const MinCardWidth = 28

// CardRenderer renders the content records as bordered cards
type CardRenderer struct {
	styles *Styles
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles) *CardRenderer {
	return &CardRenderer{styles: styles}
}

func (c *CardRenderer) frame(body string, width int, selected bool) string {
	style := c.styles.Card
	if selected {
		style = c.styles.CardSelected
	}
	// Width covers padding but not the border
	inner := width - 2
	if inner < 4 {
		inner = 4
	}
	return style.Width(inner).Render(body)
}

func (c *CardRenderer) badge(text, color string) string {
	return c.styles.Badge.Background(lipgloss.Color(color)).Render(text)
}

// Project renders a research project card
func (c *CardRenderer) Project(p domain.Project, query string, width int, selected bool) string {
	var lines []string
	lines = append(lines, c.highlight(p.Title, query, c.styles.CardTitle))
	lines = append(lines, c.badge(p.Status, StatusColor(p.Status))+" "+c.styles.Tag.Render(p.Category))
	lines = append(lines, "")
	lines = append(lines, c.highlight(p.Description, query, c.styles.Body))
	lines = append(lines, "")
	lines = append(lines, "Progress "+ProgressBar(c.styles, p.Progress, width-20)+fmt.Sprintf(" %d%%", clampPercent(p.Progress)))
	lines = append(lines, c.styles.Dim.Render(fmt.Sprintf("%s · %s", p.Duration, p.Budget)))
	lines = append(lines, c.styles.Dim.Render(fmt.Sprintf("%s · %s", p.Team, p.Location)))
	if len(p.Tags) > 0 {
		tags := make([]string, len(p.Tags))
		for i, t := range p.Tags {
			tags[i] = c.highlight("#"+t, query, c.styles.Tag)
		}
		lines = append(lines, strings.Join(tags, " "))
	}
	return c.frame(strings.Join(lines, "\n"), width, selected)
}

// Article renders a news article card
func (c *CardRenderer) Article(a domain.Article, query string, width int, selected bool) string {
	var lines []string
	lines = append(lines, c.badge(a.Category, CategoryColor(a.Category)))
	lines = append(lines, c.highlight(a.Title, query, c.styles.CardTitle))
	lines = append(lines, c.highlight(a.Excerpt, query, c.styles.Body))
	lines = append(lines, "")
	meta := fmt.Sprintf("%s · %s", c.highlight(a.Author, query, c.styles.Dim), c.styles.Dim.Render(a.Date))
	lines = append(lines, meta)
	lines = append(lines, c.styles.Dim.Render(fmt.Sprintf("%s · %s views", a.ReadTime, a.Views)))
	return c.frame(strings.Join(lines, "\n"), width, selected)
}

// Featured renders the wide featured article block
func (c *CardRenderer) Featured(a domain.Article, width int, selected bool) string {
	var lines []string
	lines = append(lines, c.badge("Featured", ColorMango)+" "+c.badge(a.Category, CategoryColor(a.Category)))
	lines = append(lines, c.styles.HeroTitle.UnsetMarginBottom().Render(a.Title))
	lines = append(lines, c.styles.Body.Render(a.Excerpt))
	lines = append(lines, "")
	lines = append(lines, c.styles.Dim.Render(fmt.Sprintf("%s · %s · %s · %s views", a.Author, a.Date, a.ReadTime, a.Views)))
	lines = append(lines, c.styles.Prompt.Render("enter: read full article"))
	return c.frame(strings.Join(lines, "\n"), width, selected)
}

// Institute renders an institute directory card
func (c *CardRenderer) Institute(i domain.Institute, query string, width int, selected bool) string {
	var lines []string
	lines = append(lines, c.highlight(i.ShortName, query, c.styles.CardTitle))
	lines = append(lines, c.highlight(i.Name, query, c.styles.Body))
	lines = append(lines, c.highlight(i.Location, query, c.styles.Dim))
	lines = append(lines, c.badge(i.Region, ColorLeaf)+" "+c.badge(i.Type, ColorMango))
	lines = append(lines, "")
	lines = append(lines, c.styles.Body.Render(i.Description))
	if selected {
		lines = append(lines, c.styles.Prompt.Render("enter: details"))
	}
	return c.frame(strings.Join(lines, "\n"), width, selected)
}

// Variety renders a fruit variety card
func (c *CardRenderer) Variety(v domain.Variety, width int, selected bool) string {
	var lines []string
	lines = append(lines, c.styles.CardTitle.Render(v.Name)+"  "+c.styles.Counter.Render(Stars(v.CommercialRating)))
	lines = append(lines, c.styles.Tag.Render(v.Category))
	lines = append(lines, c.styles.Body.Render(v.Description))
	for _, f := range v.Features {
		lines = append(lines, "• "+f)
	}
	lines = append(lines, "")
	lines = append(lines, c.styles.Dim.Render("Maturity: "+v.MaturityPeriod))
	lines = append(lines, c.styles.Dim.Render("Yield: "+v.YieldPotential))
	demand := lipgloss.NewStyle().Foreground(lipgloss.Color(DemandColor(v.MarketDemand))).Render(v.MarketDemand)
	lines = append(lines, "Demand: "+demand+"  Export: "+v.ExportPotential)
	return c.frame(strings.Join(lines, "\n"), width, selected)
}

// Area renders a research highlight card
func (c *CardRenderer) Area(a domain.ResearchArea, width int, selected bool) string {
	body := c.styles.CardTitle.Render(a.Title) + "\n" + c.styles.Body.Render(a.Description)
	return c.frame(body, width, selected)
}

// Headline renders a short news item
func (c *CardRenderer) Headline(h domain.Headline, width int, selected bool) string {
	var lines []string
	lines = append(lines, c.badge(h.Category, CategoryColor(h.Category))+" "+c.styles.Dim.Render(h.Date))
	lines = append(lines, c.styles.CardTitle.Render(h.Title))
	lines = append(lines, c.styles.Body.Render(h.Excerpt))
	return c.frame(strings.Join(lines, "\n"), width, selected)
}

// Event renders an upcoming event
func (c *CardRenderer) Event(e domain.Event, width int, selected bool) string {
	var lines []string
	lines = append(lines, c.styles.CardTitle.Render(e.Title))
	lines = append(lines, c.styles.Counter.Render(e.Date)+" "+c.styles.Dim.Render(e.Time))
	lines = append(lines, c.styles.Dim.Render(e.Location))
	return c.frame(strings.Join(lines, "\n"), width, selected)
}

// InstituteDetails renders the body of the institute dialog
func (c *CardRenderer) InstituteDetails(i domain.Institute) string {
	var lines []string
	lines = append(lines, c.styles.HeroTitle.UnsetMarginBottom().Render(i.ShortName))
	lines = append(lines, c.styles.CardTitle.Render(i.Name))
	lines = append(lines, c.badge(i.Region, ColorLeaf)+" "+c.badge(i.Type, ColorMango)+" "+c.styles.Dim.Render(i.Location))
	lines = append(lines, "")
	lines = append(lines, c.styles.Body.Render(i.Description))
	lines = append(lines, "")
	lines = append(lines, c.styles.FooterHeading.Render("Contact"))
	lines = append(lines, "Address  "+i.Contact.Address)
	lines = append(lines, "Phone    "+i.Contact.Phone)
	lines = append(lines, "Email    "+i.Contact.Email)
	lines = append(lines, "Website  "+i.Contact.Website)
	lines = append(lines, "")
	lines = append(lines, c.styles.Help.Render("esc: close"))
	return strings.Join(lines, "\n")
}

// highlight renders the first case-insensitive match of query in the highlight style
func (c *CardRenderer) highlight(text, query string, normal lipgloss.Style) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return normal.Render(text)
	}
	return highlightMatch(text, query, c.styles.Highlight, normal)
}

// highlightMatch highlights matching text within a string
func highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	// Lowercasing can change byte lengths outside ASCII
	if index == -1 || len(lowerText) != len(text) || len(lowerQuery) != len(query) {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	return normalStyle.Render(before) + highlightStyle.Render(match) + normalStyle.Render(after)
}

// ProgressBar draws a bar of the given cell width filled to percent
func ProgressBar(styles *Styles, percent, width int) string {
	if width < 5 {
		width = 5
	}
	if width > 30 {
		width = 30
	}
	filled := clampPercent(percent) * width / 100
	return styles.Progress.Render(strings.Repeat("█", filled)) +
		styles.ProgressTrack.Render(strings.Repeat("░", width-filled))
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Stars renders a 0-5 rating rounded to the nearest half star
func Stars(rating float64) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	halves := int(math.Round(rating * 2))
	full := halves / 2
	half := halves % 2
	empty := 5 - full - half
	return strings.Repeat("★", full) + strings.Repeat("½", half) + strings.Repeat("☆", empty) + fmt.Sprintf(" %.1f", rating)
}

// Dots renders the slide indicator of a carousel
func Dots(styles *Styles, n, active int) string {
	if n <= 1 {
		return ""
	}
	dots := make([]string, n)
	for i := range dots {
		if i == active {
			dots[i] = styles.DotActive.Render("●")
		} else {
			dots[i] = styles.Dot.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

// Columns returns how many cards of at least MinCardWidth fit in width, up to max
func Columns(width, max int) int {
	if max < 1 {
		max = 1
	}
	cols := width / MinCardWidth
	if cols < 1 {
		cols = 1
	}
	if cols > max {
		cols = max
	}
	return cols
}

// CardWidth splits width evenly between cols cards separated by one space
func CardWidth(width, cols int) int {
	if cols < 1 {
		cols = 1
	}
	w := (width - (cols - 1)) / cols
	if w < MinCardWidth && width >= MinCardWidth {
		w = MinCardWidth
	}
	return w
}

// Grid lays cards out in rows of cols, top-aligned
func Grid(cards []string, cols int) string {
	if len(cards) == 0 {
		return ""
	}
	if cols < 1 {
		cols = 1
	}
	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := start + cols
		if end > len(cards) {
			end = len(cards)
		}
		row := make([]string, 0, 2*(end-start))
		for i, card := range cards[start:end] {
			if i > 0 {
				row = append(row, " ")
			}
			row = append(row, card)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
