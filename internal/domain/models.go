package domain

import "strings"

// Facet names shared by the content records and the filter UI
const (
	FacetCategory = "category"
	FacetStatus   = "status"
	FacetRegion   = "region"
	FacetType     = "type"
)

// Project represents a research project
type Project struct {
	ID          int      `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Category    string   `yaml:"category"`
	Status      string   `yaml:"status"`
	Duration    string   `yaml:"duration"`
	Budget      string   `yaml:"budget"`
	Team        string   `yaml:"team"`
	Location    string   `yaml:"location"`
	Progress    int      `yaml:"progress"` // percent complete
	Image       string   `yaml:"image"`
	Tags        []string `yaml:"tags"`
}

func (p Project) Key() int { return p.ID }

func (p Project) SearchFields() []string {
	fields := []string{p.Title, p.Description}
	return append(fields, p.Tags...)
}

func (p Project) FacetValue(name string) string {
	switch name {
	case FacetCategory:
		return p.Category
	case FacetStatus:
		return p.Status
	}
	return ""
}

// Article represents a news article
type Article struct {
	ID       int    `yaml:"id"`
	Title    string `yaml:"title"`
	Excerpt  string `yaml:"excerpt"`
	Content  string `yaml:"content"` // markdown body, may be empty
	Author   string `yaml:"author"`
	Date     string `yaml:"date"`
	ReadTime string `yaml:"read_time"`
	Views    string `yaml:"views"`
	Category string `yaml:"category"`
	Image    string `yaml:"image"`
	Featured bool   `yaml:"featured"`
}

func (a Article) Key() int { return a.ID }

func (a Article) SearchFields() []string {
	return []string{a.Title, a.Excerpt, a.Author}
}

func (a Article) FacetValue(name string) string {
	if name == FacetCategory {
		return a.Category
	}
	return ""
}

// Markdown renders the article as a markdown document for the reader
func (a Article) Markdown() string {
	var b strings.Builder
	b.WriteString("# " + a.Title + "\n\n")
	b.WriteString("*" + a.Category + "* · " + a.Author + " · " + a.Date)
	if a.ReadTime != "" {
		b.WriteString(" · " + a.ReadTime)
	}
	b.WriteString("\n\n")
	b.WriteString("> " + a.Excerpt + "\n\n")
	if a.Content != "" {
		b.WriteString(a.Content)
		b.WriteString("\n")
	}
	return b.String()
}

// Contact holds an institute's contact details
type Contact struct {
	Address string `yaml:"address"`
	Phone   string `yaml:"phone"`
	Email   string `yaml:"email"`
	Website string `yaml:"website"`
}

// Institute represents an entry in the institutes directory
type Institute struct {
	ID          int     `yaml:"id"`
	Name        string  `yaml:"name"`
	ShortName   string  `yaml:"short_name"`
	Location    string  `yaml:"location"`
	Region      string  `yaml:"region"`
	Type        string  `yaml:"type"`
	Image       string  `yaml:"image"`
	Description string  `yaml:"description"`
	Contact     Contact `yaml:"contact"`
}

func (i Institute) Key() int { return i.ID }

func (i Institute) SearchFields() []string {
	return []string{i.Name, i.ShortName, i.Location}
}

func (i Institute) FacetValue(name string) string {
	switch name {
	case FacetRegion:
		return i.Region
	case FacetType:
		return i.Type
	}
	return ""
}

// Variety represents a fruit variety offered for commercialization
type Variety struct {
	ID               int      `yaml:"id"`
	Name             string   `yaml:"name"`
	Category         string   `yaml:"category"`
	Description      string   `yaml:"description"`
	Features         []string `yaml:"features"`
	MaturityPeriod   string   `yaml:"maturity_period"`
	YieldPotential   string   `yaml:"yield_potential"`
	CommercialRating float64  `yaml:"commercial_rating"`
	Image            string   `yaml:"image"`
	MarketDemand     string   `yaml:"market_demand"`
	ExportPotential  string   `yaml:"export_potential"`
}

func (v Variety) Key() int { return v.ID }

func (v Variety) SearchFields() []string {
	fields := []string{v.Name, v.Description}
	return append(fields, v.Features...)
}

func (v Variety) FacetValue(name string) string {
	if name == FacetCategory {
		return v.Category
	}
	return ""
}

// ResearchArea is a card in the home page research highlights
type ResearchArea struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
}

// Event is an upcoming event shown next to the latest news
type Event struct {
	ID       int    `yaml:"id"`
	Title    string `yaml:"title"`
	Date     string `yaml:"date"`
	Location string `yaml:"location"`
	Time     string `yaml:"time"`
	Image    string `yaml:"image"`
}

// Headline is a short news item on the home page
type Headline struct {
	ID       int    `yaml:"id"`
	Title    string `yaml:"title"`
	Date     string `yaml:"date"`
	Category string `yaml:"category"`
	Excerpt  string `yaml:"excerpt"`
	Image    string `yaml:"image"`
}

// Stat is an animated counter in the about section
type Stat struct {
	Value  int    `yaml:"value"`
	Suffix string `yaml:"suffix"`
	Label  string `yaml:"label"`
}

// Site holds the page-level copy that is not a filterable collection
type Site struct {
	Name            string   `yaml:"name"`
	Title           string   `yaml:"title"`
	Tagline         string   `yaml:"tagline"`
	AboutTitle      string   `yaml:"about_title"`
	About           []string `yaml:"about"`
	Stats           []Stat   `yaml:"stats"`
	NavItems        []string `yaml:"nav_items"`
	FooterBlurb     string   `yaml:"footer_blurb"`
	QuickLinks      []string `yaml:"quick_links"`
	Contact         Contact  `yaml:"contact"`
	NewsletterBlurb string   `yaml:"newsletter_blurb"`
	TrendingTopics  []string `yaml:"trending_topics"`
}
