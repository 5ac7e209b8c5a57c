package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"cishsite/internal/config"
	"cishsite/internal/content"
	"cishsite/internal/domain"
	"cishsite/internal/eventbus"
	"cishsite/internal/ui/services/carousel"
	"cishsite/internal/ui/services/filter"
	"cishsite/internal/ui/services/navigation"
	"cishsite/internal/ui/views"
)

// page is the set of sections making up one view. A page is built fresh on
// every visit and stopped when left.
type page struct {
	view     navigation.View
	sections []Section
}

// pageDeps are the inputs every page is built from
type pageDeps struct {
	repo content.Repository
	cfg  *config.Config
	bus  eventbus.EventBus
	log  *zap.Logger
}

func buildPage(v navigation.View, d pageDeps) *page {
	p := &page{view: v}
	switch v {
	case navigation.Research:
		p.sections = researchSections(d)
	case navigation.News:
		p.sections = newsSections(d)
	default:
		p.view = navigation.Home
		p.sections = homeSections(d)
	}
	return p
}

// Init starts every animated section
func (p *page) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, s := range p.sections {
		if a, ok := s.(animated); ok {
			cmds = append(cmds, a.Init())
		}
	}
	return tea.Batch(cmds...)
}

// Update hands timer messages to every animated section
func (p *page) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, s := range p.sections {
		if a, ok := s.(animated); ok {
			cmds = append(cmds, a.Update(msg))
		}
	}
	return tea.Batch(cmds...)
}

// Stop releases every timer owned by the page
func (p *page) Stop() {
	for _, s := range p.sections {
		if a, ok := s.(animated); ok {
			a.Stop()
		}
	}
}

// index returns the position of a section or -1
func (p *page) index(id string) int {
	for i, s := range p.sections {
		if s.ID() == id {
			return i
		}
	}
	return -1
}

func (p *page) section(id string) Section {
	if i := p.index(id); i >= 0 {
		return p.sections[i]
	}
	return nil
}

func (p *page) footer() *footerSection {
	f, _ := p.section(sectionFooter).(*footerSection)
	return f
}

func newCarousel(cfg *config.Config, length, window int) *carousel.Model {
	return carousel.New(
		carousel.WithInterval(cfg.Carousel.Interval()),
		carousel.WithWindow(window),
		carousel.WithLength(length),
	)
}

func homeSections(d pageDeps) []Section {
	site := d.repo.Site()
	return []Section{
		newHeroSection(site),
		newAboutSection(site),
		&highlightsSection{areas: d.repo.Highlights()},
		varietiesSection(d),
		institutesSection(d),
		&newsEventsSection{headlines: d.repo.Headlines(), events: d.repo.Events()},
		newFooterSection(site, d.bus),
	}
}

func varietiesSection(d pageDeps) *listSection[domain.Variety] {
	set, err := d.repo.Varieties(d.cfg.Varieties.Preset)
	if err != nil {
		d.log.Warn("falling back to the first variety preset", zap.Error(err))
		if presets := d.repo.Presets(); len(presets) > 0 {
			set, _ = d.repo.Varieties(presets[0])
		}
	}

	coll := filter.NewCollection(set.Items,
		filter.NewFacetSpec(domain.FacetCategory, "Category", set.Categories))
	window := d.cfg.Carousel.Window

	title := set.Title
	if title == "" {
		title = "Varieties"
	}
	return &listSection[domain.Variety]{
		id:        sectionVarieties,
		title:     title,
		subtitle:  "Improved varieties developed for commercial cultivation",
		coll:      coll,
		facetKeys: map[string]string{"c": domain.FacetCategory},
		empty:     "No varieties in this category",
		card: func(c *views.CardRenderer, v domain.Variety, _ string, w int, sel bool) string {
			return c.Variety(v, w, sel)
		},
		carousel: newCarousel(d.cfg, len(set.Items), window),
		window:   window,
		bus:      d.bus,
	}
}

func institutesSection(d pageDeps) *listSection[domain.Institute] {
	coll := filter.NewCollection(d.repo.Institutes(),
		filter.NewFacetSpec(domain.FacetRegion, "Region", d.repo.InstituteRegions()),
		filter.NewFacetSpec(domain.FacetType, "Type", d.repo.InstituteTypes()),
	)
	return &listSection[domain.Institute]{
		id:        sectionInstitutes,
		title:     "ICAR Institutes",
		subtitle:  "Our network of research institutes across India",
		coll:      coll,
		facetKeys: map[string]string{"r": domain.FacetRegion, "t": domain.FacetType},
		search:    true,
		empty:     "No institutes found",
		maxCols:   3,
		card: func(c *views.CardRenderer, i domain.Institute, q string, w int, sel bool) string {
			return c.Institute(i, q, w, sel)
		},
		activate: func(i domain.Institute) tea.Cmd {
			return func() tea.Msg { return openInstituteMsg{institute: i} }
		},
		bus: d.bus,
	}
}

func researchSections(d pageDeps) []Section {
	coll := filter.NewCollection(d.repo.Projects(),
		filter.NewFacetSpec(domain.FacetCategory, "Category", d.repo.ProjectCategories()),
		filter.NewFacetSpec(domain.FacetStatus, "Status", d.repo.ProjectStatuses()),
	)
	projects := &listSection[domain.Project]{
		id:        sectionProjects,
		title:     "Research Projects",
		subtitle:  "Innovative research driving agricultural excellence",
		coll:      coll,
		facetKeys: map[string]string{"c": domain.FacetCategory, "s": domain.FacetStatus},
		search:    true,
		noun:      "research projects",
		empty:     "No projects found matching your criteria. Press x to clear filters.",
		maxCols:   2,
		card: func(c *views.CardRenderer, p domain.Project, q string, w int, sel bool) string {
			return c.Project(p, q, w, sel)
		},
		bus: d.bus,
	}
	return []Section{projects, newFooterSection(d.repo.Site(), d.bus)}
}

func newsSections(d pageDeps) []Section {
	articles := d.repo.Articles()
	coll := filter.NewCollection(articles,
		filter.NewFacetSpec(domain.FacetCategory, "Category", d.repo.ArticleCategories()))

	openArticle := func(a domain.Article) tea.Cmd {
		return func() tea.Msg { return openArticleMsg{article: a} }
	}

	headlines := &listSection[domain.Article]{
		id:       sectionHeadlines,
		title:    "Headlines",
		coll:     coll,
		empty:    "No headlines",
		card: func(c *views.CardRenderer, a domain.Article, _ string, w int, sel bool) string {
			return c.Article(a, "", w, sel)
		},
		activate: openArticle,
		carousel: newCarousel(d.cfg, len(articles), 1),
		window:   1,
		bus:      d.bus,
	}
	grid := &listSection[domain.Article]{
		id:        sectionArticles,
		title:     "All Articles",
		coll:      coll,
		facetKeys: map[string]string{"c": domain.FacetCategory},
		search:    true,
		noun:      "articles",
		empty:     "No articles found. Press x to clear filters.",
		maxCols:   3,
		card: func(c *views.CardRenderer, a domain.Article, q string, w int, sel bool) string {
			return c.Article(a, q, w, sel)
		},
		activate: openArticle,
		linked:   []*listSection[domain.Article]{headlines},
		bus:      d.bus,
	}

	return []Section{
		&featuredSection{article: d.repo.FeaturedArticle()},
		headlines,
		grid,
		&trendingSection{topics: d.repo.Site().TrendingTopics},
		newFooterSection(d.repo.Site(), d.bus),
	}
}
