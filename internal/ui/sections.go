package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cishsite/internal/domain"
	"cishsite/internal/eventbus"
	"cishsite/internal/ui/services/carousel"
	"cishsite/internal/ui/services/filter"
	"cishsite/internal/ui/services/navigation"
	"cishsite/internal/ui/views"
	"cishsite/internal/validation"
)

// Section ids
const (
	sectionHero       = "hero"
	sectionAbout      = "about"
	sectionHighlights = "highlights"
	sectionVarieties  = "varieties"
	sectionInstitutes = "institutes"
	sectionNewsEvents = "news-events"
	sectionProjects   = "projects"
	sectionFeatured   = "featured"
	sectionHeadlines  = "headlines"
	sectionArticles   = "articles"
	sectionTrending   = "trending"
	sectionFooter     = "footer"
)

// renderContext carries what a section needs to draw itself
type renderContext struct {
	styles  *views.Styles
	cards   *views.CardRenderer
	width   int
	focused bool
	input   string // rendered text input while the section is being edited
}

// Section is one block of a page
type Section interface {
	ID() string
	Render(rc renderContext) string
}

// Optional section capabilities

type animated interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	Stop()
}

type searchable interface {
	Searchable() bool
	Search() string
	SetSearch(text string) tea.Cmd
}

type movable interface {
	Move(delta int) tea.Cmd
}

type jumpable interface {
	JumpTo(i int) tea.Cmd
}

type activatable interface {
	Activate() tea.Cmd
}

type faceted interface {
	CycleFacet(key string, delta int) (tea.Cmd, bool)
	ResetFilters() tea.Cmd
}

type hoverable interface {
	Hover(over bool) tea.Cmd
}

type playable interface {
	ToggleAutoplay() tea.Cmd
}

// listSection shows a filterable collection as a card grid or, with a
// carousel, as a rotating window of cards
type listSection[T filter.Item] struct {
	id        string
	title     string
	subtitle  string
	coll      *filter.Collection[T]
	facetKeys map[string]string // shortcut -> facet name
	search    bool
	noun      string // "Showing N <noun>"; empty hides the count
	empty     string
	maxCols   int
	card      func(c *views.CardRenderer, item T, query string, width int, selected bool) string
	activate  func(item T) tea.Cmd
	carousel  *carousel.Model
	window    int
	cursor    int
	rev       int
	linked    []*listSection[T] // sections sharing coll
	bus       eventbus.EventBus
}

func (s *listSection[T]) ID() string { return s.id }

func (s *listSection[T]) Render(rc renderContext) string {
	st := rc.styles
	var b strings.Builder
	b.WriteString(views.SectionHeading(st, s.title, s.subtitle, rc.focused))
	b.WriteString("\n")

	if s.search {
		var line string
		switch {
		case rc.input != "":
			line = st.Prompt.Render("/ ") + rc.input
		case s.coll.Text() != "":
			line = st.Prompt.Render("/ ") + st.Body.Render(s.coll.Text())
		default:
			line = st.Dim.Render("/ search")
		}
		b.WriteString("  " + line + "\n")
	}
	if facets := s.facetLine(st); facets != "" {
		b.WriteString("  " + facets + "\n")
	}

	view := s.coll.View()
	if s.noun != "" {
		b.WriteString(st.Dim.Render(fmt.Sprintf("  Showing %d %s", len(view), s.noun)) + "\n")
	}
	if len(view) == 0 {
		b.WriteString(st.Empty.Render(s.empty))
		return b.String()
	}

	visible := view
	selected := s.cursor
	if s.carousel != nil {
		visible = carousel.Visible(view, s.carousel.Index(), s.window)
		selected = 0
	}
	if !rc.focused {
		selected = -1
	}

	maxCols := s.maxCols
	if s.carousel != nil {
		maxCols = len(visible)
	}
	cols := views.Columns(rc.width-2, maxCols)
	cardW := views.CardWidth(rc.width-2, cols)
	query := s.coll.Text()

	cards := make([]string, len(visible))
	for i, item := range visible {
		cards[i] = s.card(rc.cards, item, query, cardW, i == selected)
	}
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(views.Grid(cards, cols)))

	if s.carousel != nil {
		b.WriteString("\n  " + s.indicator(st, len(view)))
	}
	return b.String()
}

func (s *listSection[T]) indicator(st *views.Styles, n int) string {
	var pos string
	if n <= 12 {
		pos = views.Dots(st, n, s.carousel.Index())
	} else {
		pos = st.Dim.Render(fmt.Sprintf("%d/%d", s.carousel.Index()+1, n))
	}
	state := "▶ playing"
	switch {
	case s.carousel.Hovered():
		state = "⏸ hovered"
	case !s.carousel.Playing():
		state = "⏸ paused (p)"
	}
	return strings.TrimSpace(pos + "  " + st.Dim.Render(state))
}

func (s *listSection[T]) facetLine(st *views.Styles) string {
	specs := s.coll.Facets()
	if len(specs) == 0 || len(s.facetKeys) == 0 {
		return ""
	}
	byName := make(map[string]string, len(s.facetKeys))
	for key, name := range s.facetKeys {
		byName[name] = key
	}
	parts := make([]string, 0, len(specs))
	for _, spec := range specs {
		value := s.coll.Facet(spec.Name)
		style := st.Facet
		if value != filter.All {
			style = st.FacetActive
		}
		label := spec.Label + ": " + value
		if key := byName[spec.Name]; key != "" {
			label = "[" + key + "] " + label
		}
		parts = append(parts, style.Render(label))
	}
	return strings.Join(parts, "  ")
}

func (s *listSection[T]) Init() tea.Cmd {
	s.rev = s.coll.Revision()
	if s.carousel == nil {
		return nil
	}
	return tea.Batch(s.carousel.SetLength(len(s.coll.View())), s.carousel.Init())
}

func (s *listSection[T]) Update(msg tea.Msg) tea.Cmd {
	if s.carousel == nil {
		return nil
	}
	before := s.carousel.Index()
	_, cmd := s.carousel.Update(msg)
	if s.carousel.Index() != before {
		s.publishSlide(true)
	}
	return cmd
}

func (s *listSection[T]) Stop() {
	if s.carousel != nil {
		s.carousel.Stop()
	}
}

func (s *listSection[T]) Searchable() bool { return s.search }

func (s *listSection[T]) Search() string { return s.coll.Text() }

func (s *listSection[T]) SetSearch(text string) tea.Cmd {
	if !s.search || !s.coll.SetText(text) {
		return nil
	}
	return s.afterQuery()
}

func (s *listSection[T]) CycleFacet(key string, delta int) (tea.Cmd, bool) {
	name, ok := s.facetKeys[key]
	if !ok {
		return nil, false
	}
	if !s.coll.CycleFacet(name, delta) {
		return nil, true
	}
	return s.afterQuery(), true
}

func (s *listSection[T]) ResetFilters() tea.Cmd {
	if !s.coll.Reset() {
		return nil
	}
	return s.afterQuery()
}

// afterQuery runs after the query changed: dependants restart on the new list
func (s *listSection[T]) afterQuery() tea.Cmd {
	view := s.coll.View()
	if s.bus != nil {
		q := s.coll.Query()
		s.bus.Publish(eventbus.QueryChangedEvent{
			Section: s.id,
			Text:    q.Text,
			Facets:  q.Facets,
			Results: len(view),
		})
	}
	cmds := []tea.Cmd{s.syncQuery()}
	for _, l := range s.linked {
		cmds = append(cmds, l.syncQuery())
	}
	return tea.Batch(cmds...)
}

func (s *listSection[T]) syncQuery() tea.Cmd {
	if s.coll.Revision() == s.rev {
		return nil
	}
	s.rev = s.coll.Revision()
	s.cursor = 0
	if s.carousel != nil {
		return s.carousel.Reset(len(s.coll.View()))
	}
	return nil
}

func (s *listSection[T]) Move(delta int) tea.Cmd {
	if s.carousel != nil {
		before := s.carousel.Index()
		if delta < 0 {
			s.carousel.Prev()
		} else {
			s.carousel.Next()
		}
		if s.carousel.Index() != before {
			s.publishSlide(false)
		}
		return nil
	}
	n := len(s.coll.View())
	if n == 0 {
		return nil
	}
	s.cursor = ((s.cursor+delta)%n + n) % n
	return nil
}

func (s *listSection[T]) JumpTo(i int) tea.Cmd {
	if s.carousel != nil {
		before := s.carousel.Index()
		s.carousel.JumpTo(i)
		if s.carousel.Index() != before {
			s.publishSlide(false)
		}
		return nil
	}
	n := len(s.coll.View())
	if n == 0 {
		return nil
	}
	s.cursor = clamp(i, 0, n-1)
	return nil
}

func (s *listSection[T]) Hover(over bool) tea.Cmd {
	if s.carousel == nil {
		return nil
	}
	return s.carousel.Hover(over)
}

func (s *listSection[T]) ToggleAutoplay() tea.Cmd {
	if s.carousel == nil {
		return nil
	}
	return s.carousel.Toggle()
}

func (s *listSection[T]) Activate() tea.Cmd {
	if s.activate == nil {
		return nil
	}
	item, ok := s.selected()
	if !ok {
		return nil
	}
	return s.activate(item)
}

func (s *listSection[T]) selected() (T, bool) {
	var zero T
	view := s.coll.View()
	if len(view) == 0 {
		return zero, false
	}
	i := s.cursor
	if s.carousel != nil {
		i = s.carousel.Index()
	}
	if i < 0 || i >= len(view) {
		return zero, false
	}
	return view[i], true
}

func (s *listSection[T]) publishSlide(auto bool) {
	if s.bus == nil || s.carousel == nil {
		return
	}
	s.bus.Publish(eventbus.SlideChangedEvent{Section: s.id, Index: s.carousel.Index(), Auto: auto})
}

// heroSection shows the site title and types out the tagline
type heroSection struct {
	site domain.Site
	tw   *typewriter
}

func newHeroSection(site domain.Site) *heroSection {
	return &heroSection{site: site, tw: newTypewriter(site.Tagline)}
}

func (s *heroSection) ID() string { return sectionHero }

func (s *heroSection) Render(rc renderContext) string {
	st := rc.styles
	title := s.site.Title
	if title == "" {
		title = s.site.Name
	}
	text := s.tw.String()
	if !s.tw.Done() {
		text += st.Cursor.Render("▌")
	}
	hint := st.Dim.Render("P research projects · N news · tab sections · ? help")
	body := lipgloss.JoinVertical(lipgloss.Center,
		st.HeroTitle.Render(title),
		st.Body.Render(text),
		"",
		hint,
	)
	return st.Hero.Width(rc.width).Render(body)
}

func (s *heroSection) Init() tea.Cmd              { return s.tw.Init() }
func (s *heroSection) Update(msg tea.Msg) tea.Cmd { return s.tw.Update(msg) }
func (s *heroSection) Stop()                      { s.tw.Stop() }

// aboutSection shows the institute blurb and counts its statistics up
type aboutSection struct {
	site  domain.Site
	count *counters
}

func newAboutSection(site domain.Site) *aboutSection {
	targets := make([]int, len(site.Stats))
	for i, stat := range site.Stats {
		targets[i] = stat.Value
	}
	return &aboutSection{site: site, count: newCounters(targets...)}
}

func (s *aboutSection) ID() string { return sectionAbout }

func (s *aboutSection) Render(rc renderContext) string {
	st := rc.styles
	title := s.site.AboutTitle
	if title == "" {
		title = "About"
	}
	var b strings.Builder
	b.WriteString(views.SectionHeading(st, title, "", rc.focused))
	b.WriteString("\n")
	body := st.Body.Width(max(rc.width-4, 10)).PaddingLeft(2)
	for _, p := range s.site.About {
		b.WriteString(body.Render(p))
		b.WriteString("\n\n")
	}
	stats := make([]string, len(s.site.Stats))
	for i, stat := range s.site.Stats {
		value := st.Counter.Render(fmt.Sprintf("%d%s", s.count.Value(i), stat.Suffix))
		stats[i] = lipgloss.NewStyle().PaddingLeft(2).PaddingRight(4).Render(
			lipgloss.JoinVertical(lipgloss.Left, value, st.Dim.Render(stat.Label)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, stats...))
	return b.String()
}

func (s *aboutSection) Init() tea.Cmd              { return s.count.Init() }
func (s *aboutSection) Update(msg tea.Msg) tea.Cmd { return s.count.Update(msg) }
func (s *aboutSection) Stop()                      { s.count.Stop() }

// highlightsSection shows the research areas and links to the projects page
type highlightsSection struct {
	areas  []domain.ResearchArea
	cursor int
}

func (s *highlightsSection) ID() string { return sectionHighlights }

func (s *highlightsSection) Render(rc renderContext) string {
	st := rc.styles
	var b strings.Builder
	b.WriteString(views.SectionHeading(st, "Research Highlights", "Explore our key research areas", rc.focused))
	b.WriteString("\n")
	cols := views.Columns(rc.width-2, 3)
	w := views.CardWidth(rc.width-2, cols)
	cards := make([]string, len(s.areas))
	for i, a := range s.areas {
		cards[i] = rc.cards.Area(a, w, rc.focused && i == s.cursor)
	}
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(views.Grid(cards, cols)))
	b.WriteString("\n  " + st.Prompt.Render("enter: view all research projects"))
	return b.String()
}

func (s *highlightsSection) Move(delta int) tea.Cmd {
	if n := len(s.areas); n > 0 {
		s.cursor = ((s.cursor+delta)%n + n) % n
	}
	return nil
}

func (s *highlightsSection) Activate() tea.Cmd {
	return navigate(navigation.ShowResearchProjects{})
}

// newsEventsSection shows latest news and upcoming events as two tabs
type newsEventsSection struct {
	headlines []domain.Headline
	events    []domain.Event
	tab       int
}

var newsEventsTabs = []string{"Latest News", "Upcoming Events"}

func (s *newsEventsSection) ID() string { return sectionNewsEvents }

func (s *newsEventsSection) Render(rc renderContext) string {
	st := rc.styles
	var b strings.Builder
	b.WriteString(views.SectionHeading(st, "News & Events", "Stay updated with our latest activities", rc.focused))
	b.WriteString("\n  " + views.Tabs(st, newsEventsTabs, s.tab) + "\n")

	cols := views.Columns(rc.width-2, 3)
	w := views.CardWidth(rc.width-2, cols)
	var cards []string
	if s.tab == 0 {
		for _, h := range s.headlines {
			cards = append(cards, rc.cards.Headline(h, w, false))
		}
	} else {
		for _, e := range s.events {
			cards = append(cards, rc.cards.Event(e, w, false))
		}
	}
	if len(cards) == 0 {
		b.WriteString(st.Empty.Render("Nothing here yet"))
	} else {
		b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(views.Grid(cards, cols)))
	}
	b.WriteString("\n  " + st.Prompt.Render("enter: view all news"))
	return b.String()
}

func (s *newsEventsSection) Move(delta int) tea.Cmd {
	n := len(newsEventsTabs)
	s.tab = ((s.tab+delta)%n + n) % n
	return nil
}

func (s *newsEventsSection) JumpTo(i int) tea.Cmd {
	s.tab = clamp(i, 0, len(newsEventsTabs)-1)
	return nil
}

func (s *newsEventsSection) Activate() tea.Cmd {
	return navigate(navigation.ShowNews{})
}

// featuredSection shows the featured article
type featuredSection struct {
	article domain.Article
}

func (s *featuredSection) ID() string { return sectionFeatured }

func (s *featuredSection) Render(rc renderContext) string {
	var b strings.Builder
	b.WriteString(views.SectionHeading(rc.styles, "Latest News & Updates", "Stay informed about our research and activities", rc.focused))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(rc.cards.Featured(s.article, rc.width-2, rc.focused)))
	return b.String()
}

func (s *featuredSection) Activate() tea.Cmd {
	a := s.article
	return func() tea.Msg { return openArticleMsg{article: a} }
}

// trendingSection lists trending topics; choosing one searches the articles
type trendingSection struct {
	topics []string
	cursor int
}

func (s *trendingSection) ID() string { return sectionTrending }

func (s *trendingSection) Render(rc renderContext) string {
	st := rc.styles
	var b strings.Builder
	b.WriteString(views.SectionHeading(st, "Trending Topics", "", rc.focused))
	b.WriteString("\n  ")
	tags := make([]string, len(s.topics))
	for i, t := range s.topics {
		if rc.focused && i == s.cursor {
			tags[i] = st.TabActive.Render("#" + t)
		} else {
			tags[i] = st.Tag.Render("#" + t)
		}
	}
	b.WriteString(lipgloss.NewStyle().Width(max(rc.width-4, 10)).Render(strings.Join(tags, "  ")))
	if rc.focused {
		b.WriteString("\n  " + st.Prompt.Render("enter: search articles for this topic"))
	}
	return b.String()
}

func (s *trendingSection) Move(delta int) tea.Cmd {
	if n := len(s.topics); n > 0 {
		s.cursor = ((s.cursor+delta)%n + n) % n
	}
	return nil
}

func (s *trendingSection) Activate() tea.Cmd {
	if s.cursor >= len(s.topics) {
		return nil
	}
	topic := s.topics[s.cursor]
	return func() tea.Msg { return searchMsg{section: sectionArticles, text: topic} }
}

const newsletterReset = 3 * time.Second

var emailValidator = validation.New("")

// footerSection holds the site footer and the newsletter form
type footerSection struct {
	site   domain.Site
	bus    eventbus.EventBus
	timer  ticker
	thanks bool
	err    string
}

func newFooterSection(site domain.Site, bus eventbus.EventBus) *footerSection {
	return &footerSection{site: site, bus: bus, timer: newTicker()}
}

func (s *footerSection) ID() string { return sectionFooter }

func (s *footerSection) Render(rc renderContext) string {
	st := rc.styles
	colW := max((rc.width-8)/3, 20)
	col := lipgloss.NewStyle().Width(colW).PaddingRight(2)

	about := col.Render(st.FooterHeading.Render(s.site.Name) + "\n" + st.Body.Render(s.site.FooterBlurb))

	links := make([]string, len(s.site.QuickLinks))
	for i, l := range s.site.QuickLinks {
		links[i] = "› " + l
	}
	quick := col.Render(st.FooterHeading.Render("Quick Links") + "\n" + strings.Join(links, "\n"))

	c := s.site.Contact
	contact := col.Render(st.FooterHeading.Render("Contact") + "\n" +
		strings.Join([]string{c.Address, c.Phone, c.Email, c.Website}, "\n"))

	var columns string
	if rc.width >= 3*20+8 {
		columns = lipgloss.JoinHorizontal(lipgloss.Top, about, quick, contact)
	} else {
		columns = lipgloss.JoinVertical(lipgloss.Left, about, "", quick, "", contact)
	}

	heading := "Newsletter"
	if rc.focused {
		heading = "▌ " + heading
	}
	news := []string{st.FooterHeading.Render(heading), st.Body.Render(s.site.NewsletterBlurb)}
	switch {
	case rc.input != "":
		news = append(news, st.Prompt.Render("Email: ")+rc.input)
	case s.thanks:
		news = append(news, st.Success.Render("Thank you for subscribing!"))
	default:
		news = append(news, st.Dim.Render("n: subscribe"))
	}
	if s.err != "" {
		news = append(news, st.Error.Render(s.err))
	}

	body := columns + "\n\n" + lipgloss.NewStyle().Width(max(rc.width-4, 10)).Render(strings.Join(news, "\n"))
	body += "\n\n" + st.Dim.Render("© ICAR-Central Institute for Subtropical Horticulture")
	return st.Footer.Width(rc.width).Render(body)
}

// Subscribe validates the address and shows the thank-you message for a
// while. A rejected address is returned as an error and left for editing.
func (s *footerSection) Subscribe(email string) (tea.Cmd, error) {
	email = strings.TrimSpace(email)
	if err := emailValidator.Var("email", email, "required,email"); err != nil {
		s.err = err.Error()
		return nil, err
	}
	s.err = ""
	s.thanks = true
	if s.bus != nil {
		s.bus.Publish(eventbus.NewsletterSubscribedEvent{Email: email})
	}
	return s.timer.arm(newsletterReset), nil
}

func (s *footerSection) Init() tea.Cmd { return nil }

func (s *footerSection) Update(msg tea.Msg) tea.Cmd {
	if s.timer.accept(msg) {
		s.thanks = false
	}
	return nil
}

func (s *footerSection) Stop() { s.timer.stop() }

func navigate(event navigation.Event) tea.Cmd {
	return func() tea.Msg { return navigateMsg{event: event} }
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
