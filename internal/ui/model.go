package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"cishsite/internal/config"
	"cishsite/internal/content"
	"cishsite/internal/domain"
	"cishsite/internal/eventbus"
	"cishsite/internal/ui/input"
	inputtypes "cishsite/internal/ui/input/types"
	"cishsite/internal/ui/services/carousel"
	"cishsite/internal/ui/services/filter"
	"cishsite/internal/ui/services/navigation"
	"cishsite/internal/ui/views"
)

const statusDuration = 3 * time.Second

// menuTargets maps header navigation items to the home sections they scroll to
var menuTargets = map[string]string{
	"About":      sectionAbout,
	"Research":   sectionHighlights,
	"Institutes": sectionInstitutes,
	"News":       sectionNewsEvents,
	"Contact":    sectionFooter,
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	repo   content.Repository
	log    *zap.Logger
	site   domain.Site

	styles *views.Styles
	cards  *views.CardRenderer
	popups *views.PopupRenderer

	nav          *navigation.Service
	inputHandler *input.Handler
	page         *page

	viewport viewport.Model
	help     help.Model
	keys     keyMap
	width    int
	height   int
	headerH  int
	offsets  []int // first content line of each section
	hovered  string

	menuIndex int
	popup     string // dialog body, empty when closed
	status    string

	inPagerMode bool // tracks if we're currently in pager mode
	reader      *ArticleReader
	program     *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, repo content.Repository, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	start, err := navigation.ParseView(cfg.UI.StartView)
	if err != nil {
		log.Warn("unknown start view, using home", zap.Error(err))
	}

	styles := views.NewStyles()
	m := &Model{
		bus:          bus,
		config:       cfg,
		repo:         repo,
		log:          log,
		site:         repo.Site(),
		styles:       styles,
		cards:        views.NewCardRenderer(styles),
		popups:       views.NewPopupRenderer(styles),
		nav:          navigation.NewService(bus, start),
		inputHandler: input.New(),
		viewport:     viewport.New(0, 0),
		help:         help.New(),
		keys:         newKeyMap(),
		reader:       NewArticleReader(nil),
	}
	m.page = buildPage(m.nav.Current(), m.deps())
	m.nav.SetFocusCount(len(m.page.sections))
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.reader = NewArticleReader(p)
}

func (m *Model) deps() pageDeps {
	return pageDeps{repo: m.repo, cfg: m.config, bus: m.bus, log: m.log}
}

// Init starts the first page's timers
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(m.site.Name), m.page.Init())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	default:
		cmd = m.handleNonKeyboardMsg(msg)
	}

	m.refresh()
	return m, cmd
}

func (m *Model) context() *input.ModelContext {
	ctx := &input.ModelContext{
		MenuItems: len(m.site.NavItems),
		Home:      m.nav.Current() == navigation.Home,
	}
	if s, ok := m.focused().(searchable); ok && s.Searchable() {
		ctx.Searchable = true
		ctx.Search = s.Search()
	}
	return ctx
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	before := m.inputHandler.CurrentMode()
	actions, cmd := m.inputHandler.HandleKey(msg, m.context())

	cmds := []tea.Cmd{cmd}
	if after := m.inputHandler.CurrentMode(); after != before {
		m.log.Debug("input mode changed",
			zap.String("from", before.String()),
			zap.String("to", m.inputHandler.CurrentModeName()))
	}
	if before != inputtypes.ModeNewsletter && m.inputHandler.CurrentMode() == inputtypes.ModeNewsletter {
		m.focusSection(sectionFooter)
	}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	return tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.log.Debug("processAction", zap.String("action", action.Type()))

	switch a := action.(type) {
	case inputtypes.ScrollAction:
		m.scroll(a.Direction)

	case inputtypes.FocusAction:
		if a.Delta < 0 {
			m.nav.FocusPrev()
		} else {
			m.nav.FocusNext()
		}
		m.refresh()
		m.scrollToFocus()

	case inputtypes.MoveAction:
		if s, ok := m.focused().(movable); ok {
			return s.Move(a.Delta)
		}

	case inputtypes.JumpAction:
		if s, ok := m.focused().(jumpable); ok {
			return s.JumpTo(a.Index)
		}

	case inputtypes.ActivateAction:
		if s, ok := m.focused().(activatable); ok {
			return s.Activate()
		}

	case inputtypes.CycleFacetAction:
		return m.cycleFacet(a.Key, a.Delta)

	case inputtypes.ResetFiltersAction:
		if s, ok := m.focused().(faceted); ok {
			return s.ResetFilters()
		}
		var cmds []tea.Cmd
		for _, s := range m.page.sections {
			if f, ok := s.(faceted); ok {
				cmds = append(cmds, f.ResetFilters())
			}
		}
		return tea.Batch(cmds...)

	case inputtypes.ToggleAutoplayAction:
		if s, ok := m.focused().(playable); ok {
			return s.ToggleAutoplay()
		}
		return m.setStatus("Focus a carousel to pause or play it")

	case inputtypes.NavigateAction:
		return m.navigate(a.Event)

	case inputtypes.UpdateTextAction:
		if a.Mode == inputtypes.ModeSearch {
			return m.setSearch(a.Text)
		}

	case inputtypes.SubmitTextAction:
		switch a.Mode {
		case inputtypes.ModeSearch:
			return m.setSearch(a.Text)
		case inputtypes.ModeNewsletter:
			f := m.page.footer()
			if f == nil {
				return nil
			}
			cmd, err := f.Subscribe(a.Text)
			if err != nil {
				// keep the form open with what was typed
				_, blink := m.inputHandler.Enter(inputtypes.ModeNewsletter, a.Text, m.context())
				return blink
			}
			return cmd
		}

	case inputtypes.CancelTextAction:
		if a.Mode == inputtypes.ModeSearch {
			return m.setSearch("")
		}

	case inputtypes.MenuMoveAction:
		n := len(m.site.NavItems)
		if n > 0 {
			m.menuIndex = ((m.menuIndex+a.Delta)%n + n) % n
		}

	case inputtypes.MenuSelectAction:
		i := a.Index
		if i < 0 {
			i = m.menuIndex
		}
		return m.selectMenu(i)

	case inputtypes.CloseMenuAction:
		m.menuIndex = 0

	case inputtypes.CloseDialogAction:
		m.popup = ""

	case inputtypes.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll

	case inputtypes.QuitAction:
		m.page.Stop()
		return tea.Quit
	}
	return nil
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case carousel.TickMsg, animTickMsg:
		return m.page.Update(msg)

	case navigateMsg:
		return m.navigate(msg.event)

	case scrollToMsg:
		return m.scrollTo(msg.section)

	case searchMsg:
		if m.page.index(msg.section) < 0 {
			return nil
		}
		m.focusSection(msg.section)
		return m.setSearch(msg.text)

	case openInstituteMsg:
		return m.openInstitute(msg.institute)

	case openArticleMsg:
		return m.openArticle(msg.article)

	case readerMsg:
		if msg.err != nil {
			// Pager failed, log and fall back to the popup
			m.log.Warn("article pager failed", zap.Int("article", msg.articleID), zap.Error(msg.err))
			all := append([]domain.Article{m.repo.FeaturedArticle()}, m.repo.Articles()...)
			if a, ok := filter.Find(all, msg.articleID); ok {
				return m.showArticlePopup(a)
			}
		}
		return nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return nil

	case clearStatusMsg:
		m.status = ""
		return nil
	}

	// Cursor blink and other text input messages
	return m.inputHandler.Update(msg)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.inputHandler.CurrentMode() == inputtypes.ModeDialog {
		return nil
	}
	line := msg.Y - m.headerH + m.viewport.YOffset
	over := ""
	if msg.Y >= m.headerH {
		if i := m.sectionAt(line); i >= 0 {
			over = m.page.sections[i].ID()
		}
	}

	var cmds []tea.Cmd
	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && over != "" {
		m.nav.SetFocus(m.page.index(over))
	}
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, m.setHover(over))
	return tea.Batch(cmds...)
}

// setHover moves the pointer onto a section, pausing carousels under it
func (m *Model) setHover(id string) tea.Cmd {
	if id == m.hovered {
		return nil
	}
	var cmds []tea.Cmd
	if s, ok := m.page.section(m.hovered).(hoverable); ok {
		cmds = append(cmds, s.Hover(false))
	}
	m.hovered = id
	if s, ok := m.page.section(id).(hoverable); ok {
		cmds = append(cmds, s.Hover(true))
	}
	return tea.Batch(cmds...)
}

func (m *Model) sectionAt(line int) int {
	for i := len(m.offsets) - 1; i >= 0; i-- {
		if line >= m.offsets[i] {
			return i
		}
	}
	return -1
}

func (m *Model) focused() Section {
	i := m.nav.Focus()
	if i < 0 || i >= len(m.page.sections) {
		return nil
	}
	return m.page.sections[i]
}

// navigate switches pages, tearing the old one down
func (m *Model) navigate(event navigation.Event) tea.Cmd {
	to, changed := m.nav.Dispatch(event)
	if !changed {
		return nil
	}
	return m.loadPage(to)
}

func (m *Model) loadPage(v navigation.View) tea.Cmd {
	if m.page != nil {
		m.page.Stop()
	}
	m.page = buildPage(v, m.deps())
	m.nav.SetFocusCount(len(m.page.sections))
	m.nav.SetFocus(0)
	m.hovered = ""
	m.viewport.GotoTop()
	return m.page.Init()
}

// scrollTo focuses a section, going home first when the current page lacks it
func (m *Model) scrollTo(id string) tea.Cmd {
	var cmd tea.Cmd
	if m.page.index(id) < 0 {
		cmd = m.navigate(navigation.BackToHome{})
	}
	m.focusSection(id)
	return cmd
}

func (m *Model) focusSection(id string) {
	if i := m.page.index(id); i >= 0 {
		m.nav.SetFocus(i)
		m.refresh()
		m.scrollToFocus()
	}
}

func (m *Model) selectMenu(i int) tea.Cmd {
	if i < 0 || i >= len(m.site.NavItems) {
		return nil
	}
	m.menuIndex = 0
	item := m.site.NavItems[i]
	id, ok := menuTargets[item]
	if !ok {
		return m.setStatus("Nothing to show for " + item)
	}
	return m.scrollTo(id)
}

func (m *Model) cycleFacet(key string, delta int) tea.Cmd {
	if s, ok := m.focused().(faceted); ok {
		if cmd, handled := s.CycleFacet(key, delta); handled {
			return cmd
		}
	}
	// Fall back to the first section on the page with that filter
	for i, s := range m.page.sections {
		f, ok := s.(faceted)
		if !ok {
			continue
		}
		if cmd, handled := f.CycleFacet(key, delta); handled {
			m.nav.SetFocus(i)
			m.refresh()
			m.scrollToFocus()
			return cmd
		}
	}
	return nil
}

func (m *Model) setSearch(text string) tea.Cmd {
	if s, ok := m.focused().(searchable); ok && s.Searchable() {
		return s.SetSearch(text)
	}
	return nil
}

func (m *Model) openInstitute(inst domain.Institute) tea.Cmd {
	if m.bus != nil {
		m.bus.Publish(eventbus.InstituteViewedEvent{InstituteID: inst.ID, ShortName: inst.ShortName})
	}
	m.popup = m.cards.InstituteDetails(inst)
	_, cmd := m.inputHandler.Enter(inputtypes.ModeDialog, "", m.context())
	return cmd
}

func (m *Model) openArticle(a domain.Article) tea.Cmd {
	if m.bus != nil {
		m.bus.Publish(eventbus.ArticleOpenedEvent{ArticleID: a.ID, Title: a.Title})
	}
	if m.program == nil {
		return m.showArticlePopup(a)
	}
	return m.fetchArticlePager(a)
}

// fetchArticlePager returns a command that shows the article using ov pager
func (m *Model) fetchArticlePager(a domain.Article) tea.Cmd {
	width := m.width
	program := m.program
	reader := m.reader
	return func() tea.Msg {
		rendered, err := RenderArticle(a, width)
		if err != nil {
			return readerMsg{articleID: a.ID, err: err}
		}

		// Send pause message to stop rendering
		program.Send(pauseRenderingMsg{})
		err = reader.Show(rendered)
		// Send resume message to restart rendering
		program.Send(resumeRenderingMsg{})

		return readerMsg{articleID: a.ID, err: err}
	}
}

func (m *Model) showArticlePopup(a domain.Article) tea.Cmd {
	body, err := RenderArticle(a, 68)
	if err != nil {
		m.log.Warn("article render failed", zap.Int("article", a.ID), zap.Error(err))
		body = a.Markdown()
	}
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	if limit := m.height - 8; limit > 3 && len(lines) > limit {
		lines = append(lines[:limit], "…")
	}
	m.popup = strings.Join(lines, "\n") + "\n\n" + m.styles.Help.Render("esc: close")
	_, cmd := m.inputHandler.Enter(inputtypes.ModeDialog, "", m.context())
	return cmd
}

func (m *Model) setStatus(text string) tea.Cmd {
	m.status = text
	return tea.Tick(statusDuration, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) scroll(direction string) {
	switch direction {
	case "up":
		m.viewport.SetYOffset(m.viewport.YOffset - 1)
	case "down":
		m.viewport.SetYOffset(m.viewport.YOffset + 1)
	case "pageup":
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
	case "pagedown":
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
	case "top":
		m.viewport.GotoTop()
	case "bottom":
		m.viewport.GotoBottom()
	}
}

func (m *Model) scrollToFocus() {
	i := m.nav.Focus()
	if i >= 0 && i < len(m.offsets) {
		m.viewport.SetYOffset(m.offsets[i])
	}
}

func (m *Model) header() string {
	active := ""
	switch m.nav.Current() {
	case navigation.Research:
		active = "Research"
	case navigation.News:
		active = "News"
	}
	return views.Header(m.styles, views.HeaderState{
		Name:     m.site.Name,
		Title:    m.site.Title,
		Tagline:  m.nav.Current().Title(),
		NavItems: m.site.NavItems,
		Active:   active,
		Scrolled: m.viewport.YOffset > 0,
		Width:    m.width,
	})
}

func (m *Model) statusBar() string {
	if m.status != "" {
		return m.styles.Prompt.Render(m.status)
	}
	mode := ""
	if cur := m.inputHandler.CurrentMode(); cur != inputtypes.ModeNormal {
		mode = m.styles.Badge.Background(lipgloss.Color(views.ColorLeaf)).Render(strings.ToUpper(cur.String())) + " "
	}
	return mode + m.help.View(m.keys)
}

// refresh renders the page into the viewport and records where each section starts
func (m *Model) refresh() {
	if m.width == 0 {
		return
	}

	ti := m.inputHandler.TextInput()
	mode := m.inputHandler.CurrentMode()
	focus := m.nav.Focus()

	parts := make([]string, len(m.page.sections))
	m.offsets = make([]int, len(m.page.sections))
	line := 0
	for i, s := range m.page.sections {
		rc := renderContext{
			styles:  m.styles,
			cards:   m.cards,
			width:   m.width,
			focused: i == focus,
		}
		if ti != nil {
			switch {
			case mode == inputtypes.ModeSearch && i == focus:
				rc.input = ti.View()
			case mode == inputtypes.ModeNewsletter && s.ID() == sectionFooter:
				rc.input = ti.View()
			}
		}
		parts[i] = s.Render(rc)
		m.offsets[i] = line
		line += lipgloss.Height(parts[i]) + 1
	}

	m.headerH = lipgloss.Height(m.header())
	bodyH := m.height - m.headerH - lipgloss.Height(m.statusBar())
	if bodyH < 1 {
		bodyH = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = bodyH
	m.viewport.SetContent(strings.Join(parts, "\n\n"))
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	screen := lipgloss.JoinVertical(lipgloss.Left, m.header(), m.viewport.View(), m.statusBar())

	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeMenu:
		menu := views.Menu(m.styles, m.site.NavItems, m.menuIndex)
		x := m.width - lipgloss.Width(menu) - 2
		if x < 0 {
			x = 0
		}
		y := m.headerH - 1
		if y < 0 {
			y = 0
		}
		screen = m.popups.RenderDropdown(screen, menu, x, y)
	case inputtypes.ModeDialog:
		if m.popup != "" {
			screen = m.popups.RenderPopupOverlay(screen, m.popup, m.height, m.width, m.styles.Dialog)
		}
	}
	return screen
}

// CurrentView reports the page on screen
func (m *Model) CurrentView() navigation.View {
	return m.nav.Current()
}

// Close stops every timer of the current page
func (m *Model) Close() {
	m.page.Stop()
}
