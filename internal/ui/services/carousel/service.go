// Package carousel is a rotating viewport over an ordered list. It tracks a
// current index, wraps on both ends and auto-advances on a timer that pauses
// while hovered or after the user navigates by hand.
package carousel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Model holds carousel state. Use New to create one.
type Model struct {
	id       int
	tag      int
	armed    bool
	index    int
	length   int
	playing  bool
	hovered  bool
	stopped  bool
	interval time.Duration
	window   int
}

// New creates a playing carousel at index 0
func New(opts ...Option) *Model {
	m := &Model{
		id:       nextID(),
		playing:  true,
		interval: DefaultInterval,
		window:   DefaultWindow,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ID returns the carousel's unique id
func (m *Model) ID() int { return m.id }

// Index returns the current slide
func (m *Model) Index() int { return m.index }

// Len returns the slide count
func (m *Model) Len() int { return m.length }

// Playing reports whether autoplay is on. A hovered carousel can be playing
// and still not advance.
func (m *Model) Playing() bool { return m.playing }

// Hovered reports whether the pointer is over the carousel
func (m *Model) Hovered() bool { return m.hovered }

// Interval returns the autoplay interval
func (m *Model) Interval() time.Duration { return m.interval }

// Active reports whether a tick is currently armed
func (m *Model) Active() bool { return m.armed }

// Init arms the first tick
func (m *Model) Init() tea.Cmd {
	return m.sync()
}

// Next moves to the following slide and stops autoplay
func (m *Model) Next() {
	if m.length == 0 {
		return
	}
	m.index = (m.index + 1) % m.length
	m.manual()
}

// Prev moves to the previous slide and stops autoplay
func (m *Model) Prev() {
	if m.length == 0 {
		return
	}
	m.index = (m.index - 1 + m.length) % m.length
	m.manual()
}

// JumpTo selects slide i, clamped into range, and stops autoplay
func (m *Model) JumpTo(i int) {
	if m.length == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= m.length {
		i = m.length - 1
	}
	m.index = i
	m.manual()
}

func (m *Model) manual() {
	m.playing = false
	m.disarm()
}

// Hover pauses the carousel on enter and resumes autoplay on leave
func (m *Model) Hover(over bool) tea.Cmd {
	if m.hovered == over {
		return nil
	}
	m.hovered = over
	if !over {
		m.playing = true
	}
	return m.sync()
}

// SetPlaying turns autoplay on or off
func (m *Model) SetPlaying(on bool) tea.Cmd {
	m.playing = on
	return m.sync()
}

// Toggle flips autoplay
func (m *Model) Toggle() tea.Cmd {
	return m.SetPlaying(!m.playing)
}

// SetLength updates the slide count. An index that fell off the end goes
// back to the first slide.
func (m *Model) SetLength(n int) tea.Cmd {
	if n < 0 {
		n = 0
	}
	m.length = n
	if m.index >= n {
		m.index = 0
	}
	return m.sync()
}

// Reset starts over at the first slide of a new list
func (m *Model) Reset(n int) tea.Cmd {
	m.index = 0
	m.disarm()
	return m.SetLength(n)
}

// Stop releases the timer for good. Pending ticks are ignored afterwards.
func (m *Model) Stop() {
	m.stopped = true
	m.disarm()
}

// Update advances the carousel when its own current tick arrives
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok {
		return m, nil
	}
	if tick.ID != m.id || tick.tag != m.tag || !m.armed {
		return m, nil
	}
	m.armed = false
	if !m.running() {
		return m, nil
	}
	m.index = (m.index + 1) % m.length
	return m, m.arm()
}

// Window returns up to size consecutive indices starting at the current
// slide, wrapping past the end. Indices never repeat.
func (m *Model) Window(size int) []int {
	if size <= 0 || m.length == 0 {
		return nil
	}
	if size > m.length {
		size = m.length
	}
	out := make([]int, size)
	for k := range out {
		out[k] = (m.index + k) % m.length
	}
	return out
}

// Visible applies the carousel window to items
func Visible[T any](items []T, index, size int) []T {
	n := len(items)
	if size <= 0 || n == 0 {
		return nil
	}
	if size > n {
		size = n
	}
	if index < 0 || index >= n {
		index = 0
	}
	out := make([]T, size)
	for k := range out {
		out[k] = items[(index+k)%n]
	}
	return out
}

func (m *Model) running() bool {
	return m.playing && !m.hovered && !m.stopped && m.length > 0
}

// sync arms a tick when the carousel should run and none is pending, and
// disarms it otherwise
func (m *Model) sync() tea.Cmd {
	if !m.running() {
		m.disarm()
		return nil
	}
	if m.armed {
		return nil
	}
	return m.arm()
}

func (m *Model) arm() tea.Cmd {
	m.tag++
	m.armed = true
	id, tag := m.id, m.tag
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t, tag: tag}
	})
}

func (m *Model) disarm() {
	if m.armed {
		m.tag++
		m.armed = false
	}
}
