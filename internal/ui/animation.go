package ui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastTickerID int64

// ticker is a cancellable timer. Stopping it bumps the tag so a tick that is
// already in flight is dropped when it arrives.
type ticker struct {
	id    int
	tag   int
	armed bool
}

func newTicker() ticker {
	return ticker{id: int(atomic.AddInt64(&lastTickerID, 1))}
}

func (t *ticker) arm(d time.Duration) tea.Cmd {
	t.tag++
	t.armed = true
	id, tag := t.id, t.tag
	return tea.Tick(d, func(now time.Time) tea.Msg {
		return animTickMsg{id: id, tag: tag, time: now}
	})
}

func (t *ticker) stop() {
	if t.armed {
		t.tag++
		t.armed = false
	}
}

// accept reports whether msg is this ticker's current tick and disarms it
func (t *ticker) accept(msg tea.Msg) bool {
	tick, ok := msg.(animTickMsg)
	if !ok || !t.armed || tick.id != t.id || tick.tag != t.tag {
		return false
	}
	t.armed = false
	return true
}

const typewriterStep = 100 * time.Millisecond

// typewriter reveals text one rune per step
type typewriter struct {
	text  []rune
	shown int
	timer ticker
}

func newTypewriter(text string) *typewriter {
	return &typewriter{text: []rune(text), timer: newTicker()}
}

func (tw *typewriter) Init() tea.Cmd {
	tw.shown = 0
	if len(tw.text) == 0 {
		return nil
	}
	return tw.timer.arm(typewriterStep)
}

func (tw *typewriter) Update(msg tea.Msg) tea.Cmd {
	if !tw.timer.accept(msg) {
		return nil
	}
	tw.shown++
	if tw.Done() {
		return nil
	}
	return tw.timer.arm(typewriterStep)
}

func (tw *typewriter) Stop() { tw.timer.stop() }

func (tw *typewriter) Done() bool { return tw.shown >= len(tw.text) }

func (tw *typewriter) String() string { return string(tw.text[:tw.shown]) }

const (
	counterDuration = 2 * time.Second
	counterSteps    = 40
)

// counters count a set of numbers up from zero together
type counters struct {
	targets []int
	step    int
	timer   ticker
}

func newCounters(targets ...int) *counters {
	return &counters{targets: targets, timer: newTicker()}
}

func (c *counters) Init() tea.Cmd {
	c.step = 0
	if len(c.targets) == 0 {
		return nil
	}
	return c.timer.arm(counterDuration / counterSteps)
}

func (c *counters) Update(msg tea.Msg) tea.Cmd {
	if !c.timer.accept(msg) {
		return nil
	}
	c.step++
	if c.step >= counterSteps {
		return nil
	}
	return c.timer.arm(counterDuration / counterSteps)
}

func (c *counters) Stop() { c.timer.stop() }

// Value returns the current value of counter i
func (c *counters) Value(i int) int {
	if i < 0 || i >= len(c.targets) {
		return 0
	}
	if c.step >= counterSteps {
		return c.targets[i]
	}
	return c.targets[i] * c.step / counterSteps
}
