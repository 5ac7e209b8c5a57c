package carousel

import (
	"sync/atomic"
	"time"
)

// DefaultInterval is how long a slide stays up while autoplay runs
const DefaultInterval = 4 * time.Second

// DefaultWindow is how many consecutive slides are shown at once
const DefaultWindow = 3

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg advances a carousel. It is only honoured by the carousel that
// armed it and only while that timer is still the current one.
type TickMsg struct {
	ID   int
	Time time.Time
	tag  int
}

// Option configures a carousel
type Option func(*Model)

// WithInterval sets the autoplay interval. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithWindow sets the number of slides shown at once
func WithWindow(size int) Option {
	return func(m *Model) {
		if size > 0 {
			m.window = size
		}
	}
}

// WithLength sets the initial slide count
func WithLength(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.length = n
		}
	}
}

// WithAutoplay sets whether the carousel starts playing
func WithAutoplay(on bool) Option {
	return func(m *Model) {
		m.playing = on
	}
}
