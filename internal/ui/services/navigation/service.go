package navigation

import (
	"cishsite/internal/eventbus"
)

// Service owns the current page and the section focus cursor
type Service struct {
	state *State
	bus   eventbus.EventBus
}

// NewService creates a navigation service starting at view
func NewService(bus eventbus.EventBus, start View) *Service {
	if !start.Valid() {
		start = Home
	}
	return &Service{
		state: &State{Current: start, Previous: start},
		bus:   bus,
	}
}

// Current returns the active page
func (s *Service) Current() View {
	return s.state.Current
}

// Previous returns the page shown before the last transition
func (s *Service) Previous() View {
	return s.state.Previous
}

// Dispatch applies a transition and reports whether the page changed
func (s *Service) Dispatch(event Event) (View, bool) {
	from := s.state.Current
	to := event.target(from)
	if to == from {
		return from, false
	}

	s.state.Previous = from
	s.state.Current = to
	s.state.Focus = 0

	if s.bus != nil {
		s.bus.Publish(eventbus.ViewChangedEvent{From: from.String(), To: to.String()})
	}
	return to, true
}

// SetFocusCount sets how many focusable sections the page has
func (s *Service) SetFocusCount(n int) {
	if n < 1 {
		n = 1
	}
	s.state.MaxFocus = n - 1
	s.state.Focus = s.clamp(s.state.Focus)
}

// Focus returns the focused section index
func (s *Service) Focus() int {
	return s.state.Focus
}

// FocusNext moves focus to the next section, wrapping
func (s *Service) FocusNext() int {
	s.state.Focus = (s.state.Focus + 1) % (s.state.MaxFocus + 1)
	return s.state.Focus
}

// FocusPrev moves focus to the previous section, wrapping
func (s *Service) FocusPrev() int {
	n := s.state.MaxFocus + 1
	s.state.Focus = (s.state.Focus - 1 + n) % n
	return s.state.Focus
}

// SetFocus moves focus to a specific section
func (s *Service) SetFocus(i int) {
	s.state.Focus = s.clamp(i)
}

func (s *Service) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i > s.state.MaxFocus {
		return s.state.MaxFocus
	}
	return i
}
