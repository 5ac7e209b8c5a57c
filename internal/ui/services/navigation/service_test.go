package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cishsite/internal/eventbus"
)

type recordingBus struct {
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) { b.events = append(b.events, e) }
func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}
func (b *recordingBus) Close() {}

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		name    string
		from    View
		event   Event
		want    View
		changed bool
	}{
		{"home to research", Home, ShowResearchProjects{}, Research, true},
		{"home to news", Home, ShowNews{}, News, true},
		{"research back", Research, BackToHome{}, Home, true},
		{"news back", News, BackToHome{}, Home, true},
		{"research to news", Research, ShowNews{}, News, true},
		{"home back is a no-op", Home, BackToHome{}, Home, false},
		{"same page", News, ShowNews{}, News, false},
		{"goto", Home, GoTo{View: News}, News, true},
		{"goto unknown", Research, GoTo{View: View(42)}, Research, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewService(nil, tt.from)
			got, changed := s.Dispatch(tt.event)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.changed, changed)
			assert.Equal(t, tt.want, s.Current())
		})
	}
}

func TestDispatchPublishesOnlyOnChange(t *testing.T) {
	bus := &recordingBus{}
	s := NewService(bus, Home)

	s.Dispatch(ShowResearchProjects{})
	s.Dispatch(ShowResearchProjects{})
	s.Dispatch(BackToHome{})

	require.Len(t, bus.events, 2)
	assert.Equal(t, eventbus.ViewChangedEvent{From: "home", To: "research"}, bus.events[0])
	assert.Equal(t, eventbus.ViewChangedEvent{From: "research", To: "home"}, bus.events[1])
	assert.Equal(t, Research, s.Previous())
}

func TestEveryViewIsNamed(t *testing.T) {
	for _, v := range Views() {
		parsed, err := ParseView(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
		assert.NotEmpty(t, v.Title())
	}

	_, err := ParseView("contact")
	assert.Error(t, err)
}

func TestInvalidStartFallsBackToHome(t *testing.T) {
	assert.Equal(t, Home, NewService(nil, View(-1)).Current())
}

func TestFocusWrapsAndResetsOnTransition(t *testing.T) {
	s := NewService(nil, Home)
	s.SetFocusCount(3)

	assert.Equal(t, 1, s.FocusNext())
	assert.Equal(t, 2, s.FocusNext())
	assert.Equal(t, 0, s.FocusNext())
	assert.Equal(t, 2, s.FocusPrev())

	s.SetFocusCount(2)
	assert.Equal(t, 1, s.Focus())

	s.Dispatch(ShowNews{})
	assert.Equal(t, 0, s.Focus())

	s.SetFocus(10)
	assert.Equal(t, 1, s.Focus())
}
