package carousel

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func tick(t *testing.T, m *Model) TickMsg {
	t.Helper()
	cmd := m.Init()
	require.NotNil(t, cmd)
	msg, ok := cmd().(TickMsg)
	require.True(t, ok)
	return msg
}

func TestNextWrapsAround(t *testing.T) {
	m := New(WithLength(3))

	var seen []int
	for i := 0; i < 3; i++ {
		m.Next()
		seen = append(seen, m.Index())
	}
	if diff := cmp.Diff([]int{1, 2, 0}, seen); diff != "" {
		t.Errorf("visited indices mismatch (-want +got):\n%s", diff)
	}
}

func TestFullCycleReturnsToStart(t *testing.T) {
	for _, n := range []int{1, 2, 5, 7} {
		m := New(WithLength(n))
		m.JumpTo(n / 2)
		start := m.Index()
		for i := 0; i < n; i++ {
			m.Next()
		}
		assert.Equal(t, start, m.Index(), "length %d", n)
		for i := 0; i < n; i++ {
			m.Prev()
		}
		assert.Equal(t, start, m.Index(), "length %d", n)
	}
}

func TestPrevFromFirstGoesToLast(t *testing.T) {
	m := New(WithLength(4))
	m.Prev()
	assert.Equal(t, 3, m.Index())
}

func TestJumpToClamps(t *testing.T) {
	m := New(WithLength(4))
	m.JumpTo(9)
	assert.Equal(t, 3, m.Index())
	m.JumpTo(-2)
	assert.Equal(t, 0, m.Index())
}

func TestManualNavigationStopsAutoplay(t *testing.T) {
	m := New(WithLength(3), WithInterval(time.Hour))
	require.NotNil(t, m.Init())
	require.True(t, m.Active())

	m.Next()
	assert.False(t, m.Playing())
	assert.False(t, m.Active())
}

func TestShrinkResetsIndex(t *testing.T) {
	m := New(WithLength(5))
	m.JumpTo(4)

	m.SetLength(2)
	assert.Equal(t, 0, m.Index())
	assert.Equal(t, 2, m.Len())

	m.JumpTo(1)
	m.SetLength(3)
	assert.Equal(t, 1, m.Index())
}

func TestEmptyCarouselIsInert(t *testing.T) {
	m := New(WithInterval(time.Hour))
	assert.Nil(t, m.Init())
	assert.False(t, m.Active())
	assert.Empty(t, m.Window(3))

	m.Next()
	m.Prev()
	m.JumpTo(2)
	assert.Equal(t, 0, m.Index())

	m.SetLength(3)
	m.JumpTo(2)
	assert.Nil(t, m.SetLength(0))
	assert.Equal(t, 0, m.Index())
	assert.False(t, m.Active())
}

func TestTickAdvancesAndRearms(t *testing.T) {
	defer goleak.VerifyNone(t)

	m := New(WithLength(3), WithInterval(time.Millisecond))
	msg := tick(t, m)

	_, cmd := m.Update(msg)
	assert.Equal(t, 1, m.Index())
	assert.True(t, m.Playing())
	require.NotNil(t, cmd)

	next, ok := cmd().(TickMsg)
	require.True(t, ok)
	m.Update(next)
	assert.Equal(t, 2, m.Index())
}

func TestStaleTickIsIgnoredAfterStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	m := New(WithLength(3), WithInterval(time.Millisecond))
	msg := tick(t, m)

	m.Stop()
	_, cmd := m.Update(msg)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Index())

	assert.Nil(t, m.SetPlaying(true))
	assert.Nil(t, m.Hover(false))
}

func TestTickFromAnotherCarouselIsIgnored(t *testing.T) {
	a := New(WithLength(3), WithInterval(time.Millisecond))
	b := New(WithLength(3), WithInterval(time.Hour))
	b.Init()

	msg := tick(t, a)
	_, cmd := b.Update(msg)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, b.Index())
}

func TestHoverPausesAndLeaveResumes(t *testing.T) {
	m := New(WithLength(3), WithInterval(time.Millisecond))
	msg := tick(t, m)

	assert.Nil(t, m.Hover(true))
	assert.False(t, m.Active())
	m.Update(msg)
	assert.Equal(t, 0, m.Index(), "tick armed before hover must not advance")

	cmd := m.Hover(false)
	require.NotNil(t, cmd)
	assert.True(t, m.Active())

	m.Update(cmd())
	assert.Equal(t, 1, m.Index())
}

func TestLeavingResumesAfterManualNavigation(t *testing.T) {
	m := New(WithLength(3), WithInterval(time.Hour))
	m.Hover(true)
	m.Next()
	assert.False(t, m.Playing())

	assert.NotNil(t, m.Hover(false))
	assert.True(t, m.Playing())
}

func TestToggle(t *testing.T) {
	m := New(WithLength(3), WithInterval(time.Hour))
	m.Init()

	assert.Nil(t, m.Toggle())
	assert.False(t, m.Playing())
	assert.False(t, m.Active())

	assert.NotNil(t, m.Toggle())
	assert.True(t, m.Playing())
	assert.Nil(t, m.Toggle())
}

func TestResetReturnsToFirstSlide(t *testing.T) {
	m := New(WithLength(6), WithInterval(time.Millisecond))
	old := tick(t, m)
	m.JumpTo(3)
	m.SetPlaying(true)

	cmd := m.Reset(2)
	require.NotNil(t, cmd)
	assert.Equal(t, 0, m.Index())
	assert.Equal(t, 2, m.Len())

	m.Update(old)
	assert.Equal(t, 0, m.Index())
}

func TestWindowWrapsWithoutRepeats(t *testing.T) {
	m := New(WithLength(5))
	m.JumpTo(3)
	if diff := cmp.Diff([]int{3, 4, 0}, m.Window(3)); diff != "" {
		t.Errorf("window mismatch (-want +got):\n%s", diff)
	}

	small := New(WithLength(2))
	small.JumpTo(1)
	if diff := cmp.Diff([]int{1, 0}, small.Window(3)); diff != "" {
		t.Errorf("window mismatch (-want +got):\n%s", diff)
	}

	assert.Nil(t, m.Window(0))
}

func TestVisible(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	assert.Equal(t, []string{"d", "a", "b"}, Visible(items, 3, 3))
	assert.Equal(t, []string{"c"}, Visible(items, 2, 1))
	assert.Equal(t, []string{"a", "b", "c", "d"}, Visible(items, 0, 10))
	assert.Equal(t, []string{"a"}, Visible(items, 7, 1))
	assert.Nil(t, Visible([]string{}, 0, 3))
}
