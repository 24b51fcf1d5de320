package carousel

import (
	"sync"
	"testing"
	"time"

	"github.com/mmcdole/elegance/internal/clock"
	"github.com/mmcdole/elegance/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type recordingObserver struct {
	mu      sync.Mutex
	changes []domain.StateChange
}

func (o *recordingObserver) OnStateChange(c domain.StateChange) {
	o.mu.Lock()
	o.changes = append(o.changes, c)
	o.mu.Unlock()
}

func (o *recordingObserver) len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.changes)
}

func newHero(t *testing.T, count int, interval time.Duration) (*Engine, *clock.Fake) {
	t.Helper()
	fake := clock.NewFake()
	e := New(Config{PageSize: 1, AutoplayInterval: interval, Scheduler: fake})
	e.SetItemCount(count)
	t.Cleanup(e.Close)
	return e, fake
}

func newRow(t *testing.T, count, pageSize int) *Engine {
	t.Helper()
	e := New(Config{PageSize: pageSize, Scheduler: clock.NewFake()})
	e.SetItemCount(count)
	t.Cleanup(e.Close)
	return e
}

func TestSingleModeWrapsNext(t *testing.T) {
	e, fake := newHero(t, 3, 0)

	var seen []int
	for i := 0; i < 3; i++ {
		require.True(t, e.Advance(Next))
		seen = append(seen, e.Current())
		fake.Advance(DefaultSettleDelay)
	}
	assert.Equal(t, []int{1, 2, 0}, seen)
}

func TestSingleModePrevFromZero(t *testing.T) {
	e, _ := newHero(t, 3, 0)

	require.True(t, e.Advance(Prev))
	assert.Equal(t, 2, e.Current())
}

func TestSingleModeNoOpWithOneItem(t *testing.T) {
	for _, n := range []int{0, 1} {
		e, _ := newHero(t, n, 0)
		assert.False(t, e.Advance(Next))
		assert.False(t, e.Advance(Prev))
		assert.Equal(t, 0, e.Current())
		assert.False(t, e.Window().ShowControls)
	}
}

func TestSingleModeLockRejectsRapidCalls(t *testing.T) {
	e, fake := newHero(t, 5, 0)

	require.True(t, e.GoTo(3))
	assert.Equal(t, StateTransitioning, e.State())
	assert.False(t, e.GoTo(1))
	assert.False(t, e.Advance(Next))
	assert.Equal(t, 3, e.Current())

	fake.Advance(DefaultSettleDelay - time.Millisecond)
	assert.False(t, e.Advance(Prev))

	fake.Advance(time.Millisecond)
	assert.Equal(t, StateIdle, e.State())
	assert.True(t, e.Advance(Prev))
	assert.Equal(t, 2, e.Current())
}

func TestSingleModeGoToRejectsOutOfRange(t *testing.T) {
	e, _ := newHero(t, 3, 0)

	assert.False(t, e.GoTo(3))
	assert.False(t, e.GoTo(-1))
	assert.Equal(t, StateIdle, e.State())
}

func TestCustomSettleDelay(t *testing.T) {
	fake := clock.NewFake()
	e := New(Config{PageSize: 1, SettleDelay: 100 * time.Millisecond, Scheduler: fake})
	defer e.Close()
	e.SetItemCount(3)

	require.True(t, e.Advance(Next))
	fake.Advance(100 * time.Millisecond)
	assert.True(t, e.Advance(Next))
}

func TestPagedModeCycle(t *testing.T) {
	e := newRow(t, 10, 4)

	var seen []int
	for i := 0; i < 7; i++ {
		e.Advance(Next)
		seen = append(seen, e.Current())
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 0}, seen)
}

func TestPagedModePrevFromZeroJumpsToLastFullPage(t *testing.T) {
	e := newRow(t, 10, 4)

	require.True(t, e.Advance(Prev))
	assert.Equal(t, 6, e.Current())
	require.True(t, e.Advance(Prev))
	assert.Equal(t, 5, e.Current())
}

func TestPagedModeHasNoLock(t *testing.T) {
	e := newRow(t, 10, 4)

	assert.True(t, e.Advance(Next))
	assert.True(t, e.Advance(Next))
	assert.Equal(t, StateIdle, e.State())
}

func TestPagedModeFitsInOneView(t *testing.T) {
	e := newRow(t, 3, 4)

	assert.False(t, e.Advance(Next))
	assert.False(t, e.Advance(Prev))
	w := e.Window()
	assert.False(t, w.ShowControls)
	assert.Equal(t, Window{Start: 0, End: 3, Count: 3, PageSize: 4, State: StateIdle}, w)
}

func TestControlsHiddenAtExactPageSize(t *testing.T) {
	assert.False(t, newRow(t, 4, 4).Window().ShowControls)
	assert.True(t, newRow(t, 5, 4).Window().ShowControls)
}

func TestPagedGoToClamps(t *testing.T) {
	e := newRow(t, 10, 4)

	assert.True(t, e.GoTo(9))
	assert.Equal(t, 6, e.Current())
	assert.True(t, e.GoTo(-2))
	assert.Equal(t, 0, e.Current())
}

func TestWindowAndVisible(t *testing.T) {
	e := newRow(t, 10, 4)
	e.GoTo(5)

	items := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	w := e.Window()
	assert.Equal(t, []string{"f", "g", "h", "i"}, Visible(items, w))
	assert.True(t, w.Contains(5))
	assert.False(t, w.Contains(9))
}

func TestVisibleToleratesShorterList(t *testing.T) {
	w := Window{Start: 4, End: 8}
	assert.Equal(t, []int{}, Visible([]int{1, 2, 3}, w))
}

func TestShrinkingCountClampsStart(t *testing.T) {
	e := newRow(t, 10, 4)
	e.GoTo(6)

	e.SetItemCount(7)
	assert.Equal(t, 3, e.Current())

	e.SetItemCount(2)
	assert.Equal(t, 0, e.Current())
}

func TestSetPageSizeClamps(t *testing.T) {
	e := newRow(t, 10, 2)
	e.GoTo(8)

	e.SetPageSize(5)
	assert.Equal(t, 5, e.Current())
	assert.Equal(t, 10, e.Window().End)
}

func TestAutoplayAdvances(t *testing.T) {
	e, fake := newHero(t, 3, 5*time.Second)
	require.True(t, e.Autoplaying())

	fake.Advance(5 * time.Second)
	assert.Equal(t, 1, e.Current())

	fake.Advance(5 * time.Second)
	assert.Equal(t, 2, e.Current())

	fake.Advance(5 * time.Second)
	assert.Equal(t, 0, e.Current())
}

func TestAutoplayDisabledForSingleSlide(t *testing.T) {
	e, fake := newHero(t, 1, 5*time.Second)

	assert.False(t, e.Autoplaying())
	fake.Advance(time.Minute)
	assert.Equal(t, 0, e.Current())
}

func TestAutoplayNeverRunsInPagedMode(t *testing.T) {
	fake := clock.NewFake()
	e := New(Config{PageSize: 4, AutoplayInterval: time.Second, Scheduler: fake})
	defer e.Close()
	e.SetItemCount(10)

	assert.False(t, e.Autoplaying())
	fake.Advance(time.Minute)
	assert.Equal(t, 0, e.Current())
}

func TestManualTransitionRestartsAutoplayCountdown(t *testing.T) {
	e, fake := newHero(t, 4, 5*time.Second)

	fake.Advance(4 * time.Second)
	require.True(t, e.Advance(Next))
	assert.Equal(t, 1, e.Current())

	// Original tick would have fired at 5s
	fake.Advance(2 * time.Second)
	assert.Equal(t, 1, e.Current())

	fake.Advance(3 * time.Second)
	assert.Equal(t, 2, e.Current())
}

func TestAutoplayRearmsOnCountChange(t *testing.T) {
	e, fake := newHero(t, 1, 5*time.Second)
	require.False(t, e.Autoplaying())

	e.SetItemCount(3)
	assert.True(t, e.Autoplaying())
	fake.Advance(5 * time.Second)
	assert.Equal(t, 1, e.Current())

	e.SetItemCount(1)
	assert.False(t, e.Autoplaying())
	assert.Equal(t, 0, e.Current())
}

func TestAutoplayIntervalChange(t *testing.T) {
	e, fake := newHero(t, 3, 5*time.Second)

	e.SetAutoplayInterval(time.Second)
	fake.Advance(time.Second)
	assert.Equal(t, 1, e.Current())

	e.SetAutoplayInterval(0)
	assert.False(t, e.Autoplaying())
	fake.Advance(time.Minute)
	assert.Equal(t, 1, e.Current())
}

func TestCloseStopsTimers(t *testing.T) {
	fake := clock.NewFake()
	e := New(Config{PageSize: 1, AutoplayInterval: time.Second, Scheduler: fake})
	e.SetItemCount(3)
	e.Advance(Next)

	e.Close()
	assert.Zero(t, fake.Pending())
	assert.False(t, e.Advance(Next))
	assert.False(t, e.GoTo(0))

	fake.Advance(time.Minute)
	assert.Equal(t, 1, e.Current())
}

func TestObserverReceivesTimerChanges(t *testing.T) {
	obs := &recordingObserver{}
	fake := clock.NewFake()
	e := New(Config{PageSize: 1, AutoplayInterval: time.Second, Scheduler: fake, Observer: obs})
	defer e.Close()

	e.SetItemCount(3)
	require.Equal(t, 1, obs.len())

	fake.Advance(time.Second)
	// Autoplay transition, then settle release
	fake.Advance(DefaultSettleDelay)
	assert.Equal(t, 3, obs.len())
	for _, c := range obs.changes {
		assert.Equal(t, domain.SourceCarousel, c.Source)
		assert.Equal(t, e.ID(), c.ID)
	}
}

func TestEngineIDsAreUnique(t *testing.T) {
	a := New(Config{})
	b := New(Config{})
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestRealTimersTearDownWithoutLeaks(t *testing.T) {
	defer goleak.VerifyNone(t)

	e := New(Config{PageSize: 1, AutoplayInterval: 5 * time.Millisecond, SettleDelay: time.Millisecond})
	e.SetItemCount(3)

	deadline := time.Now().Add(time.Second)
	for e.Current() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	assert.NotEqual(t, 0, e.Current(), "autoplay should advance on the real clock")

	e.Close()
	// Let any callback that was already running observe the closed flag
	time.Sleep(20 * time.Millisecond)
}
