// Package carousel implements the "N items, show K at a time" windowing
// shared by the hero slideshow (K = 1, autoplay) and the product rows
// (K > 1, manual).
package carousel

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/elegance/internal/clock"
	"github.com/mmcdole/elegance/internal/domain"
)

// Defaults for the hero slideshow
const (
	DefaultSettleDelay      = 500 * time.Millisecond
	DefaultAutoplayInterval = 5 * time.Second
)

// Direction selects the advance step
type Direction int

const (
	Next Direction = iota
	Prev
)

// State is the single-item transition state
type State int

const (
	StateIdle State = iota
	StateTransitioning
)

func (s State) String() string {
	if s == StateTransitioning {
		return "transitioning"
	}
	return "idle"
}

// Config configures an Engine. Zero values select defaults.
type Config struct {
	PageSize         int           // Items per view (1 = single-item mode)
	AutoplayInterval time.Duration // 0 disables autoplay; single-item mode only
	SettleDelay      time.Duration // Re-entrancy lock duration; single-item mode only
	Scheduler        clock.Scheduler
	Observer         domain.StateObserver
	Logger           *slog.Logger
}

// Window describes the visible slice of the backing list
type Window struct {
	Start        int
	End          int // Exclusive, clipped to Count
	Count        int
	PageSize     int
	ShowControls bool // False when every item fits in one view
	State        State
}

// Contains reports whether index i is visible
func (w Window) Contains(i int) bool {
	return i >= w.Start && i < w.End
}

// Visible returns the items inside the window
func Visible[T any](items []T, w Window) []T {
	start, end := w.Start, w.End
	if end > len(items) {
		end = len(items)
	}
	if start > end {
		start = end
	}
	return items[start:end]
}

// Engine owns one carousel placement's window and timers
type Engine struct {
	id       string
	sched    clock.Scheduler
	observer domain.StateObserver
	logger   *slog.Logger

	mu            sync.Mutex
	count         int
	pageSize      int
	start         int
	interval      time.Duration
	settle        time.Duration
	transitioning bool
	closed        bool

	settleTimer   clock.Timer
	settleGen     uint64
	autoplayTimer clock.Timer
	autoplayGen   uint64
}

// New creates an engine with no items
func New(cfg Config) *Engine {
	if cfg.PageSize < 1 {
		cfg.PageSize = 1
	}
	if cfg.SettleDelay <= 0 {
		cfg.SettleDelay = DefaultSettleDelay
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = clock.Real()
	}
	if cfg.Observer == nil {
		cfg.Observer = domain.NoOpObserver{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	e := &Engine{
		id:       uuid.NewString(),
		sched:    cfg.Scheduler,
		observer: cfg.Observer,
		pageSize: cfg.PageSize,
		interval: cfg.AutoplayInterval,
		settle:   cfg.SettleDelay,
	}
	e.logger = cfg.Logger.With("carousel", e.id)
	return e
}

// ID returns the instance identifier carried in state change events
func (e *Engine) ID() string { return e.id }

// SetItemCount re-derives the window for a new backing list length
func (e *Engine) SetItemCount(n int) {
	if n < 0 {
		n = 0
	}
	e.mu.Lock()
	if e.closed || n == e.count {
		e.mu.Unlock()
		return
	}
	e.count = n
	e.start = e.clampLocked(e.start)
	e.rearmAutoplayLocked()
	e.mu.Unlock()

	e.notify()
}

// SetPageSize changes the number of items per view
func (e *Engine) SetPageSize(k int) {
	if k < 1 {
		k = 1
	}
	e.mu.Lock()
	if e.closed || k == e.pageSize {
		e.mu.Unlock()
		return
	}
	e.pageSize = k
	e.start = e.clampLocked(e.start)
	e.rearmAutoplayLocked()
	e.mu.Unlock()

	e.notify()
}

// SetAutoplayInterval changes the autoplay period (0 disables it)
func (e *Engine) SetAutoplayInterval(d time.Duration) {
	e.mu.Lock()
	if e.closed || d == e.interval {
		e.mu.Unlock()
		return
	}
	e.interval = d
	e.rearmAutoplayLocked()
	e.mu.Unlock()
}

// Advance moves the window one step with wraparound.
// Returns false if the call was rejected or the start did not change.
func (e *Engine) Advance(dir Direction) bool {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return false
	}

	var moved bool
	if e.pageSize == 1 {
		if e.count <= 1 {
			e.mu.Unlock()
			return false
		}
		var target int
		if dir == Next {
			target = (e.start + 1) % e.count
		} else {
			target = (e.start - 1 + e.count) % e.count
		}
		moved = e.transitionLocked(target)
	} else {
		moved = e.stepPagedLocked(dir)
	}
	e.mu.Unlock()

	if moved {
		e.notify()
	}
	return moved
}

// stepPagedLocked applies the single-step paged wrap rule
func (e *Engine) stepPagedLocked(dir Direction) bool {
	last := e.count - e.pageSize
	if last < 0 {
		last = 0
	}

	prev := e.start
	if dir == Next {
		if e.start+1 > e.count-e.pageSize {
			e.start = 0
		} else {
			e.start++
		}
	} else {
		if e.start == 0 {
			e.start = last
		} else {
			e.start--
		}
	}
	return e.start != prev
}

// GoTo sets the start index directly. In single-item mode the call is
// rejected while a transition is in flight or when index is out of range;
// paged mode clamps index into the valid range.
func (e *Engine) GoTo(index int) bool {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return false
	}

	var moved bool
	if e.pageSize == 1 {
		if index < 0 || index >= e.count {
			e.mu.Unlock()
			return false
		}
		moved = e.transitionLocked(index)
	} else {
		target := e.clampLocked(index)
		moved = target != e.start
		e.start = target
	}
	e.mu.Unlock()

	if moved {
		e.notify()
	}
	return moved
}

// transitionLocked moves to target under the re-entrancy lock
func (e *Engine) transitionLocked(target int) bool {
	if e.transitioning {
		return false
	}
	e.transitioning = true
	e.start = target

	e.settleGen++
	gen := e.settleGen
	e.settleTimer = e.sched.AfterFunc(e.settle, func() { e.release(gen) })

	// Any transition restarts the autoplay countdown
	e.rearmAutoplayLocked()
	return true
}

func (e *Engine) release(gen uint64) {
	e.mu.Lock()
	if e.closed || gen != e.settleGen {
		e.mu.Unlock()
		return
	}
	e.transitioning = false
	e.settleTimer = nil
	e.mu.Unlock()

	e.notify()
}

// rearmAutoplayLocked cancels the pending autoplay tick and schedules a new
// one if autoplay applies.
func (e *Engine) rearmAutoplayLocked() {
	if e.autoplayTimer != nil {
		e.autoplayTimer.Stop()
		e.autoplayTimer = nil
	}
	e.autoplayGen++

	if e.closed || e.pageSize != 1 || e.interval <= 0 || e.count <= 1 {
		return
	}
	gen := e.autoplayGen
	e.autoplayTimer = e.sched.AfterFunc(e.interval, func() { e.autoplay(gen) })
}

func (e *Engine) autoplay(gen uint64) {
	e.mu.Lock()
	if e.closed || gen != e.autoplayGen {
		e.mu.Unlock()
		return
	}
	e.autoplayTimer = nil
	e.mu.Unlock()

	if !e.Advance(Next) {
		// Rejected mid-transition; keep the slideshow running
		e.mu.Lock()
		if gen == e.autoplayGen {
			e.rearmAutoplayLocked()
		}
		e.mu.Unlock()
	}
}

// clampLocked bounds a start index for the current count and page size
func (e *Engine) clampLocked(i int) int {
	last := e.count - e.pageSize
	if e.pageSize == 1 {
		last = e.count - 1
	}
	if last < 0 {
		last = 0
	}
	if i > last {
		return last
	}
	if i < 0 {
		return 0
	}
	return i
}

// Window returns the current visible window
func (e *Engine) Window() Window {
	e.mu.Lock()
	defer e.mu.Unlock()

	end := e.start + e.pageSize
	if end > e.count {
		end = e.count
	}
	state := StateIdle
	if e.transitioning {
		state = StateTransitioning
	}
	return Window{
		Start:        e.start,
		End:          end,
		Count:        e.count,
		PageSize:     e.pageSize,
		ShowControls: e.count > e.pageSize,
		State:        state,
	}
}

// Current returns the start index
func (e *Engine) Current() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.start
}

// State returns the transition state
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.transitioning {
		return StateTransitioning
	}
	return StateIdle
}

// Autoplaying reports whether an autoplay tick is scheduled
func (e *Engine) Autoplaying() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.autoplayTimer != nil
}

// Close stops every timer. The engine ignores calls afterwards.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	if e.autoplayTimer != nil {
		e.autoplayTimer.Stop()
		e.autoplayTimer = nil
	}
	if e.settleTimer != nil {
		e.settleTimer.Stop()
		e.settleTimer = nil
	}
	e.autoplayGen++
	e.settleGen++
	e.logger.Debug("carousel closed")
}

func (e *Engine) notify() {
	e.observer.OnStateChange(domain.StateChange{Source: domain.SourceCarousel, ID: e.id})
}
