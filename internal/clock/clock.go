// Package clock provides cancellable one-shot timers so that timed state
// (toast expiry, carousel autoplay and settle delays) can be driven by a
// fake clock in tests.
package clock

import (
	"sort"
	"sync"
	"time"
)

// Timer is a handle to a scheduled callback
type Timer interface {
	// Stop cancels the callback. Returns false if it already ran or was stopped.
	Stop() bool
}

// Scheduler runs a callback once after a delay
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Real returns a Scheduler backed by time.AfterFunc
func Real() Scheduler { return realScheduler{} }

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Fake is a manually advanced Scheduler. Callbacks run synchronously on the
// goroutine calling Advance, in deadline order.
type Fake struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*fakeTimer
}

// NewFake creates a fake clock at time zero
func NewFake() *Fake {
	return &Fake{}
}

type fakeTimer struct {
	clock    *Fake
	deadline time.Duration
	seq      int
	fn       func()
	done     bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	return true
}

// AfterFunc schedules f to run once the fake clock has advanced by d
func (f *Fake) AfterFunc(d time.Duration, fn func()) Timer {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	t := &fakeTimer{clock: f, deadline: f.now + d, seq: f.seq, fn: fn}
	f.timers = append(f.timers, t)
	return t
}

// Advance moves the clock forward by d, firing every timer that comes due.
// Timers scheduled by a callback fire too if their deadline falls inside
// the advanced span.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now + d
	f.mu.Unlock()

	for {
		f.mu.Lock()
		next := f.nextDue(target)
		if next == nil {
			f.now = target
			f.mu.Unlock()
			return
		}
		next.done = true
		f.now = next.deadline
		f.mu.Unlock()

		next.fn()
	}
}

// nextDue returns the earliest pending timer with deadline <= target.
// Caller holds f.mu.
func (f *Fake) nextDue(target time.Duration) *fakeTimer {
	pending := f.timers[:0]
	for _, t := range f.timers {
		if !t.done {
			pending = append(pending, t)
		}
	}
	f.timers = pending

	sort.SliceStable(f.timers, func(i, j int) bool {
		if f.timers[i].deadline == f.timers[j].deadline {
			return f.timers[i].seq < f.timers[j].seq
		}
		return f.timers[i].deadline < f.timers[j].deadline
	})

	if len(f.timers) == 0 || f.timers[0].deadline > target {
		return nil
	}
	return f.timers[0]
}

// Pending returns the number of timers that have neither fired nor been stopped
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, t := range f.timers {
		if !t.done {
			n++
		}
	}
	return n
}
