/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package feud

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Dispatcher runs f on the goroutine that owns the game state.
// Implementations must run dispatched functions one at a time, in order.
type Dispatcher func(f func())

// Timer is a one-second countdown. It is confined to the goroutine its
// Dispatcher delivers to: Start, Cancel and the tick handler never run
// concurrently with each other.
type Timer struct {
	clock    clockwork.Clock
	dispatch Dispatcher
	onTick   func(remaining int)

	run       uint64
	active    bool
	remaining int
	onExpire  func()
	stop      chan struct{}
}

// NewTimer returns an idle timer. onTick receives the remaining seconds once
// when a countdown starts and again after every tick.
func NewTimer(clock clockwork.Clock, dispatch Dispatcher, onTick func(remaining int)) *Timer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if onTick == nil {
		onTick = func(int) {}
	}

	return &Timer{
		clock:    clock,
		dispatch: dispatch,
		onTick:   onTick,
	}
}

// Start cancels any running countdown and begins a new one. onExpire is
// called exactly once when the countdown reaches zero, unless the run is
// cancelled first.
func (t *Timer) Start(seconds int, onExpire func()) error {
	if seconds <= 0 {
		return ErrInvalidDuration
	}

	t.Cancel()

	t.run++
	t.active = true
	t.remaining = seconds
	t.onExpire = onExpire
	t.stop = make(chan struct{})

	go t.drive(t.run, t.clock.NewTicker(time.Second), t.stop)

	t.onTick(seconds)

	return nil
}

// Cancel stops the countdown. Calling it on an idle timer does nothing.
func (t *Timer) Cancel() {
	if !t.active {
		return
	}

	t.halt()
}

func (t *Timer) Active() bool {
	return t.active
}

func (t *Timer) Remaining() int {
	return t.remaining
}

func (t *Timer) halt() {
	t.active = false
	t.run++
	t.onExpire = nil

	close(t.stop)
	t.stop = nil
}

// tick handles one elapsed second of the given run. Ticks queued by a run
// that has since been cancelled or replaced are dropped.
func (t *Timer) tick(run uint64) {
	if !t.active || run != t.run {
		return
	}

	t.remaining--
	t.onTick(t.remaining)

	if t.remaining > 0 {
		return
	}

	expire := t.onExpire
	t.halt()

	if expire != nil {
		expire()
	}
}

func (t *Timer) drive(run uint64, ticker clockwork.Ticker, stop <-chan struct{}) {
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.Chan():
			t.dispatch(func() { t.tick(run) })
		}
	}
}
