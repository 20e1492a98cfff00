package sim

import (
	"context"
	"sync"
	"time"

	"conways-life/internal/core"
)

// Scheduler produces Tick commands at a fixed interval once started. The
// controller keeps at most one Handle and stops it before starting another.
type Scheduler interface {
	Start(interval time.Duration) Handle
}

// Handle controls one started timer.
type Handle interface {
	Stop()
}

// Sink accepts commands without blocking. It reports false when the command
// was dropped.
type Sink interface {
	TrySend(cmd Command) bool
}

// Ticker is a wall-clock Scheduler. Each Start spawns a goroutine that offers
// Tick commands to the sink until its handle is stopped or ctx ends.
type Ticker struct {
	ctx  context.Context
	sink Sink
}

// NewTicker returns a Ticker feeding sink.
func NewTicker(ctx context.Context, sink Sink) *Ticker {
	return &Ticker{ctx: ctx, sink: sink}
}

// Start implements Scheduler.
func (t *Ticker) Start(interval time.Duration) Handle {
	ctx, cancel := context.WithCancel(t.ctx)
	h := &tickerHandle{cancel: cancel}
	go func() {
		tk := time.NewTicker(interval)
		defer tk.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-tk.C:
				// A full queue drops the tick; the next one catches up.
				t.sink.TrySend(Tick{From: h})
			}
		}
	}()
	return h
}

type tickerHandle struct {
	cancel context.CancelFunc
}

func (h *tickerHandle) Stop() { h.cancel() }

// FrameScheduler is a Scheduler for frame-driven views. The view polls Due
// once per frame and dispatches the returned Tick.
type FrameScheduler struct {
	step   *core.FixedStep
	active *frameHandle
}

// NewFrameScheduler returns an idle FrameScheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{step: core.NewFixedStep(time.Second)}
}

// Start implements Scheduler.
func (f *FrameScheduler) Start(interval time.Duration) Handle {
	f.step.SetInterval(interval)
	h := &frameHandle{owner: f}
	f.active = h
	return h
}

// Due reports whether a tick should be dispatched this frame.
func (f *FrameScheduler) Due() (Tick, bool) {
	if f.active == nil || !f.step.ShouldStep() {
		return Tick{}, false
	}
	return Tick{From: f.active}, true
}

// Active reports whether a started handle is still live.
func (f *FrameScheduler) Active() bool { return f.active != nil }

type frameHandle struct {
	owner *FrameScheduler
}

func (h *frameHandle) Stop() {
	if h.owner.active == h {
		h.owner.active = nil
	}
}

// Manual is a Scheduler that never fires on its own. Scripts and tests call
// Fire to obtain the tick the active handle would have produced.
type Manual struct {
	mu       sync.Mutex
	active   *manualHandle
	interval time.Duration
	starts   int
	stops    int
}

// Start implements Scheduler.
func (m *Manual) Start(interval time.Duration) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	h := &manualHandle{owner: m}
	m.active = h
	m.interval = interval
	m.starts++
	return h
}

// Fire returns a Tick from the active handle, or false when stopped.
func (m *Manual) Fire() (Tick, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil {
		return Tick{}, false
	}
	return Tick{From: m.active}, true
}

// Active reports whether a handle is running and its interval.
func (m *Manual) Active() (time.Duration, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.interval, m.active != nil
}

// Counts returns how many times a handle was started and stopped.
func (m *Manual) Counts() (starts, stops int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.starts, m.stops
}

type manualHandle struct {
	owner *Manual
}

func (h *manualHandle) Stop() {
	m := h.owner
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stops++
	if m.active == h {
		m.active = nil
	}
}
