package tracker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// stopGracePeriod bounds how long Stop waits for the scan loop to exit.
const stopGracePeriod = 3 * time.Second

// loopState holds the background scan loop's lifecycle. The loop itself is
// a single goroutine; cycles never overlap.
type loopState struct {
	mu      sync.Mutex
	running bool
	failed  bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// Start launches the background scan loop: scan, sleep the configured
// interval, repeat. Calling Start on a running tracker has no effect.
func (t *Tracker) Start() {
	t.loop.mu.Lock()
	defer t.loop.mu.Unlock()

	if t.loop.running {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.loop.running = true
	t.loop.failed = false
	t.loop.cancel = cancel
	t.loop.done = make(chan struct{})

	t.log.Info("starting device monitoring")
	go t.run(ctx, t.loop.done)
}

// run is the scan loop body. Every per-source failure is already absorbed
// inside Scan, so this loop should only exit on cancellation; a panic is
// contained here, flagged, and leaves the table queryable with its
// last-known values.
func (t *Tracker) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	defer func() {
		if r := recover(); r != nil {
			t.log.Error("scan loop halted by panic", zap.Any("panic", r))
			t.loop.mu.Lock()
			t.loop.failed = true
			t.loop.mu.Unlock()
		}
		t.loop.mu.Lock()
		t.loop.running = false
		t.loop.mu.Unlock()
	}()

	for {
		t.Scan(ctx)

		interval, _ := t.Settings()
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Duration(interval) * time.Second):
		}
	}
}

// Stop signals the scan loop to exit after its current sleep or scan and
// waits up to a bounded grace period. If the loop has not exited by then,
// Stop returns anyway; shutdown is best-effort, not forced.
func (t *Tracker) Stop() {
	t.loop.mu.Lock()
	cancel := t.loop.cancel
	done := t.loop.done
	t.loop.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()

	select {
	case <-done:
		t.log.Info("device monitoring stopped")
	case <-time.After(stopGracePeriod):
		t.log.Warn("scan loop did not exit within grace period, abandoning wait")
	}
}

// Running reports whether the background scan loop is alive. It is false
// both after Stop and after a fatal loop failure; Failed distinguishes the
// two.
func (t *Tracker) Running() bool {
	t.loop.mu.Lock()
	defer t.loop.mu.Unlock()
	return t.loop.running
}

// Failed reports whether the scan loop halted on an unrecovered failure
// rather than an orderly Stop.
func (t *Tracker) Failed() bool {
	t.loop.mu.Lock()
	defer t.loop.mu.Unlock()
	return t.loop.failed
}
