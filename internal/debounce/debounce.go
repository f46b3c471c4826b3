// Package debounce delays a trailing call until input settles. The category
// color picker uses it so only the final pick reaches the backend.
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs the most recent function once no Trigger arrives for the
// configured interval. Earlier pending calls are dropped, never run twice.
type Debouncer struct {
	mu    sync.Mutex
	d     time.Duration
	timer *time.Timer
}

func New(d time.Duration) *Debouncer {
	return &Debouncer{d: d}
}

// Trigger schedules fn, cancelling any call still pending.
func (b *Debouncer) Trigger(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.d, fn)
}

// Stop cancels the pending call, if any.
func (b *Debouncer) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
