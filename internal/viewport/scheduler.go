package viewport

import "time"

// FrameScheduler drives cooperative animation: each queued function is one
// animation frame. Implementations must run frames one at a time.
type FrameScheduler interface {
	RequestFrame(fn func())
}

// SyncScheduler runs frames immediately, fast-forwarding animations to their
// final state. Used by one-shot renders and tests.
type SyncScheduler struct{}

func (SyncScheduler) RequestFrame(fn func()) { fn() }

// TickerScheduler spaces frames by a fixed interval.
type TickerScheduler struct {
	Interval time.Duration
}

func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	return &TickerScheduler{Interval: interval}
}

func (t *TickerScheduler) RequestFrame(fn func()) {
	time.AfterFunc(t.Interval, fn)
}
