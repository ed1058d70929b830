// Package status carries human-readable progress messages from a running
// scrape to whatever display layer is attached. Sinks are fire-and-forget
// and safe to call from worker goroutines; a sink never panics outward.
package status

import (
	"sync"

	"github.com/NandoXu/ig-reels-analytics/pkg/logger"
)

type Sink interface {
	Notify(message string)
}

// Func adapts a plain function to a Sink. A nil Func is a no-op.
type Func func(string)

func (f Func) Notify(message string) {
	if f != nil {
		f(message)
	}
}

// Nop discards every message.
var Nop Sink = Func(nil)

// Bus is a channel-backed sink decoupling the pipeline from any particular
// UI. Notify never blocks: when the consumer lags, messages are dropped.
type Bus struct {
	ch        chan string
	closeOnce sync.Once
}

func NewBus(buffer int) *Bus {
	if buffer <= 0 {
		buffer = 64
	}
	return &Bus{ch: make(chan string, buffer)}
}

func (b *Bus) Notify(message string) {
	defer func() {
		// A send on a closed bus is a late worker, not a crash.
		_ = recover()
	}()
	select {
	case b.ch <- message:
	default:
	}
}

// Messages is the consumer side of the bus.
func (b *Bus) Messages() <-chan string { return b.ch }

func (b *Bus) Close() {
	b.closeOnce.Do(func() { close(b.ch) })
}

type logSink struct {
	log logger.Logger
}

// NewLogger returns a sink that writes progress through the process logger.
func NewLogger(log logger.Logger) Sink {
	return &logSink{log: log.WithComponent("status")}
}

func (s *logSink) Notify(message string) {
	s.log.Info(message)
}
