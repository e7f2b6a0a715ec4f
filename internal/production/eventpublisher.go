// Package production provides listeners and encoders for dataobj hosts:
// channel forwarding, structured logging and snapshot export.
package production

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/comalice/dataobj"
)

// PublishedEvent bundles a change event with its delivery metadata.
type PublishedEvent struct {
	Name      string              `json:"name" yaml:"name"`
	Event     dataobj.ChangeEvent `json:"event" yaml:"event"`
	Timestamp time.Time           `json:"timestamp" yaml:"timestamp"`
}

// ChannelListener forwards change events to a Go channel.
// Non-blocking publish with drop on backpressure.
type ChannelListener struct {
	mu      sync.RWMutex
	ch      chan<- PublishedEvent
	closed  bool
	dropped atomic.Int64
}

// NewChannelListener creates a ChannelListener with the given output channel.
func NewChannelListener(ch chan<- PublishedEvent) *ChannelListener {
	return &ChannelListener{ch: ch}
}

// Listener returns a dataobj.Listener that publishes events tagged with name.
// Subscribe it under the same name on the host.
func (p *ChannelListener) Listener(name string) dataobj.Listener {
	return func(event dataobj.ChangeEvent) {
		p.Publish(name, event)
	}
}

// Publish forwards one event. It reports false when the event was dropped
// because the channel was full or the listener closed.
func (p *ChannelListener) Publish(name string, event dataobj.ChangeEvent) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		p.dropped.Add(1)
		return false
	}

	select {
	case p.ch <- PublishedEvent{Name: name, Event: event, Timestamp: time.Now()}:
		return true
	default:
		p.dropped.Add(1)
		return false
	}
}

// Dropped returns how many events were not delivered.
func (p *ChannelListener) Dropped() int64 {
	return p.dropped.Load()
}

// Close closes the output channel. Later publishes are dropped.
func (p *ChannelListener) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.closed {
		p.closed = true
		close(p.ch)
	}
	return nil
}
