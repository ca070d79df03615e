package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// subscriptionBuffer is the per-subscriber channel capacity. A full buffer
// drops the notification; subscribers recover via their idle re-poll against
// the run_events table.
const subscriptionBuffer = 256

// listenTimeout bounds how long a LISTEN command may block when the first
// subscriber of a channel arrives. Without it, a stalled connection would
// block the subscribing goroutine indefinitely.
const listenTimeout = 10 * time.Second

// Subscription is one subscriber's view of a NOTIFY channel. Payloads are
// raw envelope bytes in broadcast order.
type Subscription struct {
	C       <-chan []byte
	channel string
	ch      chan []byte
}

// Channel returns the NOTIFY channel this subscription is attached to.
func (s *Subscription) Channel() string { return s.channel }

// Broker fans NOTIFY payloads out to in-process subscribers. Each pod has
// one Broker instance; the NotifyListener feeds it.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[*Subscription]bool

	listenerMu sync.RWMutex
	listener   *NotifyListener
}

// NewBroker creates an empty broker.
func NewBroker() *Broker {
	return &Broker{subs: make(map[string]map[*Subscription]bool)}
}

// SetListener wires the NotifyListener for dynamic LISTEN/UNLISTEN. Called
// once during startup after both sides exist.
func (b *Broker) SetListener(l *NotifyListener) {
	b.listenerMu.Lock()
	defer b.listenerMu.Unlock()
	b.listener = l
}

// Subscribe registers a subscriber for a channel, starting LISTEN when it is
// the channel's first. LISTEN completes before Subscribe returns, so a
// history replay performed immediately afterwards cannot race a concurrent
// append into a gap.
func (b *Broker) Subscribe(ctx context.Context, channel string) (*Subscription, error) {
	sub := &Subscription{channel: channel, ch: make(chan []byte, subscriptionBuffer)}
	sub.C = sub.ch

	b.mu.Lock()
	needsListen := false
	if _, ok := b.subs[channel]; !ok {
		b.subs[channel] = make(map[*Subscription]bool)
		needsListen = true
	}
	b.subs[channel][sub] = true
	b.mu.Unlock()

	if needsListen {
		b.listenerMu.RLock()
		l := b.listener
		b.listenerMu.RUnlock()
		if l != nil {
			listenCtx, cancel := context.WithTimeout(ctx, listenTimeout)
			defer cancel()
			if err := l.Subscribe(listenCtx, channel); err != nil {
				b.Unsubscribe(sub)
				return nil, fmt.Errorf("LISTEN on channel %s: %w", channel, err)
			}
		}
	}

	return sub, nil
}

// Unsubscribe removes a subscriber and stops LISTEN when it was the last.
// The UNLISTEN goroutine re-checks subscribers before issuing the command so
// a rapid unsubscribe/resubscribe cycle cannot drop an active LISTEN.
func (b *Broker) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	channelEmpty := false
	if subs, ok := b.subs[sub.channel]; ok {
		delete(subs, sub)
		if len(subs) == 0 {
			delete(b.subs, sub.channel)
			channelEmpty = true
		}
	}
	b.mu.Unlock()

	if !channelEmpty {
		return
	}

	b.listenerMu.RLock()
	l := b.listener
	b.listenerMu.RUnlock()
	if l == nil {
		return
	}
	channel := sub.channel
	go func() {
		b.mu.RLock()
		_, resubscribed := b.subs[channel]
		b.mu.RUnlock()
		if resubscribed {
			return
		}
		if err := l.Unsubscribe(context.Background(), channel); err != nil {
			slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
		}
	}()
}

// Broadcast delivers a payload to every subscriber of a channel. Sends are
// non-blocking: a subscriber whose buffer is full misses the notification
// and catches up from the table on its next re-poll.
func (b *Broker) Broadcast(channel string, payload []byte) {
	b.mu.RLock()
	targets := make([]*Subscription, 0, len(b.subs[channel]))
	for sub := range b.subs[channel] {
		targets = append(targets, sub)
	}
	b.mu.RUnlock()

	for _, sub := range targets {
		select {
		case sub.ch <- payload:
		default:
			slog.Debug("Subscriber buffer full, dropping notification", "channel", channel)
		}
	}
}

// SubscriberCount returns the number of subscribers for a channel.
func (b *Broker) SubscriberCount(channel string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[channel])
}

// ActiveChannels returns the number of channels with at least one subscriber.
func (b *Broker) ActiveChannels() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
