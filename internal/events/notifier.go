package events

import (
	"log/slog"
	"sync"
	"time"
)

type subscription struct {
	id int64
	fn Listener
}

// Notifier fans events out to subscribers in the order they subscribed.
// Delivery is synchronous: Notify returns after every listener has run.
// A nil *Notifier accepts calls and does nothing.
type Notifier struct {
	mu      sync.Mutex
	subs    []subscription
	nextSub int64
	seq     int64
	now     func() time.Time
}

// NewNotifier creates a notifier with no subscribers
func NewNotifier() *Notifier {
	return &Notifier{now: time.Now}
}

// Subscribe registers fn. Calling the returned function more than once is safe.
func (n *Notifier) Subscribe(fn Listener) func() {
	if n == nil || fn == nil {
		return func() {}
	}

	n.mu.Lock()
	n.nextSub++
	id := n.nextSub
	n.subs = append(n.subs, subscription{id: id, fn: fn})
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { n.remove(id) })
	}
}

func (n *Notifier) remove(id int64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, s := range n.subs {
		if s.id == id {
			n.subs = append(n.subs[:i:i], n.subs[i+1:]...)
			return
		}
	}
}

// Notify stamps ev with a timestamp and sequence number and delivers it.
// Listeners run outside the lock, so they may subscribe, unsubscribe or
// trigger further notifications.
func (n *Notifier) Notify(ev Event) {
	if n == nil {
		return
	}

	n.mu.Lock()
	n.seq++
	ev.SequenceID = n.seq
	if ev.Timestamp.IsZero() {
		if n.now == nil {
			n.now = time.Now
		}
		ev.Timestamp = n.now()
	}
	subs := make([]subscription, len(n.subs))
	copy(subs, n.subs)
	n.mu.Unlock()

	slog.Debug("notifying subscribers", "event_type", ev.Type, "user_id", ev.UserID, "subscribers", len(subs))
	for _, s := range subs {
		s.fn(ev)
	}
}

// Len returns the number of current subscribers
func (n *Notifier) Len() int {
	if n == nil {
		return 0
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}
