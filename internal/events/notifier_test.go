package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_DeliversInSubscriptionOrder(t *testing.T) {
	n := NewNotifier()

	var order []string
	n.Subscribe(func(Event) { order = append(order, "first") })
	n.Subscribe(func(Event) { order = append(order, "second") })

	n.Notify(Event{Type: EventTasksChanged})

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestNotifier_StampsEvents(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	n := NewNotifier()
	n.now = func() time.Time { return fixed }

	var got []Event
	n.Subscribe(func(ev Event) { got = append(got, ev) })

	n.Notify(Event{Type: EventSessionChanged, UserID: 7})
	n.Notify(Event{Type: EventThemeChanged, UserID: 7})

	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].SequenceID)
	assert.Equal(t, int64(2), got[1].SequenceID)
	assert.Equal(t, fixed, got[0].Timestamp)
	assert.Equal(t, 7, got[1].UserID)
	assert.Equal(t, EventThemeChanged, got[1].Type)
}

func TestNotifier_Unsubscribe(t *testing.T) {
	n := NewNotifier()

	calls := 0
	unsubscribe := n.Subscribe(func(Event) { calls++ })
	require.Equal(t, 1, n.Len())

	n.Notify(Event{Type: EventTasksChanged})
	unsubscribe()
	unsubscribe()
	n.Notify(Event{Type: EventTasksChanged})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, n.Len())
}

func TestNotifier_ListenerMayUnsubscribeDuringDelivery(t *testing.T) {
	n := NewNotifier()

	var unsubscribe func()
	calls := 0
	unsubscribe = n.Subscribe(func(Event) {
		calls++
		unsubscribe()
	})
	other := 0
	n.Subscribe(func(Event) { other++ })

	n.Notify(Event{})
	n.Notify(Event{})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
}

func TestNotifier_NilSafe(t *testing.T) {
	var n *Notifier

	assert.NotPanics(t, func() {
		unsubscribe := n.Subscribe(func(Event) {})
		unsubscribe()
		n.Notify(Event{Type: EventTasksChanged})
	})
	assert.Equal(t, 0, n.Len())
}

func TestNotifier_NilListenerIgnored(t *testing.T) {
	n := NewNotifier()
	n.Subscribe(nil)
	assert.Equal(t, 0, n.Len())
}
