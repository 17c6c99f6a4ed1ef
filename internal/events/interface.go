package events

// Publisher is the notification surface a state holder exposes to observers.
type Publisher interface {
	// Subscribe registers fn and returns a function that removes it again
	Subscribe(fn Listener) (unsubscribe func())

	// Notify delivers ev to every current subscriber
	Notify(ev Event)
}

// Compile-time verification that *Notifier implements Publisher
var _ Publisher = (*Notifier)(nil)
