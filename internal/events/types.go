package events

import "time"

// EventType indicates which state holder changed
type EventType string

const (
	EventSessionChanged EventType = "session_changed"
	EventThemeChanged   EventType = "theme_changed"
	EventTasksChanged   EventType = "tasks_changed"
)

// Event is delivered to every subscriber after a state change
type Event struct {
	Type       EventType
	UserID     int       // 0 when no user is bound
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing per notifier
}

// Listener receives events synchronously on the notifying goroutine
type Listener func(Event)
