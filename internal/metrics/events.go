package metrics

import "github.com/san-kum/ballpit/internal/arena"

// EventTime measures how much of the run was spent under a global event.
type EventTime struct {
	name    string
	under   float64
	lastT   float64
	started bool
	total   float64
}

func NewEventTime() *EventTime {
	return &EventTime{name: "event_time"}
}

func (e *EventTime) Name() string { return e.name }

func (e *EventTime) Observe(a *arena.Arena, t float64) {
	if e.started {
		dt := t - e.lastT
		e.total += dt
		if a.ActiveEvent() != arena.EventNone {
			e.under += dt
		}
	}
	e.lastT = t
	e.started = true
}

// Value is the fraction of observed time under an event.
func (e *EventTime) Value() float64 {
	if e.total == 0 {
		return 0
	}
	return e.under / e.total
}

func (e *EventTime) Reset() {
	e.under = 0
	e.total = 0
	e.lastT = 0
	e.started = false
}
