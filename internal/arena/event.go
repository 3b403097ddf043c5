package arena

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownEvent   = errors.New("arena: unknown event")
	ErrUnknownVariant = errors.New("arena: unknown ball variant")
)

// Event is a timed global modifier.
type Event uint8

const (
	EventNone Event = iota
	EventSpeed
	EventSlowed
	EventRainbow
	EventGiant
	EventMini
)

// RandomEvents is the pool a random event is drawn from.
var RandomEvents = []Event{EventSpeed, EventSlowed, EventRainbow, EventGiant, EventMini}

var eventNames = map[Event]string{
	EventNone:    "",
	EventSpeed:   "SPEED",
	EventSlowed:  "SLOWED",
	EventRainbow: "RAINBOW",
	EventGiant:   "GIANT",
	EventMini:    "MINI",
}

func (e Event) String() string { return eventNames[e] }

// Label is the banner text shown while the event is active.
func (e Event) Label() string {
	if e == EventNone {
		return ""
	}
	return "Event: " + e.String()
}

// SpeedScale is the displacement multiplier applied while e is active.
func (e Event) SpeedScale() float64 {
	switch e {
	case EventSpeed:
		return SpeedScale
	case EventSlowed:
		return SlowedScale
	default:
		return 1
	}
}

func ParseEvent(s string) (Event, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for e, n := range eventNames {
		if e != EventNone && n == name {
			return e, nil
		}
	}
	return EventNone, fmt.Errorf("%w: %q", ErrUnknownEvent, s)
}

// Variant selects a ball for the debug spawn trigger.
type Variant uint8

const (
	VariantRainbow Variant = iota
	VariantGrowing
	VariantCollidable
	VariantGiant
)

var variantNames = []string{"RAINBOW", "GROWING", "COLLIDABLE", "GIANT"}

func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

func ParseVariant(s string) (Variant, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range variantNames {
		if n == name {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}
