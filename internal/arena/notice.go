package arena

type NoticeKind uint8

const (
	NoticeSpawn NoticeKind = iota
	NoticeRemove
	NoticeGrow
	NoticeExplode
	NoticeEventStart
	NoticeEventEnd
	NoticeReset
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeSpawn:
		return "spawn"
	case NoticeRemove:
		return "remove"
	case NoticeGrow:
		return "grow"
	case NoticeExplode:
		return "explode"
	case NoticeEventStart:
		return "event_start"
	case NoticeEventEnd:
		return "event_end"
	case NoticeReset:
		return "reset"
	}
	return "unknown"
}

// Notice describes something that happened inside the arena. Ball is set
// for spawn, remove, grow and explode; Event for the event notices.
type Notice struct {
	Kind  NoticeKind
	Time  float64
	Ball  BallView
	Event Event
}

// Observer receives notices synchronously, on the goroutine driving the
// arena. Implementations must not call back into the arena.
type Observer interface {
	OnNotice(n Notice)
}

type ObserverFunc func(n Notice)

func (f ObserverFunc) OnNotice(n Notice) { f(n) }
