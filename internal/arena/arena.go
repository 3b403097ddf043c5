package arena

import (
	"fmt"
	"image/color"
	"math"
	"slices"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Rand is the randomness the arena draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

type Arena struct {
	bounds Bounds
	rng    Rand

	balls  []*Ball
	nextID uint64

	paused        bool
	speedScale    float64
	event         Event
	eventTimer    float64
	eventDuration float64
	elapsed       float64
	bgHue         float64

	totalBalls      int
	totalRainbow    int
	totalEvolutive  int
	totalEvents     int
	totalExplosions int

	observers []Observer
}

func New(bounds Bounds, rng Rand) *Arena {
	return &Arena{
		bounds:        bounds,
		rng:           rng,
		balls:         make([]*Ball, 0, 64),
		speedScale:    1,
		eventDuration: EventDuration,
	}
}

func (a *Arena) AddObserver(o Observer) { a.observers = append(a.observers, o) }

// SetEventDuration changes how long future events last.
func (a *Arena) SetEventDuration(seconds float64) { a.eventDuration = seconds }

func (a *Arena) Bounds() Bounds { return a.bounds }

// Resize moves the walls. Balls caught outside are pulled back on their
// next move.
func (a *Arena) Resize(b Bounds) { a.bounds = b }

func (a *Arena) Paused() bool            { return a.paused }
func (a *Arena) SetPaused(p bool)        { a.paused = p }
func (a *Arena) TogglePause()            { a.paused = !a.paused }
func (a *Arena) SpeedScale() float64     { return a.speedScale }
func (a *Arena) ActiveEvent() Event      { return a.event }
func (a *Arena) Len() int                { return len(a.balls) }
func (a *Arena) BackgroundHue() float64  { return a.bgHue }
func (a *Arena) Background() color.RGBA  { return toRGBA(colorful.Hsv(a.bgHue*360, BackgroundSat, 1)) }

// Tick advances the simulation by dt seconds.
func (a *Arena) Tick(dt float64) {
	a.bgHue = math.Mod(a.bgHue+dt*BackgroundRate, 1)
	if a.paused {
		return
	}
	a.elapsed += dt

	if a.eventTimer > 0 {
		a.eventTimer -= dt
		if a.eventTimer <= timeEpsilon {
			a.endEvent()
		}
	}

	// move may remove the ball itself or append fragments, so walk a copy.
	snapshot := make([]*Ball, len(a.balls))
	copy(snapshot, a.balls)
	for _, b := range snapshot {
		a.step(b, dt)
		b.updateColor(dt)
	}
}

func (a *Arena) step(b *Ball, dt float64) {
	hit := b.move(a.bounds, dt, a.speedScale)
	switch b.kind {
	case KindCollidable:
		a.collide(b)
	case KindFragment:
		b.life -= dt
		if b.life <= timeEpsilon {
			a.Remove(b)
		}
	case KindEvolutive:
		if b.grow(a.bounds, hit) {
			a.notify(Notice{Kind: NoticeGrow, Ball: b.view()})
		}
		b.life -= dt
		if b.life <= timeEpsilon {
			a.explode(b)
		}
	}
}

// collide swaps velocities between b and every overlapping collidable.
func (a *Arena) collide(b *Ball) {
	bx, by := b.center()
	for _, o := range a.balls {
		if o == b || o.kind != KindCollidable {
			continue
		}
		ox, oy := o.center()
		if math.Hypot(bx-ox, by-oy) < (b.size+o.size)/2 {
			b.vx, o.vx = o.vx, b.vx
			b.vy, o.vy = o.vy, b.vy
		}
	}
}

func (a *Arena) explode(b *Ball) {
	cx, cy := b.center()
	v := b.view()
	a.Remove(b)
	a.totalExplosions++
	a.notify(Notice{Kind: NoticeExplode, Ball: v})

	step := 2 * math.Pi / FragmentCount
	for i := 0; i < FragmentCount; i++ {
		ang := step * float64(i)
		fx := cx + math.Cos(ang)*FragmentOffset
		fy := math.Max(cy+math.Sin(ang)*FragmentOffset, a.bounds.Floor+FragmentFloorMargin)
		f := a.newBall(KindFragment, fx, fy, true, MiniScale)
		f.life = FragmentLife
		f.vx = math.Cos(ang) * FragmentSpeed
		f.vy = math.Sin(ang) * FragmentSpeed
		a.add(f)
		a.totalBalls++
	}
}

// newBall draws a ball centered on (cx, cy).
func (a *Arena) newBall(kind Kind, cx, cy float64, rainbow bool, scale float64) *Ball {
	a.nextID++
	b := &Ball{
		id:       a.nextID,
		kind:     kind,
		baseSize: a.uniform(MinBaseSize, MaxBaseSize),
		scale:    scale,
		rainbow:  rainbow,
	}
	b.size = b.baseSize * scale
	b.vx = a.uniform(-MaxSpeed, MaxSpeed)
	b.vy = a.uniform(-MaxSpeed, MaxSpeed)
	b.hue = a.rng.Float64()
	b.baseColor = colorful.Color{
		R: a.uniform(ColorMin, 1),
		G: a.uniform(ColorMin, 1),
		B: a.uniform(ColorMin, 1),
	}
	b.placeAt(cx, cy)
	b.updateColor(0)
	return b
}

func (a *Arena) uniform(lo, hi float64) float64 { return lo + (hi-lo)*a.rng.Float64() }

func (a *Arena) add(b *Ball) {
	a.balls = append(a.balls, b)
	a.notify(Notice{Kind: NoticeSpawn, Ball: b.view()})
}

// Remove drops b from the arena. Removing a ball that is not present is a
// no-op.
func (a *Arena) Remove(b *Ball) {
	for i, o := range a.balls {
		if o == b {
			a.balls = slices.Delete(a.balls, i, i+1)
			a.notify(Notice{Kind: NoticeRemove, Ball: b.view()})
			return
		}
	}
}

// CreateBallAt spawns a ball centered on (x, y) following the creation
// policy: some become evolutive, the rest plain balls shaped by the active
// event.
func (a *Arena) CreateBallAt(x, y float64) *Ball {
	var b *Ball
	if a.rng.Float64() < EvolutiveChance {
		b = a.newEvolutive(x, y)
		a.totalEvolutive++
	} else {
		rainbow := a.rng.Float64() < RainbowChance || a.event == EventRainbow
		scale := NormalScale
		switch a.event {
		case EventGiant:
			scale = GiantScale
		case EventMini:
			scale = MiniScale
		}
		b = a.newBall(KindPlain, x, y, rainbow, scale)
		if rainbow {
			a.totalRainbow++
		}
	}
	a.add(b)
	a.totalBalls++
	return b
}

func (a *Arena) newEvolutive(x, y float64) *Ball {
	b := a.newBall(KindEvolutive, x, y, true, NormalScale)
	b.life = EvolutiveLife
	return b
}

// CreateSpecificBall spawns the requested variant at the window center.
func (a *Arena) CreateSpecificBall(v Variant) (*Ball, error) {
	x, y := a.bounds.Center()
	var b *Ball
	switch v {
	case VariantRainbow:
		b = a.newBall(KindPlain, x, y, true, NormalScale)
		a.totalRainbow++
	case VariantGrowing:
		b = a.newEvolutive(x, y)
		a.totalEvolutive++
	case VariantCollidable:
		b = a.newBall(KindCollidable, x, y, false, NormalScale)
	case VariantGiant:
		b = a.newBall(KindPlain, x, y, false, GiantScale)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, v)
	}
	a.add(b)
	a.totalBalls++
	return b, nil
}

// ForceEvent starts e for the configured duration and applies its one-shot
// effect to the balls that already exist.
func (a *Arena) ForceEvent(e Event) error {
	if e == EventNone || e > EventMini {
		return fmt.Errorf("%w: %d", ErrUnknownEvent, e)
	}
	a.event = e
	a.eventTimer = a.eventDuration
	a.speedScale = e.SpeedScale()
	a.totalEvents++

	for _, b := range a.balls {
		switch e {
		case EventRainbow:
			b.rainbow = true
		case EventGiant:
			b.setScale(GiantScale)
		case EventMini:
			b.setScale(MiniScale)
		default:
			b.setScale(NormalScale)
		}
	}
	a.notify(Notice{Kind: NoticeEventStart, Event: e})
	return nil
}

// RandomEvent forces an event drawn uniformly from RandomEvents.
func (a *Arena) RandomEvent() Event {
	e := RandomEvents[a.rng.Intn(len(RandomEvents))]
	_ = a.ForceEvent(e)
	return e
}

func (a *Arena) endEvent() {
	ended := a.event
	a.eventTimer = 0
	a.speedScale = 1
	a.event = EventNone
	for _, b := range a.balls {
		if b.kind != KindEvolutive && b.kind != KindFragment {
			b.rainbow = false
		}
		b.setScale(NormalScale)
	}
	a.notify(Notice{Kind: NoticeEventEnd, Event: ended})
}

// Reset clears every ball and the active event. Counters and elapsed time
// are kept.
func (a *Arena) Reset() {
	clear(a.balls)
	a.balls = a.balls[:0]
	a.event = EventNone
	a.eventTimer = 0
	a.speedScale = 1
	a.notify(Notice{Kind: NoticeReset})
}

// Balls returns the render state of every ball in creation order.
func (a *Arena) Balls() []BallView {
	views := make([]BallView, len(a.balls))
	for i, b := range a.balls {
		views[i] = b.view()
	}
	return views
}

// KineticEnergy sums ½·m·v² over all balls, taking mass as the disc area.
func (a *Arena) KineticEnergy() float64 {
	total := 0.0
	for _, b := range a.balls {
		r := b.size / 2
		v := b.speed()
		total += 0.5 * math.Pi * r * r * v * v
	}
	return total
}

func (a *Arena) notify(n Notice) {
	if len(a.observers) == 0 {
		return
	}
	n.Time = a.elapsed
	for _, o := range a.observers {
		o.OnNotice(n)
	}
}
