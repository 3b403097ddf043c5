package arena

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type Kind uint8

const (
	KindPlain Kind = iota
	KindCollidable
	KindFragment
	KindEvolutive
)

func (k Kind) String() string {
	switch k {
	case KindCollidable:
		return "collidable"
	case KindFragment:
		return "fragment"
	case KindEvolutive:
		return "evolutive"
	default:
		return "plain"
	}
}

// Bounds are the walls of the play area. Floor is the height of the
// control bar; balls never go below it.
type Bounds struct {
	Width  float64
	Height float64
	Floor  float64
}

// Room is the largest ball size that fits between the walls.
func (b Bounds) Room() float64 { return math.Min(b.Width, b.Height-b.Floor) }

// Center is the midpoint of the whole window, control bar included.
func (b Bounds) Center() (float64, float64) { return b.Width / 2, b.Height / 2 }

// Contains reports whether (x, y) lies in the play area above the bar.
func (b Bounds) Contains(x, y float64) bool {
	return x >= 0 && x <= b.Width && y > b.Floor && y <= b.Height
}

// Ball is a circular body. Position is the bottom-left corner of its
// bounding box.
type Ball struct {
	id   uint64
	kind Kind

	x, y   float64
	vx, vy float64

	baseSize float64
	scale    float64
	size     float64

	rainbow   bool
	hue       float64
	baseColor colorful.Color
	color     colorful.Color

	life        float64
	inCollision bool
}

func (b *Ball) ID() uint64 { return b.id }
func (b *Ball) Kind() Kind { return b.kind }

func (b *Ball) center() (float64, float64) {
	r := b.size / 2
	return b.x + r, b.y + r
}

func (b *Ball) placeAt(cx, cy float64) {
	r := b.size / 2
	b.x, b.y = cx-r, cy-r
}

// setScale rescales the ball around its current center.
func (b *Ball) setScale(f float64) {
	cx, cy := b.center()
	b.scale = f
	b.size = b.baseSize * f
	b.placeAt(cx, cy)
}

// move displaces the ball by its velocity and forces it back inside the
// walls. The axis velocity is pointed inward on contact, its magnitude kept.
// It reports whether any wall was touched.
func (b *Ball) move(bounds Bounds, dt, speed float64) bool {
	b.x += b.vx * dt * speed
	b.y += b.vy * dt * speed

	hit := false
	if b.x <= 0 {
		b.x = 0
		b.vx = math.Abs(b.vx)
		hit = true
	} else if b.x+b.size >= bounds.Width {
		b.x = bounds.Width - b.size
		b.vx = -math.Abs(b.vx)
		hit = true
	}
	if b.y <= bounds.Floor {
		b.y = bounds.Floor
		b.vy = math.Abs(b.vy)
		hit = true
	} else if b.y+b.size >= bounds.Height {
		b.y = bounds.Height - b.size
		b.vy = -math.Abs(b.vy)
		hit = true
	}
	return hit
}

// clamp pulls the ball back inside the walls without touching velocity.
func (b *Ball) clamp(bounds Bounds) {
	b.x = math.Max(0, math.Min(b.x, bounds.Width-b.size))
	b.y = math.Max(bounds.Floor, math.Min(b.y, bounds.Height-b.size))
}

// grow applies the evolutive wall rule: one growth per new wall contact.
func (b *Ball) grow(bounds Bounds, hitWall bool) bool {
	if !hitWall {
		b.inCollision = false
		return false
	}
	if b.inCollision {
		return false
	}
	b.inCollision = true
	if b.size >= EvolutiveCap || b.size*EvolutiveGrowth > bounds.Room() {
		return false
	}
	b.setScale(b.scale * EvolutiveGrowth)
	b.clamp(bounds)
	return true
}

func (b *Ball) updateColor(dt float64) {
	if b.rainbow {
		b.hue = math.Mod(b.hue+dt*HueRate, 1)
		b.color = colorful.Hsv(b.hue*360, RainbowSat, 1)
		return
	}
	b.color = b.baseColor
}

func (b *Ball) speed() float64 { return math.Hypot(b.vx, b.vy) }

// BallView is the render state of one ball.
type BallView struct {
	ID      uint64
	Kind    Kind
	X, Y    float64
	VX, VY  float64
	Size    float64
	Scale   float64
	Rainbow bool
	Life    float64
	Color   color.RGBA
}

// CenterX and CenterY locate the middle of the ball.
func (v BallView) CenterX() float64 { return v.X + v.Size/2 }
func (v BallView) CenterY() float64 { return v.Y + v.Size/2 }
func (v BallView) Radius() float64  { return v.Size / 2 }

func (b *Ball) view() BallView {
	return BallView{
		ID:      b.id,
		Kind:    b.kind,
		X:       b.x,
		Y:       b.y,
		VX:      b.vx,
		VY:      b.vy,
		Size:    b.size,
		Scale:   b.scale,
		Rainbow: b.rainbow,
		Life:    b.life,
		Color:   toRGBA(b.color),
	}
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, bl := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}
