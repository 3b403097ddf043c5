package arena

import (
	"math"
	"math/rand"
	"testing"
)

var testBounds = Bounds{Width: 800, Height: 600, Floor: 90}

func newTestBall(kind Kind, x, y, vx, vy, size float64) *Ball {
	return &Ball{
		kind:     kind,
		x:        x,
		y:        y,
		vx:       vx,
		vy:       vy,
		baseSize: size,
		scale:    1,
		size:     size,
	}
}

func TestBallMove_WallReflection(t *testing.T) {
	tests := []struct {
		name           string
		x, y, vx, vy   float64
		wantX, wantY   float64
		wantVXPositive bool
		wantVYPositive bool
	}{
		{"left wall", 5, 300, -600, 10, 0, 301, true, true},
		{"right wall", 760, 300, 600, 10, 760, 301, false, true},
		{"floor is the bar", 400, 95, 10, -600, 401, 90, true, true},
		{"top wall", 400, 555, 10, 600, 401, 560, true, false},
		{"left wall already outward", 5, 300, 600, 10, 65, 301, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBall(KindPlain, tt.x, tt.y, tt.vx, tt.vy, 40)
			b.move(testBounds, 0.1, 1)
			if b.x < 0 || b.x+b.size > testBounds.Width {
				t.Errorf("x out of bounds: %f", b.x)
			}
			if b.y < testBounds.Floor || b.y+b.size > testBounds.Height {
				t.Errorf("y out of bounds: %f", b.y)
			}
			if math.Abs(b.x-tt.wantX) > 1e-9 || math.Abs(b.y-tt.wantY) > 1e-9 {
				t.Errorf("position = (%f, %f), want (%f, %f)", b.x, b.y, tt.wantX, tt.wantY)
			}
			if (b.vx > 0) != tt.wantVXPositive {
				t.Errorf("vx = %f, want positive=%v", b.vx, tt.wantVXPositive)
			}
			if (b.vy > 0) != tt.wantVYPositive {
				t.Errorf("vy = %f, want positive=%v", b.vy, tt.wantVYPositive)
			}
		})
	}
}

func TestBallMove_SpeedMagnitudeKept(t *testing.T) {
	b := newTestBall(KindPlain, 1, 300, -150, 0, 30)
	b.move(testBounds, 0.1, 1)
	if b.vx != 150 {
		t.Errorf("expected vx 150 after reflection, got %f", b.vx)
	}
}

func TestBallMove_StaysInBounds(t *testing.T) {
	a := New(testBounds, rand.New(rand.NewSource(7)))
	for i := 0; i < 50; i++ {
		b := a.newBall(KindPlain, 100+float64(i*12), 200+float64(i*5), false, GiantScale)
		a.add(b)
	}
	for frame := 0; frame < 2000; frame++ {
		a.Tick(1.0 / 60)
		for _, v := range a.Balls() {
			if v.X < 0 || v.X+v.Size > testBounds.Width+1e-9 {
				t.Fatalf("frame %d: ball %d x=%f size=%f out of bounds", frame, v.ID, v.X, v.Size)
			}
			if v.Y < testBounds.Floor || v.Y+v.Size > testBounds.Height+1e-9 {
				t.Fatalf("frame %d: ball %d y=%f size=%f out of bounds", frame, v.ID, v.Y, v.Size)
			}
		}
	}
}

func TestBallSetScale_PreservesCenter(t *testing.T) {
	for _, f := range []float64{GiantScale, MiniScale, NormalScale, 1.3} {
		b := newTestBall(KindPlain, 200, 300, 0, 0, 42)
		cx, cy := b.center()
		b.setScale(f)
		nx, ny := b.center()
		if math.Abs(cx-nx) > 1e-9 || math.Abs(cy-ny) > 1e-9 {
			t.Errorf("scale %f: center moved from (%f, %f) to (%f, %f)", f, cx, cy, nx, ny)
		}
		if math.Abs(b.size-42*f) > 1e-9 {
			t.Errorf("scale %f: size = %f, want %f", f, b.size, 42*f)
		}
	}
}

func TestBallUpdateColor(t *testing.T) {
	b := newTestBall(KindPlain, 0, 0, 0, 0, 30)
	b.rainbow = true
	b.hue = 0.95
	b.updateColor(1)
	if math.Abs(b.hue-0.1) > 1e-9 {
		t.Errorf("hue should wrap to 0.1, got %f", b.hue)
	}

	b.rainbow = false
	b.baseColor.R, b.baseColor.G, b.baseColor.B = 0.5, 0.6, 0.7
	hue := b.hue
	b.updateColor(1)
	if b.color != b.baseColor {
		t.Errorf("static ball should render its base color")
	}
	if b.hue != hue {
		t.Errorf("static ball hue should not advance")
	}
}

func TestEvolutive_GrowsOncePerContact(t *testing.T) {
	b := newTestBall(KindEvolutive, 0, 300, 0, 0, 40)
	b.life = 1000

	for i := 0; i < 30; i++ {
		hit := b.move(testBounds, 1.0/60, 1)
		b.grow(testBounds, hit)
	}
	if math.Abs(b.scale-EvolutiveGrowth) > 1e-9 {
		t.Fatalf("expected a single growth while pressed to the wall, scale = %f", b.scale)
	}

	// leave the wall, then come back
	b.vx = 300
	hit := b.move(testBounds, 1.0/60, 1)
	b.grow(testBounds, hit)
	if b.inCollision {
		t.Fatal("inCollision should clear once off the wall")
	}
	b.vx = -3000
	hit = b.move(testBounds, 1.0/60, 1)
	b.grow(testBounds, hit)
	if math.Abs(b.scale-EvolutiveGrowth*EvolutiveGrowth) > 1e-9 {
		t.Errorf("expected a second growth on new contact, scale = %f", b.scale)
	}
}

func TestEvolutive_GrowthCap(t *testing.T) {
	b := newTestBall(KindEvolutive, 0, 90, 0, 0, 390)
	if !b.grow(Bounds{Width: 2000, Height: 2000}, true) {
		t.Fatal("ball under the cap should grow")
	}
	if b.size <= EvolutiveCap {
		t.Errorf("growth checks the size before growing, expected to pass the cap once, got %f", b.size)
	}

	b.inCollision = false
	size := b.size
	if b.grow(Bounds{Width: 2000, Height: 2000}, true) {
		t.Error("ball over the cap should not grow")
	}
	if b.size != size {
		t.Errorf("size changed from %f to %f", size, b.size)
	}
	if !b.inCollision {
		t.Error("contact should still be recorded at the cap")
	}
}

func TestEvolutive_GrowthStaysInBounds(t *testing.T) {
	b := newTestBall(KindEvolutive, 760, 300, 100, 0, 40)
	hit := b.move(testBounds, 1.0/60, 1)
	b.grow(testBounds, hit)
	if b.x+b.size > testBounds.Width+1e-9 {
		t.Errorf("grown ball pokes through the right wall: x=%f size=%f", b.x, b.size)
	}
}

func TestEvolutive_GrowthFitsSmallArena(t *testing.T) {
	// an 80x24 terminal
	small := Bounds{Width: 336, Height: 368, Floor: 32}
	a := New(small, rand.New(rand.NewSource(11)))
	b := a.newBall(KindEvolutive, 168, 200, true, NormalScale)
	b.life = 1000
	b.vx, b.vy = 400, 300
	a.add(b)

	for frame := 0; frame < 3000; frame++ {
		a.Tick(1.0 / 60)
		v := a.Balls()[0]
		if v.X < 0 || v.X+v.Size > small.Width+1e-9 || v.Y < small.Floor || v.Y+v.Size > small.Height+1e-9 {
			t.Fatalf("frame %d: x=%.1f y=%.1f size=%.1f outside %v", frame, v.X, v.Y, v.Size, small)
		}
	}
	if b.size*EvolutiveGrowth <= small.Room() {
		t.Errorf("ball stopped growing early at size %f", b.size)
	}
}

func TestEvolutive_RefusesGrowthPastRoom(t *testing.T) {
	b := newTestBall(KindEvolutive, 0, 32, 0, 0, 300)
	if b.grow(Bounds{Width: 336, Height: 368, Floor: 32}, true) {
		t.Fatal("growth to 390 should not fit a 336 wide arena")
	}
	if b.size != 300 {
		t.Errorf("size changed to %f", b.size)
	}
}
