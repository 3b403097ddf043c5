package automation

import (
	"math/rand"

	"github.com/san-kum/ballpit/internal/arena"
	"github.com/san-kum/ballpit/internal/sim"
)

// Autoplay taps a random point of the play area every tapEvery seconds and
// fires a random event every eventEvery seconds. A non-positive interval
// disables that half.
func Autoplay(tapEvery, eventEvery float64, seed int64) sim.Hook {
	rng := rand.New(rand.NewSource(seed))
	nextTap, nextEvent := 0.0, eventEvery

	return func(a *arena.Arena, t float64) {
		if a.Paused() {
			return
		}
		b := a.Bounds()
		for tapEvery > 0 && t+1e-9 >= nextTap {
			x := rng.Float64() * b.Width
			y := b.Floor + rng.Float64()*(b.Height-b.Floor)
			a.CreateBallAt(x, y)
			nextTap += tapEvery
		}
		for eventEvery > 0 && t+1e-9 >= nextEvent {
			a.RandomEvent()
			nextEvent += eventEvery
		}
	}
}
