package automation

import (
	"context"
	"testing"

	"github.com/san-kum/ballpit/internal/sim"
)

func TestAutoplay(t *testing.T) {
	a := newArena()
	s := sim.New(a)
	s.AddHook(Autoplay(0.5, 1, 9))

	cfg := sim.DefaultConfig()
	cfg.Duration = 2
	result, err := s.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// taps at 0, 0.5, 1 and 1.5; the only event lands at 1
	if result.Stats.TotalBalls != 4 {
		t.Errorf("expected 4 taps, got %d balls", result.Stats.TotalBalls)
	}
	if result.Stats.TotalEvents != 1 {
		t.Errorf("expected 1 event, got %d", result.Stats.TotalEvents)
	}
}

func TestAutoplayDisabled(t *testing.T) {
	a := newArena()
	hook := Autoplay(0, 0, 1)
	for i := 0; i < 100; i++ {
		hook(a, float64(i))
	}
	if a.Len() != 0 || a.Stats().TotalEvents != 0 {
		t.Error("disabled autoplay should do nothing")
	}
}

func TestAutoplayRespectsPause(t *testing.T) {
	a := newArena()
	a.SetPaused(true)
	hook := Autoplay(0.1, 0, 1)
	hook(a, 0)
	if a.Len() != 0 {
		t.Error("paused arena should not be tapped")
	}
}
