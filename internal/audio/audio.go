// Package audio plays short synthesized effects for arena notices.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/san-kum/ballpit/internal/arena"
)

const (
	SampleRate = beep.SampleRate(44100)

	// spawn blips closer together than this are dropped, so a drag does
	// not turn into a buzz.
	spawnGap = 0.05
)

// Sound builds the effect for one notice, or nil for silence.
func Sound(n arena.Notice, rate beep.SampleRate) beep.Streamer {
	switch n.Kind {
	case arena.NoticeSpawn:
		if n.Ball.Kind == arena.KindFragment {
			return nil
		}
		// smaller balls sound higher
		f := math.Min(1600, math.Max(200, 24000/math.Max(n.Ball.Size, 1)))
		d := 60 * time.Millisecond
		return newVolume(NewEnvelope(NewOscillator(f, d, WaveSine, rate), d, 5*time.Millisecond, 40*time.Millisecond, rate), 0.3)

	case arena.NoticeGrow:
		d := 80 * time.Millisecond
		return newVolume(NewEnvelope(NewSweep(220, 440, d, WaveSquare, rate), d, 5*time.Millisecond, 50*time.Millisecond, rate), 0.15)

	case arena.NoticeExplode:
		d := 350 * time.Millisecond
		noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 2*time.Millisecond, 300*time.Millisecond, rate)
		thump := NewEnvelope(NewSweep(160, 40, d, WaveSine, rate), d, 2*time.Millisecond, 250*time.Millisecond, rate)
		return newVolume(beep.Mix(newVolume(noise, 0.4), newVolume(thump, 0.8)), 0.6)

	case arena.NoticeEventStart:
		d := 90 * time.Millisecond
		n1 := NewEnvelope(NewOscillator(523.25, d, WaveSine, rate), d, 5*time.Millisecond, 40*time.Millisecond, rate)
		n2 := NewEnvelope(NewOscillator(783.99, d, WaveSine, rate), d, 5*time.Millisecond, 60*time.Millisecond, rate)
		return newVolume(beep.Seq(n1, n2), 0.4)

	case arena.NoticeEventEnd:
		d := 120 * time.Millisecond
		return newVolume(NewEnvelope(NewSweep(660, 330, d, WaveSine, rate), d, 5*time.Millisecond, 80*time.Millisecond, rate), 0.3)

	case arena.NoticeReset:
		d := 200 * time.Millisecond
		return newVolume(NewEnvelope(NewSweep(440, 110, d, WaveSquare, rate), d, 5*time.Millisecond, 150*time.Millisecond, rate), 0.15)
	}
	return nil
}

// Player turns arena notices into sound. Attach it with
// arena.AddObserver.
type Player struct {
	mu        sync.Mutex
	rate      beep.SampleRate
	mixer     *beep.Mixer
	play      func(beep.Streamer)
	lastSpawn float64
	muted     bool
}

// NewPlayer opens the speaker.
func NewPlayer() (*Player, error) {
	p := &Player{rate: SampleRate, mixer: &beep.Mixer{}, lastSpawn: math.Inf(-1)}
	if err := speaker.Init(p.rate, p.rate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	speaker.Play(p.mixer)
	p.play = func(s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	return p, nil
}

// newPlayerWith sends streams to play instead of the speaker.
func newPlayerWith(play func(beep.Streamer)) *Player {
	return &Player{rate: SampleRate, play: play, lastSpawn: math.Inf(-1)}
}

func (p *Player) SetMuted(m bool) {
	p.mu.Lock()
	p.muted = m
	p.mu.Unlock()
}

func (p *Player) OnNotice(n arena.Notice) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted {
		return
	}
	if n.Kind == arena.NoticeSpawn && n.Ball.Kind != arena.KindFragment {
		if n.Time-p.lastSpawn < spawnGap {
			return
		}
		p.lastSpawn = n.Time
	}

	if s := Sound(n, p.rate); s != nil {
		p.play(s)
	}
}

// Close silences everything still playing.
func (p *Player) Close() {
	if p.mixer == nil {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}
