package gui

import (
	"fmt"

	"github.com/san-kum/ballpit/internal/arena"
)

type Action int

const (
	ActionNone Action = iota
	ActionEvent
	ActionPause
	ActionReset
	ActionStats
	ActionDebug
	ActionHideUI
	ActionRainbowBall
	ActionGrowingBall
	ActionCollidableBall
	ActionGiantBall
	ActionSpeed
	ActionSlowed
	ActionRainbow
	ActionGiant
	ActionMini
	ActionMute
)

// Muter silences the sound effects. *audio.Player satisfies it.
type Muter interface {
	SetMuted(bool)
}

// Rect is a screen rectangle, y growing downward.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

type Button struct {
	Label  string
	Rect   Rect
	Action Action
}

const (
	buttonPad    = 10.0
	buttonHeight = 50.0
	debugCols    = 2
)

// Layout places the control bar along the bottom of the window and the
// debug panel in its middle.
type Layout struct {
	Width, Height, BarHeight float64

	Bar   []Button
	Count Rect
	Debug []Button
	Panel Rect
}

func NewLayout(w, h, bar float64) Layout {
	l := Layout{Width: w, Height: h, BarHeight: bar}

	top := h - bar
	bh := min(buttonHeight, bar-2*buttonPad)
	by := top + (bar-bh)/2
	x := buttonPad
	for _, b := range []struct {
		label string
		w     float64
		a     Action
	}{
		{"Event", 100, ActionEvent},
		{"Pause", 100, ActionPause},
		{"Reset", 100, ActionReset},
	} {
		l.Bar = append(l.Bar, Button{Label: b.label, Rect: Rect{x, by, b.w, bh}, Action: b.a})
		x += b.w + buttonPad
	}
	l.Count = Rect{x, by, 140, bh}

	small := bh
	l.Bar = append(l.Bar,
		Button{Label: "!", Rect: Rect{w - 2*(small+buttonPad), by, small, bh}, Action: ActionDebug},
		Button{Label: "?", Rect: Rect{w - (small + buttonPad), by, small, bh}, Action: ActionStats},
	)

	debug := []struct {
		label string
		a     Action
	}{
		{"Rainbow ball", ActionRainbowBall},
		{"Growing ball", ActionGrowingBall},
		{"Collidable ball", ActionCollidableBall},
		{"Giant ball", ActionGiantBall},
		{"SPEED", ActionSpeed},
		{"SLOWED", ActionSlowed},
		{"RAINBOW", ActionRainbow},
		{"GIANT", ActionGiant},
		{"MINI", ActionMini},
		{"Hide UI", ActionHideUI},
	}
	cellW, cellH := 180.0, 44.0
	rows := (len(debug) + debugCols - 1) / debugCols
	pw := debugCols*cellW + (debugCols+1)*buttonPad
	ph := float64(rows)*cellH + float64(rows+1)*buttonPad
	l.Panel = Rect{(w - pw) / 2, (top - ph) / 2, pw, ph}
	for i, d := range debug {
		col, row := i%debugCols, i/debugCols
		r := Rect{
			X: l.Panel.X + buttonPad + float64(col)*(cellW+buttonPad),
			Y: l.Panel.Y + buttonPad + float64(row)*(cellH+buttonPad),
			W: cellW,
			H: cellH,
		}
		l.Debug = append(l.Debug, Button{Label: d.label, Rect: r, Action: d.a})
	}
	return l
}

// BarRect is the control bar itself.
func (l Layout) BarRect() Rect { return Rect{0, l.Height - l.BarHeight, l.Width, l.BarHeight} }

func hit(buttons []Button, x, y float64) Action {
	for _, b := range buttons {
		if b.Rect.Contains(x, y) {
			return b.Action
		}
	}
	return ActionNone
}

// Controller turns pointer and key input into arena calls. Both window
// backends share it, and it never draws.
type Controller struct {
	arena  *arena.Arena
	layout Layout

	showStats   bool
	statsPaused bool
	showDebug   bool
	debugPaused bool
	hideUI      bool

	sound Muter
	muted bool
}

func NewController(a *arena.Arena, w, h, bar float64) *Controller {
	c := &Controller{arena: a}
	c.Resize(w, h, bar)
	return c
}

func (c *Controller) Arena() *arena.Arena { return c.arena }
func (c *Controller) Layout() Layout      { return c.layout }
func (c *Controller) ShowStats() bool     { return c.showStats }
func (c *Controller) ShowDebug() bool     { return c.showDebug }
func (c *Controller) HideUI() bool        { return c.hideUI }
func (c *Controller) Muted() bool         { return c.muted }

// SetSound attaches the effects player the mute key drives.
func (c *Controller) SetSound(m Muter) { c.sound = m }

// Resize rebuilds the layout and moves the arena walls. The bar height is
// the arena floor.
func (c *Controller) Resize(w, h, bar float64) {
	c.layout = NewLayout(w, h, bar)
	c.arena.Resize(arena.Bounds{Width: w, Height: h, Floor: bar})
}

// ToArena maps a window point to arena space.
func (c *Controller) ToArena(x, y float64) (float64, float64) {
	return x, c.layout.Height - y
}

// ToScreen maps an arena point to the window.
func (c *Controller) ToScreen(x, y float64) (float64, float64) {
	return x, c.layout.Height - y
}

// Press handles a pointer going down at window point (x, y).
func (c *Controller) Press(x, y float64) {
	if c.showStats {
		c.Do(ActionStats)
		return
	}
	if c.hideUI {
		if c.layout.BarRect().Contains(x, y) {
			c.hideUI = false
			return
		}
		c.spawn(x, y)
		return
	}
	if c.showDebug {
		if c.layout.Panel.Contains(x, y) {
			c.Do(hit(c.layout.Debug, x, y))
			return
		}
		c.setDebug(false)
		return
	}
	if a := hit(c.layout.Bar, x, y); a != ActionNone {
		c.Do(a)
		return
	}
	c.spawn(x, y)
}

// Drag handles a held pointer moving over (x, y). Open panels swallow it.
func (c *Controller) Drag(x, y float64) {
	if c.showStats || c.showDebug {
		return
	}
	c.spawn(x, y)
}

func (c *Controller) spawn(x, y float64) {
	if c.arena.Paused() {
		return
	}
	ax, ay := c.ToArena(x, y)
	if c.arena.Bounds().Contains(ax, ay) {
		c.arena.CreateBallAt(ax, ay)
	}
}

var keyActions = map[rune]Action{
	' ': ActionPause,
	'p': ActionPause,
	'r': ActionReset,
	'e': ActionEvent,
	'?': ActionStats,
	'!': ActionDebug,
	'h': ActionHideUI,
	'a': ActionRainbowBall,
	'g': ActionGrowingBall,
	'c': ActionCollidableBall,
	'b': ActionGiantBall,
	'1': ActionSpeed,
	'2': ActionSlowed,
	'3': ActionRainbow,
	'4': ActionGiant,
	'5': ActionMini,
	'm': ActionMute,
}

// Key handles a typed character.
func (c *Controller) Key(r rune) {
	c.Do(keyActions[r])
}

var forced = map[Action]arena.Event{
	ActionSpeed:   arena.EventSpeed,
	ActionSlowed:  arena.EventSlowed,
	ActionRainbow: arena.EventRainbow,
	ActionGiant:   arena.EventGiant,
	ActionMini:    arena.EventMini,
}

var specific = map[Action]arena.Variant{
	ActionRainbowBall:    arena.VariantRainbow,
	ActionGrowingBall:    arena.VariantGrowing,
	ActionCollidableBall: arena.VariantCollidable,
	ActionGiantBall:      arena.VariantGiant,
}

func (c *Controller) Do(a Action) {
	if e, ok := forced[a]; ok {
		_ = c.arena.ForceEvent(e)
		return
	}
	if v, ok := specific[a]; ok {
		_, _ = c.arena.CreateSpecificBall(v)
		return
	}

	switch a {
	case ActionEvent:
		c.arena.RandomEvent()
	case ActionPause:
		c.arena.TogglePause()
	case ActionReset:
		c.arena.Reset()
	case ActionStats:
		c.showStats = !c.showStats
		c.panelPause(c.showStats, &c.statsPaused)
	case ActionDebug:
		c.setDebug(!c.showDebug)
	case ActionHideUI:
		c.hideUI = !c.hideUI
		c.setDebug(false)
	case ActionMute:
		c.muted = !c.muted
		if c.sound != nil {
			c.sound.SetMuted(c.muted)
		}
	}
}

func (c *Controller) setDebug(open bool) {
	if c.showDebug == open {
		return
	}
	c.showDebug = open
	c.panelPause(open, &c.debugPaused)
}

// panelPause pauses the arena while a panel is open. Closing resumes only
// if opening was what paused it.
func (c *Controller) panelPause(open bool, paused *bool) {
	if open {
		*paused = !c.arena.Paused()
		c.arena.SetPaused(true)
		return
	}
	if *paused {
		c.arena.SetPaused(false)
	}
	*paused = false
}

// Update advances the arena one frame.
func (c *Controller) Update(dt float64) { c.arena.Tick(dt) }

// PauseLabel is the text of the pause button.
func (c *Controller) PauseLabel() string {
	if c.arena.Paused() {
		return "Resume"
	}
	return "Pause"
}

func (c *Controller) CountLabel() string {
	return fmt.Sprintf("Balls: %d", c.arena.Len())
}

func (c *Controller) Banner() string { return c.arena.ActiveEvent().Label() }

func (c *Controller) StatsLines() []string { return c.arena.Stats().Lines() }
