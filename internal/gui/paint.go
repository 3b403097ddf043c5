package gui

import (
	"image/color"
)

// Painter is the drawing surface of a window backend. Coordinates are
// window pixels, y growing downward.
type Painter interface {
	Clear(c color.RGBA)
	Circle(cx, cy, r float64, c color.RGBA)
	Rect(r Rect, c color.RGBA)
	Text(s string, x, y float64, c color.RGBA)
}

var (
	colBar      = color.RGBA{26, 26, 26, 255}
	colButton   = color.RGBA{60, 60, 60, 255}
	colText     = color.RGBA{230, 230, 230, 255}
	colBanner   = color.RGBA{40, 40, 40, 255}
	colOverlay  = color.RGBA{0, 0, 0, 190}
	colPanel    = color.RGBA{35, 35, 45, 235}
	colDebugBtn = color.RGBA{70, 70, 95, 255}
)

const textInset = 8.0

// Options configure a desktop window.
type Options struct {
	Title     string
	Width     int
	Height    int
	BarHeight float64
	FPS       int
	// Sound, when set, is muted and unmuted by the m key.
	Sound Muter
}

// Paint draws one frame.
func (c *Controller) Paint(p Painter) {
	p.Clear(c.arena.Background())

	for _, b := range c.arena.Balls() {
		x, y := c.ToScreen(b.CenterX(), b.CenterY())
		p.Circle(x, y, b.Radius(), b.Color)
	}

	if banner := c.Banner(); banner != "" {
		p.Text(banner, textInset, textInset, colBanner)
	}

	if c.hideUI {
		return
	}

	l := c.layout
	p.Rect(l.BarRect(), colBar)
	for _, b := range l.Bar {
		label := b.Label
		if b.Action == ActionPause {
			label = c.PauseLabel()
		}
		p.Rect(b.Rect, colButton)
		p.Text(label, b.Rect.X+textInset, b.Rect.Y+textInset, colText)
	}
	p.Text(c.CountLabel(), l.Count.X+textInset, l.Count.Y+textInset, colText)
	if c.muted {
		p.Text("muted", l.Count.X+textInset, l.Count.Y+l.Count.H/2+textInset, colText)
	}

	if c.showDebug {
		p.Rect(l.Panel, colPanel)
		for _, b := range l.Debug {
			p.Rect(b.Rect, colDebugBtn)
			p.Text(b.Label, b.Rect.X+textInset, b.Rect.Y+textInset, colText)
		}
	}

	if c.showStats {
		p.Rect(Rect{0, 0, l.Width, l.Height}, colOverlay)
		y := l.Height / 4
		for _, line := range c.StatsLines() {
			p.Text(line, l.Width/2-100, y, colText)
			y += 28
		}
	}
}
