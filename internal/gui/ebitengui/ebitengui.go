package ebitengui

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/san-kum/ballpit/internal/arena"
	"github.com/san-kum/ballpit/internal/gui"
)

type ebitenPainter struct {
	screen *ebiten.Image
}

func (p ebitenPainter) Clear(c color.RGBA) { p.screen.Fill(c) }

func (p ebitenPainter) Circle(cx, cy, r float64, c color.RGBA) {
	vector.DrawFilledCircle(p.screen, float32(cx), float32(cy), float32(r), c, true)
}

func (p ebitenPainter) Rect(r gui.Rect, c color.RGBA) {
	vector.DrawFilledRect(p.screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// The debug font ignores color.
func (p ebitenPainter) Text(s string, x, y float64, _ color.RGBA) {
	ebitenutil.DebugPrintAt(p.screen, s, int(x), int(y))
}

type game struct {
	ctrl *gui.Controller
	bar  float64
	dt   float64
	w, h int
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, ch := range ebiten.AppendInputChars(nil) {
		g.ctrl.Key(ch)
	}

	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ctrl.Press(float64(mx), float64(my))
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.ctrl.Drag(float64(mx), float64(my))
	}

	pressed := make(map[ebiten.TouchID]bool)
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		pressed[id] = true
		tx, ty := ebiten.TouchPosition(id)
		g.ctrl.Press(float64(tx), float64(ty))
	}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		if !pressed[id] {
			tx, ty := ebiten.TouchPosition(id)
			g.ctrl.Drag(float64(tx), float64(ty))
		}
	}

	g.ctrl.Update(g.dt)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.ctrl.Paint(ebitenPainter{screen: screen})
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.ctrl.Resize(float64(g.w), float64(g.h), g.bar)
	}
	return outsideWidth, outsideHeight
}

// Run opens an ebiten window and blocks until it is closed.
func Run(a *arena.Arena, opts gui.Options) error {
	g := &game{
		ctrl: gui.NewController(a, float64(opts.Width), float64(opts.Height), opts.BarHeight),
		bar:  opts.BarHeight,
		dt:   1 / float64(opts.FPS),
		w:    opts.Width,
		h:    opts.Height,
	}

	g.ctrl.SetSound(opts.Sound)

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.FPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
