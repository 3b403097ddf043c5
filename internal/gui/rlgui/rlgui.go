package rlgui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/ballpit/internal/arena"
	"github.com/san-kum/ballpit/internal/gui"
)

const fontSize = 20

type raylibPainter struct{}

func rlColor(c color.RGBA) rl.Color { return rl.NewColor(c.R, c.G, c.B, c.A) }

func (raylibPainter) Clear(c color.RGBA) { rl.ClearBackground(rlColor(c)) }

func (raylibPainter) Circle(cx, cy, r float64, c color.RGBA) {
	rl.DrawCircle(int32(cx), int32(cy), float32(r), rlColor(c))
}

func (raylibPainter) Rect(r gui.Rect, c color.RGBA) {
	rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), rlColor(c))
}

func (raylibPainter) Text(s string, x, y float64, c color.RGBA) {
	rl.DrawText(s, int32(x), int32(y), fontSize, rlColor(c))
}

// Run opens a raylib window and blocks until it is closed.
func Run(a *arena.Arena, opts gui.Options) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(opts.FPS))
	rl.SetExitKey(0)

	ctrl := gui.NewController(a, float64(opts.Width), float64(opts.Height), opts.BarHeight)
	ctrl.SetSound(opts.Sound)
	dt := 1 / float64(opts.FPS)

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
			break
		}
		if rl.IsWindowResized() {
			ctrl.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()), opts.BarHeight)
		}

		for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
			ctrl.Key(rune(ch))
		}

		mouse := rl.GetMousePosition()
		mx, my := float64(mouse.X), float64(mouse.Y)
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			ctrl.Press(mx, my)
		} else if rl.IsMouseButtonDown(rl.MouseLeftButton) {
			ctrl.Drag(mx, my)
		}

		ctrl.Update(dt)

		rl.BeginDrawing()
		ctrl.Paint(raylibPainter{})
		rl.EndDrawing()
	}
}
