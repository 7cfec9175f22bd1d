package ui

import (
	"snake-classic/game"
	"snake-classic/game/types"
	"snake-classic/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10
	lineSpacing   = 6
)

type Renderer struct {
	screenWidth  int32
	screenHeight int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func (r *Renderer) Draw(s game.Snapshot) {
	r.UpdateDimensions()
	frame := render.BuildFrame(s, int(r.screenWidth), int(r.screenHeight)-render.HUDHeight)

	rl.BeginDrawing()
	rl.ClearBackground(render.Background)

	if frame.ShowBoard {
		l := frame.Layout
		rl.DrawRectangleLines(int32(l.OffsetX-1), int32(l.OffsetY-1), int32(l.Width+2), int32(l.Height+2), rl.Gray)

		for _, t := range frame.Tiles {
			rl.DrawRectangle(int32(t.X), int32(t.Y), int32(t.Size), int32(t.Size), t.Color)
		}
		if len(s.Snake) > 0 && s.State == types.Running {
			r.drawDirection(l, s.Head(), s.Direction)
		}

		rl.DrawText(frame.HUD, borderPadding, r.screenHeight-render.HUDHeight+5, render.HUDFontSize, render.HUDColor)
	}

	r.drawMessages(frame.Messages)
	rl.EndDrawing()
}

// drawMessages centers each line horizontally, starting a third of the way
// down the window.
func (r *Renderer) drawMessages(lines []string) {
	y := r.screenHeight / 3
	for _, line := range lines {
		width := rl.MeasureText(line, render.MessageFontSize)
		rl.DrawText(line, (r.screenWidth-width)/2, y, render.MessageFontSize, render.TextColor)
		y += render.MessageFontSize + lineSpacing
	}
}

// drawDirection draws a small arrow on the head pointing where the snake goes.
func (r *Renderer) drawDirection(l render.Layout, head types.Point, direction types.Direction) {
	x, y := l.CellOrigin(head)
	headX, headY := float32(x), float32(y)
	size := float32(l.CellSize)
	half := size / 2

	switch direction {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: headX + size, Y: headY + half},
			rl.Vector2{X: headX + half, Y: headY},
			rl.Vector2{X: headX + half, Y: headY + size},
			rl.Yellow)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: headX, Y: headY + half},
			rl.Vector2{X: headX + half, Y: headY + size},
			rl.Vector2{X: headX + half, Y: headY},
			rl.Yellow)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: headX + half, Y: headY + size},
			rl.Vector2{X: headX + size, Y: headY + half},
			rl.Vector2{X: headX, Y: headY + half},
			rl.Yellow)
	case types.Up:
		rl.DrawTriangle(
			rl.Vector2{X: headX + half, Y: headY},
			rl.Vector2{X: headX, Y: headY + half},
			rl.Vector2{X: headX + size, Y: headY + half},
			rl.Yellow)
	}
}
