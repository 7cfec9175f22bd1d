package ui

import (
	"time"

	"snake-classic/game"
	"snake-classic/game/types"
	"snake-classic/render"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

const targetFPS = 60

// Options configures the desktop window.
type Options struct {
	Title        string
	TickInterval time.Duration
	Logger       zerolog.Logger
}

// Run opens a window sized to the board and drives g until the window is
// closed. Input, ticks and drawing all happen on the calling goroutine, which
// must be the main OS thread.
func Run(g *game.Game, opts Options) {
	snap := g.Snapshot()
	width := snap.Grid.Width * snap.CellSize
	height := snap.Grid.Height*snap.CellSize + render.HUDHeight

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(width), int32(height), opts.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(targetFPS)

	opts.Logger.Info().
		Int("width", width).
		Int("height", height).
		Dur("tick", opts.TickInterval).
		Msg("window opened")

	renderer := NewRenderer()
	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		for _, key := range PressedKeys() {
			if in := KeyInput(key, g.State()); in != types.InputNone {
				g.HandleInput(in)
			}
		}

		// Update game state at fixed interval
		if elapsed := time.Since(lastUpdate); elapsed >= opts.TickInterval {
			g.Tick()
			lastUpdate = lastUpdate.Add(opts.TickInterval)
			if elapsed >= 2*opts.TickInterval {
				lastUpdate = time.Now()
			}
		}

		renderer.Draw(g.Snapshot())
	}

	opts.Logger.Info().Msg("window closed")
}
