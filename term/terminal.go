// Package term runs the game in a terminal through tcell. Each board cell is
// drawn two columns wide so the board looks roughly square.
package term

import (
	"context"
	"image/color"
	"time"

	"snake-classic/game"
	"snake-classic/game/types"
	"snake-classic/render"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

const cellColumns = 2

// App binds a game to a tcell screen.
type App struct {
	screen   tcell.Screen
	game     *game.Game
	interval time.Duration
	log      zerolog.Logger
}

func NewApp(screen tcell.Screen, g *game.Game, interval time.Duration, logger zerolog.Logger) *App {
	return &App{
		screen:   screen,
		game:     g,
		interval: interval,
		log:      logger.With().Str("component", "term").Logger(),
	}
}

// Run polls terminal events on a helper goroutine and serializes them with
// game ticks on the calling goroutine. It returns when the player quits or
// ctx is done. The caller owns the screen and finalizes it.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			a.log.Info().Msg("context done, leaving terminal loop")
			return nil
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				a.screen.Sync()
			case *tcell.EventKey:
				if isQuit(e) {
					a.log.Info().Msg("quit requested")
					return nil
				}
				a.handleKey(e)
			}
			a.draw()
		case <-ticker.C:
			a.game.Tick()
			a.draw()
		}
	}
}

func isQuit(e *tcell.EventKey) bool {
	if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC {
		return true
	}
	return e.Key() == tcell.KeyRune && (e.Rune() == 'q' || e.Rune() == 'Q')
}

// KeyInput maps a terminal key event to the logical input for state.
func KeyInput(e *tcell.EventKey, state types.State) types.Input {
	switch e.Key() {
	case tcell.KeyUp:
		return types.InputTurnUp
	case tcell.KeyDown:
		return types.InputTurnDown
	case tcell.KeyLeft:
		return types.InputTurnLeft
	case tcell.KeyRight:
		return types.InputTurnRight
	case tcell.KeyRune:
		switch e.Rune() {
		case ' ':
			return types.ActionInput(state)
		case 'w', 'W':
			return types.InputTurnUp
		case 's', 'S':
			return types.InputTurnDown
		case 'a', 'A':
			return types.InputTurnLeft
		case 'd', 'D':
			return types.InputTurnRight
		}
	}
	return types.InputNone
}

func (a *App) handleKey(e *tcell.EventKey) {
	if in := KeyInput(e, a.game.State()); in != types.InputNone {
		a.game.HandleInput(in)
	}
}

func (a *App) draw() {
	s := a.game.Snapshot()
	width, height := a.screen.Size()

	base := tcell.StyleDefault.Background(toColor(render.Background))
	a.screen.SetStyle(base)
	a.screen.Clear()

	// One terminal row per cell and cellColumns columns per cell; the last
	// row holds the HUD.
	s.CellSize = 1
	frame := render.BuildFrame(s, width/cellColumns, height-1)

	if frame.ShowBoard {
		l := frame.Layout
		border := base.Foreground(tcell.ColorGray)
		drawBox(a.screen, l.OffsetX*cellColumns-1, l.OffsetY-1, l.Width*cellColumns, l.Height, border)

		for _, t := range frame.Tiles {
			st := base.Background(toColor(t.Color))
			a.screen.SetContent(t.X*cellColumns, t.Y, ' ', nil, st)
			a.screen.SetContent(t.X*cellColumns+1, t.Y, ' ', nil, st)
		}
		drawText(a.screen, 0, height-1, frame.HUD, base.Foreground(toColor(render.HUDColor)))
	}

	text := base.Foreground(toColor(render.TextColor)).Bold(true)
	y := height / 3
	for _, line := range frame.Messages {
		drawCentered(a.screen, width/2, y, line, text)
		y++
	}

	a.screen.Show()
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, st)
	}
}

func drawCentered(s tcell.Screen, cx, cy int, text string, st tcell.Style) {
	x := cx - len([]rune(text))/2
	drawText(s, x, cy, text, st)
}

// drawBox outlines the rectangle whose interior starts at (x+1, y+1) and
// spans w columns and h rows.
func drawBox(s tcell.Screen, x, y, w, h int, st tcell.Style) {
	for i := 1; i <= w; i++ {
		s.SetContent(x+i, y, tcell.RuneHLine, nil, st)
		s.SetContent(x+i, y+h+1, tcell.RuneHLine, nil, st)
	}
	for j := 1; j <= h; j++ {
		s.SetContent(x, y+j, tcell.RuneVLine, nil, st)
		s.SetContent(x+w+1, y+j, tcell.RuneVLine, nil, st)
	}
	s.SetContent(x, y, tcell.RuneULCorner, nil, st)
	s.SetContent(x+w+1, y, tcell.RuneURCorner, nil, st)
	s.SetContent(x, y+h+1, tcell.RuneLLCorner, nil, st)
	s.SetContent(x+w+1, y+h+1, tcell.RuneLRCorner, nil, st)
}
