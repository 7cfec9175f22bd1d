package game

import (
	"fmt"
	"time"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// Options configures a new Game. Zero values fall back to the defaults in
// the types package.
type Options struct {
	Width    int
	Height   int
	CellSize int
	Rand     *rand.Rand
	Logger   zerolog.Logger
}

// Game is the single-player state machine. It is not safe for concurrent
// use: input handling and ticks must run on the same goroutine.
type Game struct {
	runID       string
	grid        types.Grid
	cellSize    int
	startTime   time.Time
	steps       int
	state       types.State
	snake       *entity.Snake
	food        types.Point
	hasFood     bool
	direction   types.Direction
	pending     types.Direction
	turnTaken   bool
	lastCrash   types.CollisionType
	collisions  *manager.CollisionManager
	foodManager *manager.FoodManager
	scores      *manager.StateManager
	log         zerolog.Logger
	now         func() time.Time
}

func NewGame(opts Options) *Game {
	if opts.Width <= 0 {
		opts.Width = types.DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = types.DefaultHeight
	}
	if opts.CellSize <= 0 {
		opts.CellSize = types.DefaultCellSize
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	grid := types.Grid{Width: opts.Width, Height: opts.Height}
	collisions := manager.NewCollisionManager(grid)

	g := &Game{
		grid:        grid,
		cellSize:    opts.CellSize,
		collisions:  collisions,
		foodManager: manager.NewFoodManager(grid, opts.Rand, collisions),
		scores:      manager.NewStateManager(),
		log:         opts.Logger.With().Str("component", "game").Logger(),
		now:         time.Now,
	}
	g.reset()
	return g
}

// reset puts a fresh one-cell snake at the board center heading right and
// places new food. The high score survives.
func (g *Game) reset() {
	g.runID = uuid.New().String()
	g.state = types.NotStarted
	g.snake = entity.NewSnake(g.grid.Center())
	g.direction = types.Right
	g.pending = types.Right
	g.turnTaken = false
	g.lastCrash = types.NoCollision
	g.steps = 0
	g.placeFood()
}

func (g *Game) placeFood() {
	g.food, g.hasFood = g.foodManager.GenerateFood(g.snake)
	if !g.hasFood {
		g.log.Info().Str("run", g.runID).Int("length", g.snake.Len()).Msg("board full, no food placed")
	}
}

// HandleInput applies one logical input. It reports whether the input was
// accepted; inputs that do not apply to the current state are ignored.
func (g *Game) HandleInput(in types.Input) bool {
	switch g.state {
	case types.NotStarted:
		if in != types.InputStart {
			return false
		}
		g.state = types.Running
		g.startTime = g.now()
		g.log.Info().Str("run", g.runID).Msg("game started")
		return true

	case types.GameOver:
		if in != types.InputRestart {
			return false
		}
		g.reset()
		g.log.Debug().Str("run", g.runID).Msg("game reset")
		return true

	case types.Running:
		dir, ok := in.Turn()
		if !ok {
			return false
		}
		return g.turn(dir)
	}
	return false
}

// turn queues dir for the next tick. A reversal of the active direction is
// dropped, and so is any turn after the first one accepted since the last
// tick.
func (g *Game) turn(dir types.Direction) bool {
	if dir == g.direction {
		return false
	}
	if dir.IsOpposite(g.direction) {
		g.log.Debug().Str("run", g.runID).Stringer("active", g.direction).Stringer("requested", dir).Msg("reversal ignored")
		return false
	}
	if g.turnTaken {
		g.log.Debug().Str("run", g.runID).Stringer("pending", g.pending).Stringer("requested", dir).Msg("turn already queued this tick")
		return false
	}
	g.pending = dir
	g.turnTaken = true
	return true
}

// Tick advances the game by one cell when running and does nothing
// otherwise.
func (g *Game) Tick() {
	if g.state != types.Running {
		return
	}
	g.steps++

	g.direction = g.pending
	g.turnTaken = false

	newHead := g.snake.GetHead().Add(g.direction.ToPoint())

	if g.hasFood && g.collisions.IsFoodCollision(newHead, g.food) {
		g.commit(newHead)
		g.placeFood()
		return
	}

	if crash := g.collisions.CheckCollision(newHead, g.snake); crash != types.NoCollision {
		g.gameOver(crash)
		return
	}

	g.commit(newHead)
	g.snake.RemoveTail()
}

func (g *Game) commit(head types.Point) {
	if !g.grid.Contains(head) {
		panic(fmt.Sprintf("snake head %v outside %dx%d board", head, g.grid.Width, g.grid.Height))
	}
	g.snake.Move(head)
}

func (g *Game) gameOver(crash types.CollisionType) {
	g.state = types.GameOver
	g.lastCrash = crash

	score := g.snake.Len()
	high := g.scores.RecordGame(score, g.startTime, g.now())

	g.log.Info().
		Str("run", g.runID).
		Int("score", score).
		Int("high_score", high).
		Int("steps", g.steps).
		Stringer("collision", crash).
		Msg("game over")
}

func (g *Game) State() types.State {
	return g.state
}

// Score is the current snake length.
func (g *Game) Score() int {
	return g.snake.Len()
}

func (g *Game) HighScore() int {
	return g.scores.GetHighScore()
}
