package types

// State is the phase of the game state machine.
type State int

const (
	NotStarted State = iota
	Running
	GameOver
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Running:
		return "running"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Input is a logical input event, independent of the keyboard backend.
type Input int

const (
	InputNone Input = iota
	InputStart
	InputRestart
	InputTurnUp
	InputTurnDown
	InputTurnLeft
	InputTurnRight
)

// Turn returns the direction requested by a turn input.
func (in Input) Turn() (Direction, bool) {
	switch in {
	case InputTurnUp:
		return Up, true
	case InputTurnDown:
		return Down, true
	case InputTurnLeft:
		return Left, true
	case InputTurnRight:
		return Right, true
	}
	return 0, false
}

func (in Input) String() string {
	switch in {
	case InputStart:
		return "start"
	case InputRestart:
		return "restart"
	case InputTurnUp:
		return "turn_up"
	case InputTurnDown:
		return "turn_down"
	case InputTurnLeft:
		return "turn_left"
	case InputTurnRight:
		return "turn_right"
	default:
		return "none"
	}
}

// ActionInput maps the single action key (space bar) to the input that is
// meaningful in state s.
func ActionInput(s State) Input {
	switch s {
	case NotStarted:
		return InputStart
	case GameOver:
		return InputRestart
	default:
		return InputNone
	}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}
