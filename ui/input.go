package ui

import (
	"snake-classic/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var turnKeys = map[int32]types.Input{
	rl.KeyUp:    types.InputTurnUp,
	rl.KeyW:     types.InputTurnUp,
	rl.KeyDown:  types.InputTurnDown,
	rl.KeyS:     types.InputTurnDown,
	rl.KeyLeft:  types.InputTurnLeft,
	rl.KeyA:     types.InputTurnLeft,
	rl.KeyRight: types.InputTurnRight,
	rl.KeyD:     types.InputTurnRight,
}

// KeyInput maps a raylib key code to the logical input for state.
func KeyInput(key int32, state types.State) types.Input {
	if key == rl.KeySpace {
		return types.ActionInput(state)
	}
	if in, ok := turnKeys[key]; ok {
		return in
	}
	return types.InputNone
}

// PressedKeys drains the keys pressed since the last frame, in press order.
func PressedKeys() []int32 {
	var keys []int32
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		keys = append(keys, key)
	}
	return keys
}
