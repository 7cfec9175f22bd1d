package main

import (
	"errors"
	"testing"

	"snake-classic/config"
	"snake-classic/game"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTerminalWrapsScreenError(t *testing.T) {
	errNoTTY := errors.New("no tty")
	g := game.NewGame(game.Options{Width: 5, Height: 5, Logger: zerolog.Nop()})

	err := runTerminal(g, config.Config{}, zerolog.Nop(), func() (tcell.Screen, error) {
		return nil, errNoTTY
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errNoTTY)
	assert.Contains(t, err.Error(), "create screen")
}
