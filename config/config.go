package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"snake-classic/game/types"

	"github.com/joho/godotenv"
)

// Frontends that main knows how to start.
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

// Config holds the application's configuration values.
type Config struct {
	BoardWidth   int           // Board width in cells
	BoardHeight  int           // Board height in cells
	CellSize     int           // Pixel size of one cell in the window frontend
	TickInterval time.Duration // Time between two game ticks
	Frontend     string        // "window" (raylib) or "terminal" (tcell)
	WindowTitle  string        // Title of the raylib window
	LogLevel     string        // zerolog level name
	LogFile      string        // Optional log destination; stderr when empty
}

// Load reads the configuration from the environment, after loading a .env
// file when one is present.
func Load() (Config, error) {
	// A missing .env file is the normal case outside development.
	_ = godotenv.Load()
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	var err error
	cfg := Config{
		Frontend:    getEnvWithDefault(lookup, "SNAKE_FRONTEND", FrontendWindow),
		WindowTitle: getEnvWithDefault(lookup, "SNAKE_WINDOW_TITLE", "Snake"),
		LogLevel:    getEnvWithDefault(lookup, "LOG_LEVEL", "info"),
		LogFile:     getEnvWithDefault(lookup, "LOG_FILE", ""),
	}

	if cfg.BoardWidth, err = getEnvAsInt(lookup, "SNAKE_BOARD_WIDTH", types.DefaultWidth); err != nil {
		return Config{}, err
	}
	if cfg.BoardHeight, err = getEnvAsInt(lookup, "SNAKE_BOARD_HEIGHT", types.DefaultHeight); err != nil {
		return Config{}, err
	}
	if cfg.CellSize, err = getEnvAsInt(lookup, "SNAKE_CELL_SIZE", types.DefaultCellSize); err != nil {
		return Config{}, err
	}
	tickMS, err := getEnvAsInt(lookup, "SNAKE_TICK_MS", 1000/types.TicksPerSecond)
	if err != nil {
		return Config{}, err
	}
	cfg.TickInterval = time.Duration(tickMS) * time.Millisecond

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the game cannot run with.
func (c Config) Validate() error {
	if c.BoardWidth < 2 || c.BoardHeight < 2 {
		return fmt.Errorf("board must be at least 2x2 cells, got %dx%d", c.BoardWidth, c.BoardHeight)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.TickInterval)
	}
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}
	return nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(lookup func(string) (string, bool), key, defaultValue string) string {
	if value, exists := lookup(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable, falling back to defaultValue when unset.
func getEnvAsInt(lookup func(string) (string, bool), key string, defaultValue int) (int, error) {
	valueStr, exists := lookup(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}
