package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds command defaults loaded from a TOML file:
//
//	[maze]
//	width = 20
//	height = 10
//	algorithm = "dfs"
//	seed = 7
//
//	[search]
//	favorite = 1352
//	start = [1, 1]
//	goal = [31, 39]
//	size = 50
//	frame_ms = 60
type Config struct {
	Maze   MazeConfig   `toml:"maze"`
	Search SearchConfig `toml:"search"`
}

// MazeConfig configures the maze command.
type MazeConfig struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Algorithm string `toml:"algorithm"`
	Seed      int64  `toml:"seed"`
}

// SearchConfig configures the search command.
type SearchConfig struct {
	Favorite int    `toml:"favorite"`
	Start    [2]int `toml:"start"`
	Goal     [2]int `toml:"goal"`
	Size     int    `toml:"size"`
	FrameMS  int    `toml:"frame_ms"`
}

// DefaultConfig returns the built-in defaults: a 16×8 Prim maze and the
// worked example of the office puzzle.
func DefaultConfig() Config {
	return Config{
		Maze: MazeConfig{
			Width:     16,
			Height:    8,
			Algorithm: "prim",
			Seed:      1,
		},
		Search: SearchConfig{
			Favorite: 10,
			Start:    [2]int{1, 1},
			Goal:     [2]int{7, 4},
			Size:     12,
			FrameMS:  80,
		},
	}
}

// LoadConfig reads path over DefaultConfig; keys missing from the file keep
// their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
