package game

import (
	"encoding/json"
	"fmt"
)

// Direction is a slide direction as understood by the game server.
// DirNone is a local sentinel meaning "no pending move" and is never
// sent over the wire.
type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
	DirNone  Direction = "none"
)

// Sendable reports whether d may appear in a perform_slide request.
func (d Direction) Sendable() bool {
	switch d {
	case DirUp, DirDown, DirLeft, DirRight:
		return true
	}
	return false
}

// SpawnOutcome explains what happened to tile spawning after a slide.
type SpawnOutcome string

const (
	SpawnNormal    SpawnOutcome = "normal"     // a tile spawned normally
	SpawnBoardFull SpawnOutcome = "board_full" // no room to spawn
	SpawnKill      SpawnOutcome = "spawn_kill" // spawn placed adjacent to a max-value tile
	SpawnFill      SpawnOutcome = "spawn_fill" // spawn filled the last empty cell
)

// Result is the terminal classification returned with every move response.
type Result string

const (
	ResultNormal   Result = "normal"
	ResultGameOver Result = "game_over"
)

// Config is the immutable game configuration sent once at creation.
type Config struct {
	GridSize            int     `json:"grid_size" yaml:"grid_size"`
	RootTileValue       int     `json:"root_tile_value" yaml:"root_tile_value"`
	SpawnTileCount      int     `json:"spawn_tile_count" yaml:"spawn_tile_count"`
	StartingTileCount   int     `json:"starting_tile_count" yaml:"starting_tile_count"`
	WinTileValue        int     `json:"win_tile_value" yaml:"win_tile_value"`
	MutationProbability float64 `json:"mutation_probability" yaml:"mutation_probability"`
	MutationAtStart     bool    `json:"mutation_at_start" yaml:"mutation_at_start"`
	SpawnKill           bool    `json:"spawn_kill" yaml:"spawn_kill"`
}

// Validate checks the field constraints the server expects.
func (c Config) Validate() error {
	if c.GridSize <= 0 {
		return fmt.Errorf("grid_size must be positive, got %d", c.GridSize)
	}
	if c.RootTileValue <= 0 {
		return fmt.Errorf("root_tile_value must be positive, got %d", c.RootTileValue)
	}
	if c.WinTileValue <= 0 {
		return fmt.Errorf("win_tile_value must be positive, got %d", c.WinTileValue)
	}
	if c.SpawnTileCount < 0 {
		return fmt.Errorf("spawn_tile_count must not be negative, got %d", c.SpawnTileCount)
	}
	if c.StartingTileCount < 0 {
		return fmt.Errorf("starting_tile_count must not be negative, got %d", c.StartingTileCount)
	}
	if c.MutationProbability < 0 || c.MutationProbability > 1 {
		return fmt.Errorf("mutation_probability must be in [0,1], got %g", c.MutationProbability)
	}
	return nil
}

// SpawnLocation is a (row, col) grid coordinate. The server encodes it
// as a two-element JSON array.
type SpawnLocation struct {
	Row int
	Col int
}

func (l *SpawnLocation) UnmarshalJSON(data []byte) error {
	var v [2]int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	l.Row = v[0]
	l.Col = v[1]
	return nil
}

func (l SpawnLocation) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{l.Row, l.Col})
}

// State is the authoritative game state as returned by the server.
// The client replaces it wholesale after every move and never patches
// it locally.
type State struct {
	Config               Config          `json:"config" yaml:"config"`
	Grid                 [][]int         `json:"grid" yaml:"grid"`
	Score                int             `json:"score" yaml:"score"`
	MovementMatrix       [][]int         `json:"movement_matrix" yaml:"movement_matrix"`
	LatestSpawnResult    SpawnOutcome    `json:"latest_spawn_result" yaml:"latest_spawn_result"`
	LatestSpawnLocations []SpawnLocation `json:"latest_spawn_locations" yaml:"latest_spawn_locations"`
}
