// Package scores persists the best score reached for each grid size.
package scores

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Entry is the best result recorded for one grid size.
type Entry struct {
	Score    int       `yaml:"score"`
	Achieved time.Time `yaml:"achieved"`
}

// Table maps grid size to its best entry.
type Table struct {
	Best map[int]Entry `yaml:"best"`
}

// Load reads the score table from path. A missing file yields an
// empty table rather than an error.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Table{Best: make(map[int]Entry)}, nil
	}
	if err != nil {
		return nil, err
	}

	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse scores %s: %w", path, err)
	}
	if t.Best == nil {
		t.Best = make(map[int]Entry)
	}
	return &t, nil
}

// Record stores score for the given grid size if it beats the current
// best, reporting whether it did.
func (t *Table) Record(gridSize, score int) bool {
	best, ok := t.Best[gridSize]
	if ok && score <= best.Score {
		return false
	}
	t.Best[gridSize] = Entry{Score: score, Achieved: time.Now()}
	return true
}

// BestFor returns the best score for a grid size, or 0 if none is
// recorded.
func (t *Table) BestFor(gridSize int) int {
	return t.Best[gridSize].Score
}

// Save writes the table to path, creating parent directories as
// needed.
func (t *Table) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	data, err := yaml.Marshal(t)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
