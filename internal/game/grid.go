package game

import "fmt"

// NewFlatGrid returns a flat grid of size*size zeros.
func NewFlatGrid(size int) ([]int, error) {
	if size <= 0 {
		return nil, fmt.Errorf("grid size must be positive, got %d", size)
	}
	return make([]int, size*size), nil
}

// Reshape turns a flat grid into size rows of size cells each. The
// rows alias contiguous slices of flat.
func Reshape(flat []int, size int) ([][]int, error) {
	if size <= 0 {
		return nil, fmt.Errorf("grid size must be positive, got %d", size)
	}
	if len(flat) != size*size {
		return nil, fmt.Errorf("flat grid has %d cells, want %d for size %d", len(flat), size*size, size)
	}
	rows := make([][]int, size)
	for i := range rows {
		rows[i] = flat[i*size : (i+1)*size]
	}
	return rows, nil
}

// PlaceholderGrid is the all-zero matrix displayed before a game
// starts. The caller guarantees a positive size.
func PlaceholderGrid(size int) [][]int {
	flat, err := NewFlatGrid(size)
	if err != nil {
		panic(err)
	}
	rows, err := Reshape(flat, size)
	if err != nil {
		panic(err)
	}
	return rows
}
