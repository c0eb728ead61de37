package game

import "testing"

func TestNewFlatGrid(t *testing.T) {
	for _, size := range []int{1, 2, 3, 4, 5, 8, 16} {
		flat, err := NewFlatGrid(size)
		if err != nil {
			t.Fatalf("NewFlatGrid(%d): %v", size, err)
		}
		if len(flat) != size*size {
			t.Errorf("NewFlatGrid(%d) has %d cells, want %d", size, len(flat), size*size)
		}
		for i, v := range flat {
			if v != 0 {
				t.Errorf("NewFlatGrid(%d)[%d] = %d, want 0", size, i, v)
			}
		}
	}
}

func TestNewFlatGridRejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -1, -4} {
		if _, err := NewFlatGrid(size); err == nil {
			t.Errorf("NewFlatGrid(%d) succeeded, want error", size)
		}
	}
}

func TestReshapeRoundTrip(t *testing.T) {
	for _, size := range []int{1, 2, 4, 7} {
		flat, err := NewFlatGrid(size)
		if err != nil {
			t.Fatalf("NewFlatGrid(%d): %v", size, err)
		}
		rows, err := Reshape(flat, size)
		if err != nil {
			t.Fatalf("Reshape(size %d): %v", size, err)
		}
		if len(rows) != size {
			t.Fatalf("Reshape(size %d) has %d rows, want %d", size, len(rows), size)
		}
		flattened := make([]int, 0, size*size)
		for i, row := range rows {
			if len(row) != size {
				t.Fatalf("row %d has %d cells, want %d", i, len(row), size)
			}
			flattened = append(flattened, row...)
		}
		if len(flattened) != len(flat) {
			t.Errorf("round trip has %d cells, want %d", len(flattened), len(flat))
		}
		for i := range flat {
			if flattened[i] != flat[i] {
				t.Errorf("round trip cell %d = %d, want %d", i, flattened[i], flat[i])
			}
		}
	}
}

func TestReshapeRejectsWrongLength(t *testing.T) {
	if _, err := Reshape(make([]int, 15), 4); err == nil {
		t.Error("Reshape of 15 cells into a 4x4 grid succeeded, want error")
	}
	if _, err := Reshape(nil, 2); err == nil {
		t.Error("Reshape of nil into a 2x2 grid succeeded, want error")
	}
}

func TestPlaceholderGrid(t *testing.T) {
	rows := PlaceholderGrid(4)
	if len(rows) != 4 {
		t.Fatalf("placeholder has %d rows, want 4", len(rows))
	}
	for r, row := range rows {
		for c, v := range row {
			if v != 0 {
				t.Errorf("placeholder[%d][%d] = %d, want 0", r, c, v)
			}
		}
	}
}
