package core

import "testing"

func TestGridStep(t *testing.T) {
	g := NewGrid(32, 24)

	tests := []struct {
		name     string
		from     Cell
		dir      Direction
		expected Cell
	}{
		{"right inside", Cell{16, 12}, DirRight, Cell{17, 12}},
		{"left inside", Cell{16, 12}, DirLeft, Cell{15, 12}},
		{"up inside", Cell{16, 12}, DirUp, Cell{16, 11}},
		{"down inside", Cell{16, 12}, DirDown, Cell{16, 13}},
		{"right edge wraps to left", Cell{31, 5}, DirRight, Cell{0, 5}},
		{"left edge wraps to right", Cell{0, 5}, DirLeft, Cell{31, 5}},
		{"top edge wraps to bottom", Cell{7, 0}, DirUp, Cell{7, 23}},
		{"bottom edge wraps to top", Cell{7, 23}, DirDown, Cell{7, 0}},
		{"corner wraps one axis only", Cell{31, 23}, DirRight, Cell{0, 23}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := g.Step(tc.from, tc.dir)
			if got != tc.expected {
				t.Errorf("Step(%v, %v) = %v, expected %v", tc.from, tc.dir, got, tc.expected)
			}
		})
	}
}

func TestGridStepStaysInBounds(t *testing.T) {
	grids := []Grid{NewGrid(32, 24), NewGrid(2, 2), NewGrid(5, 3), NewGrid(1, 7)}
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

	for _, g := range grids {
		for _, c := range g.Cells() {
			for _, d := range dirs {
				next := g.Step(c, d)
				if !g.Contains(next) {
					t.Errorf("grid %dx%d: Step(%v, %v) = %v is out of bounds", g.Width, g.Height, c, d, next)
				}
			}
		}
	}
}

func TestGridWrapNegative(t *testing.T) {
	g := NewGrid(10, 4)

	if got := g.Wrap(-1, -1); got != (Cell{9, 3}) {
		t.Errorf("Wrap(-1, -1) = %v, expected (9,3)", got)
	}
	if got := g.Wrap(-21, 9); got != (Cell{9, 1}) {
		t.Errorf("Wrap(-21, 9) = %v, expected (9,1)", got)
	}
}

func TestGridCenterAndCells(t *testing.T) {
	g := NewGrid(32, 24)
	if g.Center() != (Cell{16, 12}) {
		t.Errorf("Center() = %v, expected (16,12)", g.Center())
	}

	cells := g.Cells()
	if len(cells) != g.Area() {
		t.Fatalf("Cells() returned %d cells, expected %d", len(cells), g.Area())
	}
	if cells[0] != (Cell{0, 0}) || cells[1] != (Cell{1, 0}) {
		t.Errorf("Cells() should be row-major, got %v, %v", cells[0], cells[1])
	}
}

func TestGridToScreen(t *testing.T) {
	g := NewGrid(32, 24)

	x, y := g.ToScreen(Cell{3, 4}, 20, 20)
	if x != 60 || y != 80 {
		t.Errorf("ToScreen pixels = (%d, %d), expected (60, 80)", x, y)
	}

	x, y = g.ToScreen(Cell{3, 4}, 2, 1)
	if x != 6 || y != 4 {
		t.Errorf("ToScreen columns = (%d, %d), expected (6, 4)", x, y)
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, opp := range pairs {
		if d.Opposite() != opp {
			t.Errorf("%v.Opposite() = %v, expected %v", d, d.Opposite(), opp)
		}
		if !d.IsOpposite(opp) {
			t.Errorf("%v.IsOpposite(%v) should be true", d, opp)
		}
		if d.IsOpposite(d) {
			t.Errorf("%v.IsOpposite(%v) should be false", d, d)
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
	}
	for _, tc := range tests {
		dx, dy := tc.dir.Delta()
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%v.Delta() = (%d, %d), expected (%d, %d)", tc.dir, dx, dy, tc.dx, tc.dy)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestCellSet(t *testing.T) {
	s := NewCellSet(Cell{1, 1}, Cell{2, 1}, Cell{1, 1})
	if s.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", s.Len())
	}
	if !s.Has(Cell{2, 1}) {
		t.Error("set should contain (2,1)")
	}
	if s.Has(Cell{3, 1}) {
		t.Error("set should not contain (3,1)")
	}

	var empty CellSet
	if empty.Has(Cell{0, 0}) {
		t.Error("nil set should contain nothing")
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#5DD8E4")
	if err != nil {
		t.Fatalf("ParseColor failed: %v", err)
	}
	if c != ColorBorder {
		t.Errorf("ParseColor = %+v, expected %+v", c, ColorBorder)
	}
	if c.Hex() != "#5DD8E4" {
		t.Errorf("Hex() = %s, expected #5DD8E4", c.Hex())
	}

	if _, err := ParseColor("ff0000"); err != nil {
		t.Errorf("ParseColor without # should succeed: %v", err)
	}
	for _, bad := range []string{"", "#12345", "#GGGGGG", "red"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) should fail", bad)
		}
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := RGB(255, 0, 128).RGBA()
	if r != 0xffff || g != 0 || b != 0x8080 || a != 0xffff {
		t.Errorf("RGBA() = (%x, %x, %x, %x)", r, g, b, a)
	}
}
