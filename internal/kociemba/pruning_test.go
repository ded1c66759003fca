package kociemba

import "testing"

func TestPruningTablesCompleteness(t *testing.T) {
	tables := BuildCoordTables()
	pruning := BuildPruningTables(tables)
	if err := pruning.Validate(); err != nil {
		t.Fatalf("pruning tables left unreachable slots: %v", err)
	}
}

func TestH1ZeroAtSolved(t *testing.T) {
	tables := BuildCoordTables()
	pruning := BuildPruningTables(tables)
	c := NewSolvedCubieCube()
	got := h1(pruning, encodeSlice(c), encodeTwist(c), encodeFlip(c))
	if got != 0 {
		t.Errorf("h1(solved) = %d, want 0", got)
	}
}

func TestH1AdmissibleAfterOneMove(t *testing.T) {
	tables := BuildCoordTables()
	pruning := BuildPruningTables(tables)
	for _, m := range []Move{U, R, F, D, L, B} {
		c := NewSolvedCubieCube()
		c.ApplyMove(m)
		h := h1(pruning, encodeSlice(c), encodeTwist(c), encodeFlip(c))
		if h > 1 {
			t.Errorf("h1 after one move %v = %d, should be <= 1", m, h)
		}
	}
}

func TestH2ZeroWithinG1AtSolved(t *testing.T) {
	tables := BuildCoordTables()
	pruning := BuildPruningTables(tables)
	c := NewSolvedCubieCube()
	got := h2(pruning, encodeEPermE(c), encodeCPerm(c), encodeEPermUD(c))
	if got != 0 {
		t.Errorf("h2(solved) = %d, want 0", got)
	}
}

func TestH2AdmissibleAfterOneG1Move(t *testing.T) {
	tables := BuildCoordTables()
	pruning := BuildPruningTables(tables)
	for _, m := range G1Moves {
		c := NewSolvedCubieCube()
		c.ApplyMove(m)
		h := h2(pruning, encodeEPermE(c), encodeCPerm(c), encodeEPermUD(c))
		if h > 1 {
			t.Errorf("h2 after one G1 move %v = %d, should be <= 1", m, h)
		}
	}
}
