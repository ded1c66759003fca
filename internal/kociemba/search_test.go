package kociemba

import "testing"

func verifySolution(t *testing.T, scramble string, moves []Move) {
	t.Helper()
	c, err := CubeFromScramble(scramble)
	if err != nil {
		t.Fatalf("CubeFromScramble(%q): %v", scramble, err)
	}
	c.ApplyMoves(moves)
	if !c.IsSolved() {
		t.Fatalf("scramble %q: applying solution %v did not solve the cube", scramble, FormatMoves(moves))
	}
}

func TestSolveEmptyScramble(t *testing.T) {
	s := NewSolver()
	c, _ := CubeFromScramble("")
	moves, err := s.Solve(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(moves) != 0 {
		t.Errorf("solved cube should need no moves, got %v", moves)
	}
}

func TestSolveSingleMove(t *testing.T) {
	s := NewSolver()
	c, _ := CubeFromScramble("U")
	moves, err := s.Solve(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(moves) == 0 {
		t.Fatal("expected a non-empty solution for a one-move scramble")
	}
	verifySolution(t, "U", moves)
}

func TestSolveShortScramble(t *testing.T) {
	s := NewSolver()
	c, _ := CubeFromScramble("R U R' U'")
	moves, err := s.Solve(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	verifySolution(t, "R U R' U'", moves)
	if len(moves) > 6 {
		t.Errorf("R U R' U' should solve in at most 6 moves, got %d: %v", len(moves), FormatMoves(moves))
	}
}

func TestSolveLongerScramble(t *testing.T) {
	s := NewSolver()
	scramble := "F R U' B2 L D F' R2"
	c, err := CubeFromScramble(scramble)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	moves, err := s.Solve(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	verifySolution(t, scramble, moves)
	if len(moves) > 20 {
		t.Errorf("expected at most 20 moves, got %d", len(moves))
	}
}

func TestSolveRejectsIllegalState(t *testing.T) {
	s := NewSolver()
	bad := NewSolvedCubieCube()
	bad.cp[0], bad.cp[1] = bad.cp[1], bad.cp[0]
	bad.co[0] = (bad.co[0] + 1) % 3 // break the twist-sum invariant
	if _, err := s.Solve(bad); err == nil {
		t.Fatal("expected IllegalCubeState for an invariant-violating cube")
	}
}

func TestLastFaceOf(t *testing.T) {
	if lastFaceOf(nil) != -1 {
		t.Error("lastFaceOf(nil) should be -1")
	}
	if got := lastFaceOf([]Move{R, U}); got != U.Face() {
		t.Errorf("lastFaceOf([R,U]) = %d, want %d", got, U.Face())
	}
}
