package kociemba

import "testing"

func TestSolvedCubeIsSolved(t *testing.T) {
	c := NewSolvedCubieCube()
	if !c.IsSolved() {
		t.Fatal("NewSolvedCubieCube should be solved")
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("solved cube should validate: %v", err)
	}
}

func TestQuarterTurnFourTimesIsIdentity(t *testing.T) {
	for face := 0; face < 6; face++ {
		c := NewSolvedCubieCube()
		for i := 0; i < 4; i++ {
			c.applyQuarter(face)
		}
		if !c.Equal(NewSolvedCubieCube()) {
			t.Errorf("face %d: four quarter turns should return to solved", face)
		}
	}
}

func TestMoveAlgebra(t *testing.T) {
	c := NewSolvedCubieCube()
	c.ApplyMoves([]Move{F, F, F, F})
	if !c.Equal(NewSolvedCubieCube()) {
		t.Error("F F F F should be identity")
	}

	for _, face := range []Move{U, R, F, D, L, B} {
		c := NewSolvedCubieCube()
		c.ApplyMove(face)
		c.ApplyMove(Move(int(face) + 2)) // inverse
		if !c.Equal(NewSolvedCubieCube()) {
			t.Errorf("%v then its inverse should be identity", face)
		}
	}

	for _, face := range []Move{U, R, F, D, L, B} {
		double := NewSolvedCubieCube()
		double.ApplyMove(Move(int(face) + 1))

		twice := NewSolvedCubieCube()
		twice.ApplyMove(face)
		twice.ApplyMove(face)

		if !double.Equal(twice) {
			t.Errorf("%v2 should equal two quarter turns of %v", face, face)
		}
	}
}

func TestApplyMovePreservesInvariants(t *testing.T) {
	c := NewSolvedCubieCube()
	scramble := []Move{R, U, Rp, F, D2, Lp, B, U2, R2}
	c.ApplyMoves(scramble)
	if err := c.Validate(); err != nil {
		t.Fatalf("scrambled cube should still validate: %v", err)
	}
}

func TestCubeFromScrambleEmpty(t *testing.T) {
	c, err := CubeFromScramble("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsSolved() {
		t.Error("empty scramble should produce the solved cube")
	}
}

func TestCubeFromScrambleInvalidMove(t *testing.T) {
	if _, err := CubeFromScramble("Q"); err == nil {
		t.Fatal("expected a parse error for an invalid move")
	}
}
