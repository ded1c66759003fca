package kociemba

import (
	"testing"

	"github.com/cube-solver/kociemba/internal/cube"
)

func TestFromFaceletCubeSolved(t *testing.T) {
	c := cube.NewCube(3)
	cc, err := FromFaceletCube(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cc.IsSolved() {
		t.Error("solved facelet cube should convert to a solved CubieCube")
	}
}

func TestFromFaceletCubeRejectsNon3x3(t *testing.T) {
	c := cube.NewCube(4)
	if _, err := FromFaceletCube(c); err == nil {
		t.Fatal("expected an error for a non-3x3x3 cube")
	}
}

func TestFaceletRoundTripAfterScramble(t *testing.T) {
	moves, err := cube.ParseScramble("R U R' U' F2 D L'")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := cube.NewCube(3)
	c.ApplyMoves(moves)

	cc, err := FromFaceletCube(c)
	if err != nil {
		t.Fatalf("FromFaceletCube: %v", err)
	}

	back := ToFaceletCube(cc)
	cc2, err := FromFaceletCube(back)
	if err != nil {
		t.Fatalf("FromFaceletCube of round-tripped cube: %v", err)
	}
	if !cc.Equal(cc2) {
		t.Error("facelet -> CubieCube -> facelet -> CubieCube should be stable")
	}
}
