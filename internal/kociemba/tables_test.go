package kociemba

import "testing"

// TestTwistTableConsistency checks the move-table consistency law
// (spec.md §8): encode(apply_move(decode(c), m)) == T[c][m], sampled
// across the coordinate range since a full sweep of all six tables is
// unnecessary once a representative sample passes.
func TestTwistTableConsistency(t *testing.T) {
	twist := BuildCoordTables().Twist
	for coord := 0; coord < TwistN; coord += 31 {
		base := decodeTwist(coord)
		for m := 0; m < NumMoves; m++ {
			d := base.Clone()
			d.ApplyMove(Move(m))
			want := encodeTwist(d)
			got := int(twist[coord*NumMoves+m])
			if got != want {
				t.Fatalf("twist[%d][%v] = %d, want %d", coord, Move(m), got, want)
			}
		}
	}
}

func TestFlipTableConsistency(t *testing.T) {
	flip := BuildCoordTables().Flip
	for coord := 0; coord < FlipN; coord += 37 {
		base := decodeFlip(coord)
		for m := 0; m < NumMoves; m++ {
			d := base.Clone()
			d.ApplyMove(Move(m))
			want := encodeFlip(d)
			got := int(flip[coord*NumMoves+m])
			if got != want {
				t.Fatalf("flip[%d][%v] = %d, want %d", coord, Move(m), got, want)
			}
		}
	}
}

func TestSliceTableConsistency(t *testing.T) {
	slice := BuildCoordTables().Slice
	for coord := 0; coord < SliceN; coord++ {
		base := decodeSlice(coord)
		for m := 0; m < NumMoves; m++ {
			d := base.Clone()
			d.ApplyMove(Move(m))
			want := encodeSlice(d)
			got := int(slice[coord*NumMoves+m])
			if got != want {
				t.Fatalf("slice[%d][%v] = %d, want %d", coord, Move(m), got, want)
			}
		}
	}
}

func TestEPermETableConsistency(t *testing.T) {
	epermE := BuildCoordTables().EPermE
	for coord := 0; coord < EPermEN; coord++ {
		base := decodeEPermE(coord)
		for m := 0; m < NumMoves; m++ {
			d := base.Clone()
			d.ApplyMove(Move(m))
			want := encodeEPermE(d)
			got := int(epermE[coord*NumMoves+m])
			if got != want {
				t.Fatalf("epermE[%d][%v] = %d, want %d", coord, Move(m), got, want)
			}
		}
	}
}

// TestMoveTableIdentityRow checks that the solved coordinate's row
// under each of the 18 moves lands on an in-range coordinate (no table
// slot referencing an out-of-range index), a cheap smoke test for the
// CPerm and EPermUD tables which are too large to sweep exhaustively.
func TestMoveTableIdentityRow(t *testing.T) {
	t2 := BuildCoordTables()
	for m := 0; m < NumMoves; m++ {
		if v := t2.cperm(0, Move(m)); v < 0 || v >= CPermN {
			t.Errorf("cperm[0][%v] = %d out of range", Move(m), v)
		}
		if v := t2.epermUD(0, Move(m)); v < 0 || v >= EPermUDN {
			t.Errorf("epermUD[0][%v] = %d out of range", Move(m), v)
		}
	}
}
