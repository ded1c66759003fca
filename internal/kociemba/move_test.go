package kociemba

import "testing"

func TestParseMove(t *testing.T) {
	cases := []struct {
		in      string
		want    Move
		wantErr bool
	}{
		{"U", U, false},
		{"U2", U2, false},
		{"U'", Up, false},
		{"R'", Rp, false},
		{"B2", B2, false},
		{"", 0, true},
		{"Q", 0, true},
		{"U3", 0, true},
		{"U''", 0, true},
	}
	for _, c := range cases {
		got, err := ParseMove(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseMove(%q): expected error, got %v", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMove(%q): unexpected error %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseMove(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseScramble(t *testing.T) {
	moves, err := ParseScramble("  R U  R' U' ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Move{R, U, Rp, Up}
	if len(moves) != len(want) {
		t.Fatalf("got %d moves, want %d", len(moves), len(want))
	}
	for i, m := range moves {
		if m != want[i] {
			t.Errorf("move %d = %v, want %v", i, m, want[i])
		}
	}
}

func TestParseScrambleEmpty(t *testing.T) {
	moves, err := ParseScramble("   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(moves) != 0 {
		t.Errorf("expected empty move list, got %v", moves)
	}
}

func TestMoveFace(t *testing.T) {
	for m := Move(0); m < NumMoves; m++ {
		if m.Face() != int(m)/3 {
			t.Errorf("Move(%d).Face() = %d, want %d", m, m.Face(), int(m)/3)
		}
	}
}

func TestFormatMoves(t *testing.T) {
	got := FormatMoves([]Move{R, U, Rp, Up})
	want := "R U R' U'"
	if got != want {
		t.Errorf("FormatMoves = %q, want %q", got, want)
	}
}
