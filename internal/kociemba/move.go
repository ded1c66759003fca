package kociemba

import "strings"

// Move is one of the eighteen symbolic face turns: for each face in
// {U,R,F,D,L,B}, the quarter, half and inverse-quarter variants. The
// numeric value is authoritative: Face() = int(m)/3 groups the three
// variants of a face together, matching the canonical move order
// U,U2,U',R,R2,R',F,F2,F',D,D2,D',L,L2,L',B,B2,B' used throughout
// search (spec.md §4.5 "canonical order").
type Move int

const (
	U Move = iota
	U2
	Up
	R
	R2
	Rp
	F
	F2
	Fp
	D
	D2
	Dp
	L
	L2
	Lp
	B
	B2
	Bp
	NumMoves = 18
)

var moveNames = [NumMoves]string{
	"U", "U2", "U'",
	"R", "R2", "R'",
	"F", "F2", "F'",
	"D", "D2", "D'",
	"L", "L2", "L'",
	"B", "B2", "B'",
}

func (m Move) String() string {
	if m < 0 || int(m) >= NumMoves {
		return "?"
	}
	return moveNames[m]
}

// Face returns the face index (0..5, in U,R,F,D,L,B order) shared by
// the three variants of a face's moves.
func (m Move) Face() int { return int(m) / 3 }

// G1Moves are the ten generators of G1 = <U,D,R2,L2,F2,B2> used by
// Phase 2's restricted move set (spec.md §4.4 "P2 BFS").
var G1Moves = [10]Move{U, U2, Up, D, D2, Dp, R2, L2, F2, B2}

func isG1Move(m Move) bool {
	switch m {
	case U, U2, Up, D, D2, Dp, R2, L2, F2, B2:
		return true
	default:
		return false
	}
}

// ParseMove parses a single move token per the grammar in spec.md §6:
// a face letter optionally followed by '2' or '\''. No other modifier
// is legal, and a modifier may not appear without a preceding face.
func ParseMove(token string) (Move, error) {
	if len(token) == 0 {
		return 0, newErr(ParseError, "empty move token")
	}
	var face int
	switch token[0] {
	case 'U':
		face = 0
	case 'R':
		face = 1
	case 'F':
		face = 2
	case 'D':
		face = 3
	case 'L':
		face = 4
	case 'B':
		face = 5
	default:
		return 0, newErr(ParseError, "unknown face %q in move %q", token[0], token)
	}
	switch len(token) {
	case 1:
		return Move(face * 3), nil
	case 2:
		switch token[1] {
		case '2':
			return Move(face*3 + 1), nil
		case '\'':
			return Move(face*3 + 2), nil
		default:
			return 0, newErr(ParseError, "invalid modifier %q in move %q", token[1], token)
		}
	default:
		return 0, newErr(ParseError, "dangling modifier in move %q", token)
	}
}

// ParseScramble parses a sequence of moves per the grammar
// `moves := (WS* token)* WS*`, WS := ' ' (a single space; no other
// whitespace is part of the grammar). An empty or all-space string
// parses to an empty, non-nil slice (spec.md §8 scenario 1).
func ParseScramble(s string) ([]Move, error) {
	fields := strings.Split(s, " ")
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			continue
		}
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves renders a move sequence the way the driver prints
// solutions: space-separated, "SOLVED" (handled by the caller) when
// empty.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
