package kociemba

import (
	"fmt"
	"os"
)

const unvisited = 0xFF

// PruningTables holds the four flat byte arrays giving the minimum
// number of moves to reach the solved value of a coordinate pair
// (spec.md §3/§4.4). 0xFF marks an unvisited (pre-BFS) slot; none
// should remain after a correct build.
type PruningTables struct {
	P1SliceTwist []uint8 // SliceN * TwistN
	P1SliceFlip  []uint8 // SliceN * FlipN
	P2EECPerm    []uint8 // EPermEN * CPermN
	P2EEEPermUD  []uint8 // EPermEN * EPermUDN
}

// bfsPair runs a breadth-first search over a product coordinate space
// using two coord move tables, starting from (0,0) (the solved pair,
// since every coordinate's solved value is index 0). moves restricts
// the generator set (all 18 for Phase 1, the 10 G1 generators for
// Phase 2). Returns the flat depth table of size dimA*dimB; the BFS
// radius reached is logged to stderr, not returned.
func bfsPair(dimA, dimB int, moveA, moveB func(int, Move) int, moves []Move, label string) []uint8 {
	dst := make([]uint8, dimA*dimB)
	for i := range dst {
		dst[i] = unvisited
	}
	dst[0] = 0
	type pair struct{ a, b int }
	queue := make([]pair, 0, 1024)
	queue = append(queue, pair{0, 0})
	maxDepth := uint8(0)
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		d := dst[cur.a*dimB+cur.b]
		if d > maxDepth {
			maxDepth = d
		}
		for _, m := range moves {
			a2 := moveA(cur.a, m)
			b2 := moveB(cur.b, m)
			id := a2*dimB + b2
			if dst[id] == unvisited {
				dst[id] = d + 1
				queue = append(queue, pair{a2, b2})
			}
		}
	}
	fmt.Fprintf(os.Stderr, "BFS %s: done, radius=%d\n", label, maxDepth)
	return dst
}

var allMoves = func() []Move {
	m := make([]Move, NumMoves)
	for i := range m {
		m[i] = Move(i)
	}
	return m
}()

// BuildPruningTables runs the four BFS passes described in spec.md
// §4.4: P1 over all 18 moves, P2 restricted to the 10 G1 generators.
func BuildPruningTables(t *CoordTables) *PruningTables {
	p := &PruningTables{}
	p.P1SliceTwist = bfsPair(SliceN, TwistN,
		func(a int, m Move) int { return t.slice(a, m) },
		func(b int, m Move) int { return t.twist(b, m) },
		allMoves, "P1 slice_twist")
	p.P1SliceFlip = bfsPair(SliceN, FlipN,
		func(a int, m Move) int { return t.slice(a, m) },
		func(b int, m Move) int { return t.flip(b, m) },
		allMoves, "P1 slice_flip")
	p.P2EECPerm = bfsPair(EPermEN, CPermN,
		func(a int, m Move) int { return t.epermE(a, m) },
		func(b int, m Move) int { return t.cperm(b, m) },
		G1Moves[:], "P2 eE_c")
	p.P2EEEPermUD = bfsPair(EPermEN, EPermUDN,
		func(a int, m Move) int { return t.epermE(a, m) },
		func(b int, m Move) int { return t.epermUD(b, m) },
		G1Moves[:], "P2 eE_eU")
	return p
}

// Validate returns an InternalInvariantViolation error (per spec.md §7,
// a build bug) if any pruning slot is still unvisited, since every
// state under these move sets is reachable by BFS completeness
// (spec.md §8). It does not panic.
func (p *PruningTables) Validate() error {
	check := func(name string, tbl []uint8) error {
		for _, v := range tbl {
			if v == unvisited {
				return newErr(InternalInvariantViolation, "pruning table %s left a reachable slot unvisited", name)
			}
		}
		return nil
	}
	if err := check("slice_twist", p.P1SliceTwist); err != nil {
		return err
	}
	if err := check("slice_flip", p.P1SliceFlip); err != nil {
		return err
	}
	if err := check("eE_c", p.P2EECPerm); err != nil {
		return err
	}
	if err := check("eE_eU", p.P2EEEPermUD); err != nil {
		return err
	}
	return nil
}

func h1(p *PruningTables, slice, twist, flip int) int {
	d1 := int(p.P1SliceTwist[slice*TwistN+twist])
	d2 := int(p.P1SliceFlip[slice*FlipN+flip])
	if d1 > d2 {
		return d1
	}
	return d2
}

func h2(p *PruningTables, eE, cperm, eUD int) int {
	d1 := int(p.P2EECPerm[eE*CPermN+cperm])
	d2 := int(p.P2EEEPermUD[eE*EPermUDN+eUD])
	if d1 > d2 {
		return d1
	}
	return d2
}
