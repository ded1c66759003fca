package kociemba

import "time"

// Default search bounds and deadline (spec.md §4.5).
const (
	DefaultP1MaxBound = 12
	DefaultP2MaxBound = 18
	DefaultDeadline   = 2800 * time.Millisecond
)

// Solver bundles the read-only coord and pruning tables needed to run
// the two-phase search. A single Solver may be shared across
// concurrent solves (spec.md §5).
type Solver struct {
	Tables   *CoordTables
	Pruning  *PruningTables
	P1Bound  int
	P2Bound  int
	Deadline time.Duration
}

// NewSolver builds fresh tables from scratch. Use LoadOrBuildSolver to
// prefer a persisted cache artifact.
func NewSolver() *Solver {
	t := BuildCoordTables()
	p := BuildPruningTables(t)
	return &Solver{
		Tables:   t,
		Pruning:  p,
		P1Bound:  DefaultP1MaxBound,
		P2Bound:  DefaultP2MaxBound,
		Deadline: DefaultDeadline,
	}
}

// deadlineClock is consulted at every search node entry (spec.md §4.5
// "Deadline").
type deadlineClock struct {
	start time.Time
	limit time.Duration
}

func (d *deadlineClock) expired() bool {
	return time.Since(d.start) >= d.limit
}

// coord3 is the Phase 1 search state projection (slice, twist, flip).
type coord3 struct{ slice, twist, flip int }

// coord3p2 is the Phase 2 search state projection (eE, cperm, eUD).
type coord3p2 struct{ eE, cperm, eUD int }

type p1Leaf struct {
	cube *CubieCube
	path []Move
}

// ida1 runs Phase 1's bounded-DFS iterative deepening, collecting every
// leaf reached at the first bound where any leaf exists (spec.md §4.5,
// §9 "All-leaves Phase-1 collection").
func (s *Solver) ida1(start *CubieCube, clock *deadlineClock) ([]p1Leaf, bool) {
	slice0 := encodeSlice(start)
	twist0 := encodeTwist(start)
	flip0 := encodeFlip(start)
	lower := h1(s.Pruning, slice0, twist0, flip0)

	var leaves []p1Leaf
	aborted := false

	var cur []Move
	var dfs func(c *CubieCube, depth, bound, lastFace int, cs coord3) bool
	dfs = func(c *CubieCube, depth, bound, lastFace int, cs coord3) bool {
		if clock.expired() {
			return true
		}
		h := h1(s.Pruning, cs.slice, cs.twist, cs.flip)
		if depth+h > bound {
			return false
		}
		if h == 0 {
			leaves = append(leaves, p1Leaf{
				cube: c.Clone(),
				path: append([]Move(nil), cur...),
			})
			return false
		}
		for m := 0; m < NumMoves; m++ {
			face := Move(m).Face()
			if face == lastFace {
				continue
			}
			d := c.Clone()
			d.ApplyMove(Move(m))
			cs2 := coord3{
				slice: s.Tables.slice(cs.slice, Move(m)),
				twist: s.Tables.twist(cs.twist, Move(m)),
				flip:  s.Tables.flip(cs.flip, Move(m)),
			}
			cur = append(cur, Move(m))
			abort := dfs(d, depth+1, bound, face, cs2)
			cur = cur[:len(cur)-1]
			if abort {
				return true
			}
		}
		return false
	}

	for bound := lower; bound <= s.P1Bound; bound++ {
		cur = cur[:0]
		leaves = leaves[:0]
		if dfs(start, 0, bound, -1, coord3{slice0, twist0, flip0}) {
			aborted = true
			break
		}
		if len(leaves) > 0 {
			break
		}
	}
	return leaves, aborted
}

// dfs2 runs Phase 2's bounded DFS from a single Phase-1 leaf.
func (s *Solver) dfs2(c *CubieCube, depth, bound, lastFace int, cs coord3p2, cur *[]Move, clock *deadlineClock) (solved bool, aborted bool) {
	if clock.expired() {
		return false, true
	}
	h := h2(s.Pruning, cs.eE, cs.cperm, cs.eUD)
	if depth+h > bound {
		return false, false
	}
	if c.IsSolved() {
		return true, false
	}
	for _, m := range G1Moves {
		face := m.Face()
		if face == lastFace {
			continue
		}
		d := c.Clone()
		d.ApplyMove(m)
		cs2 := coord3p2{
			eE:    s.Tables.epermE(cs.eE, m),
			cperm: s.Tables.cperm(cs.cperm, m),
			eUD:   s.Tables.epermUD(cs.eUD, m),
		}
		*cur = append(*cur, m)
		ok, abort := s.dfs2(d, depth+1, bound, face, cs2, cur, clock)
		if ok {
			return true, false
		}
		*cur = (*cur)[:len(*cur)-1]
		if abort {
			return false, true
		}
	}
	return false, false
}

// lastFaceOf returns the face index of the final move in path, or -1
// for an empty path.
func lastFaceOf(path []Move) int {
	if len(path) == 0 {
		return -1
	}
	return path[len(path)-1].Face()
}

// Solve runs the two-phase search from scrambled and returns the
// shortest move list found across every Phase-1 leaf within the
// configured deadline (spec.md §4.5, §5 "best-solution tracking").
// On timeout it returns the best solution found so far (possibly
// empty) and no error; the caller can distinguish "solved" from
// "gave up" via CubieCube.IsSolved on the replay if needed.
func (s *Solver) Solve(scrambled *CubieCube) ([]Move, error) {
	if err := scrambled.Validate(); err != nil {
		return nil, err
	}
	clock := &deadlineClock{start: time.Now(), limit: s.Deadline}

	if scrambled.IsSolved() {
		return []Move{}, nil
	}

	leaves, _ := s.ida1(scrambled, clock)

	var best []Move
	for _, leaf := range leaves {
		if clock.expired() {
			break
		}
		eE := encodeEPermE(leaf.cube)
		cperm := encodeCPerm(leaf.cube)
		eUD := encodeEPermUD(leaf.cube)
		lower := h2(s.Pruning, eE, cperm, eUD)
		lastFace := lastFaceOf(leaf.path)

		for bound := lower; bound <= s.P2Bound; bound++ {
			cur := append([]Move(nil), leaf.path...)
			solved, aborted := s.dfs2(leaf.cube, 0, bound, lastFace, coord3p2{eE, cperm, eUD}, &cur, clock)
			if aborted {
				break
			}
			if solved {
				if best == nil || len(cur) < len(best) {
					best = cur
				}
				break
			}
		}
	}

	if best == nil {
		return []Move{}, nil
	}
	return best, nil
}
