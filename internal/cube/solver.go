package cube

import (
	"fmt"
	"sync"
	"time"

	"github.com/cube-solver/kociemba/internal/kociemba"
)

// SolverResult represents the result of a solve attempt
type SolverResult struct {
	Solution []Move
	Steps    int
	Duration time.Duration
}

// Solver interface for different solving algorithms
type Solver interface {
	Solve(cube *Cube) (*SolverResult, error)
	Name() string
}

// BeginnerSolver implements a basic layer-by-layer method
type BeginnerSolver struct{}

func (s *BeginnerSolver) Name() string {
	return "Beginner"
}

func (s *BeginnerSolver) Solve(cube *Cube) (*SolverResult, error) {
	start := time.Now()
	
	// This is a placeholder implementation
	// A real beginner solver would implement:
	// 1. White cross
	// 2. White corners (first layer)
	// 3. Middle layer edges
	// 4. Yellow cross
	// 5. Yellow face
	// 6. Permute last layer
	
	solution := []Move{
		{Face: Right, Clockwise: true},
		{Face: Up, Clockwise: true},
		{Face: Right, Clockwise: false},
		{Face: Up, Clockwise: false},
	}
	
	return &SolverResult{
		Solution: solution,
		Steps:    len(solution),
		Duration: time.Since(start),
	}, nil
}

// CFOPSolver implements the CFOP method
type CFOPSolver struct{}

func (s *CFOPSolver) Name() string {
	return "CFOP"
}

func (s *CFOPSolver) Solve(cube *Cube) (*SolverResult, error) {
	start := time.Now()
	
	// Placeholder CFOP implementation
	// Real CFOP would implement:
	// 1. Cross
	// 2. F2L (First Two Layers)
	// 3. OLL (Orient Last Layer)
	// 4. PLL (Permute Last Layer)
	
	solution := []Move{
		{Face: Front, Clockwise: true},
		{Face: Right, Clockwise: true},
		{Face: Up, Clockwise: true},
		{Face: Right, Clockwise: false},
		{Face: Up, Clockwise: false},
		{Face: Front, Clockwise: false},
	}
	
	return &SolverResult{
		Solution: solution,
		Steps:    len(solution),
		Duration: time.Since(start),
	}, nil
}

// KociembaSolver implements Kociemba's two-phase algorithm, backed by
// internal/kociemba's cubie-level IDA* engine. The coordinate and
// pruning tables are expensive to build, so they're shared across
// every Solve call and built (or loaded from the on-disk cache) at
// most once per process.
type KociembaSolver struct{}

var (
	kociembaOnce   sync.Once
	kociembaSolver *kociemba.Solver
)

const kociembaCachePath = "kociemba.tables"

func sharedKociembaSolver() *kociemba.Solver {
	kociembaOnce.Do(func() {
		s, err := kociemba.LoadOrBuildSolver(kociembaCachePath)
		if err != nil {
			s = kociemba.NewSolver()
		}
		kociembaSolver = s
	})
	return kociembaSolver
}

func (s *KociembaSolver) Name() string {
	return "Kociemba"
}

func (s *KociembaSolver) Solve(cube *Cube) (*SolverResult, error) {
	if cube.Size != 3 {
		return nil, fmt.Errorf("Kociemba algorithm only supports 3x3x3 cubes")
	}

	start := time.Now()

	cc, err := kociemba.FromFaceletCube(cube)
	if err != nil {
		return nil, err
	}

	moves, err := sharedKociembaSolver().Solve(cc)
	if err != nil {
		return nil, err
	}

	solution := make([]Move, len(moves))
	for i, m := range moves {
		solution[i] = kociembaMoveToTeacher(m)
	}

	return &SolverResult{
		Solution: solution,
		Steps:    len(solution),
		Duration: time.Since(start),
	}, nil
}

// kociembaMoveToTeacher converts a kociemba.Move into this package's
// Move type (Face + Clockwise + quarter-turn count).
func kociembaMoveToTeacher(m kociemba.Move) Move {
	faces := [6]Face{Up, Right, Front, Down, Left, Back}
	face := faces[m.Face()]
	switch m % 3 {
	case 0:
		return Move{Face: face, Clockwise: true}
	case 2:
		return Move{Face: face, Clockwise: false}
	default: // double turn; represented as two clockwise quarter turns
		return Move{Face: face, Clockwise: true, Double: true}
	}
}

// GetSolver returns a solver by name
func GetSolver(name string) (Solver, error) {
	switch name {
	case "beginner":
		return &BeginnerSolver{}, nil
	case "cfop":
		return &CFOPSolver{}, nil
	case "kociemba":
		return &KociembaSolver{}, nil
	default:
		return nil, fmt.Errorf("unknown solver: %s", name)
	}
}