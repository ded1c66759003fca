package cube

import "testing"

func TestGetSolver(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
		wantName  string
		wantErr   bool
	}{
		{"Beginner solver", "beginner", "Beginner", false},
		{"CFOP solver", "cfop", "CFOP", false},
		{"Kociemba solver", "kociemba", "Kociemba", false},
		{"Invalid solver", "invalid", "", true},
		{"Empty string", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			solver, err := GetSolver(tt.algorithm)
			if (err != nil) != tt.wantErr {
				t.Errorf("GetSolver(%q) error = %v, wantErr %v", tt.algorithm, err, tt.wantErr)
				return
			}
			if !tt.wantErr && solver.Name() != tt.wantName {
				t.Errorf("GetSolver(%q).Name() = %q, want %q", tt.algorithm, solver.Name(), tt.wantName)
			}
		})
	}
}

func TestKociembaSolver4x4Rejection(t *testing.T) {
	cube := NewCube(4) // 4x4x4 cube
	solver := &KociembaSolver{}

	_, err := solver.Solve(cube)
	if err == nil {
		t.Error("KociembaSolver should reject 4x4x4 cubes")
	}
}

func TestKociembaSolverOnSolvedCube(t *testing.T) {
	cube := NewCube(3)
	solver := &KociembaSolver{}

	result, err := solver.Solve(cube)
	if err != nil {
		t.Fatalf("KociembaSolver.Solve() error = %v", err)
	}
	if len(result.Solution) != 0 {
		t.Errorf("solved cube should return an empty solution, got %d moves", len(result.Solution))
	}
	if result.Steps != len(result.Solution) {
		t.Errorf("Steps (%d) should equal solution length (%d)", result.Steps, len(result.Solution))
	}
}

func TestKociembaSolverOnScrambledCube(t *testing.T) {
	cube := NewCube(3)

	moves, err := ParseScramble("R U R' U'")
	if err != nil {
		t.Fatalf("Failed to parse scramble: %v", err)
	}
	cube.ApplyMoves(moves)

	solver := &KociembaSolver{}
	result, err := solver.Solve(cube)
	if err != nil {
		t.Fatalf("KociembaSolver.Solve() error = %v", err)
	}

	cube.ApplyMoves(result.Solution)
	if !cube.IsSolved() {
		t.Error("applying the returned solution should solve the cube")
	}
	if result.Steps != len(result.Solution) {
		t.Errorf("Steps (%d) should equal solution length (%d)", result.Steps, len(result.Solution))
	}
	if result.Duration < 0 {
		t.Error("Duration should not be negative")
	}
}
