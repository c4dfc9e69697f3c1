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

func TestBeginnerSolverOnSolvedCube(t *testing.T) {
	cube := NewCube(3)
	solver := &BeginnerSolver{}

	result, err := solver.Solve(cube)
	if err != nil {
		t.Fatalf("BeginnerSolver.Solve() error = %v", err)
	}

	if result.Steps != len(result.Solution) {
		t.Errorf("Steps (%d) should equal solution length (%d)", result.Steps, len(result.Solution))
	}
}

func TestKociembaSolver4x4Rejection(t *testing.T) {
	cube := NewCube(4)
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
		t.Errorf("KociembaSolver on solved cube should return empty solution, got %d moves", len(result.Solution))
	}
}

func TestKociembaSolverOnScrambledCube(t *testing.T) {
	cube := NewCube(3)

	moves, err := ParseScramble("R U R' U' F2 D L2")
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
		t.Error("applying the returned solution did not solve the cube")
	}
}
