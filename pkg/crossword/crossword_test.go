package crossword

import (
	"testing"

	"github.com/crossplay/xwordsat/pkg/satsolver"
	"github.com/crossplay/xwordsat/pkg/satsolver/gophersat"
)

func TestNewOK(t *testing.T) {
	words := []string{"ABC", "DEF", "AA", "BB", "CC"}
	if _, err := New("...\n...", words); err != nil {
		t.Errorf("New() error = %v, want nil", err)
	}
}

func TestNewInvalidGrid(t *testing.T) {
	words := []string{"ABC", "DEF", "AA", "BB", "CC"}
	if _, err := New("___", words); err == nil {
		t.Error("New() error = nil, want error for malformed grid")
	}
}

// stubBuilder never reports a solution, mirroring the stub solver used
// to isolate the façade from a real backend.
type stubBuilder struct{}

func (stubBuilder) AllocateVariables(int)      {}
func (stubBuilder) SetRelevantVariables([]int) {}
func (stubBuilder) AddClause([]int)            {}
func (stubBuilder) Build() (satsolver.Solver, error) {
	return stubSolver{}, nil
}

type stubSolver struct{}

func (stubSolver) AddClause([]int)             {}
func (stubSolver) Solve() satsolver.Status     { return satsolver.StatusUnsat }
func (stubSolver) Model() []int                { return nil }

func TestSolveWithStubYieldsNothing(t *testing.T) {
	words := []string{"ABC", "DEF", "AA", "BB", "CC"}
	cw, err := New("...\n...", words)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	solutions, err := cw.SolveWith(stubBuilder{})
	if err != nil {
		t.Fatalf("SolveWith() error = %v", err)
	}
	if _, ok := solutions.Next(); ok {
		t.Error("Next() ok = true, want false")
	}
}

func TestSolveWithEmptyWordListYieldsNothing(t *testing.T) {
	cw, err := New("...\n...\n...", nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	solutions, err := cw.SolveWith(gophersat.NewBuilder())
	if err != nil {
		t.Fatalf("SolveWith() error = %v", err)
	}
	if _, ok := solutions.Next(); ok {
		t.Error("Next() ok = true, want false for a grid with no matching words")
	}
}

func TestSolveWithFindsASolution(t *testing.T) {
	words := []string{"AB", "BA"}
	cw, err := New("..", words)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	solutions, err := cw.SolveWith(gophersat.NewBuilder())
	if err != nil {
		t.Fatalf("SolveWith() error = %v", err)
	}
	solution, ok := solutions.Next()
	if !ok {
		t.Fatal("Next() ok = false, want a solution")
	}
	if solution != "AB" && solution != "BA" {
		t.Errorf("solution = %q, want \"AB\" or \"BA\"", solution)
	}
}

func TestSolveWithEnumeratesDistinctSolutions(t *testing.T) {
	words := []string{"AB", "BA"}
	cw, err := New("..", words)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	solutions, err := cw.SolveWith(gophersat.NewBuilder())
	if err != nil {
		t.Fatalf("SolveWith() error = %v", err)
	}
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		solution, ok := solutions.Next()
		if !ok {
			break
		}
		if seen[solution] {
			t.Fatalf("solution %q repeated", solution)
		}
		seen[solution] = true
	}
	if len(seen) != 2 {
		t.Errorf("distinct solutions = %d, want 2", len(seen))
	}
}

func TestSolveWithPrefilledGridIsRespected(t *testing.T) {
	words := []string{"AB", "BA"}
	cw, err := New("A.", words)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	solutions, err := cw.SolveWith(gophersat.NewBuilder())
	if err != nil {
		t.Fatalf("SolveWith() error = %v", err)
	}
	solution, ok := solutions.Next()
	if !ok {
		t.Fatal("Next() ok = false, want a solution")
	}
	if solution != "AB" {
		t.Errorf("solution = %q, want %q", solution, "AB")
	}
	if _, ok := solutions.Next(); ok {
		t.Error("Next() ok = true on second call, want false")
	}
}
