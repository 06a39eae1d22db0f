// Package gophersat adapts github.com/crillab/gophersat/solver to the
// satsolver.Builder/satsolver.Solver contract.
package gophersat

import (
	"github.com/crillab/gophersat/solver"

	"github.com/crossplay/xwordsat/pkg/satsolver"
)

// Builder accumulates clauses and builds a gophersat-backed Solver in
// one shot, via solver.ParseSlice, mirroring how every gophersat user
// in the retrieved pack constructs a problem.
type Builder struct {
	clauses [][]int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AllocateVariables is a no-op: gophersat infers the variable count
// from the clauses it is given.
func (b *Builder) AllocateVariables(count int) {}

// SetRelevantVariables is a no-op: this backend does not enumerate
// models internally, so it has no use for the hint.
func (b *Builder) SetRelevantVariables(ids []int) {}

// AddClause records literals as an at-least-one clause.
func (b *Builder) AddClause(literals []int) {
	clause := append([]int(nil), literals...)
	b.clauses = append(b.clauses, clause)
}

// Build constructs the gophersat solver.Problem from the recorded
// clauses and wraps the resulting solver.Solver.
func (b *Builder) Build() (satsolver.Solver, error) {
	problem := solver.ParseSlice(b.clauses)
	return &backend{solver: solver.New(problem)}, nil
}

// backend wraps a live gophersat solver.Solver. Refutation clauses are
// appended to it directly via AppendClause rather than rebuilding the
// problem from scratch for every additional solution.
type backend struct {
	solver *solver.Solver
}

// AddClause appends literals as a new clause to the already-built
// solver, using gophersat's AppendClause.
func (b *backend) AddClause(literals []int) {
	lits := make([]solver.Lit, len(literals))
	for i, l := range literals {
		lits[i] = solver.IntToLit(int32(l))
	}
	b.solver.AppendClause(solver.NewClause(lits))
}

// Solve runs gophersat and translates its status.
func (b *backend) Solve() satsolver.Status {
	switch b.solver.Solve() {
	case solver.Sat:
		return satsolver.StatusSat
	case solver.Unsat:
		return satsolver.StatusUnsat
	default:
		return satsolver.StatusUnknown
	}
}

// Model returns the most recently found model as signed, 1-indexed
// literals: Model()[i] is i+1 if variable i+1 is true, -(i+1) otherwise.
func (b *backend) Model() []int {
	boolModel := b.solver.Model()
	model := make([]int, len(boolModel))
	for i, v := range boolModel {
		if v {
			model[i] = i + 1
		} else {
			model[i] = -(i + 1)
		}
	}
	return model
}
