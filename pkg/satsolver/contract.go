// Package satsolver defines the contract between the crossword encoder
// and a pluggable CNF-SAT backend. It mirrors the split found in every
// SAT-backed solver in the retrieved pack: a write side that accepts
// clauses, and a read side that produces models.
package satsolver

// Status is the outcome of a solve attempt.
type Status int

const (
	// StatusUnknown means the backend could not determine satisfiability,
	// for instance because it was interrupted.
	StatusUnknown Status = iota
	// StatusSat means the backend found a satisfying model.
	StatusSat
	// StatusUnsat means the backend proved no model exists.
	StatusUnsat
)

// Configurator accepts the clauses describing a problem, before solving
// starts. AllocateVariables and SetRelevantVariables are hints: a
// conforming implementation may treat either as a no-op.
type Configurator interface {
	// AllocateVariables hints at the total number of variables in use,
	// letting a backend pre-size its internal structures.
	AllocateVariables(count int)
	// SetRelevantVariables hints at the subset of variables that callers
	// care about distinguishing between models, letting a backend that
	// enumerates models internally skip over ones that only differ on
	// irrelevant variables.
	SetRelevantVariables(ids []int)
	// AddClause adds literals as an at-least-one (disjunctive) clause.
	AddClause(literals []int)
}

// ExactlyOneAdder is implemented by a Configurator that can add an
// exactly-one clause set more efficiently than the default pairwise
// decomposition AddExactlyOne falls back to.
type ExactlyOneAdder interface {
	AddExactlyOne(literals []int)
}

// AtMostOneAdder is implemented by a Configurator that can add an
// at-most-one clause set more efficiently than the default pairwise
// decomposition AddAtMostOne falls back to.
type AtMostOneAdder interface {
	AddAtMostOne(literals []int)
}

// AndAdder is implemented by a Configurator that can add an
// equivalence-to-a-conjunction clause set more efficiently than the
// default decomposition AddAnd falls back to.
type AndAdder interface {
	AddAnd(literal int, conjunction []int)
}

// AddExactlyOne adds clauses asserting that exactly one of literals is
// true. If c implements ExactlyOneAdder, that implementation is used;
// otherwise the default decomposition (at-least-one plus pairwise
// at-most-one) is emitted via AddClause and AddAtMostOne.
func AddExactlyOne(c Configurator, literals []int) {
	if eo, ok := c.(ExactlyOneAdder); ok {
		eo.AddExactlyOne(literals)
		return
	}
	c.AddClause(literals)
	AddAtMostOne(c, literals)
}

// AddAtMostOne adds clauses asserting that at most one of literals is
// true: for every pair, at least one is false. If c implements
// AtMostOneAdder, that implementation is used instead.
func AddAtMostOne(c Configurator, literals []int) {
	if amo, ok := c.(AtMostOneAdder); ok {
		amo.AddAtMostOne(literals)
		return
	}
	for i := 0; i < len(literals); i++ {
		for j := i + 1; j < len(literals); j++ {
			c.AddClause([]int{-literals[i], -literals[j]})
		}
	}
}

// AddAnd adds clauses asserting that literal is equivalent to the
// conjunction of conjunction's literals: literal <=> l0 AND l1 AND ...
// If c implements AndAdder, that implementation is used instead.
func AddAnd(c Configurator, literal int, conjunction []int) {
	if a, ok := c.(AndAdder); ok {
		a.AddAnd(literal, conjunction)
		return
	}
	last := make([]int, 0, len(conjunction)+1)
	for _, lit := range conjunction {
		c.AddClause([]int{-literal, lit})
		last = append(last, -lit)
	}
	last = append(last, literal)
	c.AddClause(last)
}

// Producer is the read side of a solver: it attempts to find a model
// satisfying the clauses it has been given, and exposes the model it
// found.
type Producer interface {
	// Solve attempts to find a model. It may be called more than once,
	// for instance after AddClause has ruled out a previously found
	// model.
	Solve() Status
	// Model returns the most recently found model: a dense sequence of
	// signed integers indexed by variable-1, positive meaning true.
	// Calling Model before a call to Solve has returned StatusSat is
	// undefined.
	Model() []int
}

// Solver is what a Builder produces: something that can still accept
// clauses (needed to rule out a model already seen) and be asked to
// solve again.
type Solver interface {
	Producer
	AddClause(literals []int)
}

// Builder accumulates clauses, then builds a Solver once configuration
// is complete. Some backends accept clauses more efficiently in one
// batch than incrementally; Builder lets them do so.
type Builder interface {
	Configurator
	Build() (Solver, error)
}

// ConfigurableSolver is a single object that is both a Configurator and
// a Producer, avoiding the copy a Builder performs at Build time. Some
// backends support incremental clause addition cheaply enough that
// there is no benefit to a separate build step.
type ConfigurableSolver interface {
	Configurator
	Producer
}
