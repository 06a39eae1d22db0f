package crossword

import (
	"github.com/crossplay/xwordsat/pkg/satsolver"
	"github.com/crossplay/xwordsat/pkg/variables"
)

// Solutions is a forward iterator over a crossword's solutions, one
// filled grid string per call to Next. Each solution differs from
// every previous one in at least one cell: after a model is consumed,
// its refutation clause (restricted to cell variables) is added to the
// solver before solving again, so slot-variable differences that leave
// every cell identical never produce a duplicate solution.
type Solutions struct {
	vars      *variables.Variables
	solver    satsolver.Solver
	relevant  []int
	lastModel []int
	hasModel  bool
	exhausted bool
}

func newSolutions(vars *variables.Variables, solver satsolver.Solver, relevant []int) *Solutions {
	return &Solutions{vars: vars, solver: solver, relevant: relevant}
}

// Next returns the next solution and true, or ("", false) once every
// solution has been exhausted. Once Next returns false, it keeps
// returning false.
func (s *Solutions) Next() (string, bool) {
	if s.exhausted {
		return "", false
	}
	if s.hasModel {
		s.solver.AddClause(refute(s.lastModel, s.relevant))
	}
	if s.solver.Solve() != satsolver.StatusSat {
		s.exhausted = true
		return "", false
	}
	model := s.solver.Model()
	s.lastModel = model
	s.hasModel = true

	decoded, err := s.vars.BackToDomain(model)
	if err != nil {
		s.exhausted = true
		return "", false
	}
	return decoded, true
}

// refute builds a clause that is false under model but true under any
// assignment differing from it on at least one of relevant's variables.
func refute(model []int, relevant []int) []int {
	clause := make([]int, 0, len(relevant))
	for _, id := range relevant {
		idx := id - 1
		if idx < 0 || idx >= len(model) || model[idx] == 0 {
			continue
		}
		if model[idx] > 0 {
			clause = append(clause, -id)
		} else {
			clause = append(clause, id)
		}
	}
	return clause
}
