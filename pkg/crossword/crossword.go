// Package crossword ties the grid, variables, and constraints packages
// together into a single boolean satisfiability problem, and exposes
// an iterator over its solutions.
package crossword

import (
	"fmt"

	"github.com/crossplay/xwordsat/pkg/constraints"
	"github.com/crossplay/xwordsat/pkg/grid"
	"github.com/crossplay/xwordsat/pkg/satsolver"
	"github.com/crossplay/xwordsat/pkg/variables"
)

// Crossword is a crossword grid together with a candidate word list,
// ready to be handed to a SAT backend.
type Crossword struct {
	grid  *grid.Grid
	vars  *variables.Variables
	words []string
}

// New parses input as a grid and pairs it with words. It fails only if
// the grid itself is malformed; an empty or mismatched word list is a
// valid (if likely unsatisfiable) crossword.
func New(input string, words []string) (*Crossword, error) {
	g, err := grid.New(input)
	if err != nil {
		return nil, fmt.Errorf("crossword: %w", err)
	}
	v := variables.New(g.RowCount(), g.ColCount(), len(g.Slots()), len(words))
	return &Crossword{grid: g, vars: v, words: words}, nil
}

// SolveWith configures builder with this crossword's constraints and
// builds a Solutions iterator over the resulting solver.
func (cw *Crossword) SolveWith(builder satsolver.Builder) (*Solutions, error) {
	cw.configure(builder)
	solver, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("crossword: building solver: %w", err)
	}
	return newSolutions(cw.vars, solver, cw.vars.RelevantVariables()), nil
}

// SolveWithConfigurable configures solver with this crossword's
// constraints and builds a Solutions iterator directly over it,
// skipping the separate build step SolveWith performs.
func (cw *Crossword) SolveWithConfigurable(solver satsolver.ConfigurableSolver) *Solutions {
	cw.configure(solver)
	return newSolutions(cw.vars, solver, cw.vars.RelevantVariables())
}

func (cw *Crossword) configure(cfg satsolver.Configurator) {
	cfg.AllocateVariables(cw.vars.Count())
	cfg.SetRelevantVariables(cw.vars.RelevantVariables())
	constraints.Emit(cw.grid, cw.vars, cw.words, cfg)
}
