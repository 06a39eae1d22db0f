// Package constraints emits the CNF clauses encoding a crossword as a
// boolean satisfiability problem: one letter or block per cell, one
// word per slot, and that prefilled cells are kept as given.
package constraints

import (
	"fmt"

	"github.com/crossplay/xwordsat/pkg/alphabet"
	"github.com/crossplay/xwordsat/pkg/grid"
	"github.com/crossplay/xwordsat/pkg/satsolver"
	"github.com/crossplay/xwordsat/pkg/variables"
)

// Emit adds every constraint clause for g and words, using v for
// variable identifiers, to cfg. Clauses are emitted in a fixed order:
// one-letter-or-block-per-cell, then one-word-per-slot, then
// prefilled-grid.
func Emit(g *grid.Grid, v *variables.Variables, words []string, cfg satsolver.Configurator) {
	addOneValuePerCell(g, v, cfg)
	addOneWordPerSlot(g, v, words, cfg)
	addPrefilledGrid(g, v, cfg)
}

func addOneValuePerCell(g *grid.Grid, v *variables.Variables, cfg satsolver.Configurator) {
	for row := 0; row < g.RowCount(); row++ {
		for col := 0; col < g.ColCount(); col++ {
			literals := make([]int, variables.CellValues)
			for value := 0; value < variables.CellValues; value++ {
				literals[value] = v.Cell(row, col, value)
			}
			satsolver.AddExactlyOne(cfg, literals)
		}
	}
}

func addOneWordPerSlot(g *grid.Grid, v *variables.Variables, words []string, cfg satsolver.Configurator) {
	for _, slot := range g.Slots() {
		positions := slot.Positions()
		length := slot.Length()
		var slotLiterals []int
		for wordIndex, word := range words {
			if len(word) != length {
				continue
			}
			conjunction := make([]int, length)
			for i := 0; i < length; i++ {
				letterIndex, ok := alphabet.IndexOf(word[i])
				if !ok {
					panic(fmt.Sprintf("constraints: word %q contains a character outside the alphabet: %q", word, word[i]))
				}
				conjunction[i] = v.Cell(positions[i].Row, positions[i].Col, letterIndex)
			}
			slotVar := v.Slot(slot.Index, wordIndex)
			satsolver.AddAnd(cfg, slotVar, conjunction)
			slotLiterals = append(slotLiterals, slotVar)
		}
		satsolver.AddExactlyOne(cfg, slotLiterals)
	}
}

func addPrefilledGrid(g *grid.Grid, v *variables.Variables, cfg satsolver.Configurator) {
	for row := 0; row < g.RowCount(); row++ {
		for col := 0; col < g.ColCount(); col++ {
			ch := g.LetterAt(row, col)
			var literal int
			switch ch {
			case grid.Empty:
				literal = -v.Cell(row, col, variables.BlockValue)
			case grid.Block:
				literal = v.Cell(row, col, variables.BlockValue)
			default:
				letterIndex, ok := alphabet.IndexOf(ch)
				if !ok {
					panic(fmt.Sprintf("constraints: grid cell (%d,%d) holds a character outside the alphabet: %q", row, col, ch))
				}
				literal = v.Cell(row, col, letterIndex)
			}
			cfg.AddClause([]int{literal})
		}
	}
}
