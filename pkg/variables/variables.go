// Package variables maps the crossword domain (cells and slots) onto
// the flat positive-integer variable space a SAT solver expects, and
// decodes a solver's model back into a filled grid.
package variables

import (
	"fmt"
	"strings"

	"github.com/crossplay/xwordsat/pkg/alphabet"
)

// CellValues is the number of values a cell variable can take: one of
// the 26 letters, or the block value.
const CellValues = alphabet.Count + 1

// BlockValue is the cell value meaning "this cell is a block".
const BlockValue = alphabet.Count

// Variables computes variable identifiers for a grid of the given
// dimensions and a word list of the given size. Identifiers are
// 1-indexed, as DIMACS CNF and every SAT solver in the pack expects.
type Variables struct {
	rows, cols int
	numSlots   int
	numWords   int
}

// New returns the Variables for a grid with the given dimensions,
// number of slots, and word list size.
func New(rows, cols, numSlots, numWords int) *Variables {
	return &Variables{rows: rows, cols: cols, numSlots: numSlots, numWords: numWords}
}

// Cell returns the variable id meaning "cell (row, col) holds value",
// where value is a letter index in [0, alphabet.Count) or BlockValue.
func (v *Variables) Cell(row, col, value int) int {
	return row*v.cols*CellValues + col*CellValues + value + 1
}

// Slot returns the variable id meaning "slot slotIndex is filled with
// the word at wordIndex in the input word list".
func (v *Variables) Slot(slotIndex, wordIndex int) int {
	return v.CellCount() + slotIndex*v.numWords + wordIndex + 1
}

// CellCount returns the number of cell variables.
func (v *Variables) CellCount() int {
	return v.rows * v.cols * CellValues
}

// SlotVariableCount returns the number of slot variables.
func (v *Variables) SlotVariableCount() int {
	return v.numSlots * v.numWords
}

// Count returns the total number of variables (cell and slot).
func (v *Variables) Count() int {
	return v.CellCount() + v.SlotVariableCount()
}

// RelevantVariables returns the ids of every cell variable, in
// ascending order. These are the only variables a solution iterator
// needs to distinguish one solution from another: slot variables are
// a deterministic function of the cell variables and add no new
// information.
func (v *Variables) RelevantVariables() []int {
	ids := make([]int, 0, v.CellCount())
	for row := 0; row < v.rows; row++ {
		for col := 0; col < v.cols; col++ {
			for value := 0; value < CellValues; value++ {
				ids = append(ids, v.Cell(row, col, value))
			}
		}
	}
	return ids
}

// BackToDomain decodes a solver model into a grid string: rows
// separated by newlines, each cell rendered as a letter or Block. model
// is a dense signed-integer sequence indexed by variable-1, positive
// meaning the variable is true.
func (v *Variables) BackToDomain(model []int) (string, error) {
	var sb strings.Builder
	for row := 0; row < v.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < v.cols; col++ {
			value, err := valueOf(model, v, row, col)
			if err != nil {
				return "", err
			}
			if value == BlockValue {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(alphabet.LetterAt(value))
			}
		}
	}
	return sb.String(), nil
}

func valueOf(model []int, v *Variables, row, col int) (int, error) {
	for value := 0; value < CellValues; value++ {
		id := v.Cell(row, col, value)
		if id-1 < len(model) && model[id-1] > 0 {
			return value, nil
		}
	}
	return 0, fmt.Errorf("variables: no value assigned to cell (%d, %d)", row, col)
}
