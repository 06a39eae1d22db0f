package grid

import (
	"fmt"
	"strings"

	"github.com/crossplay/xwordsat/pkg/alphabet"
)

// Grid is a rectangular arrangement of cells, each either a letter, an
// empty cell waiting to be filled, or a block.
type Grid struct {
	rows  []string
	slots []Slot
}

// New parses input into a Grid. Rows are separated by newlines; every
// row must have the same number of columns, and every character must be
// Empty, Block, or an alphabet letter. New also computes the grid's
// slots, so a successfully parsed Grid is always ready to use.
func New(input string) (*Grid, error) {
	rows := strings.Split(input, "\n")
	if err := validate(rows); err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}
	g := &Grid{rows: rows}
	g.slots = computeSlots(g)
	return g, nil
}

func validate(rows []string) error {
	if len(rows) == 0 {
		return nil
	}
	firstLen := len(rows[0])
	for i, row := range rows {
		if len(row) != firstLen {
			return fmt.Errorf("inconsistent number of columns: row %d has %d columns but row 0 has %d", i, len(row), firstLen)
		}
		for _, ch := range []byte(row) {
			if !isValidCellChar(ch) {
				return fmt.Errorf("invalid character at row %d: %q", i, ch)
			}
		}
	}
	return nil
}

func isValidCellChar(ch byte) bool {
	if ch == Empty || ch == Block {
		return true
	}
	return alphabet.Contains(ch)
}

// RowCount returns the number of rows in the grid.
func (g *Grid) RowCount() int {
	return len(g.rows)
}

// ColCount returns the number of columns in the grid, or 0 for an empty grid.
func (g *Grid) ColCount() int {
	if len(g.rows) == 0 {
		return 0
	}
	return len(g.rows[0])
}

// LetterAt returns the character at (row, col): a letter, Empty, or Block.
func (g *Grid) LetterAt(row, col int) byte {
	return g.rows[row][col]
}

// Slots returns the grid's slots, across slots first (row by row), then
// down slots (column by column). The returned slice must not be mutated.
func (g *Grid) Slots() []Slot {
	return g.slots
}
