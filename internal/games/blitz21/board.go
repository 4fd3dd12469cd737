package blitz21

import (
	"github.com/vovakirdan/cardfall/internal/cards"
)

// Point is a grid position: X is the column, Y is the row, (0,0) top-left.
type Point struct {
	X, Y int
}

// cell holds an optional card. Value semantics keep board copies cheap
// and free of aliasing.
type cell struct {
	card     cards.Card
	occupied bool
}

// Board is the fixed-size grid of settled cards. The session is its only
// mutator; the combination finder only reads it.
type Board struct {
	width  int
	height int
	cells  [][]cell
}

// NewBoard creates an empty width x height board.
// Dimensions must be positive; config validation guarantees this upstream.
func NewBoard(width, height int) *Board {
	cells := make([][]cell, height)
	for y := range cells {
		cells[y] = make([]cell, width)
	}
	return &Board{width: width, height: height, cells: cells}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// InBounds reports whether (x, y) lies inside the grid.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Empty reports whether the cell is in bounds and unoccupied.
// Out-of-bounds cells count as blocked, which makes collision checks
// against walls and floor uniform.
func (b *Board) Empty(x, y int) bool {
	if !b.InBounds(x, y) {
		return false
	}
	return !b.cells[y][x].occupied
}

// CardAt returns the card at (x, y) and whether the cell is occupied.
func (b *Board) CardAt(x, y int) (cards.Card, bool) {
	if !b.InBounds(x, y) {
		return cards.Card{}, false
	}
	c := b.cells[y][x]
	return c.card, c.occupied
}

// Place writes a card into an empty cell. Returns false if the cell is
// occupied or out of bounds.
func (b *Board) Place(x, y int, card cards.Card) bool {
	if !b.Empty(x, y) {
		return false
	}
	b.cells[y][x] = cell{card: card, occupied: true}
	return true
}

// Remove clears the cell and returns the card that was there.
func (b *Board) Remove(x, y int) (cards.Card, bool) {
	if !b.InBounds(x, y) {
		return cards.Card{}, false
	}
	c := b.cells[y][x]
	b.cells[y][x] = cell{}
	return c.card, c.occupied
}

// OccupiedCount returns the number of occupied cells.
func (b *Board) OccupiedCount() int {
	count := 0
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x].occupied {
				count++
			}
		}
	}
	return count
}

// Compact applies gravity to every column independently: occupied cells
// slide to the bottom preserving their relative vertical order, vacated
// cells end up at the top. Returns true if any card moved.
func (b *Board) Compact() bool {
	moved := false
	for x := 0; x < b.width; x++ {
		writeY := b.height - 1
		for readY := b.height - 1; readY >= 0; readY-- {
			if !b.cells[readY][x].occupied {
				continue
			}
			if readY != writeY {
				b.cells[writeY][x] = b.cells[readY][x]
				b.cells[readY][x] = cell{}
				moved = true
			}
			writeY--
		}
	}
	return moved
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	clone := NewBoard(b.width, b.height)
	for y := range b.cells {
		copy(clone.cells[y], b.cells[y])
	}
	return clone
}
