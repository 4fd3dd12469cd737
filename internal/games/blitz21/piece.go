package blitz21

import (
	"github.com/vovakirdan/cardfall/internal/cards"
)

// Piece is the active falling card. Only the logical grid position exists
// here; any smooth-motion interpolation is a renderer concern and never
// feeds back into collision or combination logic.
type Piece struct {
	Card cards.Card
	X    int
	Y    int
}

// MoveLeft shifts the piece one column left if the target cell is free.
// A blocked move is a no-op, not an error.
func (p *Piece) MoveLeft(b *Board) bool {
	if !b.Empty(p.X-1, p.Y) {
		return false
	}
	p.X--
	return true
}

// MoveRight shifts the piece one column right if the target cell is free.
func (p *Piece) MoveRight(b *Board) bool {
	if !b.Empty(p.X+1, p.Y) {
		return false
	}
	p.X++
	return true
}

// Descend moves the piece one row down. Returns false when the move is
// blocked by the floor or a settled card, which means the piece must lock.
func (p *Piece) Descend(b *Board) bool {
	if !b.Empty(p.X, p.Y+1) {
		return false
	}
	p.Y++
	return true
}

// Drop moves the piece straight down to its resting row and returns how
// many rows it fell.
func (p *Piece) Drop(b *Board) int {
	rows := 0
	for p.Descend(b) {
		rows++
	}
	return rows
}
