package blitz21

import (
	"testing"

	"github.com/vovakirdan/cardfall/internal/cards"
)

func card(r cards.Rank, s cards.Suit) cards.Card {
	return cards.Card{Rank: r, Suit: s}
}

func TestBoardPlaceAndRemove(t *testing.T) {
	b := NewBoard(4, 4)

	c := card(cards.Seven, cards.Hearts)
	if !b.Place(1, 2, c) {
		t.Fatal("Place on empty cell failed")
	}
	if b.Place(1, 2, card(cards.King, cards.Spades)) {
		t.Error("Place on occupied cell should fail")
	}

	got, ok := b.CardAt(1, 2)
	if !ok || got != c {
		t.Errorf("CardAt(1,2) = %v, %v; want %v, true", got, ok, c)
	}

	removed, ok := b.Remove(1, 2)
	if !ok || removed != c {
		t.Errorf("Remove(1,2) = %v, %v; want %v, true", removed, ok, c)
	}
	if _, ok := b.CardAt(1, 2); ok {
		t.Error("cell still occupied after Remove")
	}
	if _, ok := b.Remove(1, 2); ok {
		t.Error("Remove on empty cell reported a card")
	}
}

func TestBoardBoundsArePlainBlocked(t *testing.T) {
	b := NewBoard(3, 3)

	outside := []Point{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {-1, -1}, {3, 3}}
	for _, p := range outside {
		if b.Empty(p.X, p.Y) {
			t.Errorf("Empty(%d,%d) = true outside the grid", p.X, p.Y)
		}
		if b.Place(p.X, p.Y, card(cards.Two, cards.Clubs)) {
			t.Errorf("Place(%d,%d) succeeded outside the grid", p.X, p.Y)
		}
	}
}

func TestBoardCompact(t *testing.T) {
	b := NewBoard(2, 5)

	// Column 0: cards at rows 0 and 2 with gaps below.
	top := card(cards.Ace, cards.Spades)
	mid := card(cards.Nine, cards.Diamonds)
	b.Place(0, 0, top)
	b.Place(0, 2, mid)

	if !b.Compact() {
		t.Fatal("Compact reported no movement")
	}

	// Relative vertical order must survive the slide.
	if got, ok := b.CardAt(0, 4); !ok || got != mid {
		t.Errorf("bottom cell = %v, %v; want %v", got, ok, mid)
	}
	if got, ok := b.CardAt(0, 3); !ok || got != top {
		t.Errorf("cell above bottom = %v, %v; want %v", got, ok, top)
	}
	for y := 0; y < 3; y++ {
		if _, ok := b.CardAt(0, y); ok {
			t.Errorf("cell (0,%d) still occupied after Compact", y)
		}
	}

	if b.Compact() {
		t.Error("second Compact on a settled board reported movement")
	}
}

func TestBoardCompactLeavesNoFloaters(t *testing.T) {
	b := NewBoard(3, 6)
	b.Place(0, 1, card(cards.Five, cards.Hearts))
	b.Place(0, 3, card(cards.Six, cards.Hearts))
	b.Place(2, 0, card(cards.King, cards.Clubs))
	b.Compact()

	for x := 0; x < b.Width(); x++ {
		support := true
		for y := b.Height() - 1; y >= 0; y-- {
			_, occupied := b.CardAt(x, y)
			if occupied && !support {
				t.Errorf("floating card at (%d,%d)", x, y)
			}
			support = support && occupied
		}
	}
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := NewBoard(3, 3)
	b.Place(1, 1, card(cards.Queen, cards.Hearts))

	clone := b.Clone()
	clone.Remove(1, 1)
	clone.Place(0, 0, card(cards.Two, cards.Spades))

	if _, ok := b.CardAt(1, 1); !ok {
		t.Error("mutating the clone removed a card from the original")
	}
	if _, ok := b.CardAt(0, 0); ok {
		t.Error("mutating the clone added a card to the original")
	}
}

func TestBoardOccupiedCount(t *testing.T) {
	b := NewBoard(4, 4)
	if b.OccupiedCount() != 0 {
		t.Fatalf("empty board count = %d", b.OccupiedCount())
	}
	b.Place(0, 0, card(cards.Ace, cards.Clubs))
	b.Place(3, 3, card(cards.King, cards.Hearts))
	if got := b.OccupiedCount(); got != 2 {
		t.Errorf("OccupiedCount = %d, want 2", got)
	}
}
