package blitz21

import (
	"testing"

	"github.com/vovakirdan/cardfall/internal/cards"
)

func TestResolveNoClears(t *testing.T) {
	b := NewBoard(3, 3)
	b.Place(0, 2, card(cards.Nine, cards.Hearts))
	b.Place(1, 2, card(cards.Nine, cards.Spades))

	steps := Resolve(b, ModeEasy)
	if len(steps) != 0 {
		t.Errorf("Resolve = %v on a board with no runs", steps)
	}
	if b.OccupiedCount() != 2 {
		t.Errorf("Resolve mutated a board with no runs: %d cards left", b.OccupiedCount())
	}
}

func TestResolveSingleStep(t *testing.T) {
	b := NewBoard(3, 3)
	b.Place(0, 2, card(cards.King, cards.Spades))
	b.Place(1, 2, card(cards.Ace, cards.Spades))

	steps := Resolve(b, ModeEasy)
	if len(steps) != 1 {
		t.Fatalf("Resolve produced %d steps, want 1", len(steps))
	}
	if steps[0].Removed != 2 {
		t.Errorf("step removed %d cards, want 2", steps[0].Removed)
	}
	if b.OccupiedCount() != 0 {
		t.Errorf("board not empty after resolve: %d cards", b.OccupiedCount())
	}
}

func TestResolveCascade(t *testing.T) {
	// Bottom row: 6 8 Q A. The Queen+Ace pair clears first; the 7 parked
	// on the Queen falls into the gap and completes 6+8+7 on the second
	// pass.
	b := NewBoard(4, 3)
	b.Place(0, 2, card(cards.Six, cards.Diamonds))
	b.Place(1, 2, card(cards.Eight, cards.Clubs))
	b.Place(2, 2, card(cards.Queen, cards.Spades))
	b.Place(3, 2, card(cards.Ace, cards.Hearts))
	b.Place(2, 1, card(cards.Seven, cards.Hearts))

	steps := Resolve(b, ModeEasy)
	if len(steps) != 2 {
		t.Fatalf("Resolve produced %d steps, want 2: %v", len(steps), steps)
	}
	if steps[0].Removed != 2 {
		t.Errorf("first step removed %d, want 2 (Queen+Ace)", steps[0].Removed)
	}
	if steps[1].Removed != 3 {
		t.Errorf("second step removed %d, want 3 (6+8+7)", steps[1].Removed)
	}
	if b.OccupiedCount() != 0 {
		t.Errorf("board not empty after cascade: %d cards", b.OccupiedCount())
	}
}

func TestResolveCascadeScoring(t *testing.T) {
	b := NewBoard(4, 3)
	b.Place(0, 2, card(cards.Six, cards.Diamonds))
	b.Place(1, 2, card(cards.Eight, cards.Clubs))
	b.Place(2, 2, card(cards.Queen, cards.Spades))
	b.Place(3, 2, card(cards.Ace, cards.Hearts))
	b.Place(2, 1, card(cards.Seven, cards.Hearts))

	steps := Resolve(b, ModeEasy)
	scoring := Scoring{PointsPerCard: 21, CascadeBonus: 50}

	// 2 cards, then 3 cards plus the cascade bonus.
	want := 21*2 + 21*3 + 50
	if got := scoring.TotalPoints(steps); got != want {
		t.Errorf("TotalPoints = %d, want %d", got, want)
	}
}

func TestResolveLeavesBoardCompacted(t *testing.T) {
	b := NewBoard(3, 4)
	b.Place(0, 3, card(cards.King, cards.Spades))
	b.Place(0, 2, card(cards.Ace, cards.Spades)) // clears with the King
	b.Place(0, 1, card(cards.Nine, cards.Hearts))
	b.Place(0, 0, card(cards.Nine, cards.Clubs))

	Resolve(b, ModeEasy)

	for x := 0; x < b.Width(); x++ {
		support := true
		for y := b.Height() - 1; y >= 0; y-- {
			_, occupied := b.CardAt(x, y)
			if occupied && !support {
				t.Errorf("floating card at (%d,%d) after resolve", x, y)
			}
			support = support && occupied
		}
	}
	if b.OccupiedCount() != 2 {
		t.Errorf("expected the two nines to survive, got %d cards", b.OccupiedCount())
	}
}
