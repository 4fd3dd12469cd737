package blitz21

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/cardfall/internal/cards"
)

func TestCanReach21(t *testing.T) {
	tests := []struct {
		minSum int
		aces   int
		want   bool
	}{
		{21, 0, true},  // exact with every Ace low
		{20, 0, false}, // off by one, nothing to promote
		{11, 1, true}, // one Ace promoted covers the gap of 10
		{11, 0, false},
		{1, 1, false},  // gap 20 but only one Ace
		{11, 2, true},  // A+A+9: promote one Ace
		{12, 2, false}, // gap 9 is not a multiple of 10
		{22, 5, false}, // already over
	}
	for _, tt := range tests {
		if got := canReach21(tt.minSum, tt.aces); got != tt.want {
			t.Errorf("canReach21(%d, %d) = %v, want %v", tt.minSum, tt.aces, got, tt.want)
		}
	}
}

func TestVerticalRunWithLowAce(t *testing.T) {
	// 10  A  10 stacked in one column: the Ace counts low and the full
	// column sums to 21. The shorter Ace-high pairs inside it lose to
	// the longer run.
	b := NewBoard(4, 4)
	b.Place(0, 1, card(cards.Ten, cards.Clubs))
	b.Place(0, 2, card(cards.Ace, cards.Hearts))
	b.Place(0, 3, card(cards.Ten, cards.Diamonds))

	clears := FindClears(b, ModeEasy)
	if len(clears) != 1 {
		t.Fatalf("FindClears returned %d paths, want 1: %v", len(clears), clears)
	}
	want := Path{{0, 1}, {0, 2}, {0, 3}}
	if !reflect.DeepEqual(clears[0], want) {
		t.Errorf("accepted path = %v, want %v", clears[0], want)
	}
}

func TestAceHighPair(t *testing.T) {
	b := NewBoard(3, 3)
	b.Place(0, 2, card(cards.King, cards.Spades))
	b.Place(1, 2, card(cards.Ace, cards.Spades))

	clears := FindClears(b, ModeEasy)
	if len(clears) != 1 || len(clears[0]) != 2 {
		t.Fatalf("King+Ace pair not accepted: %v", clears)
	}
}

func TestHardModeRequiresSingleSuit(t *testing.T) {
	// Mixed suits: valid in Easy, nothing in Hard.
	b := NewBoard(4, 4)
	b.Place(0, 1, card(cards.Ten, cards.Clubs))
	b.Place(0, 2, card(cards.Ace, cards.Hearts))
	b.Place(0, 3, card(cards.Ten, cards.Diamonds))

	if got := FindClears(b, ModeEasy); len(got) == 0 {
		t.Error("Easy mode rejected a mixed-suit run")
	}
	if got := FindClears(b, ModeHard); len(got) != 0 {
		t.Errorf("Hard mode accepted mixed suits: %v", got)
	}

	// Same shape, all Hearts: Hard accepts.
	b2 := NewBoard(4, 4)
	b2.Place(0, 1, card(cards.Ten, cards.Hearts))
	b2.Place(0, 2, card(cards.Ace, cards.Hearts))
	b2.Place(0, 3, card(cards.Ten, cards.Hearts))

	if got := FindClears(b2, ModeHard); len(got) != 1 {
		t.Errorf("Hard mode rejected a single-suit run: %v", got)
	}
}

func TestDiagonalsAreNotAdjacent(t *testing.T) {
	b := NewBoard(3, 3)
	b.Place(0, 2, card(cards.King, cards.Spades))
	b.Place(1, 2, card(cards.Nine, cards.Hearts)) // support, no 21 with either
	b.Place(1, 1, card(cards.Ace, cards.Spades))  // diagonal from the King

	for _, p := range FindPaths(b, ModeEasy) {
		t.Errorf("unexpected path on diagonal-only board: %v", p)
	}
}

func TestBentPathThroughCorner(t *testing.T) {
	// 5 6 K laid in an L: (0,1)-(0,2)-(1,2). Paths may turn at every step.
	b := NewBoard(3, 3)
	b.Place(0, 1, card(cards.Five, cards.Spades))
	b.Place(0, 2, card(cards.Six, cards.Hearts))
	b.Place(1, 2, card(cards.King, cards.Diamonds))

	clears := FindClears(b, ModeEasy)
	if len(clears) != 1 || len(clears[0]) != 3 {
		t.Fatalf("bent 5+6+10 run not accepted: %v", clears)
	}
}

func TestLongerPathWinsOverlap(t *testing.T) {
	// K A Q in a row: the Ace-high pairs K+A and A+Q both sum to 21, but
	// the full ace-low triple 10+1+10 covers them and wins on length.
	b := NewBoard(3, 3)
	b.Place(0, 2, card(cards.King, cards.Diamonds))
	b.Place(1, 2, card(cards.Ace, cards.Spades))
	b.Place(2, 2, card(cards.Queen, cards.Clubs))

	clears := FindClears(b, ModeEasy)
	if len(clears) != 1 {
		t.Fatalf("FindClears = %v, want one path", clears)
	}
	if len(clears[0]) != 3 {
		t.Errorf("accepted path length = %d, want 3", len(clears[0]))
	}
}

func TestEqualLengthTieGoesTopLeft(t *testing.T) {
	// A K A in a row: two overlapping Ace-high pairs share the King and
	// the triple busts (1+10+1 leaves a gap of 9). The pair starting
	// closer to the top-left wins; the other Ace survives.
	b := NewBoard(3, 3)
	b.Place(0, 2, card(cards.Ace, cards.Hearts))
	b.Place(1, 2, card(cards.King, cards.Spades))
	b.Place(2, 2, card(cards.Ace, cards.Diamonds))

	clears := FindClears(b, ModeEasy)
	if len(clears) != 1 {
		t.Fatalf("FindClears = %v, want one path", clears)
	}
	want := Path{{0, 2}, {1, 2}}
	if !reflect.DeepEqual(clears[0], want) {
		t.Errorf("accepted path = %v, want %v", clears[0], want)
	}
}

func TestDisjointPathsBothAccepted(t *testing.T) {
	b := NewBoard(5, 3)
	b.Place(0, 2, card(cards.King, cards.Spades))
	b.Place(1, 2, card(cards.Ace, cards.Spades))
	// Gap at column 2 keeps the groups apart.
	b.Place(3, 2, card(cards.Queen, cards.Hearts))
	b.Place(4, 2, card(cards.Ace, cards.Hearts))

	clears := FindClears(b, ModeEasy)
	if len(clears) != 2 {
		t.Fatalf("FindClears = %v, want two disjoint pairs", clears)
	}
}

func TestNoPathsOnBustBoard(t *testing.T) {
	// Face cards everywhere: any run of two is 20, of three is 30.
	b := NewBoard(3, 3)
	for y := 1; y < 3; y++ {
		for x := 0; x < 3; x++ {
			b.Place(x, y, card(cards.King, cards.Clubs))
		}
	}
	if got := FindPaths(b, ModeEasy); len(got) != 0 {
		t.Errorf("FindPaths on all-Kings board = %v, want none", got)
	}
}

func TestFindPathsDeterministic(t *testing.T) {
	b := NewBoard(4, 4)
	deals := []struct {
		x, y int
		c    cards.Card
	}{
		{0, 3, card(cards.Ten, cards.Clubs)},
		{1, 3, card(cards.Ace, cards.Hearts)},
		{2, 3, card(cards.Ten, cards.Diamonds)},
		{3, 3, card(cards.Ace, cards.Spades)},
		{0, 2, card(cards.Five, cards.Clubs)},
		{1, 2, card(cards.Six, cards.Hearts)},
	}
	for _, d := range deals {
		b.Place(d.x, d.y, d.c)
	}

	first := FindPaths(b, ModeEasy)
	second := FindPaths(b, ModeEasy)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two scans of the same board differ:\n%v\n%v", first, second)
	}
	if len(first) == 0 {
		t.Error("expected at least one path on this board")
	}
	for _, p := range first {
		if len(p) < 2 {
			t.Errorf("path shorter than two cards: %v", p)
		}
	}
}

func TestPathCanonicalOrientation(t *testing.T) {
	p := Path{{2, 1}, {1, 1}, {0, 1}}
	got := p.canonical(4)
	want := Path{{0, 1}, {1, 1}, {2, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("canonical(%v) = %v, want %v", p, got, want)
	}
	// Already oriented: unchanged.
	if !reflect.DeepEqual(want.canonical(4), want) {
		t.Error("canonical reoriented an already-canonical path")
	}
}
