// Package cards models a standard 52-card deck for blackjack-style games.
// Cards are immutable values; the deck is the only stateful type.
package cards

// Suit identifies one of the four french suits.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Symbol returns the unicode glyph for the suit.
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed reports whether the suit renders red (hearts and diamonds).
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Suits returns all four suits in a fixed order.
func Suits() []Suit {
	return []Suit{Spades, Hearts, Diamonds, Clubs}
}

// Rank identifies a card rank, Ace (1) through King (13).
type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Symbol returns the short display form of the rank ("A", "2", ..., "J").
func (r Rank) Symbol() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten:
		return [...]string{"2", "3", "4", "5", "6", "7", "8", "9", "10"}[r-Two]
	default:
		return "?"
	}
}

// BaseValue returns the blackjack value with Ace counted low.
// Face cards count 10; the Ace's high value is a game-logic concern.
func (r Rank) BaseValue() int {
	switch {
	case r == Ace:
		return 1
	case r >= Ten:
		return 10
	default:
		return int(r)
	}
}

// Ranks returns all thirteen ranks in ascending order.
func Ranks() []Rank {
	ranks := make([]Rank, 0, 13)
	for r := Ace; r <= King; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// Card is an immutable rank/suit pair.
type Card struct {
	Rank Rank
	Suit Suit
}

// IsAce reports whether the card is an Ace.
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// Values returns the possible blackjack values of the card:
// {1, 11} for an Ace, a single value for everything else.
func (c Card) Values() []int {
	if c.IsAce() {
		return []int{1, 11}
	}
	return []int{c.Rank.BaseValue()}
}

// String renders the card as rank symbol plus suit glyph, e.g. "A♥".
func (c Card) String() string {
	return c.Rank.Symbol() + c.Suit.Symbol()
}
