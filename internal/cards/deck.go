package cards

import "math/rand"

// Source supplies the next card to play. The game core only needs this
// capability; tests can inject a scripted source for full replayability.
type Source interface {
	Draw() Card
}

// Deck is a shuffled 52-card deck that reshuffles itself when exhausted.
// All randomness comes from the provided rand.Rand, so a seeded deck
// produces a deterministic draw sequence.
type Deck struct {
	rng   *rand.Rand
	cards []Card
}

// NewDeck creates a freshly shuffled deck driven by rng.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	d.reset()
	return d
}

// reset refills and shuffles the deck.
func (d *Deck) reset() {
	d.cards = d.cards[:0]
	for _, s := range Suits() {
		for _, r := range Ranks() {
			d.cards = append(d.cards, Card{Rank: r, Suit: s})
		}
	}
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card, reshuffling a fresh deck first
// when the current one runs out.
func (d *Deck) Draw() Card {
	if len(d.cards) == 0 {
		d.reset()
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c
}

// Remaining returns how many cards are left before the next reshuffle.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Scripted is a Source that replays a fixed card sequence, cycling when it
// reaches the end. Used for deterministic tests and replays.
type Scripted struct {
	cards []Card
	next  int
}

// NewScripted creates a scripted source from the given sequence.
// The sequence must be non-empty.
func NewScripted(seq []Card) *Scripted {
	return &Scripted{cards: seq}
}

// Draw returns the next card in the script.
func (s *Scripted) Draw() Card {
	c := s.cards[s.next%len(s.cards)]
	s.next++
	return c
}
