package entities

import (
	"math/rand/v2"
	"strings"

	"github.com/fadedpez/highcard/internal/types"
)

// Randomizer is the random source used for shuffling. *rand.Rand from
// math/rand/v2 satisfies it.
type Randomizer interface {
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int { return rand.IntN(n) }

// DeckOption configures a Deck
type DeckOption func(*Deck)

// WithRandom sets the random source the deck shuffles with
func WithRandom(r Randomizer) DeckOption {
	return func(d *Deck) {
		if r != nil {
			d.random = r
		}
	}
}

// Deck is an ordered pile of cards. Index 0 is the top.
type Deck struct {
	cards  []*Card
	random Randomizer
}

// NewEmptyDeck creates a deck with no cards
func NewEmptyDeck(opts ...DeckOption) *Deck {
	d := &Deck{
		cards:  make([]*Card, 0),
		random: globalRandom{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewDeckFromCards creates a deck from the given cards, skipping nil
// entries, and shuffles it
func NewDeckFromCards(cards []*Card, opts ...DeckOption) *Deck {
	d := NewEmptyDeck(opts...)
	d.Reshuffle(cards)
	return d
}

// NewStandardDeck creates an unshuffled 52-card deck: Hearts, Clubs,
// Diamonds, Spades, each from Ace (1) to King (13)
func NewStandardDeck(opts ...DeckOption) *Deck {
	d := NewEmptyDeck(opts...)
	d.cards = make([]*Card, 0, len(standardSuits)*len(standardRanks))

	for _, suit := range standardSuits {
		for i, rank := range standardRanks {
			d.cards = append(d.cards, MustCard(rank, suit, i+1))
		}
	}

	return d
}

// Size returns the number of cards in the deck
func (d *Deck) Size() int {
	return len(d.cards)
}

// Cards returns a copy of the deck from top to bottom
func (d *Deck) Cards() []*Card {
	cards := make([]*Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// Draw removes and returns the top card. It returns false if the deck is empty.
func (d *Deck) Draw() (*Card, bool) {
	if len(d.cards) == 0 {
		return nil, false
	}
	card := d.cards[0]
	d.cards[0] = nil
	d.cards = d.cards[1:]
	return card, true
}

// AddCard puts a card on the bottom of the deck
func (d *Deck) AddCard(card *Card) error {
	if card == nil {
		return types.MissingArgument("cannot add null card to deck")
	}
	d.cards = append(d.cards, card)
	return nil
}

// RemoveCard removes and returns the first card equal to card, searching
// from the top. It returns false if no such card is in the deck.
func (d *Deck) RemoveCard(card *Card) (*Card, bool, error) {
	if card == nil {
		return nil, false, types.MissingArgument("cannot remove null card from deck")
	}
	for i, c := range d.cards {
		if c.Equal(card) {
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			return c, true, nil
		}
	}
	return nil, false, nil
}

// Shuffle randomly reorders the deck in place (Fisher-Yates)
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.random.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Reshuffle adds each non-nil card to the bottom of the deck, then shuffles
func (d *Deck) Reshuffle(cards []*Card) {
	for _, c := range cards {
		if c != nil {
			d.cards = append(d.cards, c)
		}
	}
	d.Shuffle()
}

// String lists the deck from top to bottom
func (d *Deck) String() string {
	names := make([]string, len(d.cards))
	for i, c := range d.cards {
		names[i] = c.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}
