package entities

import (
	"strings"

	"github.com/fadedpez/highcard/internal/types"
)

// DiscardPile holds discarded cards in the order they were added
type DiscardPile struct {
	pile []*Card
}

// NewDiscardPile creates an empty discard pile
func NewDiscardPile() *DiscardPile {
	return &DiscardPile{pile: make([]*Card, 0)}
}

// NewDiscardPileFromCards creates a discard pile holding the non-nil cards given
func NewDiscardPileFromCards(cards []*Card) *DiscardPile {
	p := NewDiscardPile()
	for _, c := range cards {
		if c != nil {
			p.pile = append(p.pile, c)
		}
	}
	return p
}

// Size returns the number of cards in the pile
func (p *DiscardPile) Size() int {
	return len(p.pile)
}

// Cards returns a copy of the pile in insertion order
func (p *DiscardPile) Cards() []*Card {
	cards := make([]*Card, len(p.pile))
	copy(cards, p.pile)
	return cards
}

// AddCard adds a card to the pile
func (p *DiscardPile) AddCard(card *Card) error {
	if card == nil {
		return types.InvalidArgument("cannot add null card to discard pile")
	}
	p.pile = append(p.pile, card)
	return nil
}

// RemoveCard removes and returns the first card equal to card.
// It returns false if no such card is in the pile.
func (p *DiscardPile) RemoveCard(card *Card) (*Card, bool, error) {
	if card == nil {
		return nil, false, types.InvalidArgument("cannot remove null card from discard pile")
	}
	for i, c := range p.pile {
		if c.Equal(card) {
			p.pile = append(p.pile[:i], p.pile[i+1:]...)
			return c, true, nil
		}
	}
	return nil, false, nil
}

// RemoveAll empties the pile and returns everything that was in it
func (p *DiscardPile) RemoveAll() []*Card {
	all := p.pile
	p.pile = make([]*Card, 0)
	return all
}

// String lists the pile as "a, b, c." or "" when empty
func (p *DiscardPile) String() string {
	if len(p.pile) == 0 {
		return ""
	}

	names := make([]string, len(p.pile))
	for i, c := range p.pile {
		names[i] = c.String()
	}
	return strings.Join(names, ", ") + "."
}
