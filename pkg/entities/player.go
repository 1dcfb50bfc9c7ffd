package entities

import (
	"fmt"
	"strings"

	"github.com/fadedpez/highcard/internal/types"
)

// Player is a named participant holding a hand of cards.
//
// The hand is stored bottom first: the last element is the top of the hand.
type Player struct {
	name string
	age  int
	hand []*Card
}

// NewPlayer creates a player. Starting cards are listed top to bottom;
// nil entries are skipped.
func NewPlayer(name string, age int, startingHand ...*Card) (*Player, error) {
	if strings.TrimSpace(name) == "" {
		return nil, types.InvalidArgument("player name cannot be empty")
	}
	if age < 0 {
		return nil, types.InvalidArgument("player age cannot be negative")
	}

	p := &Player{
		name: strings.TrimSpace(name),
		age:  age,
		hand: make([]*Card, 0, len(startingHand)),
	}
	for i := len(startingHand) - 1; i >= 0; i-- {
		if startingHand[i] != nil {
			p.hand = append(p.hand, startingHand[i])
		}
	}

	return p, nil
}

// Name returns the player's name
func (p *Player) Name() string {
	return p.name
}

// Age returns the player's age
func (p *Player) Age() int {
	return p.age
}

// Hand returns the player's cards from the top of the hand to the bottom
func (p *Player) Hand() []*Card {
	cards := make([]*Card, len(p.hand))
	for i := range p.hand {
		cards[i] = p.hand[len(p.hand)-1-i]
	}
	return cards
}

// Size returns the number of cards in the player's hand
func (p *Player) Size() int {
	return len(p.hand)
}

// Contains reports whether the hand holds a card equal to card
func (p *Player) Contains(card *Card) bool {
	return p.indexOf(card) >= 0
}

// Draw takes the top card of the deck onto the hand. Drawing from an empty
// deck leaves the hand unchanged.
func (p *Player) Draw(deck *Deck) error {
	if deck == nil {
		return types.InvalidArgument("deck cannot be null")
	}
	if card, ok := deck.Draw(); ok {
		p.hand = append(p.hand, card)
	}
	return nil
}

// DiscardCard moves card from the hand to the pile. It returns false and
// changes nothing if the card is not in the hand.
func (p *Player) DiscardCard(card *Card, pile *DiscardPile) (bool, error) {
	if card == nil {
		return false, types.InvalidArgument("card cannot be null")
	}
	if pile == nil {
		return false, types.InvalidArgument("discard pile cannot be null")
	}

	removed, ok := p.take(card)
	if !ok {
		return false, nil
	}
	if err := pile.AddCard(removed); err != nil {
		return false, err
	}
	return true, nil
}

// ReturnCard moves card from the hand to the bottom of the deck. It returns
// false and changes nothing if the card is not in the hand.
func (p *Player) ReturnCard(card *Card, deck *Deck) (bool, error) {
	if card == nil {
		return false, types.InvalidArgument("card cannot be null")
	}
	if deck == nil {
		return false, types.InvalidArgument("deck cannot be null")
	}

	removed, ok := p.take(card)
	if !ok {
		return false, nil
	}
	if err := deck.AddCard(removed); err != nil {
		return false, err
	}
	return true, nil
}

// take removes the first stored card equal to card
func (p *Player) take(card *Card) (*Card, bool) {
	i := p.indexOf(card)
	if i < 0 {
		return nil, false
	}
	removed := p.hand[i]
	p.hand = append(p.hand[:i], p.hand[i+1:]...)
	return removed, true
}

func (p *Player) indexOf(card *Card) int {
	for i, c := range p.hand {
		if c.Equal(card) {
			return i
		}
	}
	return -1
}

// String returns "name, age, top, ..., bottom."
func (p *Player) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s, %d", p.name, p.age)
	for i := len(p.hand) - 1; i >= 0; i-- {
		sb.WriteString(", ")
		sb.WriteString(p.hand[i].String())
	}
	sb.WriteString(".")
	return sb.String()
}
