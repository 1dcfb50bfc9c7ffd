package entities

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fadedpez/highcard/internal/types"
)

// Suit names of the standard deck, in canonical deck order
const (
	Hearts   = "Hearts"
	Clubs    = "Clubs"
	Diamonds = "Diamonds"
	Spades   = "Spades"
)

// Rank names of the standard deck, Ace low
const (
	Ace   = "Ace"
	Jack  = "Jack"
	Queen = "Queen"
	King  = "King"
)

var (
	standardSuits = []string{Hearts, Clubs, Diamonds, Spades}
	standardRanks = []string{Ace, "2", "3", "4", "5", "6", "7", "8", "9", "10", Jack, Queen, King}
)

// Card represents a playing card. Cards are immutable values; two cards are
// the same card when rank, suit and value all match.
type Card struct {
	rank  string
	suit  string
	value int
}

// CardSpec is the loose form of a card as read from a file, where rank and
// suit may be absent entirely.
type CardSpec struct {
	Rank  *string `json:"rank" toml:"rank"`
	Suit  *string `json:"suit" toml:"suit"`
	Value int     `json:"value" toml:"value"`
}

// NewCard creates a new card
func NewCard(rank, suit string, value int) (*Card, error) {
	if strings.TrimSpace(rank) == "" {
		return nil, types.InvalidArgument("card rank cannot be empty")
	}
	if strings.TrimSpace(suit) == "" {
		return nil, types.InvalidArgument("card suit cannot be empty")
	}
	if value < 0 {
		return nil, types.InvalidArgument("card value cannot be negative")
	}

	return &Card{
		rank:  strings.TrimSpace(rank),
		suit:  strings.TrimSpace(suit),
		value: value,
	}, nil
}

// MustCard is like NewCard but panics on invalid input
func MustCard(rank, suit string, value int) *Card {
	c, err := NewCard(rank, suit, value)
	if err != nil {
		panic(err)
	}
	return c
}

// Card validates the spec and builds the card it describes
func (s CardSpec) Card() (*Card, error) {
	if s.Rank == nil {
		return nil, types.MissingArgument("card rank cannot be null")
	}
	if s.Suit == nil {
		return nil, types.MissingArgument("card suit cannot be null")
	}
	return NewCard(*s.Rank, *s.Suit, s.Value)
}

// Rank returns the card's rank name
func (c Card) Rank() string {
	return c.rank
}

// Suit returns the card's suit name
func (c Card) Suit() string {
	return c.suit
}

// Value returns the card's comparison value
func (c Card) Value() int {
	return c.value
}

// Equal reports whether both cards have the same rank, suit and value
func (c *Card) Equal(other *Card) bool {
	if c == nil || other == nil {
		return c == other
	}
	return *c == *other
}

// String returns the string representation of the card
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.rank, c.suit)
}

// Spec returns the card in its serialisable form
func (c Card) Spec() CardSpec {
	rank, suit := c.rank, c.suit
	return CardSpec{Rank: &rank, Suit: &suit, Value: c.value}
}

// MarshalJSON implements json.Marshaler
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Spec())
}

// UnmarshalJSON implements json.Unmarshaler
func (c *Card) UnmarshalJSON(data []byte) error {
	var spec CardSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return err
	}
	card, err := spec.Card()
	if err != nil {
		return err
	}
	*c = *card
	return nil
}
