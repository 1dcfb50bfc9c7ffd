package entities

import (
	"testing"

	"github.com/fadedpez/highcard/internal/types"
	"github.com/stretchr/testify/suite"
)

type DiscardPileTestSuite struct {
	suite.Suite
	pile *DiscardPile
}

func TestDiscardPileSuite(t *testing.T) {
	suite.Run(t, new(DiscardPileTestSuite))
}

func (s *DiscardPileTestSuite) SetupTest() {
	s.pile = NewDiscardPile()
}

func (s *DiscardPileTestSuite) TestString() {
	// Setup
	s.Require().NoError(s.pile.AddCard(MustCard("Jack", Spades, 11)))
	s.Require().NoError(s.pile.AddCard(MustCard("3", Hearts, 3)))

	// Assert
	s.Equal("Jack of Spades, 3 of Hearts.", s.pile.String())
	s.Equal("", NewDiscardPile().String(), "Empty pile should render as empty string")
}

func (s *DiscardPileTestSuite) TestAddNilCard() {
	// Setup
	s.Require().NoError(s.pile.AddCard(MustCard("2", Clubs, 2)))

	// Execute
	err := s.pile.AddCard(nil)

	// Assert
	s.True(types.IsGameError(err, types.ErrInvalidArgument), "Should fail with INVALID_ARGUMENT")
	s.Equal(1, s.pile.Size(), "Size should be unchanged")
}

func (s *DiscardPileTestSuite) TestRoundTrip() {
	// Setup
	s.Require().NoError(s.pile.AddCard(MustCard("7", Diamonds, 7)))
	before := s.pile.Size()
	s.Require().NoError(s.pile.AddCard(MustCard("King", Clubs, 13)))

	// Execute
	removed, ok, err := s.pile.RemoveCard(MustCard("King", Clubs, 13))

	// Assert
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("King of Clubs", removed.String())
	s.Equal(before, s.pile.Size(), "Pile should be back to its prior size")
}

func (s *DiscardPileTestSuite) TestRemoveNotFound() {
	// Setup
	s.Require().NoError(s.pile.AddCard(MustCard("7", Diamonds, 7)))

	// Execute
	removed, ok, err := s.pile.RemoveCard(MustCard("7", Hearts, 7))

	// Assert
	s.NoError(err, "Missing card is not an error")
	s.False(ok)
	s.Nil(removed)
	s.Equal(1, s.pile.Size())
}

func (s *DiscardPileTestSuite) TestRemoveNil() {
	_, _, err := s.pile.RemoveCard(nil)
	s.True(types.IsGameError(err, types.ErrInvalidArgument))
}

func (s *DiscardPileTestSuite) TestRemoveFirstOfDuplicates() {
	// Setup
	first := MustCard("5", Spades, 5)
	second := MustCard("5", Spades, 5)
	s.Require().NoError(s.pile.AddCard(first))
	s.Require().NoError(s.pile.AddCard(MustCard("6", Spades, 6)))
	s.Require().NoError(s.pile.AddCard(second))

	// Execute
	removed, ok, err := s.pile.RemoveCard(MustCard("5", Spades, 5))

	// Assert
	s.Require().NoError(err)
	s.True(ok)
	s.Same(first, removed, "The first match in insertion order should be removed")
	s.Equal("6 of Spades, 5 of Spades.", s.pile.String())
}

func (s *DiscardPileTestSuite) TestRemoveAll() {
	// Setup
	pile := NewDiscardPileFromCards([]*Card{MustCard("Ace", Hearts, 1), nil, MustCard("2", Hearts, 2)})
	s.Equal(2, pile.Size(), "Nil entries should be skipped")

	// Execute
	all := pile.RemoveAll()

	// Assert
	s.Len(all, 2)
	s.Zero(pile.Size())
	s.Equal("", pile.String())

	empty := pile.RemoveAll()
	s.NotNil(empty)
	s.Empty(empty)
}
