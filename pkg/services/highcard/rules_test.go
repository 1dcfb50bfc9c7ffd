package highcard

import (
	"testing"

	"github.com/fadedpez/highcard/internal/types"
	"github.com/fadedpez/highcard/pkg/entities"
	"github.com/stretchr/testify/suite"
)

type RulesTestSuite struct {
	suite.Suite
}

func TestRulesSuite(t *testing.T) {
	suite.Run(t, new(RulesTestSuite))
}

func (s *RulesTestSuite) newPlayer(cards ...*entities.Card) *entities.Player {
	player, err := entities.NewPlayer("Ada", 36, cards...)
	s.Require().NoError(err)
	return player
}

func (s *RulesTestSuite) TestHighestCard() {
	testCases := []struct {
		name     string
		hand     []*entities.Card
		expected string
	}{
		{
			name:     "single card",
			hand:     []*entities.Card{entities.MustCard("4", entities.Clubs, 4)},
			expected: "4 of Clubs",
		},
		{
			name: "highest in the middle",
			hand: []*entities.Card{
				entities.MustCard("2", entities.Hearts, 2),
				entities.MustCard("King", entities.Spades, 13),
				entities.MustCard("9", entities.Diamonds, 9),
			},
			expected: "King of Spades",
		},
		{
			name: "equal fives keep the first",
			hand: []*entities.Card{
				entities.MustCard("5", entities.Clubs, 5),
				entities.MustCard("5", entities.Hearts, 5),
			},
			expected: "5 of Clubs",
		},
		{
			name: "tie goes to the topmost card",
			hand: []*entities.Card{
				entities.MustCard("3", entities.Hearts, 3),
				entities.MustCard("Queen", entities.Clubs, 12),
				entities.MustCard("Queen", entities.Hearts, 12),
			},
			expected: "Queen of Clubs",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			card, err := HighestCard(s.newPlayer(tc.hand...))
			s.Require().NoError(err)
			s.Equal(tc.expected, card.String())
		})
	}
}

func (s *RulesTestSuite) TestHighestCardLeavesHandAlone() {
	// Setup
	player := s.newPlayer(entities.MustCard("5", entities.Clubs, 5), entities.MustCard("8", entities.Clubs, 8))

	// Execute
	_, err := HighestCard(player)

	// Assert
	s.Require().NoError(err)
	s.Equal(2, player.Size())
}

func (s *RulesTestSuite) TestHighestCardEmptyHand() {
	card, err := HighestCard(s.newPlayer())
	s.Nil(card)
	s.True(types.IsGameError(err, types.ErrInvalidState))
}

func (s *RulesTestSuite) TestHighestCardNilPlayer() {
	card, err := HighestCard(nil)
	s.Nil(card)
	s.True(types.IsGameError(err, types.ErrInvalidArgument))
}

func (s *RulesTestSuite) TestCompareRound() {
	ace := *entities.MustCard("Ace", entities.Spades, 1)
	seven := *entities.MustCard("7", entities.Hearts, 7)
	otherSeven := *entities.MustCard("7", entities.Clubs, 7)

	s.Equal(entities.OutcomeWinB, CompareRound(ace, seven), "Ace is low")
	s.Equal(entities.OutcomeWinA, CompareRound(seven, ace))
	s.Equal(entities.OutcomeTie, CompareRound(seven, otherSeven), "Suits do not break ties")
}
