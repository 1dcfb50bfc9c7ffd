package highcard

import (
	"github.com/fadedpez/highcard/internal/types"
	"github.com/fadedpez/highcard/pkg/entities"
)

// HighestCard returns the card with the highest value in the player's hand.
// Ties go to the card nearest the top of the hand.
func HighestCard(player *entities.Player) (*entities.Card, error) {
	if player == nil {
		return nil, types.InvalidArgument("player cannot be null")
	}

	hand := player.Hand()
	if len(hand) == 0 {
		return nil, types.NewGameError(types.ErrInvalidState, player.Name()+" has no cards to play")
	}

	highest := hand[0]
	for _, card := range hand[1:] {
		if card.Value() > highest.Value() {
			highest = card
		}
	}
	return highest, nil
}

// CompareRound decides a round between card a and card b by value
func CompareRound(a, b entities.Card) entities.Outcome {
	switch {
	case a.Value() > b.Value():
		return entities.OutcomeWinA
	case b.Value() > a.Value():
		return entities.OutcomeWinB
	default:
		return entities.OutcomeTie
	}
}
