package highcard

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/fadedpez/highcard/internal/types"
	"github.com/fadedpez/highcard/pkg/entities"
	"github.com/fadedpez/highcard/pkg/repositories/game"
	mock_game "github.com/fadedpez/highcard/pkg/repositories/game/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ManagerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *mock_game.MockRepository
	manager *Manager
	players []*entities.Player
	nextID  int
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerSuite))
}

func (s *ManagerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mock_game.NewMockRepository(s.ctrl)
	s.nextID = 0
	s.manager = NewManager(s.repo, DefaultSettings(),
		WithRandomizer(rand.New(rand.NewPCG(7, 7))),
		WithIDGenerator(func() string {
			s.nextID++
			return fmt.Sprintf("match-%d", s.nextID)
		}),
	)
	s.players = s.newPlayers()
}

func (s *ManagerSuite) newPlayers(hands ...[]*entities.Card) []*entities.Player {
	names := []string{"Ada", "Grace"}
	players := make([]*entities.Player, len(names))
	for i, name := range names {
		var hand []*entities.Card
		if i < len(hands) {
			hand = hands[i]
		}
		p, err := entities.NewPlayer(name, 30+i, hand...)
		s.Require().NoError(err)
		players[i] = p
	}
	return players
}

func (s *ManagerSuite) TestNewManagerNilRepository() {
	s.Panics(func() { NewManager(nil, DefaultSettings()) })
}

func (s *ManagerSuite) TestPlayMatch() {
	// Setup
	var saved *entities.MatchResult
	s.repo.EXPECT().
		SaveMatchResult(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, result *entities.MatchResult) error {
			saved = result
			return nil
		})

	// Execute
	result, err := s.manager.PlayMatch(context.Background(), s.players)

	// Assert
	s.Require().NoError(err)
	s.Equal("match-1", result.ID)
	s.Same(result, saved, "The played result should be saved")
	s.Len(result.Rounds, DefaultRounds)

	points := result.Players[0].Points + result.Players[1].Points
	ties := 0
	for _, round := range result.Rounds {
		if round.Outcome == entities.OutcomeTie {
			ties++
		}
	}
	s.Equal(DefaultRounds, points+ties, "Every round awards one point or is a tie")
	s.Empty(s.manager.ListGames(), "Finished games should be released")
}

func (s *ManagerSuite) TestPlayMatchSaveError() {
	// Setup
	dbErr := types.NewGameError(types.ErrDatabaseError, "disk on fire")
	s.repo.EXPECT().SaveMatchResult(gomock.Any(), gomock.Any()).Return(dbErr)

	// Execute
	result, err := s.manager.PlayMatch(context.Background(), s.players)

	// Assert
	s.Nil(result)
	s.True(errors.Is(err, dbErr))
	s.True(types.IsGameError(err, types.ErrDatabaseError))
}

func (s *ManagerSuite) TestPlayMatchInvalidPlayers() {
	// Repository must not be touched
	result, err := s.manager.PlayMatch(context.Background(), s.players[:1])

	s.Nil(result)
	s.True(types.IsGameError(err, types.ErrNotEnoughPlayers))
}

func (s *ManagerSuite) TestPlayMatchCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := s.manager.PlayMatch(ctx, s.players)

	s.Nil(result)
	s.True(errors.Is(err, context.Canceled))
}

func (s *ManagerSuite) TestCreateGameRemovesStartingHands() {
	// Setup
	ace := entities.MustCard("Ace", entities.Hearts, 1)
	king := entities.MustCard("King", entities.Spades, 13)
	players := s.newPlayers([]*entities.Card{ace}, []*entities.Card{king})

	// Execute
	g, err := s.manager.CreateGame("seeded", players)

	// Assert
	s.Require().NoError(err)
	s.Equal(50, g.Deck.Size())
	for _, c := range g.Deck.Cards() {
		s.False(c.Equal(ace), "Held cards should not also be in the deck")
		s.False(c.Equal(king))
	}

	got, err := s.manager.GetGame("seeded")
	s.Require().NoError(err)
	s.Same(g, got)
	s.Equal([]string{"seeded"}, s.manager.ListGames())

	s.manager.RemoveGame("seeded")
	_, err = s.manager.GetGame("seeded")
	s.True(types.IsGameError(err, types.ErrGameNotFound))
}

func (s *ManagerSuite) TestCreateGameDuplicateCard() {
	testCases := []struct {
		name  string
		hands [][]*entities.Card
	}{
		{
			name: "held by both players",
			hands: [][]*entities.Card{
				{entities.MustCard("Queen", entities.Clubs, 12)},
				{entities.MustCard("Queen", entities.Clubs, 12)},
			},
		},
		{
			name: "not a standard card",
			hands: [][]*entities.Card{
				{entities.MustCard("Joker", "Stars", 0)},
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			g, err := s.manager.CreateGame("dup", s.newPlayers(tc.hands...))
			s.Nil(g)
			s.True(types.IsGameError(err, types.ErrInvalidArgument), "got %v", err)
		})
	}
}

func (s *ManagerSuite) TestCreateGameDuplicateID() {
	_, err := s.manager.CreateGame("same", s.newPlayers())
	s.Require().NoError(err)

	g, err := s.manager.CreateGame("same", s.newPlayers())

	s.Nil(g)
	s.True(types.IsGameError(err, types.ErrInvalidArgument))
}

func (s *ManagerSuite) TestCreateGameEmptyID() {
	_, err := s.manager.CreateGame("", s.players)
	s.True(types.IsGameError(err, types.ErrInvalidArgument))
}

func (s *ManagerSuite) TestSeededMatchesRepeat() {
	// Setup
	play := func() *entities.MatchResult {
		repo := game.NewMemoryRepository()
		m := NewManager(repo, DefaultSettings(), WithRandomizer(rand.New(rand.NewPCG(99, 1))))
		result, err := m.PlayMatch(context.Background(), s.newPlayers())
		s.Require().NoError(err)
		return result
	}

	// Execute
	first := play()
	second := play()

	// Assert
	s.NotEqual(first.ID, second.ID, "Match IDs should be unique")
	s.Require().Len(second.Rounds, len(first.Rounds))
	for i := range first.Rounds {
		s.Equal(first.Rounds[i].CardA, second.Rounds[i].CardA, "Same seed should play the same cards")
		s.Equal(first.Rounds[i].CardB, second.Rounds[i].CardB)
	}
}

func (s *ManagerSuite) TestPlayMatchWithMemoryRepository() {
	// Setup
	repo := game.NewMemoryRepository()
	observer := &recordingObserver{}
	m := NewManager(repo, Settings{Rounds: 3, HandSize: 4, PlayedCards: DiscardToPile}, WithManagerObserver(observer))

	// Execute
	result, err := m.PlayMatch(context.Background(), s.players)

	// Assert
	s.Require().NoError(err)
	stored, err := repo.GetMatchResult(context.Background(), result.ID)
	s.Require().NoError(err)
	s.Same(result, stored)
	s.Len(observer.rounds, 3)
	s.Len(observer.finished, 1)
}
