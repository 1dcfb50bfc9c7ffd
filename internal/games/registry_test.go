package games

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/fadedpez/highcard/internal/types"
	"github.com/fadedpez/highcard/pkg/entities"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RegistryTestSuite struct {
	suite.Suite
	registry *Registry
	factory  *MockFactory
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (s *RegistryTestSuite) SetupTest() {
	s.registry = NewRegistry()
	s.factory = &MockFactory{}
	s.factory.Test(s.T())
}

func (s *RegistryTestSuite) TestNewRegistry() {
	// Execute
	registry := NewRegistry()

	// Assert
	s.NotNil(registry, "Registry should not be nil")
	s.NotNil(registry.factories, "Factories map should be initialized")
	s.Empty(registry.factories, "Factories map should be empty")
}

func (s *RegistryTestSuite) TestRegisterGame() {
	// Setup
	gameName := "highcard"

	// Execute
	err := s.registry.RegisterGame(gameName, s.factory)

	// Assert
	s.NoError(err, "Should register game without error")
	factory, exists := s.registry.factories[gameName]
	s.True(exists, "Game should be registered")
	s.Equal(s.factory, factory, "Registered factory should match")
}

func (s *RegistryTestSuite) TestRegisterGameDuplicate() {
	// Setup
	gameName := "highcard"
	s.Require().NoError(s.registry.RegisterGame(gameName, s.factory))

	// Execute
	err := s.registry.RegisterGame(gameName, s.factory)

	// Assert
	s.Error(err, "Should return error when registering duplicate game")
	s.True(types.IsGameError(err, types.ErrInvalidArgument), "Should return InvalidArgument error")
}

func (s *RegistryTestSuite) TestRegisterNilFactory() {
	err := s.registry.RegisterGame("highcard", nil)
	s.True(types.IsGameError(err, types.ErrMissingArgument))
	s.Empty(s.registry.ListGames())
}

func (s *RegistryTestSuite) TestGetFactoryNotFound() {
	// Execute
	factory, err := s.registry.GetFactory("nonexistent_game")

	// Assert
	s.Error(err, "Should return error for nonexistent game")
	s.Nil(factory, "Factory should be nil")
	s.True(types.IsGameError(err, types.ErrGameNotFound), "Should return GameNotFound error")
}

func (s *RegistryTestSuite) TestCreateManager() {
	// Setup
	gameName := "highcard"
	mockManager := &MockManager{}
	s.factory.On("CreateManager").Return(mockManager)
	s.Require().NoError(s.registry.RegisterGame(gameName, s.factory))

	// Execute
	manager, err := s.registry.CreateManager(gameName)

	// Assert
	s.NoError(err, "Should create manager without error")
	s.Equal(mockManager, manager, "Should return correct manager")
	s.factory.AssertExpectations(s.T())
}

func (s *RegistryTestSuite) TestCreateManagerGameNotFound() {
	// Execute
	manager, err := s.registry.CreateManager("nonexistent_game")

	// Assert
	s.Nil(manager, "Manager should be nil")
	s.True(types.IsGameError(err, types.ErrGameNotFound), "Should return GameNotFound error")
}

func (s *RegistryTestSuite) TestManagerThroughRegistry() {
	// Setup
	result := &entities.MatchResult{ID: "match-1"}
	mockManager := &MockManager{}
	mockManager.On("PlayMatch", mock.Anything, mock.Anything).Return(result, nil)
	s.factory.On("CreateManager").Return(mockManager)
	s.Require().NoError(s.registry.RegisterGame("highcard", s.factory))

	// Execute
	manager, err := s.registry.CreateManager("highcard")
	s.Require().NoError(err)
	got, err := manager.PlayMatch(context.Background(), nil)

	// Assert
	s.NoError(err)
	s.Equal(result, got)
	mockManager.AssertExpectations(s.T())
}

func (s *RegistryTestSuite) TestGameThroughFactory() {
	// Setup
	result := &entities.MatchResult{ID: "g1"}
	mockGame := &MockGame{}
	mockGame.On("Play", mock.Anything).Return(result, nil)
	mockGame.On("IsFinished").Return(true)
	s.factory.On("CreateGame", "g1", mock.Anything).Return(mockGame, nil)
	s.Require().NoError(s.registry.RegisterGame("highcard", s.factory))

	// Execute
	factory, err := s.registry.GetFactory("highcard")
	s.Require().NoError(err)
	game, err := factory.CreateGame("g1", nil)
	s.Require().NoError(err)
	got, err := game.Play(context.Background())

	// Assert
	s.NoError(err)
	s.Same(result, got)
	s.True(game.IsFinished())
	mockGame.AssertExpectations(s.T())
}

func (s *RegistryTestSuite) TestListGames() {
	// Setup
	games := []string{"game3", "game1", "game2"}
	for _, game := range games {
		s.Require().NoError(s.registry.RegisterGame(game, s.factory))
	}

	// Execute
	registeredGames := s.registry.ListGames()

	// Assert
	s.Equal([]string{"game1", "game2", "game3"}, registeredGames, "Should return all registered games sorted")
}

func (s *RegistryTestSuite) TestConcurrentAccess() {
	// Setup
	var wg sync.WaitGroup
	numGoroutines := 10
	numOperations := 100

	// Execute concurrent reads and writes
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				if j%2 == 0 {
					_ = s.registry.RegisterGame(fmt.Sprintf("game_%d_%d", id, j), s.factory)
				} else {
					s.registry.ListGames()
				}
			}
		}(i)
	}
	wg.Wait()

	// Assert
	s.Len(s.registry.ListGames(), numGoroutines*numOperations/2)
}
