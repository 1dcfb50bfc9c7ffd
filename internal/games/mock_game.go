package games

import (
	"context"

	"github.com/fadedpez/highcard/pkg/entities"
	"github.com/stretchr/testify/mock"
)

// MockGame implements Game for testing
type MockGame struct {
	mock.Mock
}

func (m *MockGame) Play(ctx context.Context) (*entities.MatchResult, error) {
	args := m.Called(ctx)
	if result, ok := args.Get(0).(*entities.MatchResult); ok {
		return result, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGame) IsFinished() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockGame) String() string {
	args := m.Called()
	return args.String(0)
}

// MockManager implements Manager for testing
type MockManager struct {
	mock.Mock
}

func (m *MockManager) PlayMatch(ctx context.Context, players []*entities.Player) (*entities.MatchResult, error) {
	args := m.Called(ctx, players)
	if result, ok := args.Get(0).(*entities.MatchResult); ok {
		return result, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockFactory implements Factory for testing
type MockFactory struct {
	mock.Mock
}

func (m *MockFactory) CreateGame(id string, players []*entities.Player) (Game, error) {
	args := m.Called(id, players)
	if game, ok := args.Get(0).(Game); ok {
		return game, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFactory) CreateManager() Manager {
	args := m.Called()
	return args.Get(0).(Manager)
}
