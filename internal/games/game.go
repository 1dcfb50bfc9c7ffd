package games

import (
	"context"

	"github.com/fadedpez/highcard/pkg/entities"
)

// Game represents a single match that can be played to completion
type Game interface {
	// Play runs the match to the end and returns its result
	Play(ctx context.Context) (*entities.MatchResult, error)

	// IsFinished returns whether the game is finished
	IsFinished() bool

	// String returns a string representation of the game state
	String() string
}

// Manager runs matches and keeps their results
type Manager interface {
	// PlayMatch creates a game for the given players, plays it and records the result
	PlayMatch(ctx context.Context, players []*entities.Player) (*entities.MatchResult, error)
}

// Factory creates new game instances
type Factory interface {
	// CreateGame creates a new game instance
	CreateGame(id string, players []*entities.Player) (Game, error)

	// CreateManager creates a new game manager
	CreateManager() Manager
}
