package game

import (
	"context"

	"github.com/fadedpez/highcard/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_game

// Repository defines storage operations for match results
type Repository interface {
	// Match results
	SaveMatchResult(ctx context.Context, result *entities.MatchResult) error
	GetMatchResult(ctx context.Context, matchID string) (*entities.MatchResult, error)
	GetPlayerResults(ctx context.Context, playerName string) ([]*entities.MatchResult, error)
	GetRecentResults(ctx context.Context, limit int) ([]*entities.MatchResult, error)

	// Statistics
	GetAllPlayerStatistics(ctx context.Context) ([]*entities.PlayerStatistics, error)

	// Close closes any resources used by the repository
	Close() error
}
