package game

import (
	"context"
	"fmt"
	"sync"

	"github.com/fadedpez/highcard/internal/types"
	"github.com/fadedpez/highcard/pkg/entities"
)

// MemoryRepository implements Repository interface with in-memory storage
type MemoryRepository struct {
	mu sync.RWMutex
	// Results in the order they were saved
	results []*entities.MatchResult
	// Map of match ID to result
	byID map[string]*entities.MatchResult
	// Map of player name to the matches they played
	playerResults map[string][]*entities.MatchResult
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		results:       make([]*entities.MatchResult, 0),
		byID:          make(map[string]*entities.MatchResult),
		playerResults: make(map[string][]*entities.MatchResult),
	}
}

// SaveMatchResult stores a match result and indexes it by player
func (r *MemoryRepository) SaveMatchResult(ctx context.Context, result *entities.MatchResult) error {
	if err := validateResult(result); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[result.ID]; exists {
		return types.NewGameError(types.ErrInvalidArgument, fmt.Sprintf("match %s is already recorded", result.ID))
	}

	r.results = append(r.results, result)
	r.byID[result.ID] = result
	seen := make(map[string]bool, len(result.Players))
	for _, pr := range result.Players {
		if seen[pr.Name] {
			continue
		}
		seen[pr.Name] = true
		r.playerResults[pr.Name] = append(r.playerResults[pr.Name], result)
	}

	return nil
}

// GetMatchResult retrieves a match by ID
func (r *MemoryRepository) GetMatchResult(ctx context.Context, matchID string) (*entities.MatchResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, exists := r.byID[matchID]
	if !exists {
		return nil, types.NewGameError(types.ErrGameNotFound, fmt.Sprintf("match %s not found", matchID))
	}
	return result, nil
}

// GetPlayerResults retrieves every match a player took part in, oldest first
func (r *MemoryRepository) GetPlayerResults(ctx context.Context, playerName string) ([]*entities.MatchResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := r.playerResults[playerName]
	out := make([]*entities.MatchResult, len(results))
	copy(out, results)
	return out, nil
}

// GetRecentResults retrieves up to limit of the most recent matches, oldest first
func (r *MemoryRepository) GetRecentResults(ctx context.Context, limit int) ([]*entities.MatchResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := r.results
	if limit >= 0 && len(results) > limit {
		results = results[len(results)-limit:]
	}
	out := make([]*entities.MatchResult, len(results))
	copy(out, results)
	return out, nil
}

// Close is a no-op for memory repository since there are no resources to close
func (r *MemoryRepository) Close() error {
	return nil
}

func validateResult(result *entities.MatchResult) error {
	if result == nil {
		return types.MissingArgument("match result cannot be null")
	}
	if result.ID == "" {
		return types.InvalidArgument("match result needs an ID")
	}
	return nil
}
