package highcard

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/fadedpez/highcard/internal/games"
	"github.com/fadedpez/highcard/internal/logging"
	"github.com/fadedpez/highcard/internal/types"
	"github.com/fadedpez/highcard/pkg/entities"
	"github.com/fadedpez/highcard/pkg/repositories/game"
	"github.com/google/uuid"
)

// Manager creates high card games, plays them and records their results
type Manager struct {
	repository game.Repository
	settings   Settings
	random     entities.Randomizer
	observer   Observer
	newID      func() string
	games      map[string]*Game
	mu         sync.RWMutex
}

// Ensure Manager implements the games.Manager interface
var _ games.Manager = (*Manager)(nil)

// ManagerOption configures a Manager
type ManagerOption func(*Manager)

// WithRandomizer sets the random source used to shuffle each match's deck
func WithRandomizer(r entities.Randomizer) ManagerOption {
	return func(m *Manager) {
		m.random = r
	}
}

// WithManagerObserver registers an observer on every game the manager creates
func WithManagerObserver(o Observer) ManagerOption {
	return func(m *Manager) {
		m.observer = o
	}
}

// WithIDGenerator replaces the uuid generator for match IDs
func WithIDGenerator(newID func() string) ManagerOption {
	return func(m *Manager) {
		m.newID = newID
	}
}

// NewManager creates a new high card game manager
func NewManager(repository game.Repository, settings Settings, opts ...ManagerOption) *Manager {
	if repository == nil {
		panic("repository cannot be nil")
	}
	m := &Manager{
		repository: repository,
		settings:   settings,
		newID:      func() string { return uuid.New().String() },
		games:      make(map[string]*Game),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Settings returns the settings new games are created with
func (m *Manager) Settings() Settings {
	return m.settings
}

// CreateGame builds a shuffled standard deck, pulls the players' starting
// hands out of it and registers a new game under id
func (m *Manager) CreateGame(id string, players []*entities.Player) (*Game, error) {
	if id == "" {
		return nil, types.InvalidArgument("game ID cannot be empty")
	}

	g, err := m.newGame(id, players)
	if err != nil {
		return nil, err
	}

	if err := m.AddGame(g); err != nil {
		return nil, err
	}
	return g, nil
}

// newGame builds an unregistered game over a fresh match deck, wired to the
// manager's observer
func (m *Manager) newGame(id string, players []*entities.Player) (*Game, error) {
	deck, err := newMatchDeck(m.random, players)
	if err != nil {
		return nil, err
	}

	var opts []GameOption
	if m.observer != nil {
		opts = append(opts, WithObserver(m.observer))
	}
	return NewGame(id, players, deck, m.settings, opts...)
}

// PlayMatch creates a game for the players, plays it to the end and saves
// the result
func (m *Manager) PlayMatch(ctx context.Context, players []*entities.Player) (*entities.MatchResult, error) {
	g, err := m.CreateGame(m.newID(), players)
	if err != nil {
		return nil, err
	}
	defer m.RemoveGame(g.ID)

	logging.Default.Debug("Starting match %s", g.ID)

	result, err := g.Play(ctx)
	if err != nil {
		return nil, err
	}

	if err := m.repository.SaveMatchResult(ctx, result); err != nil {
		logging.Default.LogError(err)
		return nil, fmt.Errorf("failed to save match %s: %w", result.ID, err)
	}

	if winner := result.Winner(); winner != nil {
		logging.Default.Info("Match %s won by %s with %d points", result.ID, winner.Name, winner.Points)
	} else {
		logging.Default.Info("Match %s tied", result.ID)
	}

	return result, nil
}

// newMatchDeck shuffles a standard deck and removes every card already held
// by the players, so no card exists twice in a match
func newMatchDeck(random entities.Randomizer, players []*entities.Player) (*entities.Deck, error) {
	deck := entities.NewStandardDeck(entities.WithRandom(random))
	deck.Shuffle()

	for _, p := range players {
		if p == nil {
			continue
		}
		for _, card := range p.Hand() {
			_, ok, err := deck.RemoveCard(card)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, types.InvalidArgument(fmt.Sprintf("%s is held more than once or is not a standard card", card))
			}
		}
	}

	return deck, nil
}

// AddGame adds a game to the manager
func (m *Manager) AddGame(g *Game) error {
	if g == nil {
		return types.MissingArgument("game cannot be null")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.games[g.ID]; exists {
		return types.InvalidArgument(fmt.Sprintf("game %s already exists", g.ID))
	}
	m.games[g.ID] = g
	return nil
}

// GetGame gets a game from the manager by ID
func (m *Manager) GetGame(id string) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	g, exists := m.games[id]
	if !exists {
		return nil, types.NewGameError(types.ErrGameNotFound, fmt.Sprintf("game %s not found", id))
	}
	return g, nil
}

// RemoveGame removes a game from the manager
func (m *Manager) RemoveGame(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
}

// ListGames returns the IDs of the games in progress, sorted
func (m *Manager) ListGames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.games))
	for id := range m.games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
