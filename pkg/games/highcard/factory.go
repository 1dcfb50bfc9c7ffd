package highcard

import (
	"github.com/fadedpez/highcard/internal/games"
	"github.com/fadedpez/highcard/pkg/entities"
	"github.com/fadedpez/highcard/pkg/repositories/game"
)

// GameName is the name high card registers under
const GameName = "highcard"

// Factory creates high card games and managers
type Factory struct {
	repository game.Repository
	settings   Settings
	options    []ManagerOption
}

// Ensure Factory implements the games.Factory interface
var _ games.Factory = (*Factory)(nil)

// NewFactory creates a new high card factory
func NewFactory(repository game.Repository, settings Settings, opts ...ManagerOption) *Factory {
	return &Factory{
		repository: repository,
		settings:   settings,
		options:    opts,
	}
}

// CreateGame creates a standalone game over a freshly shuffled deck. The
// game is not tracked by any manager.
func (f *Factory) CreateGame(id string, players []*entities.Player) (games.Game, error) {
	g, err := NewManager(f.repository, f.settings, f.options...).newGame(id, players)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// CreateManager creates a new high card game manager
func (f *Factory) CreateManager() games.Manager {
	return NewManager(f.repository, f.settings, f.options...)
}

// Register adds high card to a game registry
func Register(registry *games.Registry, repository game.Repository, settings Settings, opts ...ManagerOption) error {
	return registry.RegisterGame(GameName, NewFactory(repository, settings, opts...))
}
