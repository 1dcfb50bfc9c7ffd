package highcard

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fadedpez/highcard/internal/games"
	"github.com/fadedpez/highcard/internal/types"
	"github.com/fadedpez/highcard/pkg/entities"
	rules "github.com/fadedpez/highcard/pkg/services/highcard"
)

const (
	NumPlayers      = 2
	DefaultRounds   = 5
	DefaultHandSize = 5
)

// PlayedCardPolicy decides where a card goes after it has been played
type PlayedCardPolicy string

const (
	// ReturnToDeck puts played cards on the bottom of the deck
	ReturnToDeck PlayedCardPolicy = "return"
	// DiscardToPile moves played cards to the game's discard pile
	DiscardToPile PlayedCardPolicy = "discard"
)

// Settings controls the shape of a match
type Settings struct {
	Rounds      int
	HandSize    int
	PlayedCards PlayedCardPolicy
}

// DefaultSettings returns five rounds from five-card hands, returning
// played cards to the deck
func DefaultSettings() Settings {
	return Settings{
		Rounds:      DefaultRounds,
		HandSize:    DefaultHandSize,
		PlayedCards: ReturnToDeck,
	}
}

// Validate checks the settings against the number of cards available
func (s Settings) Validate(deckSize int) error {
	if s.Rounds < 1 {
		return types.InvalidArgument("a match needs at least one round")
	}
	if s.HandSize < 1 {
		return types.InvalidArgument("hand size must be at least one card")
	}
	// Each round spends one card from every hand
	if s.Rounds > s.HandSize {
		return types.InvalidArgument(fmt.Sprintf("cannot play %d rounds from %d-card hands", s.Rounds, s.HandSize))
	}
	if s.HandSize*NumPlayers > deckSize {
		return types.NewGameError(types.ErrNotEnoughCards, fmt.Sprintf("%d players need %d cards, deck has %d", NumPlayers, s.HandSize*NumPlayers, deckSize))
	}
	switch s.PlayedCards {
	case ReturnToDeck, DiscardToPile:
	default:
		return types.InvalidArgument(fmt.Sprintf("unknown played card policy %q", s.PlayedCards))
	}
	return nil
}

// Observer is notified as a match progresses
type Observer interface {
	RoundPlayed(g *Game, round *entities.RoundResult)
	MatchFinished(g *Game, result *entities.MatchResult)
}

// GameOption configures a Game
type GameOption func(*Game)

// WithObserver registers an observer for round and match events
func WithObserver(o Observer) GameOption {
	return func(g *Game) {
		g.observer = o
	}
}

// WithClock replaces time.Now for timestamps
func WithClock(now func() time.Time) GameOption {
	return func(g *Game) {
		g.now = now
	}
}

// Game represents a single two-player high card match
type Game struct {
	ID       string
	Players  []*entities.Player
	Deck     *entities.Deck
	Discard  *entities.DiscardPile
	Points   []int
	State    entities.GameState
	settings Settings
	rounds   []*entities.RoundResult
	observer Observer
	now      func() time.Time
	started  time.Time
	result   *entities.MatchResult
	mu       sync.RWMutex
}

// Ensure Game implements the games.Game interface
var _ games.Game = (*Game)(nil)

// NewGame creates a match between two players drawing from deck
func NewGame(id string, players []*entities.Player, deck *entities.Deck, settings Settings, opts ...GameOption) (*Game, error) {
	if len(players) < NumPlayers {
		return nil, types.NewGameError(types.ErrNotEnoughPlayers, fmt.Sprintf("high card needs %d players, got %d", NumPlayers, len(players)))
	}
	if len(players) > NumPlayers {
		return nil, types.NewGameError(types.ErrTooManyPlayers, fmt.Sprintf("high card needs %d players, got %d", NumPlayers, len(players)))
	}
	for i, p := range players {
		if p == nil {
			return nil, types.MissingArgument(fmt.Sprintf("player %d cannot be null", i+1))
		}
	}
	if deck == nil {
		return nil, types.MissingArgument("deck cannot be null")
	}

	held := 0
	for _, p := range players {
		held += p.Size()
	}
	if err := settings.Validate(deck.Size() + held); err != nil {
		return nil, err
	}

	g := &Game{
		ID:       id,
		Players:  players,
		Deck:     deck,
		Discard:  entities.NewDiscardPile(),
		Points:   make([]int, len(players)),
		State:    entities.StateWaiting,
		settings: settings,
		rounds:   make([]*entities.RoundResult, 0, settings.Rounds),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.started = g.now()

	return g, nil
}

// Settings returns the settings the game was created with
func (g *Game) Settings() Settings {
	return g.settings
}

// Deal fills each hand to the configured size, one card per player in turn
func (g *Game) Deal() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.State != entities.StateWaiting {
		return types.NewGameError(types.ErrInvalidState, "cards have already been dealt")
	}

	needed := 0
	for _, p := range g.Players {
		if missing := g.settings.HandSize - p.Size(); missing > 0 {
			needed += missing
		}
	}
	if needed > g.Deck.Size() {
		return types.NewGameError(types.ErrNotEnoughCards, fmt.Sprintf("need %d cards to deal, deck has %d", needed, g.Deck.Size()))
	}

	g.State = entities.StateDealing
	for needed > 0 {
		for _, p := range g.Players {
			if p.Size() >= g.settings.HandSize {
				continue
			}
			if err := p.Draw(g.Deck); err != nil {
				return err
			}
			needed--
		}
	}
	g.State = entities.StatePlaying

	return nil
}

// PlayRound plays each player's highest card, awards the round and moves
// both cards out of the hands
func (g *Game) PlayRound() (*entities.RoundResult, error) {
	round, result, err := g.playRound()
	if err != nil {
		return nil, err
	}

	if g.observer != nil {
		g.observer.RoundPlayed(g, round)
		if result != nil {
			g.observer.MatchFinished(g, result)
		}
	}

	return round, nil
}

func (g *Game) playRound() (*entities.RoundResult, *entities.MatchResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.State {
	case entities.StateWaiting, entities.StateDealing:
		return nil, nil, types.NewGameError(types.ErrInvalidState, "cards have not been dealt")
	case entities.StateComplete:
		return nil, nil, types.NewGameError(types.ErrGameAlreadyEnded, "all rounds have been played")
	}

	played := make([]*entities.Card, len(g.Players))
	for i, p := range g.Players {
		card, err := rules.HighestCard(p)
		if err != nil {
			return nil, nil, err
		}
		played[i] = card
	}

	outcome := rules.CompareRound(*played[0], *played[1])
	switch outcome {
	case entities.OutcomeWinA:
		g.Points[0]++
	case entities.OutcomeWinB:
		g.Points[1]++
	}

	for i, p := range g.Players {
		if err := g.putAway(p, played[i]); err != nil {
			return nil, nil, err
		}
	}

	round := &entities.RoundResult{
		Number:  len(g.rounds) + 1,
		CardA:   *played[0],
		CardB:   *played[1],
		Outcome: outcome,
	}
	g.rounds = append(g.rounds, round)

	if len(g.rounds) < g.settings.Rounds {
		return round, nil, nil
	}

	g.State = entities.StateComplete
	g.result = g.buildResult()
	return round, g.result, nil
}

func (g *Game) putAway(p *entities.Player, card *entities.Card) error {
	var (
		moved bool
		err   error
	)
	if g.settings.PlayedCards == DiscardToPile {
		moved, err = p.DiscardCard(card, g.Discard)
	} else {
		moved, err = p.ReturnCard(card, g.Deck)
	}
	if err != nil {
		return err
	}
	if !moved {
		return types.NewGameError(types.ErrInvalidState, fmt.Sprintf("%s does not hold %s", p.Name(), card))
	}
	return nil
}

func (g *Game) buildResult() *entities.MatchResult {
	result := &entities.MatchResult{
		ID:          g.ID,
		Players:     make([]*entities.PlayerResult, len(g.Players)),
		Rounds:      g.rounds,
		StartedAt:   g.started,
		CompletedAt: g.now(),
	}

	for i, p := range g.Players {
		outcome := entities.ResultTie
		other := g.Points[len(g.Players)-1-i]
		switch {
		case g.Points[i] > other:
			outcome = entities.ResultWin
		case g.Points[i] < other:
			outcome = entities.ResultLose
		}
		result.Players[i] = &entities.PlayerResult{
			Name:   p.Name(),
			Age:    p.Age(),
			Points: g.Points[i],
			Result: outcome,
		}
	}

	return result
}

// Play deals if needed and plays the remaining rounds. The context is
// checked between rounds.
func (g *Game) Play(ctx context.Context) (*entities.MatchResult, error) {
	g.mu.RLock()
	state := g.State
	g.mu.RUnlock()

	if state == entities.StateWaiting {
		if err := g.Deal(); err != nil {
			return nil, err
		}
	}

	for !g.IsFinished() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("match %s interrupted: %w", g.ID, err)
		}
		if _, err := g.PlayRound(); err != nil {
			return nil, err
		}
	}

	return g.Result()
}

// Result returns the final result once every round has been played
func (g *Game) Result() (*entities.MatchResult, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.result == nil {
		return nil, types.NewGameError(types.ErrInvalidState, "match is not finished")
	}
	return g.result, nil
}

// Rounds returns the rounds played so far
func (g *Game) Rounds() []*entities.RoundResult {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rounds := make([]*entities.RoundResult, len(g.rounds))
	copy(rounds, g.rounds)
	return rounds
}

// IsFinished returns whether the game is finished
func (g *Game) IsFinished() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.State == entities.StateComplete
}

// String returns a one-line scoreboard
func (g *Game) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	scores := make([]string, len(g.Players))
	for i, p := range g.Players {
		scores[i] = fmt.Sprintf("%s %d", p.Name(), g.Points[i])
	}
	return fmt.Sprintf("Match %s: %s (round %d/%d, %s)",
		g.ID, strings.Join(scores, " - "), len(g.rounds), g.settings.Rounds, strings.ToLower(string(g.State)))
}
