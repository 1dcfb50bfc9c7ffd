package cli

import (
	"context"
	"fmt"

	"github.com/fadedpez/highcard/internal/config"
	"github.com/fadedpez/highcard/internal/games"
	"github.com/fadedpez/highcard/internal/types"
	"github.com/fadedpez/highcard/pkg/entities"
	"github.com/fadedpez/highcard/pkg/games/highcard"
	"github.com/fadedpez/highcard/pkg/repositories/game"
	"github.com/fadedpez/highcard/pkg/services/statistics"
	"github.com/spf13/cobra"
)

type playOptions struct {
	*rootOptions
	names    [highcard.NumPlayers]string
	ages     [highcard.NumPlayers]int
	rounds   int
	handSize int
	seed     uint64
	matches  int
	discard  bool
	roster   string
}

func newPlayCmd(root *rootOptions) *cobra.Command {
	opts := &playOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one or more high card matches",
		Long: `Play high card matches between two players. Names and ages missing from
the flags and the roster are asked for on the terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd)
		},
	}

	flags := cmd.Flags()
	for i := range opts.names {
		flags.StringVar(&opts.names[i], fmt.Sprintf("p%d-name", i+1), "", fmt.Sprintf("Player %d name", i+1))
		flags.IntVar(&opts.ages[i], fmt.Sprintf("p%d-age", i+1), 0, fmt.Sprintf("Player %d age", i+1))
	}
	flags.IntVar(&opts.rounds, "rounds", highcard.DefaultRounds, "Rounds per match")
	flags.IntVar(&opts.handSize, "hand-size", highcard.DefaultHandSize, "Cards dealt to each player")
	flags.Uint64Var(&opts.seed, "seed", 0, "Shuffle seed; 0 picks a random order")
	flags.IntVar(&opts.matches, "matches", 1, "Number of matches to play")
	flags.BoolVar(&opts.discard, "discard", false, "Discard played cards instead of returning them to the deck")
	flags.StringVar(&opts.roster, "roster", "", "TOML file listing the players")

	return cmd
}

func (o *playOptions) run(cmd *cobra.Command) error {
	settings, err := o.settings(cmd)
	if err != nil {
		return err
	}
	if o.matches < 1 {
		return types.InvalidArgument(fmt.Sprintf("--matches must be at least 1, got %d", o.matches))
	}

	in := cmd.InOrStdin()
	prompter := NewPrompter(in, cmd.OutOrStdout(), isTerminal(in))
	newPlayers, err := o.playerSource(cmd, prompter)
	if err != nil {
		return err
	}

	repo, err := openRepository(o.cfg.StorageType)
	if err != nil {
		return err
	}
	defer repo.Close()

	narrator := NewNarrator(cmd.OutOrStdout(), o.noColor)

	registry := games.NewRegistry()
	err = highcard.Register(registry, repo, settings,
		highcard.WithRandomizer(newRandomizer(o.seed)),
		highcard.WithManagerObserver(narrator),
	)
	if err != nil {
		return err
	}
	manager, err := registry.CreateManager(highcard.GameName)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	narrator.Banner()
	for i := 1; i <= o.matches; i++ {
		players, err := newPlayers()
		if err != nil {
			return err
		}
		if o.matches > 1 {
			narrator.MatchHeader(i, o.matches)
		}
		if _, err := manager.PlayMatch(ctx, players); err != nil {
			return err
		}
	}

	if o.matches > 1 {
		leaderboard, err := statistics.NewService(repo).GetLeaderboard(ctx, 1, statistics.DefaultPlayersPerPage)
		if err != nil {
			return err
		}
		narrator.Leaderboard(leaderboard)
	}

	return nil
}

// settings applies the command line over the configured match settings
func (o *playOptions) settings(cmd *cobra.Command) (highcard.Settings, error) {
	settings := o.cfg.Settings()
	flags := cmd.Flags()

	if flags.Changed("rounds") {
		settings.Rounds = o.rounds
	}
	if flags.Changed("hand-size") {
		settings.HandSize = o.handSize
	}
	if o.discard {
		settings.PlayedCards = highcard.DiscardToPile
	}
	if !flags.Changed("seed") {
		o.seed = o.cfg.Seed
	}
	if !flags.Changed("roster") {
		o.roster = o.cfg.RosterPath
	}

	if err := settings.Validate(entities.NewStandardDeck().Size()); err != nil {
		return highcard.Settings{}, err
	}
	return settings, nil
}

// playerSource returns a function building a fresh pair of players for
// every match
func (o *playOptions) playerSource(cmd *cobra.Command, prompter *Prompter) (func() ([]*entities.Player, error), error) {
	if o.roster != "" {
		roster, err := config.LoadRoster(o.roster)
		if err != nil {
			return nil, err
		}
		// Surface roster errors before the banner
		if _, err := roster.Build(); err != nil {
			return nil, err
		}
		return roster.Build, nil
	}

	flags := cmd.Flags()
	for i := range o.names {
		label := fmt.Sprintf("Player %d", i+1)
		if o.names[i] == "" {
			name, err := prompter.Name(label+" Name", fmt.Sprintf("p%d-name", i+1))
			if err != nil {
				return nil, err
			}
			o.names[i] = name
		}
		if !flags.Changed(fmt.Sprintf("p%d-age", i+1)) {
			age, err := prompter.Age(label+" Age", fmt.Sprintf("p%d-age", i+1))
			if err != nil {
				return nil, err
			}
			o.ages[i] = age
		}
	}

	return func() ([]*entities.Player, error) {
		players := make([]*entities.Player, len(o.names))
		for i := range o.names {
			p, err := entities.NewPlayer(o.names[i], o.ages[i])
			if err != nil {
				return nil, err
			}
			players[i] = p
		}
		return players, nil
	}, nil
}

func openRepository(storageType string) (game.Repository, error) {
	switch storageType {
	case config.StorageSQLite:
		repo, err := game.NewSQLiteRepository(game.MemoryDSN)
		if err != nil {
			return nil, err
		}
		return repo, nil
	case config.StorageMemory, "":
		return game.NewMemoryRepository(), nil
	default:
		return nil, types.InvalidArgument(fmt.Sprintf("unknown storage type %q", storageType))
	}
}
