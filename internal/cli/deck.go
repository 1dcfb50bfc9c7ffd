package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/fadedpez/highcard/pkg/entities"
	"github.com/spf13/cobra"
)

func newDeckCmd(opts *rootOptions) *cobra.Command {
	var (
		shuffle bool
		seed    uint64
	)

	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Print the 52-card deck, top card first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = opts.cfg.Seed
			}

			deck := entities.NewStandardDeck(entities.WithRandom(newRandomizer(seed)))
			if shuffle {
				deck.Shuffle()
			}

			out := cmd.OutOrStdout()
			for i, card := range deck.Cards() {
				fmt.Fprintf(out, "%2d. %s\n", i+1, card)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&shuffle, "shuffle", false, "Shuffle the deck before printing")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Shuffle seed; 0 picks a random order")

	return cmd
}

// newRandomizer returns a seeded source, or nil for the default random source
func newRandomizer(seed uint64) entities.Randomizer {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed))
}
