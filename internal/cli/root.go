package cli

import (
	"context"

	"github.com/fadedpez/highcard/internal/config"
	"github.com/fadedpez/highcard/internal/logging"
	"github.com/spf13/cobra"
)

// rootOptions is shared by every command
type rootOptions struct {
	cfg     *config.Config
	noColor bool
}

// NewRootCmd builds the highcard command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "highcard",
		Short: "Two-player high card game",
		Long: `highcard deals two players a hand each from a shuffled deck. Every round
both play their highest card and the higher value takes the point.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.cfg = cfg

			// Narration owns stdout
			logging.Default.SetOutput(cmd.ErrOrStderr())
			logging.Default.SetLevel(cfg.Level())
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(newPlayCmd(opts))
	root.AddCommand(newDeckCmd(opts))
	root.AddCommand(newMigrationsCmd(opts))

	return root
}

// Execute runs the root command against the process arguments
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
