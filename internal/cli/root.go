package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/threecgreen/nile-sub000/internal/factory"
	"github.com/threecgreen/nile-sub000/internal/services/bot"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "nile",
		Short: "Play Nile, the river tile-laying game",
		Long: `nile lays river tiles from the west edge of the board to the end-of-game
column, scoring tile points and board bonuses along the way.

Play a local game against bots, ask the search for the best move with a given
hand, or print the board layout.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger, err := cfg.Logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			app, err = factory.New(factory.Config{
				Logger: logger,
				Seed:   cfg.Seed,
				Search: bot.SearchConfig{MaxStates: cfg.MaxSearchStates},
			})
			return err
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: NILE_OUTPUT)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: NILE_LOG_LEVEL)")
	rootCmd.PersistentFlags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for tile draws and random bots; 0 is unseeded (env: NILE_SEED)")
	rootCmd.PersistentFlags().IntVar(&cfg.MaxSearchStates, "max-search-states", cfg.MaxSearchStates, "Placements the search tries before giving up; 0 is the default (env: NILE_MAX_SEARCH_STATES)")

	// Add subcommands
	rootCmd.AddCommand(newBoardCmd())
	rootCmd.AddCommand(newSuggestCmd())
	rootCmd.AddCommand(newPlayCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newOutput(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
}
