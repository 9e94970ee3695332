package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordscramble/internal/factory"
	"github.com/mcoot/wordscramble/internal/middleware"
)

// AppFactory builds the application for a command invocation
type AppFactory func(cfg factory.Config, logger *slog.Logger) (*factory.App, error)

// deps is shared by every subcommand once the root pre-run has wired them
type deps struct {
	cfg    *Config
	logger *slog.Logger
	app    *factory.App
	out    *Output
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithFactory(factory.New)
}

// NewRootCmdWithFactory creates the root command using newApp to build the
// application
func NewRootCmdWithFactory(newApp AppFactory) *cobra.Command {
	cfg, cfgErr := DefaultConfig()
	d := &deps{cfg: cfg}

	rootCmd := &cobra.Command{
		Use:   "wordscramble",
		Short: "Make words from the letters of a random root word",
		Long: `wordscramble picks a random root word and challenges you to find
English words spelled from its letters. Each letter of the root word can be
used as many times as it appears.

Every accepted word scores its length. Every fifth word earns a growing bonus:
5 points for the 5th, 10 for the 10th, and so on.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			if cfg.Output != "text" && cfg.Output != "json" {
				return fmt.Errorf("invalid output format %q: must be text or json", cfg.Output)
			}

			level := cfg.App.SlogLevel()
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			d.logger = slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			d.out = NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())

			app, err := newApp(cfg.App, d.logger)
			if err != nil {
				return err
			}
			d.app = app

			if !app.DictionaryService.IsLoaded() {
				if err := app.LoadDictionary(cmd.Context()); err != nil {
					return err
				}
			}

			if cmd.RunE != nil {
				cmd.RunE = middleware.Chain(cmd.RunE, middleware.Logging(d.logger), middleware.Recovery(d.logger))
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if d.app == nil {
				return nil
			}
			return d.app.Close()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: WORDSCRAMBLE_OUTPUT)")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output (env: WORDSCRAMBLE_VERBOSE)")
	flags.StringVar(&cfg.App.WordListPath, "word-list", cfg.App.WordListPath, "Root word list file, one word per line (env: WORDSCRAMBLE_WORD_LIST_PATH)")
	flags.StringVar(&cfg.App.DictionaryPath, "dictionary", cfg.App.DictionaryPath, "Dictionary file, one word per line (env: WORDSCRAMBLE_DICTIONARY_PATH)")
	flags.StringVar(&cfg.App.StorageType, "storage", cfg.App.StorageType, "Word cache backend: memory, redis (env: WORDSCRAMBLE_STORAGE_TYPE)")
	flags.StringVar(&cfg.App.RedisURL, "redis-url", cfg.App.RedisURL, "Redis URL (env: WORDSCRAMBLE_REDIS_URL)")
	flags.BoolVar(&cfg.App.CarryGuesses, "carry-guesses", cfg.App.CarryGuesses, "Keep guesses when a new round starts (env: WORDSCRAMBLE_CARRY_GUESSES)")
	flags.StringVar(&cfg.App.LogLevel, "log-level", cfg.App.LogLevel, "Log level: debug, info, warn, error (env: WORDSCRAMBLE_LOG_LEVEL)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd(d))
	rootCmd.AddCommand(newCheckCmd(d))
	rootCmd.AddCommand(newScoreCmd(d))
	rootCmd.AddCommand(newWordListCmd(d))
	rootCmd.AddCommand(newAutoplayCmd(d))

	return rootCmd
}
