package cmd

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/word-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/word-agent/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	historyBackend string
	boltPath       string
	logLevel       string

	deps *setup.Dependencies
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "wordapp",
		Short:             "Longest substring without repeating characters",
		Long:              "Generate words, analyze them, and keep a history of the results.",
		SilenceUsage:      true,
		PersistentPreRunE: wire,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if deps == nil {
				return nil
			}
			err := deps.Close()
			deps = nil
			return err
		},
	}

	root.PersistentFlags().StringVar(&historyBackend, "history-backend", "", "History store: none, bolt or postgres (default from HISTORY_BACKEND, else bolt)")
	root.PersistentFlags().StringVar(&boltPath, "db", "", "bbolt history file (default from BOLT_PATH)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (default from LOG_LEVEL, else warn)")

	root.AddCommand(newPlayCmd())
	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newWatchCmd())
	root.AddCommand(newHistoryCmd())
	root.AddCommand(newKeypadCmd())
	root.AddCommand(newGroupCmd())
	return root
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func wire(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[offline] == "true" {
		return nil
	}
	_ = godotenv.Load()

	// A failed RunE skips PersistentPostRunE, so a previous run may still be open.
	if deps != nil {
		_ = deps.Close()
		deps = nil
	}

	cfg := setup.LoadConfig()

	// The CLI keeps a local history unless told otherwise.
	if os.Getenv("HISTORY_BACKEND") == "" {
		cfg.HistoryBackend = setup.HistoryBolt
	}
	if historyBackend != "" {
		cfg.HistoryBackend = historyBackend
	}
	if boltPath != "" {
		cfg.BoltPath = boltPath
	}

	level := logLevel
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		level = zerolog.WarnLevel.String()
	}
	log := logger.NewWithWriter(cmd.ErrOrStderr(), level, cfg.LogFormat)

	wired, err := setup.Wire(cmd.Context(), cfg, &log)
	if err != nil {
		return err
	}
	deps = wired
	return nil
}
