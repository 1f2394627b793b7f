package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/freeride/internal/config"
	"github.com/katalvlaran/freeride/internal/logger"
)

// Execute runs the root command and exits non-zero on failure. An interrupt
// cancels the running search; cases finished so far are still printed.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	debug      bool
	logFile    string
}

func newRootCmd() *cobra.Command {
	var g globalFlags

	cmd := &cobra.Command{
		Use:          "freeride",
		Short:        "Plan the fewest purchased trips that use up every free ticket",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "YAML configuration file")
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "verbose logging, including every improvement found")
	cmd.PersistentFlags().StringVar(&g.logFile, "log-file", "", "write JSON logs to this file instead of stderr")

	cmd.AddCommand(solveCmd(&g))
	cmd.AddCommand(cacheCmd(&g))
	return cmd
}

// loadSession resolves configuration (file, then global flag overrides) and
// installs the logger. The returned cleanup must be called when done.
func loadSession(cmd *cobra.Command, g *globalFlags) (config.Config, func(), error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = g.debug
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = g.logFile
	}

	cleanup, err := logger.Setup(logger.Config{
		File:   cfg.LogFile,
		Stderr: cmd.ErrOrStderr(),
		Debug:  cfg.Debug,
	})
	if err != nil {
		return config.Config{}, nil, err
	}

	return cfg, func() { _ = cleanup() }, nil
}
