package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/logging"
)

var (
	appConfig *config.Config
	logger    *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Single-page portfolio server",
	Long: `folio serves a single-page portfolio: profile, skills, project cards,
a dark-mode toggle and a notice for private repositories. Content comes from
one YAML file; configuration comes from the environment (and .env).

Run without a subcommand to serve.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		log, err := logging.New(cfg.LogLevel)
		if err != nil {
			return err
		}
		appConfig, logger = cfg, log
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
