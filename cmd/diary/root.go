package main

import (
	"os"

	"github.com/dmitrijs2005/gophdiary/internal/cli"
	"github.com/dmitrijs2005/gophdiary/internal/config"
	"github.com/dmitrijs2005/gophdiary/internal/logging"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// rootCmd starts the interactive diary when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "diary",
	Short: "A password-protected diary with one plain-text file per day",
	Long: `diary asks for the diary password (creating it on first use) and then
opens today's entry in an interactive editor. Entries are stored as
<data-dir>/YYYY-MM-DD.txt under the base directory.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		return app.Run(cmd.Context())
	},
}

// newApp resolves configuration (defaults, config file, flags) and builds
// the client with a session-scoped logger on stderr.
func newApp(cmd *cobra.Command) (*cli.App, error) {
	cfg, err := config.Load(config.ConfigPath(cmd.Flags()))
	if err != nil {
		return nil, err
	}
	config.ApplyFlags(cfg, cmd.Flags())

	log := logging.New(os.Stderr, logging.ParseLevel(cfg.LogLevel)).
		With("session", uuid.NewString())
	log.Debug(cmd.Context(), "configuration loaded",
		"base_dir", cfg.BaseDir,
		"data_dir", cfg.DataDir,
		"password_file", cfg.CredentialPath(),
	)

	return cli.NewApp(cfg, log), nil
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())
}
