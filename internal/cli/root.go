// Package cli implements the pati command line interface.
package cli

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/patihq/pati/internal/config"
	"github.com/patihq/pati/internal/logging"
	"github.com/patihq/pati/internal/paths"
)

var (
	// patiDir is the global --pati-dir flag value.
	patiDir string

	// apiURL is the global --api-url flag value.
	apiURL string

	// cfg is the loaded configuration, available to all commands after
	// PersistentPreRunE.
	cfg *config.Config

	// closeLogging flushes the log file on exit.
	closeLogging func()
)

var rootCmd = &cobra.Command{
	Use:   "pati",
	Short: "Party planning assistant",
	Long:  "pati is a terminal client for the party planning assistant: a guided chatbot that collects your party details and generates a tailored plan.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; real env vars win over its contents.
		_ = godotenv.Load()

		if patiDir != "" {
			if err := os.Setenv(paths.EnvPatiDir, patiDir); err != nil {
				return err
			}
		}
		if apiURL != "" {
			if err := os.Setenv(config.EnvAPIBaseURL, apiURL); err != nil {
				return err
			}
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		logPath := cfg.Log.Path
		if logPath == "" {
			logPath, err = paths.LogPath()
			if err != nil {
				return err
			}
		}
		closeLogging, err = logging.Setup(logPath, logging.ParseLevel(cfg.Log.Level))
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if closeLogging != nil {
			closeLogging()
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&patiDir, "pati-dir", "", "base directory for pati data (overrides ~/.pati)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "API base URL (overrides config and PATI_API_URL)")
}

func Execute() error {
	return rootCmd.Execute()
}
