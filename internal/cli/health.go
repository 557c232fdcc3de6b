package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the planning service",
	Long:  "Check whether the planning service's AI backend is reachable and healthy.",
	RunE:  runHealth,
}

func runHealth(cmd *cobra.Command, args []string) error {
	_, client, err := newSession()
	if err != nil {
		return err
	}

	status, err := client.Health(cmd.Context())
	if err != nil {
		return fmt.Errorf("service unreachable: %w", err)
	}
	fmt.Printf("✅ %s (%s)\n", status.Status, client.BaseURL())
	return nil
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
