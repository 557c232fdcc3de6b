package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/patihq/pati/internal/plan"
	"github.com/patihq/pati/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start a planning conversation",
	Long:  "Launch the interactive chat. The assistant walks you through a short questionnaire and generates a party plan from your answers.",
	RunE:  runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	mgr, client, err := requireAuth()
	if err != nil {
		return err
	}

	plans, err := plan.NewStore()
	if err != nil {
		return fmt.Errorf("opening plan store: %w", err)
	}

	var nickname string
	if user := mgr.User(); user != nil {
		nickname = user.Nickname
	}

	return tui.Run(tui.Options{
		Client:        client,
		Plans:         plans,
		Nickname:      nickname,
		TypingDelay:   cfg.TypingDelay(),
		ResponseDelay: cfg.ResponseDelay(),
	})
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
