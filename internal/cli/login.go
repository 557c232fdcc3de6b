package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Log in to the planning service",
	Long:  "Log in with your email and password. Credentials are stored in ~/.pati and reused by later commands.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLogin,
}

func runLogin(cmd *cobra.Command, args []string) error {
	var email string
	var err error
	if len(args) > 0 {
		email = args[0]
	} else {
		email, err = promptLine("Email")
		if err != nil {
			return err
		}
	}
	password, err := promptPassword("Password")
	if err != nil {
		return err
	}

	mgr, _, err := newSession()
	if err != nil {
		return err
	}

	user, err := mgr.Login(cmd.Context(), email, password)
	if err != nil {
		if printFieldErrors(err) {
			return fmt.Errorf("login failed")
		}
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Printf("🎉 환영합니다, %s님!\n", user.Nickname)
	return nil
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
