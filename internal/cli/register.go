package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/patihq/pati/internal/api"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long:  "Create a new account on the planning service, then log in with `pati login`.",
	RunE:  runRegister,
}

func runRegister(cmd *cobra.Command, args []string) error {
	email, err := promptLine("Email")
	if err != nil {
		return err
	}
	nickname, err := promptLine("Nickname")
	if err != nil {
		return err
	}
	password, err := promptPassword("Password")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Confirm password")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	mgr, _, err := newSession()
	if err != nil {
		return err
	}

	resp, err := mgr.Register(cmd.Context(), api.RegisterRequest{
		Email:           email,
		Password:        password,
		PasswordConfirm: confirm,
		Nickname:        nickname,
	})
	if err != nil {
		if printFieldErrors(err) {
			return fmt.Errorf("registration failed")
		}
		return fmt.Errorf("registration failed: %w", err)
	}

	if resp.Message != "" {
		fmt.Println(resp.Message)
	} else {
		fmt.Printf("🎉 가입 완료! `pati login`으로 로그인하세요.\n")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(registerCmd)
}
