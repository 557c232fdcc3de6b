package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear stored credentials",
	Long:  "Revoke the current session on the server (best effort) and remove the stored credentials.",
	RunE:  runLogout,
}

func runLogout(cmd *cobra.Command, args []string) error {
	mgr, _, err := newSession()
	if err != nil {
		return err
	}
	if err := mgr.Logout(cmd.Context()); err != nil {
		return err
	}
	fmt.Println("👋 로그아웃되었습니다.")
	return nil
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
