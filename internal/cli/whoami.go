package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/patihq/pati/internal/api"
	"github.com/patihq/pati/internal/session"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account",
	Long:  "Show the profile of the logged-in account and when the current access token expires.",
	RunE:  runWhoami,
}

func runWhoami(cmd *cobra.Command, args []string) error {
	mgr, client, err := requireAuth()
	if err != nil {
		return err
	}

	user, err := client.Profile(cmd.Context())
	user, offline, err := resolveProfile(mgr, user, err)
	if err != nil {
		return err
	}
	if offline {
		fmt.Println("(offline, showing stored profile)")
	}

	fmt.Printf("Email:    %s\n", user.Email)
	fmt.Printf("Nickname: %s\n", user.Nickname)

	store, serr := session.NewFileStore()
	if serr == nil {
		if exp, terr := session.TokenExpiry(store.AccessToken()); terr == nil {
			fmt.Printf("Token:    expires %s (%s)\n",
				exp.Local().Format("2006-01-02 15:04:05"),
				time.Until(exp).Round(time.Second))
		}
	}
	return nil
}

// resolveProfile decides what to show when the profile fetch fails. Only a
// transport failure falls back to the cached record; an expired session has
// already had its store wiped by the request pipeline, so the in-memory
// session follows and the re-login hint is surfaced.
func resolveProfile(mgr *session.Manager, user *api.User, err error) (*api.User, bool, error) {
	if err == nil {
		return user, false, nil
	}
	if errors.Is(err, api.ErrSessionExpired) {
		mgr.Expire()
		return nil, false, fmt.Errorf("session expired. Run `pati login` to sign in again")
	}
	cached := mgr.User()
	if cached == nil {
		return nil, false, err
	}
	return cached, true, nil
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
