package cli

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/patihq/pati/internal/api"
	"github.com/patihq/pati/internal/session"
)

// newSession builds the API client and session manager from the loaded
// configuration, then restores any persisted credentials.
func newSession() (*session.Manager, *api.Client, error) {
	store, err := session.NewFileStore()
	if err != nil {
		return nil, nil, fmt.Errorf("opening credential store: %w", err)
	}

	client := api.New(cfg.BaseURL(),
		api.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout()}),
		api.WithTokenSource(store),
	)

	mgr := session.NewManager(store, client)
	mgr.Restore()
	return mgr, client, nil
}

// requireAuth returns a restored session or an error telling the user to log
// in first.
func requireAuth() (*session.Manager, *api.Client, error) {
	mgr, client, err := newSession()
	if err != nil {
		return nil, nil, err
	}
	if !mgr.Authenticated() {
		return nil, nil, fmt.Errorf("not logged in. Run `pati login` first")
	}
	return mgr, client, nil
}

// printFieldErrors renders per-field validation messages, if the error
// carries any.
func printFieldErrors(err error) bool {
	var verr *api.ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	fields := make([]string, 0, len(verr.Fields))
	for field := range verr.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		for _, msg := range verr.Fields[field] {
			fmt.Printf("  %s: %s\n", field, msg)
		}
	}
	return true
}
