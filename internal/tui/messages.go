package tui

import (
	"time"

	"github.com/patihq/pati/internal/api"
)

// tickMsg is sent on regular intervals to drive the typing indicator
// animation.
type tickMsg time.Time

// botPostMsg signals that the next queued bot turn is due. The epoch guards
// against messages scheduled before a conversation reset.
type botPostMsg struct {
	Epoch int
}

// askResultMsg is the result of a general chat request.
type askResultMsg struct {
	Epoch int
	Resp  *api.AskResponse
	Err   error
}

// planResultMsg is the result of a plan generation request.
type planResultMsg struct {
	Epoch     int
	Resp      *api.PlanResponse
	SavedPath string
	Rendered  string
	Err       error
}

// clearErrorMsg is sent to clear the error display after a timeout.
type clearErrorMsg struct{}
