package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/patihq/pati/internal/api"
	"github.com/patihq/pati/internal/plan"
)

// Asker sends a free-form chat message to the assistant.
type Asker interface {
	Ask(ctx context.Context, req api.AskRequest) (*api.AskResponse, error)
}

// Planner generates a party plan from the collected answers.
type Planner interface {
	PlanParty(ctx context.Context, req api.PlanRequest) (*api.PlanResponse, error)
}

// tickCmd schedules the next animation tick.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// schedulePost schedules delivery of the next queued bot turn. The epoch is
// echoed back so posts scheduled before a reset are dropped.
func (m Model) schedulePost(delay time.Duration) tea.Cmd {
	epoch := m.epoch
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return botPostMsg{Epoch: epoch}
	})
}

// askCmd sends the current transcript to the assistant.
func (m Model) askCmd() tea.Cmd {
	epoch := m.epoch
	client := m.client
	req := api.AskRequest{
		Message:             lastUserMessage(m.conv.History()),
		ConversationHistory: m.conv.History(),
		UserContext:         m.conv.UserContext(),
	}
	return func() tea.Msg {
		resp, err := client.Ask(context.Background(), req)
		return askResultMsg{Epoch: epoch, Resp: resp, Err: err}
	}
}

// planCmd requests plan generation and saves the result.
func (m Model) planCmd() tea.Cmd {
	epoch := m.epoch
	client := m.client
	plans := m.plans
	req := m.conv.PlanRequest()
	width := m.width
	return func() tea.Msg {
		resp, err := client.PlanParty(context.Background(), req)
		if err != nil {
			return planResultMsg{Epoch: epoch, Err: err}
		}
		if resp.PartyPlan == nil {
			return planResultMsg{Epoch: epoch, Resp: resp}
		}

		rec := plan.NewRecord(resp.PartyPlan, req, time.Now())
		msg := planResultMsg{
			Epoch:    epoch,
			Resp:     resp,
			Rendered: plan.Render(rec, width-8),
		}
		if plans != nil {
			// Saving is best effort; the plan is still shown in the chat.
			if path, err := plans.Save(rec); err == nil {
				msg.SavedPath = path
			}
		}
		return msg
	}
}

// clearErrorCmd clears the error display after a timeout.
func clearErrorCmd() tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

// lastUserMessage returns the newest user message in the history.
func lastUserMessage(history []api.ChatMessage) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == "user" {
			return history[i].Content
		}
	}
	return ""
}
