package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/patihq/pati/internal/api"
	"github.com/patihq/pati/internal/chat"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		m.refreshChat()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}

		if m.showingQuickStart() {
			switch msg.String() {
			case "up":
				m.quickStart.Up()
				return m, nil
			case "down":
				m.quickStart.Down()
				return m, nil
			case "1", "2", "3", "4", "5", "6", "7", "8", "9":
				if m.quickStart.Select(int(msg.String()[0]-'0') - 1) {
					return m.selectQuickStart()
				}
				return m, nil
			case "enter":
				if strings.TrimSpace(m.inputLine.Value()) != "" {
					return m.submitInput()
				}
				return m.selectQuickStart()
			}
		}

		switch msg.String() {
		case "enter":
			return m.submitInput()
		case "pgup":
			m.chatView.PageUp()
		case "pgdown":
			m.chatView.PageDown()
		case "up":
			m.inputLine.HistoryUp()
		case "down":
			m.inputLine.HistoryDown()
		default:
			cmds = append(cmds, m.inputLine.Update(msg))
		}

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.chatView.ScrollUp(3)
		case tea.MouseButtonWheelDown:
			m.chatView.ScrollDown(3)
		}

	case tickMsg:
		m.chatView.AdvanceFrame()
		cmds = append(cmds, m.tickCmd())

	case botPostMsg:
		if msg.Epoch != m.epoch {
			return m, nil
		}
		return m.drainPost()

	case askResultMsg:
		if msg.Epoch != m.epoch {
			return m, nil
		}
		return m.handleAskResult(msg)

	case planResultMsg:
		if msg.Epoch != m.epoch {
			return m, nil
		}
		return m.handlePlanResult(msg)

	case clearErrorMsg:
		m.notice = ""

	default:
		// Cursor blink and other component messages route to the input.
		cmds = append(cmds, m.inputLine.Update(msg))
	}

	return m, tea.Batch(cmds...)
}

// showingQuickStart reports whether the quick start menu is on screen.
func (m Model) showingQuickStart() bool {
	return m.conv.InQuickStart() && !m.conv.HasPlaceholder() && !m.draining
}

// layout recomputes component sizes from the window dimensions.
func (m *Model) layout() {
	chatHeight := m.height - 1 - 1 - 1 - m.quickStartHeight()
	if chatHeight < 3 {
		chatHeight = 3
	}
	m.chatView.SetSize(m.width, chatHeight)
	m.inputLine.SetSize(m.width)
	m.quickStart.SetSize(m.width)
}

// refreshChat pushes the current transcript into the chat view.
func (m *Model) refreshChat() {
	m.chatView.SetTurns(m.conv.Turns())
}

// enqueuePosts appends scripted bot turns and starts draining the queue if it
// was idle.
func (m Model) enqueuePosts(posts ...queuedPost) (Model, tea.Cmd) {
	m.queue = append(m.queue, posts...)
	if m.draining || len(m.queue) == 0 {
		return m, nil
	}
	m.draining = true
	if err := m.conv.ShowTyping(); err != nil && !errors.Is(err, chat.ErrPlaceholderExists) {
		slog.Warn("show typing failed", "error", err)
	}
	m.refreshChat()
	return m, m.schedulePost(m.queue[0].delay)
}

// drainPost delivers the next queued bot turn.
func (m Model) drainPost() (Model, tea.Cmd) {
	if len(m.queue) == 0 {
		m.draining = false
		return m, nil
	}

	head := m.queue[0]
	m.queue = m.queue[1:]
	m.conv.PostBot(head.text, head.suggestions...)

	if len(m.queue) > 0 {
		_ = m.conv.ShowTyping()
		m.refreshChat()
		return m, m.schedulePost(m.queue[0].delay)
	}

	m.draining = false
	m.layout()
	m.refreshChat()
	return m, nil
}

// selectQuickStart records the highlighted party type and kicks off the
// questionnaire.
func (m Model) selectQuickStart() (Model, tea.Cmd) {
	label := m.quickStart.Selected().Label
	if err := m.conv.SelectQuickStart(label); err != nil {
		return m, nil
	}
	m.layout()
	m.refreshChat()

	posts := []queuedPost{{text: chat.QuickStartAck(label), delay: m.typingDelay}}
	if q, ok := m.conv.CurrentQuestion(); ok {
		posts = append(posts, queuedPost{text: q.Prompt(), suggestions: q.Options, delay: m.responseDelay})
	}
	return m.enqueuePosts(posts...)
}

// submitInput sends the typed message through the conversation state machine.
func (m Model) submitInput() (Model, tea.Cmd) {
	text := strings.TrimSpace(m.inputLine.Value())
	if text == "" {
		return m, nil
	}
	if m.conv.HasPlaceholder() || m.draining {
		return m, nil
	}

	// Typing a party type name works the same as picking it from the menu.
	if m.conv.InQuickStart() {
		for i, opt := range m.conv.Script().QuickStart {
			if text == opt.Label {
				m.quickStart.Select(i)
				m.inputLine.AddToHistory(text)
				m.inputLine.Clear()
				return m.selectQuickStart()
			}
		}
	}

	result, err := m.conv.Submit(text)
	if err != nil {
		return m, nil
	}
	m.inputLine.AddToHistory(text)
	m.inputLine.Clear()
	m.layout()
	m.refreshChat()

	switch result {
	case chat.SubmitAskNext:
		posts := []queuedPost{{text: chat.AnswerAck(text), delay: m.typingDelay}}
		if q, ok := m.conv.CurrentQuestion(); ok {
			posts = append(posts, queuedPost{text: q.Prompt(), suggestions: q.Options, delay: m.responseDelay})
		}
		return m.enqueuePosts(posts...)

	case chat.SubmitPlanReady:
		planCmd := m.planCmd()
		next, cmd := m.enqueuePosts(queuedPost{text: chat.GeneratingMessage, delay: m.typingDelay})
		return next, tea.Batch(cmd, planCmd)

	default: // SubmitGeneralChat
		if err := m.conv.ShowTyping(); err != nil {
			return m, nil
		}
		m.refreshChat()
		return m, m.askCmd()
	}
}

// expireSession invalidates every scheduled bot turn and quits with the
// re-login hint. The epoch bump makes any tick already in flight stale.
func (m Model) expireSession() (Model, tea.Cmd) {
	m.epoch++
	m.queue = nil
	m.draining = false
	m.err = fmt.Errorf("세션이 만료되었어요. `pati login`으로 다시 로그인해주세요.")
	return m, tea.Quit
}

// handleAskResult posts the assistant's reply, or a graceful fallback.
func (m Model) handleAskResult(msg askResultMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		if errors.Is(msg.Err, api.ErrSessionExpired) {
			return m.expireSession()
		}
		slog.Warn("ask request failed", "error", msg.Err)
		m.conv.PostBot(m.conv.NextFallback())
		m.refreshChat()
		return m, nil
	}

	m.conv.SetID(msg.Resp.ConversationID)
	m.conv.PostBot(msg.Resp.Response, msg.Resp.Suggestions...)
	m.refreshChat()
	return m, nil
}

// handlePlanResult posts the generated plan, or a graceful fallback.
func (m Model) handlePlanResult(msg planResultMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		if errors.Is(msg.Err, api.ErrSessionExpired) {
			return m.expireSession()
		}
		slog.Warn("plan request failed", "error", msg.Err)
		return m.enqueuePosts(queuedPost{text: m.conv.NextFallback(), delay: m.responseDelay})
	}

	if msg.Resp.PartyPlan == nil {
		body := msg.Resp.Message
		if body == "" {
			body = m.conv.NextFallback()
		}
		return m.enqueuePosts(queuedPost{text: body, delay: m.responseDelay})
	}

	var cmd tea.Cmd
	if msg.SavedPath != "" {
		m.notice = "플랜 저장됨: " + msg.SavedPath
		cmd = clearErrorCmd()
	}
	next, postCmd := m.enqueuePosts(
		queuedPost{text: chat.PlanReadyMessage, delay: m.responseDelay},
		queuedPost{text: msg.Rendered, delay: m.typingDelay},
	)
	return next, tea.Batch(postCmd, cmd)
}
