// Package tui provides the Bubbletea-based terminal user interface for the
// pati chat session: the quick start menu, the guided questionnaire, and
// free-form chat with the planning assistant.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/patihq/pati/internal/chat"
	"github.com/patihq/pati/internal/plan"
)

// tickInterval drives the typing indicator animation.
const tickInterval = 250 * time.Millisecond

// queuedPost is a scripted bot turn waiting for its delay to elapse.
type queuedPost struct {
	text        string
	suggestions []string
	delay       time.Duration
}

// Client is the subset of the API client the TUI depends on.
type Client interface {
	Asker
	Planner
}

// Model is the main Bubbletea model for the pati chat TUI.
type Model struct {
	// Window dimensions
	width  int
	height int

	// UI state
	ready  bool
	err    error
	notice string

	// Components
	chatView   ChatView
	inputLine  InputLine
	quickStart QuickStart

	// Conversation state
	conv  *chat.Conversation
	epoch int

	// Scripted bot turn choreography
	queue    []queuedPost
	draining bool

	client   Client
	plans    *plan.Store
	nickname string

	typingDelay   time.Duration
	responseDelay time.Duration
}

// Options configures the chat TUI.
type Options struct {
	Client        Client
	Plans         *plan.Store
	Nickname      string
	TypingDelay   time.Duration
	ResponseDelay time.Duration
}

// New creates a new chat TUI model.
func New(opts Options) Model {
	conv := chat.New(chat.DefaultScript())
	conv.Begin()
	conv.EnsureLocalID()

	input := NewInputLine()
	input.Focus()

	if opts.TypingDelay <= 0 {
		opts.TypingDelay = 300 * time.Millisecond
	}
	if opts.ResponseDelay <= 0 {
		opts.ResponseDelay = 1200 * time.Millisecond
	}

	return Model{
		chatView:      NewChatView(),
		inputLine:     input,
		quickStart:    NewQuickStart(conv.Script().QuickStart),
		conv:          conv,
		client:        opts.Client,
		plans:         opts.Plans,
		nickname:      opts.Nickname,
		typingDelay:   opts.TypingDelay,
		responseDelay: opts.ResponseDelay,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.inputLine.input.Cursor.BlinkCmd(),
		m.tickCmd(),
	)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.headerView()
	chatPane := m.chatView.View()
	input := m.inputLine.View()
	status := m.statusView()

	if m.showingQuickStart() {
		return fmt.Sprintf("%s\n%s\n%s\n%s\n%s", header, chatPane, m.quickStart.View(), input, status)
	}

	return fmt.Sprintf("%s\n%s\n%s\n%s", header, chatPane, input, status)
}

// headerView renders the top brand bar.
func (m Model) headerView() string {
	brand := headerBrandStyle.Render("🎉 pati")
	var user string
	if m.nickname != "" {
		user = headerUserStyle.Render(m.nickname + "님")
	}
	gap := m.width - lipgloss.Width(brand) - lipgloss.Width(user)
	if gap < 0 {
		gap = 0
	}
	filler := headerContainerStyle.Render(fmt.Sprintf("%*s", gap, ""))
	return brand + filler + user
}

// statusView renders the bottom status bar.
func (m Model) statusView() string {
	switch {
	case m.err != nil:
		return errorBarStyle.Render(m.err.Error())
	case m.notice != "":
		return statusStyle.Render(m.notice)
	default:
		return statusStyle.Render("Enter 전송 · PgUp/PgDn 스크롤 · Esc 종료")
	}
}

// quickStartHeight returns the number of lines the quick start menu occupies.
func (m Model) quickStartHeight() int {
	if m.showingQuickStart() {
		return len(m.conv.Script().QuickStart) + 4
	}
	return 0
}

// Run starts the chat TUI. An error carried out of the session, such as
// expired credentials, is returned after the program exits.
func Run(opts Options) error {
	p := tea.NewProgram(
		New(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
