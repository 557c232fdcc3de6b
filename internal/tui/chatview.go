package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/muesli/reflow/wordwrap"

	"github.com/patihq/pati/internal/chat"
)

// typingFrames animates the placeholder turn while a bot reply is pending.
var typingFrames = []string{"·  ", "·· ", "···", " ··", "  ·", "   "}

// ChatView displays the conversation transcript in a scrollable viewport.
type ChatView struct {
	turns    []chat.Turn
	width    int
	height   int
	frame    int
	viewport viewport.Model
	ready    bool
}

// NewChatView creates a new chat view component.
func NewChatView() ChatView {
	return ChatView{}
}

// SetSize updates the component dimensions.
func (v *ChatView) SetSize(width, height int) {
	v.width = width
	v.height = height

	contentWidth := width - 2
	contentHeight := height - 2
	if contentWidth < 1 {
		contentWidth = 1
	}
	if contentHeight < 1 {
		contentHeight = 1
	}

	if !v.ready {
		v.viewport = viewport.New(contentWidth, contentHeight)
		v.ready = true
	} else {
		v.viewport.Width = contentWidth
		v.viewport.Height = contentHeight
	}

	v.updateContent()
}

// SetTurns replaces the rendered transcript.
func (v *ChatView) SetTurns(turns []chat.Turn) {
	v.turns = turns
	v.updateContent()
	v.viewport.GotoBottom()
}

// AdvanceFrame advances the typing indicator animation and reports whether
// anything is animating.
func (v *ChatView) AdvanceFrame() bool {
	for _, t := range v.turns {
		if t.Placeholder {
			v.frame++
			v.updateContent()
			return true
		}
	}
	return false
}

// ScrollUp scrolls the viewport up.
func (v *ChatView) ScrollUp(n int) {
	v.viewport.LineUp(n)
}

// ScrollDown scrolls the viewport down.
func (v *ChatView) ScrollDown(n int) {
	v.viewport.LineDown(n)
}

// PageUp scrolls up by one page.
func (v *ChatView) PageUp() {
	v.viewport.ViewUp()
}

// PageDown scrolls down by one page.
func (v *ChatView) PageDown() {
	v.viewport.ViewDown()
}

// updateContent refreshes the viewport content from the transcript.
func (v *ChatView) updateContent() {
	if !v.ready {
		return
	}

	var rendered []string
	for _, t := range v.turns {
		rendered = append(rendered, v.renderTurn(t))
	}

	v.viewport.SetContent(strings.Join(rendered, "\n\n"))

	if v.viewport.AtBottom() || v.viewport.YOffset >= v.viewport.TotalLineCount()-v.viewport.Height-5 {
		v.viewport.GotoBottom()
	}
}

// renderTurn renders a single turn to a string.
func (v *ChatView) renderTurn(t chat.Turn) string {
	wrapWidth := v.viewport.Width
	if wrapWidth < 10 {
		wrapWidth = 10
	}

	switch {
	case t.Placeholder:
		return botLabelStyle.Render("파티: ") +
			typingStyle.Render(typingFrames[v.frame%len(typingFrames)])

	case t.Speaker == chat.SpeakerUser:
		return userLabelStyle.Render("나: ") + wordwrap.String(t.Text, wrapWidth-4)

	default:
		out := botLabelStyle.Render("파티: ") + wordwrap.String(t.Text, wrapWidth-4)
		if len(t.Suggestions) > 0 {
			var opts []string
			for _, s := range t.Suggestions {
				opts = append(opts, suggestionStyle.Render("["+s+"]"))
			}
			out += "\n  " + strings.Join(opts, " ")
		}
		return out
	}
}

// View renders the chat view.
func (v ChatView) View() string {
	return chatViewBorderStyle.Width(v.width - 2).Height(v.height - 2).Render(v.viewport.View())
}
