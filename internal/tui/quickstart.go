package tui

import (
	"fmt"
	"strings"

	"github.com/patihq/pati/internal/chat"
)

// QuickStart is the party type selection menu shown before the questionnaire
// begins.
type QuickStart struct {
	options  []chat.QuickStartOption
	selected int
	width    int
}

// NewQuickStart creates the quick start menu for a script.
func NewQuickStart(options []chat.QuickStartOption) QuickStart {
	return QuickStart{options: options}
}

// SetSize updates the component width.
func (q *QuickStart) SetSize(width int) {
	q.width = width
}

// Up moves the selection up.
func (q *QuickStart) Up() {
	if q.selected > 0 {
		q.selected--
	}
}

// Down moves the selection down.
func (q *QuickStart) Down() {
	if q.selected < len(q.options)-1 {
		q.selected++
	}
}

// Select moves the selection to the given index. Reports whether the index
// names an option.
func (q *QuickStart) Select(idx int) bool {
	if idx < 0 || idx >= len(q.options) {
		return false
	}
	q.selected = idx
	return true
}

// Selected returns the currently selected option.
func (q *QuickStart) Selected() chat.QuickStartOption {
	return q.options[q.selected]
}

// View renders the quick start menu.
func (q QuickStart) View() string {
	var b strings.Builder

	b.WriteString(quickStartTitleStyle.Render(chat.QuickStartPrompt))
	b.WriteString("\n\n")

	for i, opt := range q.options {
		row := fmt.Sprintf("%d. %s %s  %s",
			i+1,
			opt.Emoji,
			quickStartLabelStyle.Render(opt.Label),
			quickStartDescStyle.Render(opt.Description),
		)
		if i == q.selected {
			b.WriteString(quickStartSelectedStyle.Width(q.width - 2).Render("→ " + row))
		} else {
			b.WriteString(quickStartRowStyle.Width(q.width - 2).Render("  " + row))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render("↑/↓ 또는 숫자 키로 선택, Enter로 확정. 직접 입력해도 돼요."))

	return b.String()
}
