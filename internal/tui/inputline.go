package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// maxHistorySize limits the number of entries stored in history.
const maxHistorySize = 100

// InputLine is the single-line message input docked under the chat view.
type InputLine struct {
	width   int
	focused bool
	input   textarea.Model

	// Input history for up/down navigation
	history      []string
	historyIndex int    // -1 means not browsing history
	savedInput   string // Saved current input when browsing history
}

// NewInputLine creates a new input line component.
func NewInputLine() InputLine {
	ta := textarea.New()
	ta.Placeholder = "메시지를 입력하세요..."
	ta.CharLimit = 2048
	ta.Prompt = "> "
	ta.ShowLineNumbers = false
	ta.SetHeight(1)
	ta.KeyMap.InsertNewline.SetEnabled(false)
	return InputLine{
		input:        ta,
		historyIndex: -1,
	}
}

// SetSize updates the component dimensions.
func (i *InputLine) SetSize(width int) {
	i.width = width
	i.input.SetWidth(width - 6)
}

// Focus sets focus to the input.
func (i *InputLine) Focus() {
	i.input.Focus()
	i.focused = true
}

// Blur removes focus from the input.
func (i *InputLine) Blur() {
	i.input.Blur()
	i.focused = false
}

// Update handles input events and returns a command.
func (i *InputLine) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	i.input, cmd = i.input.Update(msg)
	return cmd
}

// Value returns the current input value.
func (i *InputLine) Value() string {
	return i.input.Value()
}

// Clear resets the input value.
func (i *InputLine) Clear() {
	i.input.SetValue("")
}

// SetPlaceholder sets the placeholder text.
func (i *InputLine) SetPlaceholder(text string) {
	i.input.Placeholder = text
}

// View renders the input line.
func (i InputLine) View() string {
	style := inputLineStyle
	if i.focused {
		style = inputLineFocusedStyle
	}
	return style.Width(i.width).Render(i.input.View())
}

// AddToHistory adds the given input to history if non-empty.
func (i *InputLine) AddToHistory(input string) {
	if input == "" {
		return
	}
	if len(i.history) > 0 && i.history[len(i.history)-1] == input {
		return
	}
	i.history = append(i.history, input)
	if len(i.history) > maxHistorySize {
		i.history = i.history[len(i.history)-maxHistorySize:]
	}
	i.historyIndex = -1
	i.savedInput = ""
}

// HistoryUp navigates to the previous (older) history entry.
// Returns true if the input was changed.
func (i *InputLine) HistoryUp() bool {
	if len(i.history) == 0 {
		return false
	}

	if i.historyIndex == -1 {
		i.savedInput = i.input.Value()
		i.historyIndex = len(i.history) - 1
	} else if i.historyIndex > 0 {
		i.historyIndex--
	} else {
		return false
	}

	i.input.SetValue(i.history[i.historyIndex])
	i.input.CursorEnd()
	return true
}

// HistoryDown navigates to the next (newer) history entry.
// Returns true if the input was changed.
func (i *InputLine) HistoryDown() bool {
	if i.historyIndex == -1 {
		return false
	}

	if i.historyIndex < len(i.history)-1 {
		i.historyIndex++
		i.input.SetValue(i.history[i.historyIndex])
		i.input.CursorEnd()
		return true
	}

	i.historyIndex = -1
	i.input.SetValue(i.savedInput)
	i.input.CursorEnd()
	i.savedInput = ""
	return true
}
