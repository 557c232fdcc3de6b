package chat

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/patihq/pati/internal/api"
)

// Sentinel errors for conversation operations.
var (
	// ErrResponsePending is returned while a placeholder turn is present:
	// no new user input may be appended until it resolves.
	ErrResponsePending = errors.New("chat: a response is pending")

	// ErrEmptyMessage is returned for blank input.
	ErrEmptyMessage = errors.New("chat: message is empty")

	// ErrQuickStartUnavailable is returned when a quick-start option is
	// selected after the questionnaire has already begun.
	ErrQuickStartUnavailable = errors.New("chat: quick start is only available before the first question")

	// ErrPlaceholderExists is returned when a second placeholder would be
	// appended; at most one may exist at a time.
	ErrPlaceholderExists = errors.New("chat: placeholder already present")
)

// Speaker attributes a turn to the bot or the user.
type Speaker int

const (
	SpeakerBot Speaker = iota
	SpeakerUser
)

// String returns the string representation of a Speaker.
func (s Speaker) String() string {
	if s == SpeakerUser {
		return "user"
	}
	return "bot"
}

// Turn is one message in the chat transcript. IDs are unique and monotonic
// within a conversation; insertion order is chat order.
type Turn struct {
	ID          int
	Speaker     Speaker
	Text        string
	Placeholder bool
	Suggestions []string
}

// Answer is one collected questionnaire answer. Answers accumulate strictly
// in question order, seeded by the implicit party_type.
type Answer struct {
	Key   string
	Value string
}

// SubmitResult tells the caller what a submitted message means for the
// questionnaire.
type SubmitResult int

const (
	// SubmitAskNext means an answer was recorded and a question remains.
	SubmitAskNext SubmitResult = iota
	// SubmitPlanReady means the final answer was recorded; the planning
	// call should be made with the collected answers.
	SubmitPlanReady
	// SubmitGeneralChat means the message is outside the questionnaire and
	// should be forwarded verbatim to the general chat endpoint.
	SubmitGeneralChat
)

// Conversation is the chatbot's linear questionnaire state machine plus the
// transcript it renders. It is not safe for concurrent use; the UI event
// loop is its only driver.
type Conversation struct {
	id     string
	script Script

	turns  []Turn
	nextID int

	answers   []Answer
	step      int
	fallbacks int
}

// New creates an empty conversation over the given script.
func New(script Script) *Conversation {
	return &Conversation{script: script, nextID: 1}
}

// Begin appends the welcome turn. Calling it on a non-empty conversation is
// a no-op.
func (c *Conversation) Begin() {
	if len(c.turns) > 0 {
		return
	}
	c.appendTurn(SpeakerBot, WelcomeMessage)
}

// ID returns the conversation identifier, or "" before one is assigned.
func (c *Conversation) ID() string {
	return c.id
}

// SetID adopts a backend-assigned conversation identifier.
func (c *Conversation) SetID(id string) {
	if id != "" {
		c.id = id
	}
}

// EnsureLocalID assigns a locally generated identifier when the backend did
// not provide one. Conversations proceed regardless.
func (c *Conversation) EnsureLocalID() {
	if c.id == "" {
		c.id = "conversation_" + uuid.NewString()
	}
}

// Script returns the questionnaire definition in use.
func (c *Conversation) Script() Script {
	return c.script
}

// Step returns the current step index: 0 before the first question, 1..N
// while question N is pending, N+1 once all answers are collected.
func (c *Conversation) Step() int {
	return c.step
}

// Complete reports whether every question has been answered.
func (c *Conversation) Complete() bool {
	return c.step > len(c.script.Questions)
}

// InQuickStart reports whether the quick-start menu is still applicable.
func (c *Conversation) InQuickStart() bool {
	return c.step == 0
}

// Turns returns a copy of the transcript.
func (c *Conversation) Turns() []Turn {
	out := make([]Turn, len(c.turns))
	copy(out, c.turns)
	return out
}

// HasPlaceholder reports whether a typing placeholder is currently shown.
func (c *Conversation) HasPlaceholder() bool {
	for _, t := range c.turns {
		if t.Placeholder {
			return true
		}
	}
	return false
}

// Answers returns a copy of the collected answers in question order.
func (c *Conversation) Answers() []Answer {
	out := make([]Answer, len(c.answers))
	copy(out, c.answers)
	return out
}

// AnswerValue returns the collected answer for a key, or "".
func (c *Conversation) AnswerValue(key string) string {
	for _, a := range c.answers {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}

// SelectQuickStart records a quick-start party type as the implicit first
// answer and advances to the first question. Valid only before the
// questionnaire has begun and while no response is pending.
func (c *Conversation) SelectQuickStart(label string) error {
	if c.step != 0 {
		return ErrQuickStartUnavailable
	}
	if c.HasPlaceholder() {
		return ErrResponsePending
	}
	c.appendTurn(SpeakerUser, label)
	c.answers = append(c.answers, Answer{Key: PartyTypeKey, Value: label})
	c.step = 1
	return nil
}

// Submit appends a user turn and advances the questionnaire. Within the
// question range the text is recorded under the current question's key;
// outside it the message belongs to general chat and the questionnaire state
// is untouched.
func (c *Conversation) Submit(text string) (SubmitResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrEmptyMessage
	}
	if c.HasPlaceholder() {
		return 0, ErrResponsePending
	}

	c.appendTurn(SpeakerUser, text)

	if c.step < 1 || c.Complete() {
		return SubmitGeneralChat, nil
	}

	q := c.script.Questions[c.step-1]
	c.answers = append(c.answers, Answer{Key: q.Key, Value: text})
	c.step++

	if c.Complete() {
		return SubmitPlanReady, nil
	}
	return SubmitAskNext, nil
}

// CurrentQuestion returns the question pending at the current step.
func (c *Conversation) CurrentQuestion() (Question, bool) {
	if c.step < 1 || c.Complete() {
		return Question{}, false
	}
	return c.script.Questions[c.step-1], true
}

// ShowTyping appends the typing placeholder. At most one may exist.
func (c *Conversation) ShowTyping() error {
	if c.HasPlaceholder() {
		return ErrPlaceholderExists
	}
	t := Turn{ID: c.nextID, Speaker: SpeakerBot, Placeholder: true}
	c.nextID++
	c.turns = append(c.turns, t)
	return nil
}

// PostBot resolves any placeholder and appends a real bot turn. Every
// pending placeholder ends here, on success and failure paths alike.
func (c *Conversation) PostBot(text string, suggestions ...string) Turn {
	c.resolvePlaceholder()
	t := c.appendTurn(SpeakerBot, text)
	if len(suggestions) > 0 {
		c.turns[len(c.turns)-1].Suggestions = suggestions
		t = c.turns[len(c.turns)-1]
	}
	return t
}

// NextFallback returns the next graceful fallback acknowledgement.
func (c *Conversation) NextFallback() string {
	msg := FallbackResponse(c.fallbacks)
	c.fallbacks++
	return msg
}

// History converts the transcript into the wire conversation history,
// skipping any unresolved placeholder.
func (c *Conversation) History() []api.ChatMessage {
	var out []api.ChatMessage
	for _, t := range c.turns {
		if t.Placeholder {
			continue
		}
		role := "assistant"
		if t.Speaker == SpeakerUser {
			role = "user"
		}
		out = append(out, api.ChatMessage{Role: role, Content: t.Text})
	}
	return out
}

// UserContext builds the questionnaire context sent with general chat.
func (c *Conversation) UserContext() *api.UserContext {
	if len(c.answers) == 0 {
		return nil
	}
	ctx := &api.UserContext{Preferences: make(map[string]string)}
	for _, a := range c.answers {
		if a.Key == PartyTypeKey {
			ctx.PartyType = a.Value
			continue
		}
		ctx.Preferences[a.Key] = a.Value
	}
	return ctx
}

// PlanRequest assembles the planning payload from the collected answers.
func (c *Conversation) PlanRequest() api.PlanRequest {
	return api.PlanRequest{
		PartyType: c.AnswerValue(PartyTypeKey),
		Attendees: c.AnswerValue("attendees"),
		Date:      c.AnswerValue("date"),
		Budget:    c.AnswerValue("budget"),
		Location:  c.AnswerValue("location"),
		Mood:      c.AnswerValue("mood"),
	}
}

func (c *Conversation) appendTurn(speaker Speaker, text string) Turn {
	t := Turn{ID: c.nextID, Speaker: speaker, Text: text}
	c.nextID++
	c.turns = append(c.turns, t)
	return t
}

func (c *Conversation) resolvePlaceholder() {
	for i, t := range c.turns {
		if t.Placeholder {
			c.turns = append(c.turns[:i], c.turns[i+1:]...)
			return
		}
	}
}
