// Package chat implements the guided questionnaire driving the party
// planner's chatbot: the chat transcript, the fixed ordered question list,
// the collected answers, and the hand-off to the planning API.
package chat

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var questionsYAML []byte

// Question is one step of the guided questionnaire.
type Question struct {
	// Key names the collected answer (e.g. "attendees").
	Key string `yaml:"key"`
	// Text is the question shown as a bot turn.
	Text string `yaml:"text"`
	// Hint is an optional input example shown with the question.
	Hint string `yaml:"hint"`
	// Options are optional preset answers shown with the question.
	Options []string `yaml:"options"`
}

// QuickStartOption is a preset party type offered before the questionnaire
// begins. Selecting one seeds the implicit first answer (party_type).
type QuickStartOption struct {
	Emoji       string `yaml:"emoji"`
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
}

// Script is the fixed questionnaire definition.
type Script struct {
	Questions  []Question         `yaml:"questions"`
	QuickStart []QuickStartOption `yaml:"quick_start"`
}

// PartyTypeKey is the implicit first answer key, seeded by quick start.
const PartyTypeKey = "party_type"

var defaultScript = mustParseScript(questionsYAML)

// DefaultScript returns the built-in questionnaire.
func DefaultScript() Script {
	return defaultScript
}

// ParseScript parses a questionnaire definition from YAML.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Questions) == 0 {
		return Script{}, fmt.Errorf("parse script: no questions defined")
	}
	for i, q := range s.Questions {
		if q.Key == "" || q.Text == "" {
			return Script{}, fmt.Errorf("parse script: question %d missing key or text", i)
		}
	}
	return s, nil
}

func mustParseScript(data []byte) Script {
	s, err := ParseScript(data)
	if err != nil {
		panic(err)
	}
	return s
}

// Prompt renders the question text with its hint or numbered options.
func (q Question) Prompt() string {
	switch {
	case len(q.Options) > 0:
		out := q.Text
		for i, opt := range q.Options {
			out += fmt.Sprintf("\n  %d. %s", i+1, opt)
		}
		return out
	case q.Hint != "":
		return fmt.Sprintf("%s (%s)", q.Text, q.Hint)
	default:
		return q.Text
	}
}
