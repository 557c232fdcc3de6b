package chat

import (
	"strings"
	"testing"
)

func TestDefaultScript(t *testing.T) {
	s := DefaultScript()

	wantKeys := []string{"attendees", "date", "budget", "location", "mood"}
	if len(s.Questions) != len(wantKeys) {
		t.Fatalf("len(Questions) = %d, want %d", len(s.Questions), len(wantKeys))
	}
	for i, key := range wantKeys {
		if s.Questions[i].Key != key {
			t.Errorf("Questions[%d].Key = %q, want %q", i, s.Questions[i].Key, key)
		}
	}
	if len(s.QuickStart) != 4 {
		t.Errorf("len(QuickStart) = %d, want 4", len(s.QuickStart))
	}
	for i, opt := range s.QuickStart {
		if opt.Label == "" || opt.Emoji == "" {
			t.Errorf("QuickStart[%d] = %+v, missing label or emoji", i, opt)
		}
	}
}

func TestParseScriptRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"invalid yaml", ":\n  - ["},
		{"no questions", "quick_start:\n  - label: 생일파티\n"},
		{"missing key", "questions:\n  - text: 질문\n"},
		{"missing text", "questions:\n  - key: attendees\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseScript([]byte(tt.yaml)); err == nil {
				t.Error("ParseScript() error = nil, want error")
			}
		})
	}
}

func TestQuestionPrompt(t *testing.T) {
	tests := []struct {
		name string
		q    Question
		want string
	}{
		{
			name: "bare text",
			q:    Question{Text: "어디에서 하나요?"},
			want: "어디에서 하나요?",
		},
		{
			name: "hint",
			q:    Question{Text: "몇 명인가요?", Hint: "예: 10명"},
			want: "몇 명인가요? (예: 10명)",
		},
		{
			name: "options",
			q:    Question{Text: "예산은요?", Options: []string{"상관없음", "인당 5만원 이하"}},
			want: "예산은요?\n  1. 상관없음\n  2. 인당 5만원 이하",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.Prompt(); got != tt.want {
				t.Errorf("Prompt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQuickStartAckMentionsOption(t *testing.T) {
	ack := QuickStartAck("졸업파티")
	if !strings.Contains(ack, "졸업파티") {
		t.Errorf("QuickStartAck() = %q, missing option", ack)
	}
}
