// Package plan turns generated party plans into saved documents: a Markdown
// record under the plans directory, a styled terminal rendering, and an
// optional HTML export.
package plan

import (
	"fmt"
	"strings"
	"time"

	"github.com/patihq/pati/internal/api"
)

// Record is a generated party plan together with the questionnaire answers
// that produced it.
type Record struct {
	ID              string
	Title           string
	Description     string
	Recommendations []string
	Request         api.PlanRequest
	CreatedAt       time.Time
}

// NewRecord builds a Record from a planning response. The ID is derived from
// the creation time so saved plans sort chronologically on disk.
func NewRecord(p *api.PartyPlan, req api.PlanRequest, now time.Time) Record {
	return Record{
		ID:              now.Format("20060102-150405"),
		Title:           p.Title,
		Description:     p.Description,
		Recommendations: p.Recommendations,
		Request:         req,
		CreatedAt:       now,
	}
}

// detailRows returns the questionnaire answers as label/value pairs, skipping
// anything the user left unanswered.
func (r Record) detailRows() [][2]string {
	rows := [][2]string{
		{"파티 유형", r.Request.PartyType},
		{"인원", r.Request.Attendees},
		{"날짜", r.Request.Date},
		{"예산", r.Request.Budget},
		{"장소", r.Request.Location},
		{"분위기", r.Request.Mood},
		{"요청사항", r.Request.SpecialRequirements},
	}
	out := rows[:0]
	for _, row := range rows {
		if row[1] != "" {
			out = append(out, row)
		}
	}
	return out
}

// Markdown renders the record as a standalone Markdown document. This is the
// on-disk format for saved plans.
func (r Record) Markdown() string {
	var b strings.Builder

	title := r.Title
	if title == "" {
		title = "파티 플랜"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "_%s_\n\n", r.CreatedAt.Format("2006-01-02 15:04"))

	if r.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", r.Description)
	}

	if rows := r.detailRows(); len(rows) > 0 {
		b.WriteString("## 파티 정보\n\n")
		b.WriteString("| 항목 | 내용 |\n")
		b.WriteString("| --- | --- |\n")
		for _, row := range rows {
			fmt.Fprintf(&b, "| %s | %s |\n", row[0], row[1])
		}
		b.WriteString("\n")
	}

	if len(r.Recommendations) > 0 {
		b.WriteString("## 추천 아이디어\n\n")
		for i, rec := range r.Recommendations {
			fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
		}
		b.WriteString("\n")
	}

	return b.String()
}
