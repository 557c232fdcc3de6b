package plan

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("135"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	bulletStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135"))
)

// Render returns a styled terminal rendering of the record, wrapped to the
// given width.
func Render(r Record, width int) string {
	if width <= 0 {
		width = 80
	}

	var b strings.Builder

	title := r.Title
	if title == "" {
		title = "파티 플랜"
	}
	b.WriteString(titleStyle.Render("🎉 " + title))
	b.WriteString("\n\n")

	if r.Description != "" {
		b.WriteString(wordwrap.String(r.Description, width))
		b.WriteString("\n\n")
	}

	if rows := r.detailRows(); len(rows) > 0 {
		b.WriteString(sectionStyle.Render("파티 정보"))
		b.WriteString("\n")
		for _, row := range rows {
			fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render(row[0]+":"), row[1])
		}
		b.WriteString("\n")
	}

	if len(r.Recommendations) > 0 {
		b.WriteString(sectionStyle.Render("추천 아이디어"))
		b.WriteString("\n")
		for _, rec := range r.Recommendations {
			line := fmt.Sprintf("%s %s", bulletStyle.Render("•"), rec)
			b.WriteString("  " + wordwrap.String(line, width-2))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
