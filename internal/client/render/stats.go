package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/lifeweeks/internal/timeline"
)

const barWidth = 30

func card(label, value string) string {
	return cardStyle.Render(mutedStyle.Render(label) + "\n" + boldStyle.Render(value))
}

// Statistics draws the dashboard: headline cards, the category histogram,
// a few scalars and the narrative insights.
func Statistics(s timeline.Statistics) string {
	var b strings.Builder

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		card("Weeks lived", fmt.Sprintf("%d", s.WeeksLived)),
		card("Age", fmt.Sprintf("%d years", s.AgeYears)),
		card("Life progress", fmt.Sprintf("%d%%", s.LifeProgress)),
		card("Events", fmt.Sprintf("%d", s.TotalEvents)),
	))
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("By category"))
	b.WriteByte('\n')
	peak := 0
	for _, n := range s.ByCategory {
		peak = max(peak, n)
	}
	for _, c := range timeline.Categories() {
		n := s.ByCategory[c]
		width := 0
		if peak > 0 {
			width = n * barWidth / peak
		}
		fmt.Fprintf(&b, "%-12s %s %d\n", c.Label(), swatch(c.Color(), strings.Repeat("█", width)), n)
	}
	b.WriteByte('\n')

	rows := [][2]string{
		{"Days lived", fmt.Sprintf("%d", s.DaysLived)},
		{"Events this year", fmt.Sprintf("%d", s.EventsThisYear)},
		{"With reminders", fmt.Sprintf("%d", s.EventsWithReminders)},
		{"Attachments", fmt.Sprintf("%d on %d events", s.TotalAttachments, s.EventsWithAttachments)},
	}
	if s.MostActiveYearCount > 0 {
		rows = append(rows,
			[2]string{"Most active year", fmt.Sprintf("%d (%d events)", s.MostActiveYear, s.MostActiveYearCount)},
			[2]string{"Top category", fmt.Sprintf("%s (%d events)", s.TopCategory.Label(), s.TopCategoryCount)},
		)
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "%s %s\n", mutedStyle.Render(fmt.Sprintf("%-17s", r[0])), r[1])
	}
	b.WriteByte('\n')

	b.WriteString(titleStyle.Render("Insights"))
	for _, line := range timeline.Insights(s) {
		b.WriteString("\n• " + line)
	}
	return b.String()
}
