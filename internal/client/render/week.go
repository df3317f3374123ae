package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/filex"
	"github.com/dmitrijs2005/lifeweeks/internal/timeline"
)

// Week lists the events of one life week with their attachments.
func Week(birthdate time.Time, week int, events []timeline.Event) string {
	win := timeline.WeekWindow(birthdate, week)
	last := win.End.AddDate(0, 0, -1)

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Week %d", week)))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %s to %s, age %d",
		win.Start.Format(time.DateOnly), last.Format(time.DateOnly), timeline.AgeYears(birthdate, win.Start))))
	b.WriteByte('\n')

	if len(events) == 0 {
		b.WriteString(mutedStyle.Render("Nothing recorded this week."))
		return b.String()
	}

	for _, e := range events {
		fmt.Fprintf(&b, "%s %s %s\n", swatch(e.Color, "●"), boldStyle.Render(e.Title),
			mutedStyle.Render(fmt.Sprintf("[%s] %s  id:%s", e.Category.Label(), e.Date.Format(time.DateOnly), e.ID)))
		if e.Description != "" {
			fmt.Fprintf(&b, "    %s\n", e.Description)
		}
		if e.NotifyOnAnniversary {
			fmt.Fprintf(&b, "    %s\n", infoStyle.Render("anniversary reminder on"))
		}
		for _, a := range e.Attachments {
			fmt.Fprintf(&b, "    + %s %s\n", a.FileName,
				mutedStyle.Render(fmt.Sprintf("(%s, %s) id:%s", filex.FormatSize(a.FileSize), a.FileType, a.ID)))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
