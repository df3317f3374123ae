package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/catalog"
	"github.com/dmitrijs2005/lifeweeks/internal/timeline"
)

func Profile(p timeline.Profile, today time.Time) string {
	return strings.Join([]string{
		titleStyle.Render(p.FullName),
		mutedStyle.Render("Email      ") + p.Email,
		mutedStyle.Render("Born       ") + p.Birthdate.Format(time.DateOnly),
		mutedStyle.Render("Age        ") + fmt.Sprintf("%d", timeline.AgeYears(p.Birthdate, today)),
		mutedStyle.Render("Weeks lived") + fmt.Sprintf(" %d", timeline.WeeksBetween(p.Birthdate, today)),
	}, "\n")
}

// Events is the one-line-per-event listing.
func Events(events []timeline.Event) string {
	if len(events) == 0 {
		return mutedStyle.Render("No events yet.")
	}
	lines := make([]string, 0, len(events))
	for _, e := range events {
		line := fmt.Sprintf("%s %s %s %s %s",
			e.Date.Format(time.DateOnly),
			mutedStyle.Render(fmt.Sprintf("wk %4d", e.WeekNumber)),
			swatch(e.Color, "●"),
			boldStyle.Render(e.Title),
			mutedStyle.Render(fmt.Sprintf("[%s]", e.Category.Label())),
		)
		if n := len(e.Attachments); n > 0 {
			line += mutedStyle.Render(fmt.Sprintf(" (%d files)", n))
		}
		line += mutedStyle.Render("  id:" + e.ID)
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// Catalog numbers candidates from 1 so they can be picked for import.
func Catalog(entries []catalog.Entry) string {
	if len(entries) == 0 {
		return mutedStyle.Render("No catalog events match.")
	}
	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		lines = append(lines, fmt.Sprintf("%3d. %s %s %s %s",
			i+1,
			e.Date.Format(time.DateOnly),
			swatch(e.Category.Color(), "●"),
			boldStyle.Render(e.Title),
			mutedStyle.Render(fmt.Sprintf("[%s, %s]", e.Category, e.Significance.Label())),
		))
	}
	return strings.Join(lines, "\n")
}

// ImportResult summarises a batch import.
func ImportResult(r catalog.ImportResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s imported %d, failed %d", successStyle.Render("✓"), len(r.Created), len(r.Failed))
	for _, f := range r.Failed {
		fmt.Fprintf(&b, "\n%s %s: %v", errorStyle.Render("✗"), f.Entry.Title, f.Err)
	}
	return b.String()
}
