package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/catalog"
	"github.com/dmitrijs2005/lifeweeks/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	birth = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	today = time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC)
)

func sampleEvents() []timeline.Event {
	return []timeline.Event{
		{ID: "e1", Title: "First steps", Date: time.Date(2001, time.February, 3, 0, 0, 0, 0, time.UTC), WeekNumber: 57,
			Category: timeline.Achievement, Color: "#06B6D4", NotifyOnAnniversary: true,
			Attachments: []timeline.Attachment{{ID: "a1", FileName: "steps.mp4", FileSize: 1536, FileType: "video/mp4"}}},
		{ID: "e2", Title: "School", Description: "Class 1B", Date: time.Date(2006, time.September, 1, 0, 0, 0, 0, time.UTC), WeekNumber: 347,
			Category: timeline.Education, Color: "not-a-colour"},
	}
}

func grid(z timeline.Zoom, cats ...timeline.Category) timeline.Grid {
	return timeline.BuildGrid(timeline.GridInput{Birthdate: birth, Today: today, Zoom: z, Events: sampleEvents(), Categories: cats})
}

func TestGrid_RowsPerZoom(t *testing.T) {
	// 521 weeks lived plus 520 weeks ahead gives 1041 visible weeks.
	tests := []struct {
		zoom timeline.Zoom
		rows int
	}{
		{timeline.ZoomWeek, 21},
		{timeline.ZoomMonth, 21},
		{timeline.ZoomQuarter, 21},
		{timeline.ZoomYear, 3},
	}
	for _, tt := range tests {
		t.Run(tt.zoom.String(), func(t *testing.T) {
			out := Grid(grid(tt.zoom))
			lines := strings.Split(out, "\n")
			require.Len(t, lines, tt.rows+2, "heading, rows, legend")
			assert.Contains(t, lines[0], tt.zoom.String()+" view")
			assert.Equal(t, 2, strings.Count(out, glyphCurrent), "one current unit plus the legend")
		})
	}
}

func TestGrid_WeekTitlesInline(t *testing.T) {
	lines := strings.Split(Grid(grid(timeline.ZoomWeek)), "\n")
	assert.True(t, strings.HasPrefix(lines[2], "  1y "))
	assert.Contains(t, lines[2], "First steps")
	assert.Contains(t, lines[7], "School")
	assert.NotContains(t, lines[1], "First steps")

	month := Grid(grid(timeline.ZoomMonth))
	assert.NotContains(t, month, "First steps", "titles are only drawn at week zoom")
}

func TestGrid_Filtered(t *testing.T) {
	out := Grid(grid(timeline.ZoomWeek, timeline.Education))
	assert.Contains(t, out, "(filtered)")
	assert.Contains(t, out, "wk  347")
	assert.NotContains(t, out, "First steps")

	empty := Grid(grid(timeline.ZoomWeek, timeline.Travel))
	assert.Contains(t, empty, "No weeks to show.")
}

func TestInlineTitles_Truncated(t *testing.T) {
	long := strings.Repeat("x", 100)
	row := []timeline.Unit{{Cells: []timeline.Cell{{Events: []timeline.Event{{Title: long}}}}}}
	got := inlineTitles(row)
	assert.Len(t, []rune(got), maxInline)
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestTierColor(t *testing.T) {
	base := mustHex("#EF4444")
	assert.Equal(t, base, tierColor(base, timeline.TierC))
	a, b := tierColor(base, timeline.TierA), tierColor(base, timeline.TierB)
	assert.Greater(t, a.DistanceLab(base), b.DistanceLab(base), "fewer events are paler")
	assert.Equal(t, fallback, parseColor("nope"))
}

func TestWeek(t *testing.T) {
	evs := sampleEvents()
	out := Week(birth, 57, evs[:1])
	assert.Contains(t, out, "Week 57")
	assert.Contains(t, out, "2001-02-03 to 2001-02-09, age 1")
	assert.Contains(t, out, "First steps")
	assert.Contains(t, out, "[Achievement]")
	assert.Contains(t, out, "anniversary reminder on")
	assert.Contains(t, out, "+ steps.mp4")
	assert.Contains(t, out, "1.5 KB")

	assert.Contains(t, Week(birth, 3, nil), "Nothing recorded this week.")
}

func TestStatistics(t *testing.T) {
	st := timeline.ComputeStatistics(birth, sampleEvents(), today)
	out := Statistics(st)

	for _, want := range []string{"Weeks lived", "521", "10 years", "Life progress", "Insights", "Most active year", "1 on 1 events"} {
		assert.Contains(t, out, want)
	}
	for _, line := range timeline.Insights(st) {
		assert.Contains(t, out, line)
	}

	empty := Statistics(timeline.ComputeStatistics(birth, nil, today))
	assert.NotContains(t, empty, "Most active year")
}

func TestEventsAndCatalog(t *testing.T) {
	out := Events(sampleEvents())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "wk   57")
	assert.Contains(t, lines[0], "(1 files)")
	assert.Contains(t, lines[1], "id:e2")
	assert.Contains(t, Events(nil), "No events yet.")

	cat := Catalog([]catalog.Entry{{Title: "Moon Landing", Date: time.Date(1969, 7, 20, 0, 0, 0, 0, time.UTC), Category: catalog.Science, Significance: catalog.Critical}})
	assert.Contains(t, cat, "  1. 1969-07-20")
	assert.Contains(t, cat, "Moon Landing")
	assert.Contains(t, cat, "Historic")
	assert.Contains(t, Catalog(nil), "No catalog events match.")
}

func TestImportResult(t *testing.T) {
	out := ImportResult(catalog.ImportResult{
		Created: []timeline.Event{{Title: "a"}},
		Failed:  []catalog.ImportFailure{{Entry: catalog.Entry{Title: "b"}, Err: errors.New("boom")}},
	})
	assert.Contains(t, out, "imported 1, failed 1")
	assert.Contains(t, out, "b: boom")
}

func TestStatusLines(t *testing.T) {
	var buf bytes.Buffer
	Success(&buf, "saved %s", "x")
	Warning(&buf, "careful")
	Failed(&buf, "delete event", errors.New("not found"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "saved x")
	assert.Contains(t, lines[1], "careful")
	assert.Contains(t, lines[2], "delete event failed: not found")
}

func TestProfile(t *testing.T) {
	out := Profile(timeline.Profile{FullName: "Ada", Email: "ada@example.com", Birthdate: birth}, today)
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "2000-01-01")
	assert.Contains(t, out, "521")
}
