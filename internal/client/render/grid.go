package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/lifeweeks/internal/timeline"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	glyphCurrent = "◆"
	maxInline    = 60
)

type glyphSet struct {
	lived, future string
	tiers         [4]string
}

// Each zoom level has its own density: week cells are squares, months are
// compact bars whose height follows the tier, quarters are dots and years
// are minimal dots.
var glyphs = map[timeline.Zoom]glyphSet{
	timeline.ZoomWeek:    {lived: "■", future: "□", tiers: [4]string{"", "■", "■", "■"}},
	timeline.ZoomMonth:   {lived: "▁", future: "▁", tiers: [4]string{"", "▃", "▅", "█"}},
	timeline.ZoomQuarter: {lived: "∘", future: "∘", tiers: [4]string{"", "●", "●", "●"}},
	timeline.ZoomYear:    {lived: "·", future: "·", tiers: [4]string{"", "•", "•", "•"}},
}

// unitsPerRow makes a row one year of life, or a decade at year zoom.
func unitsPerRow(z timeline.Zoom) int {
	switch z {
	case timeline.ZoomMonth:
		return 13
	case timeline.ZoomQuarter:
		return 4
	case timeline.ZoomYear:
		return 10
	default:
		return 52
	}
}

// Grid draws the visible units row by row. At week zoom the titles of the
// row's events follow the row.
func Grid(g timeline.Grid) string {
	var b strings.Builder
	heading := fmt.Sprintf("Life in weeks - %s view, %d weeks lived", g.Zoom, g.WeeksLived)
	if g.Filtered {
		heading += " (filtered)"
	}
	b.WriteString(titleStyle.Render(heading))
	b.WriteByte('\n')

	if len(g.Units) == 0 {
		b.WriteString(mutedStyle.Render("No weeks to show."))
		return b.String()
	}

	per := unitsPerRow(g.Zoom)
	for i := 0; i < len(g.Units); i += per {
		row := g.Units[i:min(i+per, len(g.Units))]
		b.WriteString(rowLabel(g, row[0]))
		for _, u := range row {
			b.WriteString(unitGlyph(g.Zoom, u))
		}
		if g.Zoom == timeline.ZoomWeek {
			if titles := inlineTitles(row); titles != "" {
				b.WriteString("  " + mutedStyle.Render(titles))
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString(legend(g.Zoom))
	return b.String()
}

func rowLabel(g timeline.Grid, first timeline.Unit) string {
	week := first.Cells[0].Week
	if g.Filtered {
		return mutedStyle.Render(fmt.Sprintf("wk %4d ", week))
	}
	return mutedStyle.Render(fmt.Sprintf("%3dy ", week/52))
}

func unitGlyph(z timeline.Zoom, u timeline.Unit) string {
	set := glyphs[z]
	switch {
	case u.Current && u.EventCount == 0:
		return currentStyle.Render(glyphCurrent)
	case u.EventCount == 0 && u.Lived:
		return livedStyle.Render(set.lived)
	case u.EventCount == 0:
		return futureStyle.Render(set.future)
	}

	c := tierColor(unitColor(u), u.Tier)
	if !u.Lived {
		c = c.BlendLab(slate, 0.6)
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Clamped().Hex()))
	if u.Current {
		style = style.Bold(true).Reverse(true)
	}
	return style.Render(set.tiers[u.Tier])
}

// unitColor is the colour of the unit's first event.
func unitColor(u timeline.Unit) colorful.Color {
	for _, c := range u.Cells {
		if len(c.Events) > 0 {
			return parseColor(c.Events[0].Color)
		}
	}
	return fallback
}

// tierColor washes single-event units out and keeps busy units saturated.
func tierColor(c colorful.Color, t timeline.Tier) colorful.Color {
	switch t {
	case timeline.TierA:
		return c.BlendLab(white, 0.45)
	case timeline.TierB:
		return c.BlendLab(white, 0.2)
	default:
		return c
	}
}

func inlineTitles(row []timeline.Unit) string {
	var titles []string
	for _, u := range row {
		for _, c := range u.Cells {
			for _, e := range c.Events {
				titles = append(titles, e.Title)
			}
		}
	}
	s := strings.Join(titles, ", ")
	if r := []rune(s); len(r) > maxInline {
		s = string(r[:maxInline-1]) + "…"
	}
	return s
}

func legend(z timeline.Zoom) string {
	set := glyphs[z]
	return mutedStyle.Render(fmt.Sprintf("%s lived  %s future  %s now  %s 1 / %s 2-3 / %s 4+ events",
		set.lived, set.future, glyphCurrent, set.tiers[timeline.TierA], set.tiers[timeline.TierB], set.tiers[timeline.TierC]))
}
