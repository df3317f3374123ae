package catalog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(y int, m time.Month, dd int) time.Time {
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
}

func titles(es []Entry) []string {
	out := make([]string, 0, len(es))
	for _, e := range es {
		out = append(out, e.Title)
	}
	return out
}

func TestDefault_Dataset(t *testing.T) {
	c := Default()

	entries := c.Entries()
	require.Len(t, entries, 24)
	require.Len(t, c.LifeStages(), 9)

	ids := map[string]bool{}
	for _, e := range entries {
		assert.False(t, ids[e.ID], "duplicate id %s", e.ID)
		ids[e.ID] = true
		assert.Equal(t, SourceHistorical, e.Source)
		assert.NotEmpty(t, e.Title)
		assert.False(t, e.Date.IsZero())
	}
	assert.True(t, ids["chatgpt-2022"])
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(strings.NewReader("events:\n  - id: x\n    date: yesterday\n"))
	assert.Error(t, err)

	_, err = Load(strings.NewReader("events:\n  - id: x\n    date: 2000-01-01\n    category: gossip\n    significance: low\n"))
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = Load(strings.NewReader("events: [\n"))
	assert.Error(t, err)
}

func TestCandidates_DateRangeAndSort(t *testing.T) {
	c := Default()
	q := Query{Birthdate: d(2000, time.January, 1), Today: d(2008, time.January, 1)}

	got := c.Candidates(q)
	require.NotEmpty(t, got)
	for i, e := range got {
		assert.False(t, e.Date.Before(q.Birthdate), e.Title)
		assert.False(t, e.Date.After(q.Today), e.Title)
		if i > 0 {
			assert.False(t, e.Date.Before(got[i-1].Date), "not sorted at %d", i)
		}
	}
	assert.Equal(t, "September 11 Attacks", got[0].Title)
	assert.Contains(t, titles(got), "iPhone Released")
	assert.NotContains(t, titles(got), "Spotify Launches")
}

func TestCandidates_Significance(t *testing.T) {
	c := Default()
	got := c.Candidates(Query{
		Birthdate:    d(1980, time.January, 1),
		Today:        d(2024, time.January, 1),
		Significance: []Significance{Critical},
	})
	for _, e := range got {
		assert.Equal(t, Critical, e.Significance)
	}
	assert.Len(t, got, 8)
}

func TestCandidates_LifeStages(t *testing.T) {
	c := Default()
	birth := d(1990, time.June, 15)

	got := c.Candidates(Query{
		Birthdate:         birth,
		Today:             d(2015, time.June, 14), // 24 years old
		Categories:        []Category{Personal},
		IncludeLifeStages: true,
	})

	require.Len(t, got, 5)
	assert.Equal(t, []string{
		"Started School Age", "Became a Teenager", "Driving Age", "Became an Adult", "Legal Drinking Age",
	}, titles(got))
	last := got[len(got)-1]
	assert.Equal(t, "life-stage-21", last.ID)
	assert.Equal(t, d(2011, time.June, 15), last.Date)
	assert.Equal(t, SourceLifeStages, last.Source)
	assert.Equal(t, Medium, last.Significance)
	assert.Equal(t, []string{"personal", "milestone", "age"}, last.Tags)
}

func TestCandidates_LifeStagesIgnoreSignificance(t *testing.T) {
	c := Default()
	got := c.Candidates(Query{
		Birthdate:         d(1990, time.January, 1),
		Today:             d(1996, time.January, 1),
		Significance:      []Significance{Critical},
		IncludeLifeStages: true,
	})
	assert.Contains(t, titles(got), "Started School Age")
	assert.Contains(t, titles(got), "World Wide Web Goes Public")
}

func TestCandidates_DedupCaseInsensitive(t *testing.T) {
	c := Default()
	q := Query{
		Birthdate:      d(1990, time.January, 1),
		Today:          d(2000, time.January, 1),
		Categories:     []Category{Culture},
		ExistingTitles: []string{"HARRY POTTER PUBLISHED"},
	}

	got := c.Candidates(q)
	assert.Equal(t, []string{"Titanic Movie Released"}, titles(got))
}

func TestCategoryAndSignificance(t *testing.T) {
	for _, c := range Categories() {
		p, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, p)
		assert.Regexp(t, `^#[0-9A-F]{6}$`, c.Color())
	}
	assert.Equal(t, "#DC2626", Disaster.Color())

	assert.Equal(t, "Historic", Critical.Label())
	assert.Equal(t, "Minor", Low.Label())
	_, err := ParseSignificance("huge")
	assert.ErrorIs(t, err, ErrUnknownSignificance)
}
