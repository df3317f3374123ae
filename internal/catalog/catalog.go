// Package catalog offers curated public milestones and age-based life stages
// that a user can import into their timeline.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/timeline"
	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

const (
	SourceHistorical = "Historical Records"
	SourceLifeStages = "Life Stages"
)

//go:embed dataset.yaml
var dataset []byte

// Entry is a candidate event offered for import.
type Entry struct {
	ID           string
	Title        string
	Description  string
	Date         time.Time
	Category     Category
	Significance Significance
	Source       string
	Tags         []string
}

// LifeStage is an age milestone synthesised relative to a birthdate.
type LifeStage struct {
	Age         int
	Title       string
	Description string
}

// Catalog is an immutable set of curated entries and life stages.
type Catalog struct {
	entries []Entry
	stages  []LifeStage
}

type rawDataset struct {
	Events []struct {
		ID           string   `yaml:"id"`
		Title        string   `yaml:"title"`
		Description  string   `yaml:"description"`
		Date         string   `yaml:"date"`
		Category     string   `yaml:"category"`
		Significance string   `yaml:"significance"`
		Tags         []string `yaml:"tags"`
	} `yaml:"events"`
	LifeStages []struct {
		Age         int    `yaml:"age"`
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
	} `yaml:"life_stages"`
}

// Load parses a YAML dataset.
func Load(r io.Reader) (*Catalog, error) {
	var raw rawDataset
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{
		entries: make([]Entry, 0, len(raw.Events)),
		stages:  make([]LifeStage, 0, len(raw.LifeStages)),
	}
	for _, e := range raw.Events {
		date, err := time.Parse(time.DateOnly, e.Date)
		if err != nil {
			return nil, fmt.Errorf("entry %s: bad date: %w", e.ID, err)
		}
		cat, err := ParseCategory(e.Category)
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", e.ID, err)
		}
		sig, err := ParseSignificance(e.Significance)
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", e.ID, err)
		}
		c.entries = append(c.entries, Entry{
			ID:           e.ID,
			Title:        e.Title,
			Description:  e.Description,
			Date:         date,
			Category:     cat,
			Significance: sig,
			Source:       SourceHistorical,
			Tags:         e.Tags,
		})
	}
	for _, s := range raw.LifeStages {
		c.stages = append(c.stages, LifeStage{Age: s.Age, Title: s.Title, Description: s.Description})
	}
	return c, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := Load(bytes.NewReader(dataset))
	if err != nil {
		panic(err)
	}
	return c
})

// Default returns the embedded curated catalog.
func Default() *Catalog { return defaultCatalog() }

// Entries returns a copy of the curated entries.
func (c *Catalog) Entries() []Entry { return append([]Entry(nil), c.entries...) }

// LifeStages returns a copy of the life stage table.
func (c *Catalog) LifeStages() []LifeStage { return append([]LifeStage(nil), c.stages...) }

// Query narrows Candidates. Empty Categories or Significance mean "any".
type Query struct {
	Birthdate         time.Time
	Today             time.Time
	Categories        []Category
	Significance      []Significance
	IncludeLifeStages bool
	ExistingTitles    []string
}

// Candidates returns the entries worth offering for import, sorted by date:
//  1. curated entries dated within [Birthdate, Today] with a wanted significance,
//  2. plus life stages already reached when IncludeLifeStages is set,
//  3. restricted to the wanted categories,
//  4. minus anything whose title case-insensitively equals an existing event title.
func (c *Catalog) Candidates(q Query) []Entry {
	birth, today := timeline.Date(q.Birthdate), timeline.Date(q.Today)

	sig := make(map[Significance]bool, len(q.Significance))
	for _, s := range q.Significance {
		sig[s] = true
	}

	var out []Entry
	for _, e := range c.entries {
		if e.Date.Before(birth) || e.Date.After(today) {
			continue
		}
		if len(sig) > 0 && !sig[e.Significance] {
			continue
		}
		out = append(out, e)
	}

	if q.IncludeLifeStages {
		age := timeline.AgeYears(birth, today)
		for _, s := range c.stages {
			if s.Age <= age {
				out = append(out, s.entry(birth))
			}
		}
	}

	if len(q.Categories) > 0 {
		want := make(map[Category]bool, len(q.Categories))
		for _, cat := range q.Categories {
			want[cat] = true
		}
		out = keep(out, func(e Entry) bool { return want[e.Category] })
	}

	if len(q.ExistingTitles) > 0 {
		fold := cases.Fold()
		seen := make(map[string]bool, len(q.ExistingTitles))
		for _, t := range q.ExistingTitles {
			seen[fold.String(t)] = true
		}
		out = keep(out, func(e Entry) bool { return !seen[fold.String(e.Title)] })
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func (s LifeStage) entry(birthdate time.Time) Entry {
	return Entry{
		ID:           fmt.Sprintf("life-stage-%d", s.Age),
		Title:        s.Title,
		Description:  s.Description,
		Date:         timeline.Date(birthdate).AddDate(s.Age, 0, 0),
		Category:     Personal,
		Significance: Medium,
		Source:       SourceLifeStages,
		Tags:         []string{"personal", "milestone", "age"},
	}
}

func keep(entries []Entry, fn func(Entry) bool) []Entry {
	out := entries[:0]
	for _, e := range entries {
		if fn(e) {
			out = append(out, e)
		}
	}
	return out
}
