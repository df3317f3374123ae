package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownCategory     = errors.New("unknown catalog category")
	ErrUnknownSignificance = errors.New("unknown significance")
)

// Category classifies catalog entries. It is a different, coarser axis than
// timeline.Category and is collapsed when an entry is imported.
type Category uint8

const (
	World Category = iota
	Technology
	Culture
	Science
	Sports
	Disaster
	Politics
	Personal

	numCategories
)

var categoryInfo = [...]struct {
	name  string
	color string
}{
	World:      {"world", "#EF4444"},
	Technology: {"technology", "#3B82F6"},
	Culture:    {"culture", "#8B5CF6"},
	Science:    {"science", "#10B981"},
	Sports:     {"sports", "#F59E0B"},
	Disaster:   {"disaster", "#DC2626"},
	Politics:   {"politics", "#6B7280"},
	Personal:   {"personal", "#F97316"},
}

// Fails to compile unless categoryInfo has exactly one entry per Category.
var _ = [1]struct{}{}[len(categoryInfo)-int(numCategories)]

func Categories() []Category {
	out := make([]Category, 0, numCategories)
	for c := Category(0); c < numCategories; c++ {
		out = append(out, c)
	}
	return out
}

func (c Category) String() string {
	if c >= numCategories {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
	return categoryInfo[c].name
}

// Color is the catalog palette colour of the category.
func (c Category) Color() string {
	if c >= numCategories {
		return categoryInfo[World].color
	}
	return categoryInfo[c].color
}

func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c := Category(0); c < numCategories; c++ {
		if categoryInfo[c].name == s {
			return c, nil
		}
	}
	return World, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

func (c *Category) UnmarshalText(b []byte) error {
	v, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Significance ranks how notable an entry is.
type Significance uint8

const (
	Low Significance = iota
	Medium
	High
	Critical

	numSignificance
)

var significanceInfo = [...]struct {
	name  string
	label string
}{
	Low:      {"low", "Minor"},
	Medium:   {"medium", "Notable"},
	High:     {"high", "Major"},
	Critical: {"critical", "Historic"},
}

var _ = [1]struct{}{}[len(significanceInfo)-int(numSignificance)]

func (s Significance) String() string {
	if s >= numSignificance {
		return fmt.Sprintf("Significance(%d)", uint8(s))
	}
	return significanceInfo[s].name
}

// Label is the display word used when listing entries.
func (s Significance) Label() string {
	if s >= numSignificance {
		return s.String()
	}
	return significanceInfo[s].label
}

func ParseSignificance(v string) (Significance, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for s := Significance(0); s < numSignificance; s++ {
		if significanceInfo[s].name == v {
			return s, nil
		}
	}
	return Low, fmt.Errorf("%w: %q", ErrUnknownSignificance, v)
}

func (s *Significance) UnmarshalText(b []byte) error {
	v, err := ParseSignificance(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
