package timeline

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when a category name is not part of the closed set.
var ErrUnknownCategory = errors.New("unknown category")

// Category is the closed set of life event categories.
type Category uint8

const (
	Personal Category = iota
	Career
	Education
	Travel
	Health
	Family
	Achievement
	Other

	numCategories
)

var categoryInfo = [...]struct {
	name  string
	label string
	color string
}{
	Personal:    {"personal", "Personal", "#3B82F6"},
	Career:      {"career", "Career", "#8B5CF6"},
	Education:   {"education", "Education", "#10B981"},
	Travel:      {"travel", "Travel", "#F59E0B"},
	Health:      {"health", "Health", "#EF4444"},
	Family:      {"family", "Family", "#F97316"},
	Achievement: {"achievement", "Achievement", "#06B6D4"},
	Other:       {"other", "Other", "#8B5A2B"},
}

// Fails to compile unless categoryInfo has exactly one entry per Category.
var _ = [1]struct{}{}[len(categoryInfo)-int(numCategories)]

// Categories returns every category in declaration order.
func Categories() []Category {
	out := make([]Category, 0, numCategories)
	for c := Category(0); c < numCategories; c++ {
		out = append(out, c)
	}
	return out
}

// Valid reports whether c is a member of the closed set.
func (c Category) Valid() bool { return c < numCategories }

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
	return categoryInfo[c].name
}

// Label is the human readable name.
func (c Category) Label() string {
	if !c.Valid() {
		return c.String()
	}
	return categoryInfo[c].label
}

// Color is the default palette colour (#RRGGBB) for the category.
func (c Category) Color() string {
	if !c.Valid() {
		return categoryInfo[Other].color
	}
	return categoryInfo[c].color
}

// ParseCategory maps a category name (case-insensitive) to its value.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c := Category(0); c < numCategories; c++ {
		if categoryInfo[c].name == s {
			return c, nil
		}
	}
	return Other, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// ParseCategories parses a list of names, failing on the first unknown one.
func ParseCategories(names []string) ([]Category, error) {
	out := make([]Category, 0, len(names))
	for _, n := range names {
		c, err := ParseCategory(n)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	v, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
