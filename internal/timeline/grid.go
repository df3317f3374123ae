package timeline

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	// ExpectedLifespanWeeks is the 80 year horizon the grid is drawn against.
	ExpectedLifespanWeeks = 80 * 52
	// LookAheadWeeks is how far past today the unfiltered grid extends.
	LookAheadWeeks = 520
)

var ErrUnknownZoom = errors.New("unknown zoom level")

// Zoom controls how many consecutive weeks are drawn as one visual unit.
type Zoom uint8

const (
	ZoomWeek Zoom = iota
	ZoomMonth
	ZoomQuarter
	ZoomYear
)

var zoomNames = [...]string{ZoomWeek: "week", ZoomMonth: "month", ZoomQuarter: "quarter", ZoomYear: "year"}

func (z Zoom) String() string {
	if int(z) < len(zoomNames) {
		return zoomNames[z]
	}
	return fmt.Sprintf("Zoom(%d)", uint8(z))
}

// WeeksPerUnit is 1, 4, 13 or 52.
func (z Zoom) WeeksPerUnit() int {
	switch z {
	case ZoomMonth:
		return 4
	case ZoomQuarter:
		return 13
	case ZoomYear:
		return 52
	default:
		return 1
	}
}

func ParseZoom(s string) (Zoom, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range zoomNames {
		if n == s {
			return Zoom(i), nil
		}
	}
	return ZoomWeek, fmt.Errorf("%w: %q", ErrUnknownZoom, s)
}

// Tier is the visual intensity of a cell with events.
type Tier uint8

const (
	TierNone Tier = iota
	TierA         // exactly one event
	TierB         // two or three events
	TierC         // four or more
)

// TierFor maps an event count to its intensity tier.
func TierFor(count int) Tier {
	switch {
	case count <= 0:
		return TierNone
	case count == 1:
		return TierA
	case count <= 3:
		return TierB
	default:
		return TierC
	}
}

func (t Tier) String() string {
	switch t {
	case TierA:
		return "A"
	case TierB:
		return "B"
	case TierC:
		return "C"
	default:
		return "none"
	}
}

// Cell is one visible week.
type Cell struct {
	Week            int
	Window          Window
	Events          []Event
	AttachmentCount int
	Lived           bool
	Future          bool
	Current         bool
	Tier            Tier
}

// Unit groups Zoom.WeeksPerUnit() consecutive visible cells.
type Unit struct {
	Index           int
	Cells           []Cell
	EventCount      int
	AttachmentCount int
	Tier            Tier
	Current         bool
	Lived           bool
}

// Grid is the full visible timeline.
type Grid struct {
	Zoom       Zoom
	WeeksLived int
	Filtered   bool
	Cells      []Cell
	Units      []Unit
}

// GridInput carries everything BuildGrid needs. Today is passed explicitly
// so the grid is reproducible.
type GridInput struct {
	Birthdate  time.Time
	Today      time.Time
	Zoom       Zoom
	Events     []Event
	Categories []Category
}

// BuildGrid lays out the visible weeks. Without a category filter the
// visible range is [0, min(ExpectedLifespanWeeks, weeksLived+LookAheadWeeks)).
// With a filter only the weeks holding at least one matching event are
// visible, in ascending order.
func BuildGrid(in GridInput) Grid {
	weeksLived := WeeksBetween(in.Birthdate, in.Today)
	events := FilterByCategory(in.Events, in.Categories)
	byWeek := IndexByWeek(events, in.Birthdate)

	var weeks []int
	filtered := len(in.Categories) > 0
	if filtered {
		weeks = make([]int, 0, len(byWeek))
		for w := range byWeek {
			weeks = append(weeks, w)
		}
		sort.Ints(weeks)
	} else {
		limit := min(ExpectedLifespanWeeks, weeksLived+LookAheadWeeks)
		weeks = make([]int, 0, max(limit, 0))
		for w := 0; w < limit; w++ {
			weeks = append(weeks, w)
		}
	}

	g := Grid{
		Zoom:       in.Zoom,
		WeeksLived: weeksLived,
		Filtered:   filtered,
		Cells:      make([]Cell, 0, len(weeks)),
	}
	for _, w := range weeks {
		g.Cells = append(g.Cells, newCell(in.Birthdate, in.Today, weeksLived, w, byWeek[w]))
	}
	g.Units = groupUnits(g.Cells, in.Zoom.WeeksPerUnit())
	return g
}

func newCell(birthdate, today time.Time, weeksLived, week int, events []Event) Cell {
	win := WeekWindow(birthdate, week)
	return Cell{
		Week:            week,
		Window:          win,
		Events:          events,
		AttachmentCount: AttachmentCount(events),
		Lived:           week <= weeksLived,
		Future:          week > weeksLived,
		Current:         win.Contains(today),
		Tier:            TierFor(len(events)),
	}
}

func groupUnits(cells []Cell, size int) []Unit {
	units := make([]Unit, 0, (len(cells)+size-1)/size)
	for i := 0; i < len(cells); i += size {
		chunk := cells[i:min(i+size, len(cells))]
		u := Unit{Index: len(units), Cells: chunk}
		for _, c := range chunk {
			u.EventCount += len(c.Events)
			u.AttachmentCount += c.AttachmentCount
			u.Current = u.Current || c.Current
			u.Lived = u.Lived || c.Lived
		}
		u.Tier = TierFor(u.EventCount)
		units = append(units, u)
	}
	return units
}
