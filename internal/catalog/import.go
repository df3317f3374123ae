package catalog

import (
	"context"
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/timeline"
)

// EventDraft is the event a catalog entry becomes on import.
type EventDraft struct {
	Title               string
	Description         string
	Date                time.Time
	Category            timeline.Category
	Color               string
	NotifyOnAnniversary bool
}

// ToDraft maps an entry onto the personal event vocabulary. Only the
// personal catalog category survives; everything else collapses to other.
func ToDraft(e Entry) EventDraft {
	cat := timeline.Other
	if e.Category == Personal {
		cat = timeline.Personal
	}
	return EventDraft{
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Category:    cat,
		Color:       e.Category.Color(),
	}
}

// Creator persists one event.
type Creator interface {
	CreateEvent(ctx context.Context, d EventDraft) (timeline.Event, error)
}

type ImportFailure struct {
	Entry Entry
	Err   error
}

// ImportResult reports a batch import; successes are never rolled back.
type ImportResult struct {
	Created []timeline.Event
	Failed  []ImportFailure
}

// Import creates one event per entry. Each creation is independent: a
// failure is recorded and the batch carries on.
func Import(ctx context.Context, c Creator, entries []Entry) ImportResult {
	var res ImportResult
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			res.Failed = append(res.Failed, ImportFailure{Entry: e, Err: err})
			continue
		}
		ev, err := c.CreateEvent(ctx, ToDraft(e))
		if err != nil {
			res.Failed = append(res.Failed, ImportFailure{Entry: e, Err: err})
			continue
		}
		res.Created = append(res.Created, ev)
	}
	return res
}
