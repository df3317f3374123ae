package models

import (
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/timeline"
)

// Event is a user-owned timeline event. WeekNumber is derived from the
// owner's birthdate and Date and is rewritten whenever either changes.
type Event struct {
	ID                  string
	UserID              string
	Title               string
	Description         string
	Date                time.Time
	WeekNumber          int
	Category            timeline.Category
	Color               string
	NotifyOnAnniversary bool
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// Attachments are ordered by upload date. Only populated by listing calls.
	Attachments []*Attachment
}

// EventPatch carries a partial update; nil fields are left untouched.
type EventPatch struct {
	Title               *string
	Description         *string
	Date                *time.Time
	Category            *timeline.Category
	Color               *string
	NotifyOnAnniversary *bool
}

// Apply writes the non-nil fields of p onto e and reports whether Date changed.
func (p EventPatch) Apply(e *Event) (dateChanged bool) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Date != nil {
		d := timeline.Date(*p.Date)
		dateChanged = !d.Equal(e.Date)
		e.Date = d
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Color != nil {
		e.Color = *p.Color
	}
	if p.NotifyOnAnniversary != nil {
		e.NotifyOnAnniversary = *p.NotifyOnAnniversary
	}
	return dateChanged
}

func (e *Event) Timeline() timeline.Event {
	out := timeline.Event{
		ID:                  e.ID,
		Title:               e.Title,
		Description:         e.Description,
		Date:                e.Date,
		WeekNumber:          e.WeekNumber,
		Category:            e.Category,
		Color:               e.Color,
		NotifyOnAnniversary: e.NotifyOnAnniversary,
		CreatedAt:           e.CreatedAt,
	}
	for _, a := range e.Attachments {
		out.Attachments = append(out.Attachments, a.Timeline())
	}
	return out
}
