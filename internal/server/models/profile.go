package models

import (
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/timeline"
)

// Profile is the one-per-user record whose birthdate anchors all week arithmetic.
type Profile struct {
	UserID    string
	FullName  string
	Email     string
	Birthdate time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Profile) Timeline() timeline.Profile {
	return timeline.Profile{
		ID:        p.UserID,
		FullName:  p.FullName,
		Email:     p.Email,
		Birthdate: p.Birthdate,
		CreatedAt: p.CreatedAt,
	}
}
