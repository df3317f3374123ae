package api

import (
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/timeline"
)

type Empty struct{}

type PingResponse struct {
	Status string `json:"status"`
}

type RegisterRequest struct {
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	FullName  string    `json:"full_name"`
	Birthdate time.Time `json:"birthdate"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type TokenPair struct {
	UserID       string `json:"user_id,omitempty"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Profile struct {
	UserID    string    `json:"user_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Birthdate time.Time `json:"birthdate"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateProfileRequest leaves nil fields unchanged.
type UpdateProfileRequest struct {
	FullName  *string    `json:"full_name,omitempty"`
	Email     *string    `json:"email,omitempty"`
	Birthdate *time.Time `json:"birthdate,omitempty"`
}

type Attachment struct {
	ID          string    `json:"id"`
	EventID     string    `json:"event_id"`
	FileName    string    `json:"file_name"`
	FileSize    int64     `json:"file_size"`
	FileType    string    `json:"file_type"`
	StoragePath string    `json:"storage_path"`
	UploadDate  time.Time `json:"upload_date"`
	Description string    `json:"description,omitempty"`
}

type Event struct {
	ID                  string            `json:"id"`
	Title               string            `json:"title"`
	Description         string            `json:"description,omitempty"`
	Date                time.Time         `json:"date"`
	WeekNumber          int               `json:"week_number"`
	Category            timeline.Category `json:"category"`
	Color               string            `json:"color"`
	NotifyOnAnniversary bool              `json:"notify_on_anniversary"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
	Attachments         []Attachment      `json:"attachments,omitempty"`
}

type ListEventsResponse struct {
	Events []Event `json:"events"`
}

type CreateEventRequest struct {
	Title               string            `json:"title"`
	Description         string            `json:"description,omitempty"`
	Date                time.Time         `json:"date"`
	Category            timeline.Category `json:"category"`
	Color               string            `json:"color,omitempty"`
	NotifyOnAnniversary bool              `json:"notify_on_anniversary"`
}

// UpdateEventRequest patches event ID; nil fields are left unchanged.
type UpdateEventRequest struct {
	ID                  string             `json:"id"`
	Title               *string            `json:"title,omitempty"`
	Description         *string            `json:"description,omitempty"`
	Date                *time.Time         `json:"date,omitempty"`
	Category            *timeline.Category `json:"category,omitempty"`
	Color               *string            `json:"color,omitempty"`
	NotifyOnAnniversary *bool              `json:"notify_on_anniversary,omitempty"`
}

type IDRequest struct {
	ID string `json:"id"`
}

type UploadAttachmentRequest struct {
	EventID     string `json:"event_id"`
	FileName    string `json:"file_name"`
	MimeType    string `json:"mime_type"`
	Description string `json:"description,omitempty"`
	Data        []byte `json:"data"`
}

type AttachmentURLRequest struct {
	ID         string `json:"id"`
	TTLSeconds int64  `json:"ttl_seconds,omitempty"`
}

type AttachmentURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Timeline converts the wire profile into the core model.
func (p Profile) Timeline() timeline.Profile {
	return timeline.Profile{
		ID:        p.UserID,
		FullName:  p.FullName,
		Email:     p.Email,
		Birthdate: p.Birthdate,
		CreatedAt: p.CreatedAt,
	}
}

func (a Attachment) Timeline() timeline.Attachment {
	return timeline.Attachment{
		ID:          a.ID,
		EventID:     a.EventID,
		FileName:    a.FileName,
		FileSize:    a.FileSize,
		FileType:    a.FileType,
		StoragePath: a.StoragePath,
		UploadDate:  a.UploadDate,
		Description: a.Description,
	}
}

func (e Event) Timeline() timeline.Event {
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

// TimelineEvents converts a list response in order.
func TimelineEvents(events []Event) []timeline.Event {
	out := make([]timeline.Event, 0, len(events))
	for _, e := range events {
		out = append(out, e.Timeline())
	}
	return out
}
