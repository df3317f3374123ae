// Package export writes a timeline as a structured JSON report or a flat
// CSV table.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/filex"
	"github.com/dmitrijs2005/lifeweeks/internal/timeline"
)

const (
	FormatVersion = "1.0"
	ExportedBy    = "Life in Weeks Timeline"
)

var CSVHeader = []string{
	"Date",
	"Week Number",
	"Title",
	"Description",
	"Category",
	"Color",
	"Has Attachments",
	"Attachment Count",
	"Notify on Anniversary",
	"Created At",
}

// JSONFileName is e.g. "Ada_Lovelace_life_timeline_2024-03-01.json".
func JSONFileName(fullName string, now time.Time) string {
	return fmt.Sprintf("%s_life_timeline_%s.json", filex.SafeName(fullName), now.Format(time.DateOnly))
}

// CSVFileName is e.g. "Ada_Lovelace_events_2024-03-01.csv".
func CSVFileName(fullName string, now time.Time) string {
	return fmt.Sprintf("%s_events_%s.csv", filex.SafeName(fullName), now.Format(time.DateOnly))
}

type Report struct {
	Profile    ProfileInfo `json:"profile"`
	Statistics Statistics  `json:"statistics"`
	Events     []Event     `json:"events"`
	Metadata   Metadata    `json:"metadata"`
}

type ProfileInfo struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Birthdate  string    `json:"birthdate"`
	ExportDate time.Time `json:"exportDate"`
}

type Statistics struct {
	WeeksLived          int            `json:"weeksLived"`
	DaysLived           int            `json:"daysLived"`
	AgeYears            int            `json:"ageYears"`
	LifeProgress        int            `json:"lifeProgress"`
	TotalEvents         int            `json:"totalEvents"`
	Categories          map[string]int `json:"categories"`
	Years               map[string]int `json:"years"`
	MostActiveYear      int            `json:"mostActiveYear,omitempty"`
	MostActiveCategory  string         `json:"mostActiveCategory,omitempty"`
	EventsThisYear      int            `json:"eventsThisYear"`
	EventsWithReminders int            `json:"eventsWithReminders"`
	EventsPerYear       float64        `json:"eventsPerYear"`
	Attachments         AttachmentStat `json:"attachments"`
}

type AttachmentStat struct {
	Total           int     `json:"total"`
	EventsWithFiles int     `json:"eventsWithFiles"`
	PerEvent        float64 `json:"perEvent"`
}

type Event struct {
	ID                  string       `json:"id"`
	Title               string       `json:"title"`
	Description         string       `json:"description"`
	Date                string       `json:"date"`
	Category            string       `json:"category"`
	Color               string       `json:"color"`
	WeekNumber          int          `json:"weekNumber"`
	NotifyOnAnniversary bool         `json:"notifyOnAnniversary"`
	Attachments         []Attachment `json:"attachments"`
	CreatedAt           time.Time    `json:"createdAt"`
}

type Attachment struct {
	FileName    string    `json:"fileName"`
	FileSize    int64     `json:"fileSize"`
	FileType    string    `json:"fileType"`
	UploadDate  time.Time `json:"uploadDate"`
	Description string    `json:"description,omitempty"`
}

type Metadata struct {
	Version          string `json:"version"`
	ExportedBy       string `json:"exportedBy"`
	TotalEvents      int    `json:"totalEvents"`
	TotalAttachments int    `json:"totalAttachments"`
}

// BuildReport snapshots the profile, its statistics as of now and every event.
func BuildReport(p timeline.Profile, events []timeline.Event, now time.Time) Report {
	st := timeline.ComputeStatistics(p.Birthdate, events, now)

	r := Report{
		Profile: ProfileInfo{
			Name:       p.FullName,
			Email:      p.Email,
			Birthdate:  p.Birthdate.Format(time.DateOnly),
			ExportDate: now.UTC(),
		},
		Statistics: Statistics{
			WeeksLived:          st.WeeksLived,
			DaysLived:           st.DaysLived,
			AgeYears:            st.AgeYears,
			LifeProgress:        st.LifeProgress,
			TotalEvents:         st.TotalEvents,
			Categories:          make(map[string]int, len(st.ByCategory)),
			Years:               make(map[string]int, len(st.ByYear)),
			MostActiveYear:      st.MostActiveYear,
			EventsThisYear:      st.EventsThisYear,
			EventsWithReminders: st.EventsWithReminders,
			EventsPerYear:       st.EventsPerYear,
			Attachments: AttachmentStat{
				Total:           st.TotalAttachments,
				EventsWithFiles: st.EventsWithAttachments,
				PerEvent:        st.AttachmentsPerEvent,
			},
		},
		Events: make([]Event, 0, len(events)),
		Metadata: Metadata{
			Version:          FormatVersion,
			ExportedBy:       ExportedBy,
			TotalEvents:      len(events),
			TotalAttachments: st.TotalAttachments,
		},
	}
	for c, n := range st.ByCategory {
		r.Statistics.Categories[c.String()] = n
	}
	for y, n := range st.ByYear {
		r.Statistics.Years[strconv.Itoa(y)] = n
	}
	if st.TopCategoryCount > 0 {
		r.Statistics.MostActiveCategory = st.TopCategory.String()
	}

	for _, e := range events {
		ev := Event{
			ID:                  e.ID,
			Title:               e.Title,
			Description:         e.Description,
			Date:                e.Date.Format(time.DateOnly),
			Category:            e.Category.String(),
			Color:               e.Color,
			WeekNumber:          e.WeekNumber,
			NotifyOnAnniversary: e.NotifyOnAnniversary,
			Attachments:         make([]Attachment, 0, len(e.Attachments)),
			CreatedAt:           e.CreatedAt,
		}
		for _, a := range e.Attachments {
			ev.Attachments = append(ev.Attachments, Attachment{
				FileName:    a.FileName,
				FileSize:    a.FileSize,
				FileType:    a.FileType,
				UploadDate:  a.UploadDate,
				Description: a.Description,
			})
		}
		r.Events = append(r.Events, ev)
	}
	return r
}

// WriteJSON writes the indented report.
func WriteJSON(w io.Writer, p timeline.Profile, events []timeline.Event, now time.Time) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(BuildReport(p, events, now)); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// WriteCSV writes CSVHeader followed by one row per event.
func WriteCSV(w io.Writer, events []timeline.Event) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, e := range events {
		if err := cw.Write(Row(e)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Row is the CSV record of one event.
func Row(e timeline.Event) []string {
	n := len(e.Attachments)
	return []string{
		e.Date.Format(time.DateOnly),
		strconv.Itoa(e.WeekNumber),
		e.Title,
		e.Description,
		e.Category.String(),
		e.Color,
		yesNo(n > 0),
		strconv.Itoa(n),
		yesNo(e.NotifyOnAnniversary),
		e.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
