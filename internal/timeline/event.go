package timeline

import "time"

// Profile is the owner of a timeline. Birthdate anchors every week index.
type Profile struct {
	ID        string
	FullName  string
	Email     string
	Birthdate time.Time
	CreatedAt time.Time
}

// Event is a dated life event. WeekNumber is derived from the owner's
// birthdate and Date; it is never chosen by the user.
type Event struct {
	ID                  string
	Title               string
	Description         string
	Date                time.Time
	WeekNumber          int
	Category            Category
	Color               string
	NotifyOnAnniversary bool
	Attachments         []Attachment
	CreatedAt           time.Time
}

// Attachment is the metadata of a file bound to an event.
type Attachment struct {
	ID          string
	EventID     string
	FileName    string
	FileSize    int64
	FileType    string
	StoragePath string
	UploadDate  time.Time
	Description string
}
