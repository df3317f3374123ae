package models

import (
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/timeline"
)

// Attachment is the metadata row of a file stored in object storage.
// StoragePath is the object key of the blob.
type Attachment struct {
	ID          string
	EventID     string
	UserID      string
	FileName    string
	FileSize    int64
	FileType    string
	StoragePath string
	UploadDate  time.Time
	Description string
}

func (a *Attachment) Timeline() timeline.Attachment {
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
