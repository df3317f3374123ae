package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/common"
	"github.com/dmitrijs2005/lifeweeks/internal/logging"
	"github.com/dmitrijs2005/lifeweeks/internal/server/config"
	"github.com/dmitrijs2005/lifeweeks/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAttachmentService(t *testing.T) (*AttachmentService, *fakeRepoManager, *memBlobs, *models.Event) {
	t.Helper()
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	blobs := newMemBlobs()
	seedProfile(rm, "u1", birth)
	e := seedEvent(rm, &models.Event{UserID: "u1", Title: "Graduation", Date: day(2022, time.June, 1)})

	s := NewAttachmentService(db, rm, blobs, &config.Config{SignedURLTTL: time.Hour}, logging.Nop{})
	s.now = func() time.Time { return fixedNow }
	return s, rm, blobs, e
}

func TestAttachmentService_Upload(t *testing.T) {
	s, rm, blobs, e := newAttachmentService(t)

	a, err := s.Upload(context.Background(), "u1", Upload{
		EventID:     e.ID,
		FileName:    `C:\photos\Diploma.PNG`,
		MimeType:    "Image/PNG",
		Description: " framed ",
		Data:        []byte("png-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Diploma.PNG", a.FileName)
	assert.Equal(t, "image/png", a.FileType)
	assert.Equal(t, int64(9), a.FileSize)
	assert.Equal(t, "framed", a.Description)
	assert.True(t, strings.HasPrefix(a.StoragePath, "u1/"+e.ID+"/"), a.StoragePath)
	assert.True(t, strings.HasSuffix(a.StoragePath, ".png"), a.StoragePath)

	assert.Equal(t, []byte("png-bytes"), blobs.objects[a.StoragePath])
	assert.Contains(t, rm.attachments.m, a.ID)
}

func TestAttachmentService_UploadRejectsBeforeTouchingStorage(t *testing.T) {
	s, rm, blobs, e := newAttachmentService(t)

	tests := []struct {
		name string
		in   Upload
		want error
	}{
		{"too large", Upload{EventID: e.ID, FileName: "big.zip", MimeType: "application/zip",
			Data: make([]byte, common.MaxAttachmentSize+1)}, common.ErrFileTooLarge},
		{"type not allowed", Upload{EventID: e.ID, FileName: "run.exe", MimeType: "application/x-msdownload",
			Data: []byte("MZ")}, common.ErrFileTypeNotAllowed},
		{"no name", Upload{EventID: e.ID, FileName: " ", MimeType: "text/plain"}, common.ErrorValidation},
		{"foreign event", Upload{EventID: "e404", FileName: "a.txt", MimeType: "text/plain"}, common.ErrorNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Upload(context.Background(), "u1", tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Empty(t, blobs.objects)
	assert.Empty(t, rm.attachments.m)
}

func TestAttachmentService_UploadBlobFailureWritesNoRow(t *testing.T) {
	s, rm, blobs, e := newAttachmentService(t)
	blobs.uploadErr = common.ErrBlobStore

	_, err := s.Upload(context.Background(), "u1", Upload{EventID: e.ID, FileName: "a.txt", MimeType: "text/plain", Data: []byte("x")})
	assert.ErrorIs(t, err, common.ErrBlobStore)
	assert.Empty(t, rm.attachments.m)
}

func TestAttachmentService_UploadRowFailureRemovesBlob(t *testing.T) {
	s, rm, blobs, e := newAttachmentService(t)
	rm.attachments.createErr = errBoom

	_, err := s.Upload(context.Background(), "u1", Upload{EventID: e.ID, FileName: "a.txt", MimeType: "text/plain", Data: []byte("x")})
	assert.ErrorIs(t, err, errBoom)
	assert.Empty(t, blobs.objects, "blob cleaned up")
}

func TestAttachmentService_Delete(t *testing.T) {
	s, rm, blobs, e := newAttachmentService(t)
	a := seedAttachment(t, rm, blobs, e.ID, "u1/e/1.pdf")

	blobs.failDelete["u1/e/1.pdf"] = true
	err := s.Delete(context.Background(), "u1", a.ID)
	assert.ErrorIs(t, err, common.ErrBlobStore)
	assert.Contains(t, rm.attachments.m, a.ID, "row kept when the blob survives")

	delete(blobs.failDelete, "u1/e/1.pdf")
	require.NoError(t, s.Delete(context.Background(), "u1", a.ID))
	assert.Empty(t, rm.attachments.m)
	assert.Empty(t, blobs.objects)

	assert.ErrorIs(t, s.Delete(context.Background(), "u1", a.ID), common.ErrorNotFound)
}

func TestAttachmentService_SignedURL(t *testing.T) {
	s, rm, blobs, e := newAttachmentService(t)
	a := seedAttachment(t, rm, blobs, e.ID, "u1/e/1.pdf")

	url, expires, err := s.SignedURL(context.Background(), "u1", a.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, "https://blobs.test/u1/e/1.pdf?ttl=3600", url)
	assert.Equal(t, fixedNow.Add(time.Hour), expires)

	url, _, err = s.SignedURL(context.Background(), "u1", a.ID, 5*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "https://blobs.test/u1/e/1.pdf?ttl=300", url)

	_, _, err = s.SignedURL(context.Background(), "u2", a.ID, 0)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
