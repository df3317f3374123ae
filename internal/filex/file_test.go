package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/dmitrijs2005/lifeweeks/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		size    int64
		mime    string
		wantErr error
	}{
		{name: "small png", size: 1024, mime: "image/png"},
		{name: "exactly the limit", size: common.MaxAttachmentSize, mime: "application/pdf"},
		{name: "one byte over", size: common.MaxAttachmentSize + 1, mime: "application/pdf", wantErr: common.ErrFileTooLarge},
		{name: "params ignored", size: 10, mime: "text/plain; charset=utf-8"},
		{name: "case insensitive", size: 10, mime: "Video/MP4"},
		{name: "executable", size: 10, mime: "application/x-msdownload", wantErr: common.ErrFileTypeNotAllowed},
		{name: "empty type", size: 10, mime: "", wantErr: common.ErrFileTypeNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.size, tt.mime)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAllowedTypes(t *testing.T) {
	got := AllowedTypes()
	assert.Len(t, got, 24)
	got[0] = "mutated"
	assert.Equal(t, "image/jpeg", AllowedTypes()[0])
}

func TestDetectType(t *testing.T) {
	assert.Equal(t, "application/pdf", DetectType("cv.PDF", nil))
	assert.Equal(t, "image/png", DetectType("noext", []byte("\x89PNG\r\n\x1a\n0000")))
	assert.Equal(t, "text/plain", DetectType("notes", []byte("hello world")))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindImage, KindOf("image/svg+xml"))
	assert.Equal(t, KindVideo, KindOf("video/quicktime"))
	assert.Equal(t, KindAudio, KindOf("audio/ogg"))
	assert.Equal(t, KindPDF, KindOf("application/pdf"))
	assert.Equal(t, KindDocument, KindOf("application/msword"))
	assert.Equal(t, KindSpreadsheet, KindOf("application/vnd.ms-excel"))
	assert.Equal(t, KindArchive, KindOf("application/x-7z-compressed"))
	assert.Equal(t, KindOther, KindOf("text/csv"))
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "0 Bytes", FormatSize(0))
	assert.Equal(t, "512 Bytes", FormatSize(512))
	assert.Equal(t, "1.5 KB", FormatSize(1536))
	assert.Equal(t, "50 MB", FormatSize(common.MaxAttachmentSize))
	assert.Equal(t, "2 GB", FormatSize(2<<30))
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir), "idempotent")

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0o700), fi.Mode().Perm())
	}
}

func TestSafeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Ada King  Lovelace", "Ada_King_Lovelace"},
		{"../../etc/passwd", "etc_passwd"},
		{`C:\Users\ada`, "C_Users_ada"},
		{"  José Ñúñez ", "José_Ñúñez"},
		{"..", "timeline"},
		{"", "timeline"},
	}
	for _, tt := range tests {
		got := SafeName(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, got, filepath.Base(got), "must stay a single path element")
	}
}
