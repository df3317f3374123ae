// Package filex holds the attachment file policy shared by every upload path
// (size limit and MIME allow-list) plus small file helpers for the CLI.
package filex

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/lifeweeks/internal/common"
)

var allowedTypes = []string{
	// images
	"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp", "image/svg+xml",
	// documents
	"application/pdf", "application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"text/plain", "text/csv", "application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	// audio
	"audio/mpeg", "audio/wav", "audio/ogg", "audio/mp4",
	// video
	"video/mp4", "video/mpeg", "video/quicktime", "video/x-msvideo",
	// archives
	"application/zip", "application/x-rar-compressed", "application/x-7z-compressed",
}

var allowed = func() map[string]bool {
	m := make(map[string]bool, len(allowedTypes))
	for _, t := range allowedTypes {
		m[t] = true
	}
	return m
}()

// AllowedTypes returns a copy of the MIME allow-list.
func AllowedTypes() []string { return append([]string(nil), allowedTypes...) }

// Validate enforces the upload policy: at most common.MaxAttachmentSize bytes
// and a MIME type from the allow-list. Parameters after ';' are ignored.
func Validate(size int64, mimeType string) error {
	if size > common.MaxAttachmentSize {
		return fmt.Errorf("%w: %s exceeds %s", common.ErrFileTooLarge, FormatSize(size), FormatSize(common.MaxAttachmentSize))
	}
	if !allowed[baseType(mimeType)] {
		return fmt.Errorf("%w: %q", common.ErrFileTypeNotAllowed, mimeType)
	}
	return nil
}

func baseType(mimeType string) string {
	t, _, _ := strings.Cut(mimeType, ";")
	return strings.ToLower(strings.TrimSpace(t))
}

// DetectType guesses a MIME type from the file extension, falling back to
// sniffing the first bytes of content.
func DetectType(fileName string, head []byte) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(fileName))); t != "" {
		return baseType(t)
	}
	return baseType(http.DetectContentType(head))
}

type Kind int

const (
	KindOther Kind = iota
	KindImage
	KindVideo
	KindAudio
	KindPDF
	KindDocument
	KindSpreadsheet
	KindArchive
)

// KindOf groups a MIME type for display.
func KindOf(mimeType string) Kind {
	t := baseType(mimeType)
	switch {
	case strings.HasPrefix(t, "image/"):
		return KindImage
	case strings.HasPrefix(t, "video/"):
		return KindVideo
	case strings.HasPrefix(t, "audio/"):
		return KindAudio
	case t == "application/pdf":
		return KindPDF
	case strings.Contains(t, "word") || strings.Contains(t, "document"):
		return KindDocument
	case strings.Contains(t, "excel") || strings.Contains(t, "spreadsheet"):
		return KindSpreadsheet
	case strings.Contains(t, "zip") || strings.Contains(t, "rar") || strings.Contains(t, "7z"):
		return KindArchive
	}
	return KindOther
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatSize renders bytes with binary units and at most two decimals,
// e.g. 1536 -> "1.5 KB".
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	v := float64(bytes)
	i := 0
	for v >= 1024 && i < len(sizeUnits)-1 {
		v /= 1024
		i++
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	return s + " " + sizeUnits[i]
}

// EnsureDir creates dir (and parents) readable only by the current user.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

var unsafeName = regexp.MustCompile(`[\s/\\:*?"<>|]+`)

// SafeName turns free text such as a person's name into a single file name
// component: whitespace and path or shell-hostile characters become "_",
// leading and trailing dots and underscores are dropped.
func SafeName(s string) string {
	s = strings.Trim(unsafeName.ReplaceAllString(s, "_"), "._")
	if s == "" {
		return "timeline"
	}
	return s
}
