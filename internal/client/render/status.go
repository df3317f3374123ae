package render

import (
	"fmt"
	"io"
)

func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, successStyle.Render("✓ ")+fmt.Sprintf(format, args...))
}

func Warning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, warningStyle.Render("⚠ ")+fmt.Sprintf(format, args...))
}

func Error(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, errorStyle.Render("✗ ")+fmt.Sprintf(format, args...))
}

func Info(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, infoStyle.Render("ℹ ")+fmt.Sprintf(format, args...))
}

// Failed reports a failed remote action without aborting the caller.
func Failed(w io.Writer, action string, err error) {
	Error(w, "%s failed: %v", action, err)
}
