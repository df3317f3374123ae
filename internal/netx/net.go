// Package netx holds small HTTP helpers used against pre-signed object URLs.
package netx

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPClient is the client used for signed-URL transfers; tests may replace it.
var HTTPClient = &http.Client{}

// DownloadSignedURL streams the object at url into w and returns the byte count.
func DownloadSignedURL(ctx context.Context, url string, w io.Writer) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := HTTPClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("download failed: %s; body: %s", resp.Status, string(b))
	}
	return io.Copy(w, resp.Body)
}
