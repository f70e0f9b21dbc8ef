// Package pdfcache downloads linked PDF documents, extracts their text, and
// keeps the result in a flat-file cache keyed by a hash of the source URL so a
// document is never fetched twice.
package pdfcache

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"golang.org/x/sync/singleflight"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// maxPages bounds extraction to the leading pages; KHIDI briefs front-load
// their substance and some scanned annexes run to hundreds of pages.
const maxPages = 20

type Cache struct {
	dir string
	hc  *http.Client
	sf  singleflight.Group
}

func New(dir string) *Cache {
	return &Cache{
		dir: dir,
		hc:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Cache) Dir() string { return c.dir }

// KeyFromURL derives the cache key for a PDF URL.
func KeyFromURL(u string) string {
	h := sha256.Sum256([]byte(u))
	return hex.EncodeToString(h[:])
}

// Text returns the extracted text for a PDF URL. A cached entry, even a
// cached empty string for an image-only document, is returned verbatim
// without touching the network. On a miss the document is downloaded and
// extracted; the result is cached even when empty. A non-200 download or any
// extraction failure yields empty text and caches nothing, so the next call
// tries again.
func (c *Cache) Text(ctx context.Context, pdfURL string) (string, error) {
	pdfURL = strings.TrimSpace(pdfURL)
	if pdfURL == "" {
		return "", nil
	}

	key := KeyFromURL(pdfURL)
	cachePath := filepath.Join(c.dir, key+".txt")

	// Presence of the file is the hit test; its content may legitimately be "".
	if data, err := os.ReadFile(cachePath); err == nil {
		return string(data), nil
	}

	v, err, _ := c.sf.Do(key, func() (any, error) {
		return c.fill(ctx, pdfURL, cachePath)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *Cache) fill(ctx context.Context, pdfURL, cachePath string) (string, error) {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pdfURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("download pdf: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		// Not cached: a transient failure should be retried on the next call.
		return "", fmt.Errorf("download pdf: status %d", res.StatusCode)
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read pdf body: %w", err)
	}

	text, err := extractText(raw)
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	// An empty extraction is a real result (image-only document) and is
	// cached so the download is not repeated.
	if err := os.WriteFile(cachePath, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("write cache entry: %w", err)
	}
	return text, nil
}

func extractText(raw []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", err
	}

	pages := r.NumPage()
	if pages > maxPages {
		pages = maxPages
	}

	var parts []string
	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue // unreadable page contributes nothing
		}
		text = strings.TrimSpace(text)
		if text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, "\n"), nil
}
