package pdfcache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyFromURLIsDeterministic(t *testing.T) {
	a := KeyFromURL("https://www.khidi.or.kr/files/brief.pdf")
	b := KeyFromURL("https://www.khidi.or.kr/files/brief.pdf")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, KeyFromURL("https://www.khidi.or.kr/files/other.pdf"))
}

func TestTextEmptyURLIsNoop(t *testing.T) {
	c := New(t.TempDir())
	got, err := c.Text(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = c.Text(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTextReturnsCachedEntryWithoutDownloading(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	dir := t.TempDir()
	pdfURL := srv.URL + "/files/brief.pdf"
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, KeyFromURL(pdfURL)+".txt"), []byte("캐시된 본문"), 0o644))

	c := New(dir)
	got, err := c.Text(context.Background(), pdfURL)
	require.NoError(t, err)
	assert.Equal(t, "캐시된 본문", got)
	assert.Zero(t, hits.Load())
}

func TestTextCachedEmptyStringIsAHit(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	dir := t.TempDir()
	pdfURL := srv.URL + "/files/scanned.pdf"
	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyFromURL(pdfURL)+".txt"), nil, 0o644))

	c := New(dir)
	got, err := c.Text(context.Background(), pdfURL)
	require.NoError(t, err)
	assert.Empty(t, got, "an image-only document caches as empty text")
	assert.Zero(t, hits.Load(), "the empty entry must short-circuit the download")
}

func TestTextFailedDownloadCachesNothing(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	dir := t.TempDir()
	pdfURL := srv.URL + "/files/gone.pdf"
	c := New(dir)

	_, err := c.Text(context.Background(), pdfURL)
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, KeyFromURL(pdfURL)+".txt"))

	// The failure was not cached, so the next call retries the download.
	_, err = c.Text(context.Background(), pdfURL)
	require.Error(t, err)
	assert.Equal(t, int64(2), hits.Load())
}

func TestTextGarbageBodyCachesNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>이것은 PDF가 아닙니다</html>"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	pdfURL := srv.URL + "/files/fake.pdf"
	c := New(dir)

	_, err := c.Text(context.Background(), pdfURL)
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, KeyFromURL(pdfURL)+".txt"))
}
