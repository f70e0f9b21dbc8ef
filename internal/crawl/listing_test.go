package crawl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchListingSkipsRowsWithoutTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`
<html><body>
<table><tbody>
  <tr><td><a href="/board/view?no=1">첫 번째 공고</a></td><td class="date">2025-08-01</td></tr>
  <tr><td>제목 요소가 없는 행</td></tr>
  <tr><td><a href="/board/view?no=2">두 번째 공고</a></td><td class="date">2025-08-02</td></tr>
</tbody></table>
</body></html>`))
	}))
	defer srv.Close()

	c := New()
	articles, err := c.FetchListing(context.Background(), "보건산업브리프", srv.URL+"/board?menuId=MENU00085", 5)
	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, "첫 번째 공고", articles[0].Title)
	assert.Equal(t, srv.URL+"/board/view?no=1", articles[0].URL, "relative link rewritten to absolute")
	assert.Equal(t, "2025-08-01", articles[0].Date)
	assert.Equal(t, "보건산업브리프", articles[0].Source)

	assert.Equal(t, "두 번째 공고", articles[1].Title)
	assert.Equal(t, srv.URL+"/board/view?no=2", articles[1].URL)
}

func TestFetchListingHonorsMaxItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`
<html><body><table><tbody>
  <tr><td><a href="/1">하나</a></td></tr>
  <tr><td><a href="/2">둘</a></td></tr>
  <tr><td><a href="/3">셋</a></td></tr>
  <tr><td><a href="/4">넷</a></td></tr>
</tbody></table></body></html>`))
	}))
	defer srv.Close()

	c := New()
	articles, err := c.FetchListing(context.Background(), "테스트", srv.URL, 2)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "하나", articles[0].Title)
	assert.Equal(t, "둘", articles[1].Title)
}

func TestFetchListingMaxItemsCountsTitledRowsOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`
<html><body><table><tbody>
  <tr><td><a href="/1">하나</a></td></tr>
  <tr><td>제목 없음</td></tr>
  <tr><td><a href="/3">셋</a></td></tr>
  <tr><td><a href="/4">넷</a></td></tr>
</tbody></table></body></html>`))
	}))
	defer srv.Close()

	c := New()
	articles, err := c.FetchListing(context.Background(), "테스트", srv.URL, 2)
	require.NoError(t, err)
	require.Len(t, articles, 2, "a skipped row does not consume the cap")
	assert.Equal(t, "하나", articles[0].Title)
	assert.Equal(t, "셋", articles[1].Title)
}

func TestFetchListingFallbackRowSelector(t *testing.T) {
	// No table markup; the .board-list fallback should kick in.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`
<html><body>
<ul class="board-list">
  <li><span class="title">목록형 공고</span><span class="regdate">2025-08-03</span></li>
</ul>
</body></html>`))
	}))
	defer srv.Close()

	c := New()
	articles, err := c.FetchListing(context.Background(), "뉴스레터", srv.URL, 5)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "목록형 공고", articles[0].Title)
	assert.Equal(t, "", articles[0].URL, "non-anchor title element carries no link")
	assert.Equal(t, "2025-08-03", articles[0].Date)
}

func TestFetchListingPreservesAbsoluteLinks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`
<html><body><table><tbody>
  <tr><td><a href="https://www.khidi.or.kr/board/view?no=9">절대 링크</a></td></tr>
</tbody></table></body></html>`))
	}))
	defer srv.Close()

	c := New()
	articles, err := c.FetchListing(context.Background(), "테스트", srv.URL, 5)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "https://www.khidi.or.kr/board/view?no=9", articles[0].URL)
}

func TestFetchListingNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := New()
	articles, err := c.FetchListing(context.Background(), "테스트", srv.URL, 5)
	assert.Error(t, err)
	assert.Empty(t, articles)
}

func TestFetchListingSendsBrowserUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`<html><body></body></html>`))
	}))
	defer srv.Close()

	c := New()
	_, err := c.FetchListing(context.Background(), "테스트", srv.URL, 5)
	require.NoError(t, err)
	assert.Equal(t, userAgent, gotUA)
}
