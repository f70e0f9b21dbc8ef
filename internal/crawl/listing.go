// Package crawl fetches the KHIDI bulletin boards: listing pages, article
// detail pages, and the sequential collect pipeline that feeds the store.
package crawl

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// The site serves different markup to non-browser agents, so the crawler
// identifies as a desktop browser.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Article is one row scraped from a board listing page.
type Article struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Date   string `json:"date"`
	Source string `json:"source"`
}

type Client struct {
	hc *http.Client
}

func New() *Client {
	return &Client{
		hc: &http.Client{Timeout: 10 * time.Second},
	}
}

// Fallback selector chains, tried in order; the first one that matches wins.
// The board templates on the site vary by menu, hence the alternatives.
var (
	rowSelectors     = []string{"table tbody tr", ".board-list li", ".list-item"}
	titleSelectors   = []string{"a", ".title", ".subject"}
	dateSelectors    = []string{".date", ".regdate", "td:last-child"}
	contentSelectors = []string{".board-view-content", ".content", ".view-content", "article"}
)

// FetchListing scrapes one board listing page and returns up to maxItems
// articles in document order. Rows without a title-bearing element are
// skipped and do not count against maxItems; the cap bounds returned entries,
// not scanned rows. Any network or parse failure returns an empty slice and
// the error; the caller treats it as advisory and moves on to the next board.
func (c *Client) FetchListing(ctx context.Context, boardName, boardURL string, maxItems int) ([]Article, error) {
	base, err := url.Parse(boardURL)
	if err != nil {
		return nil, fmt.Errorf("parse board url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, boardURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get board %s: %w", boardName, err)
	}
	defer res.Body.Close()

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("parse board %s: %w", boardName, err)
	}

	rows := firstMatch(doc.Selection, rowSelectors)

	var articles []Article
	rows.EachWithBreak(func(_ int, row *goquery.Selection) bool {
		if len(articles) >= maxItems {
			return false
		}

		titleElem := firstMatch(row, titleSelectors)
		if titleElem.Length() == 0 {
			return true // row without a title element: skip, not an error
		}

		title := cleanText(titleElem.First().Text())
		link, _ := titleElem.First().Attr("href")
		link = absolutize(base, link)

		date := ""
		if d := firstMatch(row, dateSelectors); d.Length() > 0 {
			date = cleanText(d.First().Text())
		}

		articles = append(articles, Article{
			Title:  title,
			URL:    link,
			Date:   date,
			Source: boardName,
		})
		return true
	})

	return articles, nil
}

// firstMatch tries each selector in order and returns the first non-empty
// selection.
func firstMatch(s *goquery.Selection, selectors []string) *goquery.Selection {
	for _, sel := range selectors {
		if found := s.Find(sel); found.Length() > 0 {
			return found
		}
	}
	return s.Find(selectors[len(selectors)-1])
}

// absolutize rewrites a relative href against the origin of the page it was
// found on.
func absolutize(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if u.IsAbs() {
		return href
	}
	return base.ResolveReference(u).String()
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
