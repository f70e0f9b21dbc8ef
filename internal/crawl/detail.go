package crawl

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FetchDetail fetches an article page and returns its body text plus the URL
// of the first attachment that looks like a PDF. Either may be empty; a
// failure returns both empty with the error, which the pipeline treats as
// "no content, no attachment".
func (c *Client) FetchDetail(ctx context.Context, articleURL string) (content string, pdfURL string, err error) {
	base, err := url.Parse(articleURL)
	if err != nil {
		return "", "", fmt.Errorf("parse article url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, articleURL, nil)
	if err != nil {
		return "", "", err
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := c.hc.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("get article: %w", err)
	}
	defer res.Body.Close()

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return "", "", fmt.Errorf("parse article: %w", err)
	}

	if body := firstMatch(doc.Selection, contentSelectors); body.Length() > 0 {
		content = cleanText(body.First().Text())
	}

	// First anchor whose target looks like a PDF or a download endpoint wins.
	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		low := strings.ToLower(href)
		if strings.Contains(low, ".pdf") || strings.Contains(low, "download") {
			pdfURL = absolutize(base, href)
			return false
		}
		return true
	})

	return content, pdfURL, nil
}
