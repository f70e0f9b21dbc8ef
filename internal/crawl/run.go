package crawl

import (
	"context"
	"errors"
	"fmt"
	"log"

	"khidi-engine/internal/classify"
	"khidi-engine/internal/config"
	"khidi-engine/internal/pdfcache"
	"khidi-engine/internal/store"
)

// Status is the crawl state the dashboard polls.
type Status struct {
	LastRunAt string `json:"last_run_at"`
	LastOkAt  string `json:"last_ok_at"`
	LastError string `json:"last_error"`
	LastAdded int    `json:"last_added"`
	Running   bool   `json:"running"`
}

// Pipeline wires the fetcher, the PDF cache, the classifier, and the store
// into the collect-now flow. Boards and articles are processed strictly in
// listing order; a failing item never aborts the batch.
type Pipeline struct {
	Client       *Client
	PDF          *pdfcache.Cache
	Store        *store.DB
	Classify     classify.Classifier
	ContentLimit int

	// OnSaved fires after each successful upsert, for SSE notifications.
	OnSaved func(store.Briefing)
}

// Collect runs the full pipeline across all configured boards and returns how
// many briefings were saved. Board and save failures are joined into the
// returned error; detail and PDF failures stay advisory because the item can
// still be saved with what was fetched.
func (p *Pipeline) Collect(ctx context.Context, boards []config.Board, maxItems int) (int, error) {
	saved := 0
	var errs []error

	for _, board := range boards {
		articles, err := p.Client.FetchListing(ctx, board.Name, board.URL, maxItems)
		if err != nil {
			log.Printf("[crawl] board %s failed: %v", board.Name, err)
			errs = append(errs, fmt.Errorf("board %s: %w", board.Name, err))
			continue
		}

		for _, article := range articles {
			if article.URL == "" {
				continue
			}

			content, pdfURL, err := p.Client.FetchDetail(ctx, article.URL)
			if err != nil {
				log.Printf("[crawl] detail %s failed: %v", article.URL, err)
			}

			if pdfURL != "" {
				pdfText, err := p.PDF.Text(ctx, pdfURL)
				if err != nil {
					log.Printf("[crawl] pdf %s failed: %v", pdfURL, err)
				}
				if pdfText != "" {
					content = pdfText
				}
			}

			category := p.Classify(article.Title, content)

			b := store.Briefing{
				Title:    article.Title,
				Source:   article.Source,
				Category: category,
				URL:      article.URL,
				PDFURL:   pdfURL,
				Content:  truncate(content, p.ContentLimit),
			}
			if err := p.Store.SaveBriefing(ctx, b); err != nil {
				log.Printf("[crawl] save %s failed: %v", article.URL, err)
				errs = append(errs, fmt.Errorf("save %s: %w", article.URL, err))
				continue
			}
			saved++
			if p.OnSaved != nil {
				p.OnSaved(b)
			}
		}
	}

	return saved, errors.Join(errs...)
}

// truncate bounds s to n runes. Board content is Korean, so byte slicing
// would cut through a character.
func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
