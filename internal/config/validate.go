package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims board entries, drops duplicates, and checks the
// crawl limits. Returns a normalized copy alongside the findings.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	seen := map[string]bool{}
	var boards []Board
	for _, b := range out.Crawl.Boards {
		b.Name = strings.TrimSpace(b.Name)
		b.URL = strings.TrimSpace(b.URL)
		if b.Name == "" && b.URL == "" {
			continue
		}
		key := strings.ToLower(b.URL)
		if seen[key] {
			res.addWarn("duplicate board url: %q", b.URL)
			continue
		}
		seen[key] = true
		boards = append(boards, b)
	}
	out.Crawl.Boards = boards

	// ---- Validation rules ----

	if len(out.Crawl.Boards) == 0 {
		res.addErr("crawl.boards must have at least one board")
	}
	for i, b := range out.Crawl.Boards {
		if b.Name == "" {
			res.addErr("crawl.boards[%d].name is required", i)
		}
		u, err := url.Parse(b.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			res.addErr("crawl.boards[%d].url is not an absolute URL: %q", i, b.URL)
		}
	}

	if out.Crawl.MaxItems <= 0 {
		res.addErr("crawl.max_items must be > 0")
	} else if out.Crawl.MaxItems > 50 {
		res.addWarn("crawl.max_items is high (%d); each item costs a detail fetch.", out.Crawl.MaxItems)
	}

	if out.Crawl.ContentLimit <= 0 {
		res.addErr("crawl.content_limit must be > 0")
	}

	if strings.TrimSpace(out.Analysis.Model) == "" {
		res.addErr("analysis.model is required")
	}

	return out, res
}
