// Package classify assigns a briefing to one of the fixed dashboard
// categories with a keyword membership test.
package classify

import "strings"

const (
	CategoryRND        = "R&D 정책"
	CategoryGlobal     = "글로벌 진출"
	CategoryRegulatory = "규제/법령"
	CategoryHiring     = "채용 분석"
)

// Categories is the display order on the dashboard, without the "전체" sentinel.
var Categories = []string{CategoryRND, CategoryGlobal, CategoryRegulatory, CategoryHiring}

// Classifier maps a briefing's title and body to a category. Kept as a func
// type so the keyword version below can be swapped without touching callers.
type Classifier func(title, body string) string

// keyword groups are evaluated in order; the first hit wins.
var keywordGroups = []struct {
	category string
	keywords []string
}{
	{CategoryRND, []string{"r&d", "연구개발", "기술개발", "연구비", "과제"}},
	{CategoryGlobal, []string{"글로벌", "해외", "수출", "진출", "fda", "ema", "국제"}},
	{CategoryRegulatory, []string{"규제", "법령", "인허가", "승인", "제도", "법률"}},
	{CategoryHiring, []string{"채용", "인재", "일자리", "취업", "고용"}},
}

// Categorize is total and deterministic: any input maps to exactly one of the
// four categories, defaulting to R&D policy when nothing matches.
func Categorize(title, body string) string {
	text := strings.ToLower(title + " " + body)

	for _, g := range keywordGroups {
		for _, kw := range g.keywords {
			if strings.Contains(text, kw) {
				return g.category
			}
		}
	}
	return CategoryRND
}
