// Package synonym broadens a benefit query into related terms and matches
// them against card benefit texts.
package synonym

import (
	"strings"

	"github.com/kailas-cloud/cardex/internal/domain/card"
)

// defaultTable maps a canonical query term to related terms, in match order.
var defaultTable = map[string][]string{
	"카페":  {"커피", "스타벅스", "커피숍", "다방"},
	"커피숍": {"커피", "스타벅스", "다방"},
	"음료":  {"커피", "스타벅스", "커피숍", "다방"},

	"식당": {"요식", "음식", "외식", "식사", "배달"},
	"음식": {"요식", "식당", "외식", "식사", "배달"},
	"외식": {"요식", "음식", "식당", "식사", "배달"},
	"식사": {"요식", "음식", "외식", "식당", "배달"},
	"요식": {"요식", "음식", "외식", "식사", "배달"},
	"배달": {"요식", "음식", "외식", "식사", "식당"},

	"문화": {"영화", "여가", "쇼핑"},
	"여가": {"영화", "문화", "쇼핑"},
	"쇼핑": {"백화점"},

	"구독":   {"멤버십", "스트리밍"},
	"멤버십":  {"구독", "스트리밍"},
	"스트리밍": {"멤버십", "구독"},

	"포인트": {"적립"},
	"적립":  {"포인트"},

	"버스":  {"지하철", "교통", "대중교통", "기차", "택시", "대중 교통"},
	"지하철": {"버스", "교통", "대중교통", "기차", "택시", "대중 교통"},
	"교통":  {"지하철", "버스", "대중교통", "기차", "택시", "대중 교통"},
	"기차":  {"지하철", "교통", "대중교통", "버스", "택시", "KTX", "대중 교통"},
	"ktx": {"지하철", "교통", "대중교통", "버스", "택시", "KTX", "대중 교통"},
	"택시":  {"지하철", "교통", "대중교통", "버스", "기차", "대중 교통"},

	"주유소": {"주유", "기름", "충전"},
	"주유":  {"주유소", "기름", "충전"},
	"기름":  {"주유", "주유소", "충전"},
	"충전":  {"주유", "기름", "주유소"},
}

// DefaultTable returns a copy of the curated synonym table.
func DefaultTable() map[string][]string {
	out := make(map[string][]string, len(defaultTable))
	for k, v := range defaultTable {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Expander expands query terms. It is read-only after construction.
type Expander struct {
	table  map[string][]string
	phrase map[string]struct{}
}

// New creates an Expander over table. corpus holds the benefit phrases that
// short-circuit expansion when queried verbatim.
func New(table map[string][]string, corpus []string) *Expander {
	phrase := make(map[string]struct{}, len(corpus))
	for _, p := range corpus {
		phrase[p] = struct{}{}
	}
	return &Expander{table: table, phrase: phrase}
}

// Expand returns the terms to match for query, original term first.
// A term that is itself a benefit phrase is returned alone; so is a term
// with no table entry. Duplicates and empty entries are dropped.
func (e *Expander) Expand(term string) []string {
	if _, ok := e.phrase[term]; ok {
		return []string{term}
	}
	related, ok := e.table[term]
	if !ok {
		return []string{term}
	}

	out := make([]string, 0, len(related)+1)
	seen := make(map[string]struct{}, len(related)+1)
	for _, t := range append([]string{term}, related...) {
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// Match reports whether any of the record's benefit texts contains any of
// terms. Matching is case-sensitive; empty terms never match.
func Match(rec *card.Record, terms []string) bool {
	texts := rec.BenefitTexts()
	for _, term := range terms {
		if term == "" {
			continue
		}
		for _, text := range texts {
			if strings.Contains(text, term) {
				return true
			}
		}
	}
	return false
}
