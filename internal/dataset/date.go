package dataset

import (
	"strings"
	"time"
)

// DateLayout is the canonical release date format of a record.
const DateLayout = "2006.01.02"

var dateLayouts = []string{
	"2006년 1월 2일",
	"2006년1월2일",
	DateLayout,
	"2006.1.2",
	"2006-01-02",
	"2006/01/02",
}

// NormalizeDate rewrites a release date into DateLayout.
// ok is false when raw matches no known layout; raw is then returned trimmed.
func NormalizeDate(raw string) (date string, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout), true
		}
	}
	return s, false
}
