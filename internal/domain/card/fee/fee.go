// Package fee converts issuer-specific annual fee strings into won amounts.
package fee

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kailas-cloud/cardex/internal/domain"
)

// Format is the fee notation used by an issuer's dataset.
type Format string

// Fee format constants.
const (
	// Plain is a literal amount such as "12,345원" (롯데카드).
	Plain Format = "plain"
	// Korean uses magnitude words such as "1만5천원" and symbolic zeros (신한카드).
	Korean Format = "korean"
)

const (
	currencySuffix = "원"
	thousandsSep   = ","
	tenThousand    = "만"
	thousand       = "천"
)

// zeroTokens are the Korean-format spellings of "no fee".
var zeroTokens = map[string]struct{}{
	"없음": {},
	"무료": {},
}

// IsValid checks if the format is one of the supported values.
func (f Format) IsValid() bool {
	return f == Plain || f == Korean
}

// ParseFormat validates a configured format name.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownFeeFormat, s)
	}
	return f, nil
}

// Parse converts raw into an amount in won.
// A nil raw yields a nil amount and no error. Text matching no known
// pattern yields domain.ErrInvalidFeeFormat.
func Parse(f Format, raw *string) (*int, error) {
	if raw == nil {
		return nil, nil
	}

	var (
		n   int
		err error
	)
	switch f {
	case Plain:
		n, err = parsePlain(*raw)
	case Korean:
		n, err = parseKorean(*raw)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFeeFormat, f)
	}
	if err != nil {
		return nil, domain.NewFeeFormatError(string(f), *raw)
	}
	return &n, nil
}

func strip(s string) string {
	s = strings.ReplaceAll(s, currencySuffix, "")
	s = strings.ReplaceAll(s, thousandsSep, "")
	return strings.TrimSpace(s)
}

func parsePlain(s string) (int, error) {
	return atoi(strip(s))
}

func parseKorean(s string) (int, error) {
	if _, ok := zeroTokens[strings.TrimSpace(s)]; ok {
		return 0, nil
	}
	s = strip(s)

	if head, rest, ok := strings.Cut(s, tenThousand); ok {
		man, err := atoi(head)
		if err != nil {
			return 0, err
		}
		total := man * 10000
		// only the digits before 천 count; anything else after 만 is ignored
		if cheonText, _, found := strings.Cut(rest, thousand); found {
			cheon, err := atoi(cheonText)
			if err != nil {
				return 0, err
			}
			total += cheon * 1000
		}
		return total, nil
	}

	if strings.Contains(s, thousand) {
		cheon, err := atoi(strings.ReplaceAll(s, thousand, ""))
		if err != nil {
			return 0, err
		}
		return cheon * 1000, nil
	}

	return atoi(s)
}

// atoi accepts only non-negative base-10 integers.
func atoi(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return 0, fmt.Errorf("not an amount: %q", s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse amount: %w", err)
	}
	return n, nil
}
