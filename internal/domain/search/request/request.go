package request

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/kailas-cloud/cardex/internal/domain/search/feerange"
	"github.com/kailas-cloud/cardex/internal/domain/search/mode"
	"github.com/kailas-cloud/cardex/internal/domain/search/page"
)

// MaxQueryLength is the maximum allowed benefit query length in bytes.
const MaxQueryLength = 256

// Request is a validated, request-scoped browse query.
// The presentation layer owns the page number and threads it through here.
type Request struct {
	companies map[string]struct{}
	fees      feerange.Range
	query     string
	queryMode mode.Mode
	pageSize  int
	pageNum   int
}

// New validates and normalizes browse parameters.
// Defaults: mode=expand, pageSize=page.DefaultSize, pageNum=1.
// The page size ceiling is configuration and is enforced by the caller.
// The query is trimmed and NFC-normalized; an empty query means "no query".
func New(
	companies []string,
	fees feerange.Range,
	query string,
	m mode.Mode,
	pageSize, pageNum int,
) (Request, error) {
	query = norm.NFC.String(strings.TrimSpace(query))
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("query too long (max %d bytes)", MaxQueryLength)
	}
	if m == "" {
		m = mode.Expand
	}
	if !m.IsValid() {
		return Request{}, fmt.Errorf("invalid query mode: %q", m)
	}
	if pageSize <= 0 {
		pageSize = page.DefaultSize
	}
	if pageNum <= 0 {
		pageNum = 1
	}

	set := make(map[string]struct{}, len(companies))
	for _, c := range companies {
		c = norm.NFC.String(strings.TrimSpace(c))
		if c != "" {
			set[c] = struct{}{}
		}
	}

	return Request{
		companies: set,
		fees:      fees,
		query:     query,
		queryMode: m,
		pageSize:  pageSize,
		pageNum:   pageNum,
	}, nil
}

// HasCompany reports whether company is selected.
func (r *Request) HasCompany(company string) bool {
	_, ok := r.companies[company]
	return ok
}

// CompanyCount returns the number of selected companies.
func (r *Request) CompanyCount() int { return len(r.companies) }

// Fees returns the fee range filter.
func (r *Request) Fees() feerange.Range { return r.fees }

// Query returns the normalized benefit query.
func (r *Request) Query() string { return r.query }

// HasQuery reports whether a benefit query was given.
func (r *Request) HasQuery() bool { return r.query != "" }

// Mode returns the query strategy.
func (r *Request) Mode() mode.Mode { return r.queryMode }

// PageSize returns the number of cards per page.
func (r *Request) PageSize() int { return r.pageSize }

// PageNum returns the requested 1-based page number (unclamped).
func (r *Request) PageNum() int { return r.pageNum }
