package cardex

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/cardex/internal/domain"
	"github.com/kailas-cloud/cardex/internal/domain/search/feerange"
	"github.com/kailas-cloud/cardex/internal/domain/search/mode"
	"github.com/kailas-cloud/cardex/internal/domain/search/request"
)

const (
	// DefaultMaxFee is the upper fee bound when Fees is not called.
	DefaultMaxFee = 100000
	// DefaultMaxPageSize caps PageSize unless WithMaxPageSize says otherwise.
	DefaultMaxPageSize = 50
)

// SearchBuilder is a fluent builder for browse queries.
// A builder is single-use and not safe for concurrent use.
type SearchBuilder struct {
	client *Client

	companies []string // nil selects every loaded issuer
	minFee    int
	maxFee    int
	query     string
	mode      SearchMode
	page      int
	pageSize  int
}

// Companies restricts results to the named issuers.
// Calling it with no names selects none.
func (b *SearchBuilder) Companies(names ...string) *SearchBuilder {
	b.companies = append(make([]string, 0, len(names)), names...)
	return b
}

// Fees keeps cards with at least one fee tier in [minFee, maxFee].
func (b *SearchBuilder) Fees(minFee, maxFee int) *SearchBuilder {
	b.minFee = minFee
	b.maxFee = maxFee
	return b
}

// Query sets the benefit query. Blank means no query.
func (b *SearchBuilder) Query(q string) *SearchBuilder {
	b.query = q
	return b
}

// Mode sets the query mode (expand, tfidf).
func (b *SearchBuilder) Mode(m SearchMode) *SearchBuilder {
	b.mode = m
	return b
}

// Page sets the 1-based page number. Out of range pages are clamped.
func (b *SearchBuilder) Page(n int) *SearchBuilder {
	b.page = n
	return b
}

// PageSize sets the number of cards per page (default 5).
func (b *SearchBuilder) PageSize(n int) *SearchBuilder {
	b.pageSize = n
	return b
}

// Do runs the filter pipeline and returns the requested page.
func (b *SearchBuilder) Do(ctx context.Context) (res Results, err error) {
	start := time.Now()
	defer func() {
		b.client.obs.observe("search", start, err)
		if err == nil {
			b.client.obs.observeResults(len(res.Hits))
		}
	}()

	req, err := b.request()
	if err != nil {
		return Results{}, err
	}
	out, err := b.client.catalog.Browse(ctx, &req)
	if err != nil {
		return Results{}, fmt.Errorf("search: %w", err)
	}
	return toResults(out), nil
}

func (b *SearchBuilder) request() (request.Request, error) {
	companies := b.companies
	if companies == nil {
		for _, c := range b.client.catalog.Companies() {
			companies = append(companies, c.Company)
		}
	}
	maxSize := b.client.maxPageSize
	if maxSize <= 0 {
		maxSize = DefaultMaxPageSize
	}
	if b.pageSize > maxSize {
		return request.Request{}, fmt.Errorf("%w: page size too large (max %d)", domain.ErrInvalidRequest, maxSize)
	}
	fees, err := feerange.New(b.minFee, b.maxFee)
	if err != nil {
		return request.Request{}, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}
	req, err := request.New(companies, fees, b.query, mode.Mode(b.mode), b.pageSize, b.page)
	if err != nil {
		return request.Request{}, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}
	return req, nil
}
