// Package catalog runs the record filter pipeline over the loaded card catalog:
// company, fee range, query, then page.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cardex/internal/domain"
	"github.com/kailas-cloud/cardex/internal/domain/card"
	"github.com/kailas-cloud/cardex/internal/domain/search/feerange"
	"github.com/kailas-cloud/cardex/internal/domain/search/mode"
	"github.com/kailas-cloud/cardex/internal/domain/search/page"
	"github.com/kailas-cloud/cardex/internal/domain/search/request"
	"github.com/kailas-cloud/cardex/internal/domain/search/result"
	"github.com/kailas-cloud/cardex/internal/domain/similarity"
	"github.com/kailas-cloud/cardex/internal/domain/synonym"
	"github.com/kailas-cloud/cardex/internal/metrics"
)

// Output is one page of the pipeline result.
type Output struct {
	Items    []result.Result
	Page     page.Page
	Mode     mode.Mode // mode actually applied
	Terms    []string  // expansion terms, expand mode with a query only
	Fallback bool      // tfidf requested but no index, query ignored
}

// CompanyCount is the number of loaded records of one issuer.
type CompanyCount struct {
	Company string
	Records int
}

// Service holds the immutable catalog and answers browse requests.
// It is safe for concurrent use.
type Service struct {
	records   []card.Record
	companies []CompanyCount
	expander  Expander
	ranker    Ranker // nil when no index could be built
	logger    *zap.Logger
}

// New creates a Service over records. ranker may be nil.
func New(records []card.Record, expander Expander, ranker Ranker, logger *zap.Logger) *Service {
	return &Service{
		records:   records,
		companies: countCompanies(records),
		expander:  expander,
		ranker:    ranker,
		logger:    logger,
	}
}

// Build derives the corpus from the records of corpusCompany, then wires the
// synonym expander and the TF-IDF index over it. An empty corpusCompany takes
// every record. An empty corpus leaves the service without a ranker.
func Build(records []card.Record, table map[string][]string, corpusCompany string, logger *zap.Logger) (*Service, error) {
	corpus := card.Corpus(corpusRecords(records, corpusCompany))
	expander := synonym.New(table, corpus)

	var ranker Ranker
	idx, err := similarity.Build(corpus)
	switch {
	case err == nil:
		ranker = idx
		logger.Info("Similarity index built",
			zap.String("corpus_company", corpusCompany),
			zap.Int("phrases", idx.Size()),
			zap.Int("terms", idx.Terms()),
		)
	case errors.Is(err, domain.ErrEmptyCorpus):
		logger.Warn("Similarity index unavailable, tfidf queries fall back to pass-through",
			zap.Error(err),
		)
	default:
		return nil, fmt.Errorf("build similarity index: %w", err)
	}

	svc := New(records, expander, ranker, logger)
	for _, c := range svc.companies {
		metrics.CatalogRecords.WithLabelValues(c.Company).Set(float64(c.Records))
	}
	return svc, nil
}

// Browse runs the pipeline for req and returns the requested page.
// The result depends only on req and the catalog.
func (s *Service) Browse(ctx context.Context, req *request.Request) (Output, error) {
	if err := ctx.Err(); err != nil {
		return Output{}, fmt.Errorf("browse: %w", err)
	}
	start := time.Now()

	recs := filterCompany(s.records, req)
	recs = filterFee(recs, req.Fees())

	out := Output{Mode: req.Mode()}
	var items []result.Result
	queryLabel := "blank"

	switch {
	case !req.HasQuery():
		items = passThrough(recs)
	case req.Mode() == mode.TFIDF && s.ranker == nil:
		out.Fallback = true
		queryLabel = "fallback"
		items = passThrough(recs)
	case req.Mode() == mode.TFIDF:
		queryLabel = "set"
		items = s.ranker.Rank(recs, req.Query())
	default:
		queryLabel = "set"
		out.Terms = s.expander.Expand(req.Query())
		items = filterTerms(recs, out.Terms)
	}

	out.Page = page.New(len(items), req.PageSize(), req.PageNum())
	out.Items = page.Slice(items, out.Page)

	m := string(req.Mode())
	metrics.PipelineRunsTotal.WithLabelValues(m, queryLabel).Inc()
	metrics.PipelineDuration.WithLabelValues(m).Observe(time.Since(start).Seconds())
	metrics.PipelineResultSize.WithLabelValues(m).Observe(float64(len(items)))

	return out, nil
}

// Expand exposes the synonym expansion of a single term.
func (s *Service) Expand(term string) []string {
	return s.expander.Expand(term)
}

// Companies returns the loaded issuers in load order with their record counts.
func (s *Service) Companies() []CompanyCount {
	out := make([]CompanyCount, len(s.companies))
	copy(out, s.companies)
	return out
}

// Size returns the number of loaded records.
func (s *Service) Size() int { return len(s.records) }

// Ranking reports whether tfidf mode is backed by an index.
func (s *Service) Ranking() bool { return s.ranker != nil }

func corpusRecords(records []card.Record, company string) []card.Record {
	if company == "" {
		return records
	}
	out := make([]card.Record, 0, len(records))
	for i := range records {
		if records[i].Company == company {
			out = append(out, records[i])
		}
	}
	return out
}

func countCompanies(records []card.Record) []CompanyCount {
	idx := make(map[string]int)
	var out []CompanyCount
	for i := range records {
		c := records[i].Company
		if j, ok := idx[c]; ok {
			out[j].Records++
			continue
		}
		idx[c] = len(out)
		out = append(out, CompanyCount{Company: c, Records: 1})
	}
	return out
}

func filterCompany(records []card.Record, req *request.Request) []*card.Record {
	out := make([]*card.Record, 0, len(records))
	for i := range records {
		if req.HasCompany(records[i].Company) {
			out = append(out, &records[i])
		}
	}
	return out
}

func filterFee(records []*card.Record, fees feerange.Range) []*card.Record {
	out := make([]*card.Record, 0, len(records))
	for _, rec := range records {
		if fees.ContainsAny(rec.FeeAmounts()) {
			out = append(out, rec)
		}
	}
	return out
}

func filterTerms(records []*card.Record, terms []string) []result.Result {
	out := make([]result.Result, 0, len(records))
	for _, rec := range records {
		if synonym.Match(rec, terms) {
			out = append(out, result.New(rec))
		}
	}
	return out
}

func passThrough(records []*card.Record) []result.Result {
	out := make([]result.Result, len(records))
	for i, rec := range records {
		out[i] = result.New(rec)
	}
	return out
}
