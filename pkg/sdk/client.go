package cardex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cardex/internal/dataset"
	"github.com/kailas-cloud/cardex/internal/domain/card/fee"
	"github.com/kailas-cloud/cardex/internal/domain/search/request"
	"github.com/kailas-cloud/cardex/internal/domain/synonym"
	cataloguc "github.com/kailas-cloud/cardex/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/cardex/internal/usecase/health"
)

// Internal interfaces for substitution in tests.
type catalogUseCase interface {
	Browse(ctx context.Context, req *request.Request) (cataloguc.Output, error)
	Expand(term string) []string
	Companies() []cataloguc.CompanyCount
}

// Client is the cardex SDK entry point. It is safe for concurrent use.
type Client struct {
	catalog     catalogUseCase
	healthSvc   healthUseCase
	obs         *observer
	maxPageSize int
}

// New loads the configured datasets and builds the catalog.
// ctx bounds loading; datasets are read from disk once.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.datasets) == 0 {
		return nil, errors.New("cardex: at least one dataset required (use WithDataset)")
	}
	if cfg.corpusCompany == "" {
		cfg.corpusCompany = cfg.datasets[0].company
	}
	if !cfg.hasDataset(cfg.corpusCompany) {
		return nil, fmt.Errorf("cardex: corpus company %q matches no dataset", cfg.corpusCompany)
	}
	if cfg.maxPageSize <= 0 {
		cfg.maxPageSize = DefaultMaxPageSize
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	catalog, err := loadCatalog(ctx, cfg)
	obs.observe("load", start, err)
	if err != nil {
		return nil, err
	}

	return &Client{
		catalog:     catalog,
		healthSvc:   healthuc.New(catalog, nil),
		obs:         obs,
		maxPageSize: cfg.maxPageSize,
	}, nil
}

func loadCatalog(ctx context.Context, cfg *clientConfig) (*cataloguc.Service, error) {
	sources := make([]dataset.Source, len(cfg.datasets))
	for i, d := range cfg.datasets {
		format, err := fee.ParseFormat(string(d.format))
		if err != nil {
			return nil, fmt.Errorf("cardex: dataset %s: %w", d.company, err)
		}
		sources[i] = dataset.Source{Company: d.company, Path: d.path, FeeFormat: format}
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("cardex: %w", err)
	}

	logger := zap.NewNop()
	records, err := dataset.NewLoader(logger, nil).Load(sources)
	if err != nil {
		return nil, fmt.Errorf("cardex: %w", err)
	}

	table := synonym.DefaultTable()
	for k, v := range cfg.synonyms {
		table[k] = v
	}
	catalog, err := cataloguc.Build(records, table, cfg.corpusCompany, logger)
	if err != nil {
		return nil, fmt.Errorf("cardex: build catalog: %w", err)
	}
	return catalog, nil
}

// Search starts a browse query over every loaded issuer.
func (c *Client) Search() *SearchBuilder {
	return &SearchBuilder{
		client: c,
		minFee: 0,
		maxFee: DefaultMaxFee,
		mode:   ModeExpand,
		page:   1,
	}
}

// Expand returns the terms a benefit query matches in expand mode,
// the original term first.
func (c *Client) Expand(term string) []string {
	start := time.Now()
	terms := c.catalog.Expand(term)
	c.obs.observe("expand", start, nil)
	return terms
}

// Companies lists loaded issuers in load order.
func (c *Client) Companies() []Company {
	counts := c.catalog.Companies()
	out := make([]Company, len(counts))
	for i, cc := range counts {
		out[i] = Company{Name: cc.Company, Records: cc.Records}
	}
	return out
}
