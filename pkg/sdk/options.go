package cardex

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// FeeFormat is the annual fee notation of a dataset.
type FeeFormat string

// Fee formats.
const (
	FeePlain  FeeFormat = "plain"  // "12,345원"
	FeeKorean FeeFormat = "korean" // "1만5천원", "없음"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type datasetConfig struct {
	company string
	path    string
	format  FeeFormat
}

type clientConfig struct {
	datasets      []datasetConfig
	synonyms      map[string][]string
	corpusCompany string
	maxPageSize   int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

func (c *clientConfig) hasDataset(company string) bool {
	for _, d := range c.datasets {
		if d.company == company {
			return true
		}
	}
	return false
}

// WithDataset adds one issuer's listing table (.csv or .parquet).
// At least one dataset is required.
func WithDataset(company, path string, format FeeFormat) Option {
	return optionFunc(func(c *clientConfig) {
		c.datasets = append(c.datasets, datasetConfig{company: company, path: path, format: format})
	})
}

// WithSynonyms adds or replaces synonym table entries.
// Each key expands to its values in order.
func WithSynonyms(table map[string][]string) Option {
	return optionFunc(func(c *clientConfig) {
		if c.synonyms == nil {
			c.synonyms = make(map[string][]string, len(table))
		}
		for k, v := range table {
			c.synonyms[k] = append([]string(nil), v...)
		}
	})
}

// WithCorpusCompany selects the issuer whose benefit texts form the
// expansion and ranking corpus. Defaults to the first dataset's company.
func WithCorpusCompany(company string) Option {
	return optionFunc(func(c *clientConfig) {
		c.corpusCompany = company
	})
}

// WithMaxPageSize caps SearchBuilder.PageSize (default DefaultMaxPageSize).
func WithMaxPageSize(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxPageSize = n
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
