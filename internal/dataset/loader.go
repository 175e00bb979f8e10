package dataset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/kailas-cloud/cardex/internal/domain/card"
	"github.com/kailas-cloud/cardex/internal/domain/card/fee"
)

// Source describes one issuer's listing table.
type Source struct {
	Company   string     // used when a row's company cell is blank
	Path      string     // .csv or .parquet
	FeeFormat fee.Format // notation of the total_fee_* columns
}

// Open reads a table, choosing the decoder by file extension.
func Open(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(path)
	case ".parquet", ".pq":
		return ReadParquet(path)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", filepath.Ext(path))
	}
}

// Loader turns listing tables into card records.
type Loader struct {
	logger    *zap.Logger
	feeErrors *prometheus.CounterVec
}

// NewLoader creates a Loader.
// feeErrors is a counter vec with label "company", passed explicitly (may be nil).
func NewLoader(logger *zap.Logger, feeErrors *prometheus.CounterVec) *Loader {
	return &Loader{logger: logger, feeErrors: feeErrors}
}

// Load reads every source in order and returns all records.
// A missing column aborts the load; malformed fees only blank the affected tier.
func (l *Loader) Load(sources []Source) ([]card.Record, error) {
	var records []card.Record
	for _, src := range sources {
		t, err := Open(src.Path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", src.Company, err)
		}
		recs, err := l.FromTable(t, src)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", src.Company, err)
		}
		l.logger.Info("Dataset loaded",
			zap.String("company", src.Company),
			zap.String("path", src.Path),
			zap.Int("records", len(recs)),
		)
		records = append(records, recs...)
	}
	return records, nil
}

// FromTable converts the rows of a validated table.
func (l *Loader) FromTable(t *Table, src Source) ([]card.Record, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	records := make([]card.Record, 0, len(t.Rows))
	for i, row := range t.Rows {
		records = append(records, l.record(t, src, i, row))
	}
	return records, nil
}

func (l *Loader) record(t *Table, src Source, rowNum int, row []*string) card.Record {
	text := func(col string) string {
		v := t.Cell(row, col)
		if v == nil {
			return ""
		}
		return norm.NFC.String(strings.TrimSpace(*v))
	}

	company := text(ColCompany)
	if company == "" {
		company = src.Company
	}

	rec := card.Record{
		Company:  company,
		Title:    text(ColTitle),
		URL:      text(ColURL),
		ImageURL: text(ColImage),
	}
	rec.ID = card.NewID(company, t.Source, rowNum, rec.Title)

	date, ok := NormalizeDate(text(ColDate))
	if !ok {
		l.logger.Warn("Unrecognized release date",
			zap.String("source", t.Source),
			zap.Int("row", rowNum+1),
			zap.String("date", date),
		)
	}
	rec.Date = date

	for i := range rec.Fees {
		rec.Fees[i].Brand = text(FeeBrandColumn(i + 1))

		col := TotalFeeColumn(i + 1)
		amount, err := fee.Parse(src.FeeFormat, t.Cell(row, col))
		if err != nil {
			l.logger.Warn("Invalid fee, tier left empty",
				zap.String("source", t.Source),
				zap.Int("row", rowNum+1),
				zap.String("column", col),
				zap.Error(err),
			)
			if l.feeErrors != nil {
				l.feeErrors.WithLabelValues(company).Inc()
			}
			continue
		}
		rec.Fees[i].Amount = amount
	}

	for i := range rec.Benefits {
		rec.Benefits[i] = card.BenefitSlot{
			Title:   text(BenefitTitleColumn(i + 1)),
			Detail1: text(BenefitDetailColumn(i+1, 1)),
			Detail2: text(BenefitDetailColumn(i+1, 2)),
		}
	}
	return rec
}
