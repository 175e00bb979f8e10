// Package dataset reads card listing tables (CSV or Parquet) and turns their
// rows into immutable card records.
package dataset

import (
	"fmt"

	"github.com/kailas-cloud/cardex/internal/domain"
	"github.com/kailas-cloud/cardex/internal/domain/card"
)

// Column names of the listing schema.
const (
	ColCompany = "company"
	ColDate    = "date"
	ColTitle   = "title"
	ColURL     = "url"
	ColImage   = "img"
)

// FeeBrandColumn returns the fee brand column of tier i (1-based).
func FeeBrandColumn(i int) string { return fmt.Sprintf("fee_brand_%d", i) }

// TotalFeeColumn returns the fee amount column of tier i (1-based).
func TotalFeeColumn(i int) string { return fmt.Sprintf("total_fee_%d", i) }

// BenefitTitleColumn returns the benefit title column of slot i (1-based).
func BenefitTitleColumn(i int) string { return fmt.Sprintf("benefit_title_%d", i) }

// BenefitDetailColumn returns detail line j of benefit slot i (both 1-based).
func BenefitDetailColumn(i, j int) string { return fmt.Sprintf("benefit_detail_%d_%d", i, j) }

// RequiredColumns lists every column a listing table must carry.
func RequiredColumns() []string {
	cols := []string{ColCompany, ColDate, ColTitle, ColURL, ColImage}
	for i := 1; i <= card.FeeTiers; i++ {
		cols = append(cols, FeeBrandColumn(i), TotalFeeColumn(i))
	}
	for i := 1; i <= card.BenefitSlots; i++ {
		cols = append(cols, BenefitTitleColumn(i), BenefitDetailColumn(i, 1), BenefitDetailColumn(i, 2))
	}
	return cols
}

// Table is a decoded listing table. A nil cell is an absent value.
type Table struct {
	Source  string
	Columns map[string]int
	Rows    [][]*string
}

// Validate checks that every required column is present.
func (t *Table) Validate() error {
	var missing []string
	for _, c := range RequiredColumns() {
		if _, ok := t.Columns[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return domain.NewMissingColumn(t.Source, missing)
	}
	return nil
}

// Cell returns the value of column name in row, or nil when absent.
func (t *Table) Cell(row []*string, name string) *string {
	i, ok := t.Columns[name]
	if !ok || i >= len(row) {
		return nil
	}
	return row[i]
}
