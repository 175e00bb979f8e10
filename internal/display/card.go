// Package display turns search results into presentation-ready cards.
package display

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kailas-cloud/cardex/internal/domain/card"
	"github.com/kailas-cloud/cardex/internal/domain/search/result"
)

var printer = message.NewPrinter(language.Korean)

// Won formats an amount with digit grouping, e.g. "15,000 원".
func Won(amount int) string {
	return printer.Sprintf("%d 원", amount)
}

// Benefit is one benefit with its detail lines.
type Benefit struct {
	Title   string
	Details []string
}

// Card is a rendered view of one record.
type Card struct {
	Company    string
	Title      string
	Date       string
	URL        string
	ImageURL   string
	ImageWidth int      // 0 when the image size is unknown
	Fees       []string // "brand : 15,000 원"
	Benefits   []Benefit
	Score      *float64 // tfidf mode only
}

// FromResult builds the view of r.
// A fee tier is listed only when both brand and amount are present; a benefit
// only when its title is present.
func FromResult(r *result.Result) Card {
	rec := r.Record()
	c := Card{
		Company:  rec.Company,
		Title:    rec.Title,
		Date:     rec.Date,
		URL:      rec.URL,
		ImageURL: rec.ImageURL,
		Fees:     FeeLines(rec),
		Benefits: Benefits(rec),
	}
	if r.Scored() {
		s := r.Score()
		c.Score = &s
	}
	return c
}

// FeeLines returns the displayable fee tiers of rec.
func FeeLines(rec *card.Record) []string {
	var out []string
	for _, f := range rec.Fees {
		if f.Brand == "" || f.Amount == nil {
			continue
		}
		out = append(out, f.Brand+" : "+Won(*f.Amount))
	}
	return out
}

// Benefits returns the displayable benefit slots of rec.
func Benefits(rec *card.Record) []Benefit {
	var out []Benefit
	for _, b := range rec.Benefits {
		if b.Title == "" {
			continue
		}
		bv := Benefit{Title: b.Title}
		for _, d := range [...]string{b.Detail1, b.Detail2} {
			if d != "" {
				bv.Details = append(bv.Details, d)
			}
		}
		out = append(out, bv)
	}
	return out
}
