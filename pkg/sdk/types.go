package cardex

import (
	"github.com/kailas-cloud/cardex/internal/domain/card"
	"github.com/kailas-cloud/cardex/internal/domain/search/page"
	"github.com/kailas-cloud/cardex/internal/domain/search/result"
	cataloguc "github.com/kailas-cloud/cardex/internal/usecase/catalog"
)

// SearchMode selects how a benefit query matches cards.
type SearchMode string

// Search modes.
const (
	ModeExpand SearchMode = "expand" // synonym expansion, substring match
	ModeTFIDF  SearchMode = "tfidf"  // cosine similarity ranking
)

// Fee is one annual fee tier. A nil Amount means the tier does not apply.
type Fee struct {
	Brand  string
	Amount *int
}

// Benefit is one benefit with up to two detail lines.
type Benefit struct {
	Title   string
	Details []string
}

// Card is one listing.
type Card struct {
	ID       string
	Company  string
	Title    string
	Date     string // "2006.01.02" when parsable, raw otherwise
	URL      string
	ImageURL string
	Fees     []Fee
	Benefits []Benefit
}

// Hit is one card of a result page.
type Hit struct {
	Card   Card
	Score  float64
	Scored bool // tfidf mode only
}

// Page describes the returned slice of the result.
type Page struct {
	Num     int // 1-based, clamped to [1, Count]
	Count   int
	PerPage int
	Total   int
}

// Results is one page of a search.
type Results struct {
	Hits     []Hit
	Page     Page
	Mode     SearchMode
	Terms    []string // synonym expansion, expand mode with a query only
	Fallback bool     // tfidf requested without a similarity index
}

// Company is a loaded issuer and its record count.
type Company struct {
	Name    string
	Records int
}

func toCard(rec *card.Record) Card {
	c := Card{
		ID:       rec.ID,
		Company:  rec.Company,
		Title:    rec.Title,
		Date:     rec.Date,
		URL:      rec.URL,
		ImageURL: rec.ImageURL,
	}
	for _, f := range rec.Fees {
		if f.Brand == "" && f.Amount == nil {
			continue
		}
		c.Fees = append(c.Fees, Fee{Brand: f.Brand, Amount: f.Amount})
	}
	for _, b := range rec.Benefits {
		if b.Title == "" && b.Detail1 == "" && b.Detail2 == "" {
			continue
		}
		var details []string
		for _, d := range []string{b.Detail1, b.Detail2} {
			if d != "" {
				details = append(details, d)
			}
		}
		c.Benefits = append(c.Benefits, Benefit{Title: b.Title, Details: details})
	}
	return c
}

func toHit(r *result.Result) Hit {
	return Hit{Card: toCard(r.Record()), Score: r.Score(), Scored: r.Scored()}
}

func toPage(p page.Page) Page {
	return Page{Num: p.Num(), Count: p.Count(), PerPage: p.PerPage(), Total: p.Total()}
}

func toResults(out cataloguc.Output) Results {
	res := Results{
		Hits:     make([]Hit, len(out.Items)),
		Page:     toPage(out.Page),
		Mode:     SearchMode(out.Mode),
		Terms:    out.Terms,
		Fallback: out.Fallback,
	}
	for i := range out.Items {
		res.Hits[i] = toHit(&out.Items[i])
	}
	return res
}
