package card

import (
	"strconv"

	"github.com/google/uuid"
)

// Slot counts fixed by the dataset schema.
const (
	FeeTiers     = 3
	BenefitSlots = 5
)

// recordNamespace seeds deterministic record IDs.
var recordNamespace = uuid.MustParse("6f1c2b7e-4a0d-5c8e-9b3a-2d7e1f0a4c91")

// FeeTier is one annual fee offering of a card, e.g. for one payment network.
// A nil Amount means the tier does not apply; it is distinct from a zero fee.
type FeeTier struct {
	Brand  string
	Amount *int
}

// BenefitSlot is one promotional benefit with up to two detail lines.
// Empty strings are absent values.
type BenefitSlot struct {
	Title   string
	Detail1 string
	Detail2 string
}

// Texts returns the non-empty texts of the slot in title, detail order.
func (b BenefitSlot) Texts() []string {
	out := make([]string, 0, 3)
	for _, s := range [...]string{b.Title, b.Detail1, b.Detail2} {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Record is one card product row. Records are never mutated after load.
type Record struct {
	ID       string
	Company  string
	Title    string
	Date     string
	URL      string
	ImageURL string
	Fees     [FeeTiers]FeeTier
	Benefits [BenefitSlots]BenefitSlot
}

// NewID derives a stable record ID from its source position and title.
func NewID(company, source string, row int, title string) string {
	name := company + "\x00" + source + "\x00" + strconv.Itoa(row) + "\x00" + title
	return uuid.NewSHA1(recordNamespace, []byte(name)).String()
}

// BenefitTexts returns all non-empty benefit texts in slot order (at most 15).
func (r *Record) BenefitTexts() []string {
	out := make([]string, 0, BenefitSlots*3)
	for _, b := range r.Benefits {
		out = append(out, b.Texts()...)
	}
	return out
}

// FeeAmounts returns the present fee amounts in tier order.
func (r *Record) FeeAmounts() []int {
	out := make([]int, 0, FeeTiers)
	for _, f := range r.Fees {
		if f.Amount != nil {
			out = append(out, *f.Amount)
		}
	}
	return out
}

// Corpus returns the distinct benefit texts across records in first-seen order.
func Corpus(records []Record) []string {
	seen := make(map[string]struct{})
	var out []string
	for i := range records {
		for _, text := range records[i].BenefitTexts() {
			if _, ok := seen[text]; ok {
				continue
			}
			seen[text] = struct{}{}
			out = append(out, text)
		}
	}
	return out
}
