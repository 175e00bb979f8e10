package result

import "github.com/kailas-cloud/cardex/internal/domain/card"

// Result is a single card in the browse output.
type Result struct {
	record *card.Record
	score  float64
	scored bool
}

// New wraps an unranked record.
func New(record *card.Record) Result {
	return Result{record: record}
}

// NewScored wraps a record ranked by similarity.
func NewScored(record *card.Record, score float64) Result {
	return Result{record: record, score: score, scored: true}
}

// Record returns the underlying card record. Callers must not modify it.
func (r *Result) Record() *card.Record { return r.record }

// Score returns the similarity score (0 when unranked).
func (r *Result) Score() float64 { return r.score }

// Scored reports whether the result carries a similarity score.
func (r *Result) Scored() bool { return r.scored }
