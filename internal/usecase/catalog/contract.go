package catalog

import (
	"github.com/kailas-cloud/cardex/internal/domain/card"
	"github.com/kailas-cloud/cardex/internal/domain/search/result"
)

// Expander maps a query term to the terms matched against benefit texts.
type Expander interface {
	Expand(term string) []string
}

// Ranker orders records by similarity to a query, dropping non-matches.
type Ranker interface {
	Rank(records []*card.Record, query string) []result.Result
}
