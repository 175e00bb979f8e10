// Package similarity ranks card records against a benefit query by TF-IDF
// cosine similarity over the distinct benefit phrases of the catalog.
package similarity

import (
	"fmt"
	"math"
	"sort"

	"github.com/kailas-cloud/cardex/internal/domain"
	"github.com/kailas-cloud/cardex/internal/domain/card"
	"github.com/kailas-cloud/cardex/internal/domain/search/result"
)

// vector is a sparse L2-normalized term weight vector keyed by term id.
type vector map[int]float64

// Index is an immutable TF-IDF vector space over a phrase corpus.
// One document per distinct phrase: records sharing identical text share
// one vector.
type Index struct {
	tok     *tokenizer
	vocab   map[string]int
	idf     []float64
	phrases map[string]int
	vectors []vector
}

// Build creates the index. Weights follow the smoothed scheme
// idf(t) = ln((1+n)/(1+df(t))) + 1 with raw term counts.
// Returns domain.ErrEmptyCorpus when the corpus yields no terms.
func Build(corpus []string) (*Index, error) {
	tok := newTokenizer()

	phrases := make(map[string]int, len(corpus))
	docs := make([][]string, 0, len(corpus))
	for _, p := range corpus {
		if p == "" {
			continue
		}
		if _, dup := phrases[p]; dup {
			continue
		}
		phrases[p] = len(docs)
		docs = append(docs, tok.Tokens(p))
	}
	if len(docs) == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	vocab := make(map[string]int)
	var df []int
	for _, terms := range docs {
		seen := make(map[int]struct{}, len(terms))
		for _, term := range terms {
			id, ok := vocab[term]
			if !ok {
				id = len(df)
				vocab[term] = id
				df = append(df, 0)
			}
			if _, counted := seen[id]; !counted {
				seen[id] = struct{}{}
				df[id]++
			}
		}
	}
	if len(vocab) == 0 {
		return nil, fmt.Errorf("%w: no terms in %d phrases", domain.ErrEmptyCorpus, len(docs))
	}

	n := float64(len(docs))
	idf := make([]float64, len(df))
	for id, d := range df {
		idf[id] = math.Log((1+n)/(1+float64(d))) + 1
	}

	idx := &Index{tok: tok, vocab: vocab, idf: idf, phrases: phrases}
	idx.vectors = make([]vector, len(docs))
	for i, terms := range docs {
		idx.vectors[i] = idx.weigh(terms)
	}
	return idx, nil
}

// Size returns the number of distinct phrases in the index.
func (x *Index) Size() int { return len(x.vectors) }

// Terms returns the vocabulary size.
func (x *Index) Terms() int { return len(x.vocab) }

// weigh builds the normalized vector of terms; out-of-vocabulary terms are ignored.
func (x *Index) weigh(terms []string) vector {
	v := make(vector)
	for _, term := range terms {
		if id, ok := x.vocab[term]; ok {
			v[id]++
		}
	}
	var norm float64
	for id, tf := range v {
		w := tf * x.idf[id]
		v[id] = w
		norm += w * w
	}
	if norm == 0 {
		return nil
	}
	norm = math.Sqrt(norm)
	for id := range v {
		v[id] /= norm
	}
	return v
}

// Vectorize maps text into the index space. Nil means no known terms.
func (x *Index) Vectorize(text string) map[int]float64 {
	return x.weigh(x.tok.Tokens(text))
}

// cosine of two normalized vectors.
func cosine(a, b vector) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}
	var dot float64
	for id, w := range a {
		dot += w * b[id]
	}
	// rounding can push identical vectors past 1
	return math.Min(1, math.Max(0, dot))
}

// Score returns the best cosine similarity between query and any benefit
// phrase of rec that is part of the indexed corpus, in [0,1]. Benefit texts
// outside the corpus are not scored. An empty query or no shared vocabulary
// scores 0.
func (x *Index) Score(rec *card.Record, query string) float64 {
	q := x.Vectorize(query)
	if q == nil {
		return 0
	}
	return x.score(rec, q)
}

func (x *Index) score(rec *card.Record, q vector) float64 {
	var best float64
	for _, text := range rec.BenefitTexts() {
		id, ok := x.phrases[text]
		if !ok {
			continue
		}
		if s := cosine(q, x.vectors[id]); s > best {
			best = s
		}
	}
	return best
}

// Rank scores records against query, drops zero scores and orders the rest
// by descending score. Ties keep input order. An empty query ranks nothing.
func (x *Index) Rank(records []*card.Record, query string) []result.Result {
	if query == "" {
		return nil
	}
	q := x.Vectorize(query)
	if q == nil {
		return nil
	}

	out := make([]result.Result, 0, len(records))
	for _, rec := range records {
		if s := x.score(rec, q); s > 0 {
			out = append(out, result.NewScored(rec, s))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score() > out[j].Score()
	})
	return out
}
