package similarity

import (
	"unicode/utf8"

	"github.com/blevesearch/bleve/analysis"
	"github.com/blevesearch/bleve/analysis/token/lowercase"
	"github.com/blevesearch/bleve/analysis/tokenizer/unicode"
)

// minTokenRunes drops single-character tokens, as the classic
// word-pattern TF-IDF vectorizers do.
const minTokenRunes = 2

// tokenizer splits text into lowercased words on Unicode word boundaries.
type tokenizer struct {
	words analysis.Tokenizer
	lower analysis.TokenFilter
}

func newTokenizer() *tokenizer {
	return &tokenizer{
		words: unicode.NewUnicodeTokenizer(),
		lower: lowercase.NewLowerCaseFilter(),
	}
}

// Tokens returns the terms of text in order, duplicates included.
func (t *tokenizer) Tokens(text string) []string {
	stream := t.lower.Filter(t.words.Tokenize([]byte(text)))
	out := make([]string, 0, len(stream))
	for _, tok := range stream {
		if utf8.RuneCount(tok.Term) < minTokenRunes {
			continue
		}
		out = append(out, string(tok.Term))
	}
	return out
}
