package mode

// Mode is the benefit query strategy.
type Mode string

// Query mode constants.
const (
	// Expand broadens the query through the synonym table and matches substrings.
	Expand Mode = "expand"
	// TFIDF ranks records by cosine similarity of their benefit texts to the query.
	TFIDF Mode = "tfidf"
)

// IsValid checks if the mode is one of the supported values.
func (m Mode) IsValid() bool {
	return m == Expand || m == TFIDF
}
