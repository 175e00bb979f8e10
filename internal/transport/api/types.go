// Package api holds the HTTP contract of cardex: wire types, parameters and
// the chi router binding for ServerInterface.
package api

// ErrorResponseCode is a machine-readable error code.
type ErrorResponseCode string

// Defines values for ErrorResponseCode.
const (
	ErrorResponseCodeBadRequest       ErrorResponseCode = "bad_request"
	ErrorResponseCodeValidationFailed ErrorResponseCode = "validation_failed"
	ErrorResponseCodeUnauthorized     ErrorResponseCode = "unauthorized"
	ErrorResponseCodeNotFound         ErrorResponseCode = "not_found"
	ErrorResponseCodeInternalError    ErrorResponseCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Code    ErrorResponseCode `json:"code"`
	Message string            `json:"message"`
}

// Fee is one annual fee tier. Amount is omitted when the tier does not apply.
type Fee struct {
	Brand  string `json:"brand,omitempty"`
	Amount *int   `json:"amount,omitempty"`
}

// Benefit is one benefit slot.
type Benefit struct {
	Title   string   `json:"title,omitempty"`
	Details []string `json:"details,omitempty"`
}

// Card is one card product.
type Card struct {
	ID              string    `json:"id"`
	Company         string    `json:"company"`
	Title           string    `json:"title"`
	Date            string    `json:"date,omitempty"`
	URL             string    `json:"url,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"`
	Fees            []Fee     `json:"fees"`
	Benefits        []Benefit `json:"benefits"`
	SimilarityScore *float64  `json:"similarity_score,omitempty"`
}

// PageInfo describes the pagination window.
type PageInfo struct {
	PageNum      int `json:"page_num"`
	NumPages     int `json:"num_pages"`
	CardsPerPage int `json:"cards_per_page"`
	Total        int `json:"total"`
}

// CardListResponse is one page of browse results.
type CardListResponse struct {
	Items    []Card   `json:"items"`
	Page     PageInfo `json:"page"`
	Mode     string   `json:"mode"`
	Terms    []string `json:"terms,omitempty"`
	Fallback bool     `json:"fallback,omitempty"`
}

// SynonymResponse is the expansion of one term.
type SynonymResponse struct {
	Term  string   `json:"term"`
	Terms []string `json:"terms"`
}

// Company is one loaded issuer.
type Company struct {
	Name    string `json:"name"`
	Records int    `json:"records"`
}

// CompanyListResponse lists the loaded issuers.
type CompanyListResponse struct {
	Items []Company `json:"items"`
}

// HealthResponse is the aggregated health report.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// ListCardsParams defines parameters for ListCards and ViewCards.
type ListCardsParams struct {
	// Company selects issuers; repeat the parameter for several.
	Company  *[]string `form:"company,omitempty" json:"company,omitempty"`
	MinFee   *int      `form:"min_fee,omitempty" json:"min_fee,omitempty"`
	MaxFee   *int      `form:"max_fee,omitempty" json:"max_fee,omitempty"`
	Q        *string   `form:"q,omitempty" json:"q,omitempty"`
	Mode     *string   `form:"mode,omitempty" json:"mode,omitempty"`
	Page     *int      `form:"page,omitempty" json:"page,omitempty"`
	PageSize *int      `form:"page_size,omitempty" json:"page_size,omitempty"`
}

// ExpandSynonymsParams defines parameters for ExpandSynonyms.
type ExpandSynonymsParams struct {
	Term string `form:"term" json:"term"`
}
