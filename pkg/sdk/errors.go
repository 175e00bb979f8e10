package cardex

import "github.com/kailas-cloud/cardex/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidFeeFormat = domain.ErrInvalidFeeFormat
	ErrUnknownFeeFormat = domain.ErrUnknownFeeFormat
	ErrEmptyCorpus      = domain.ErrEmptyCorpus
	ErrMissingColumn    = domain.ErrMissingColumn
	ErrInvalidRequest   = domain.ErrInvalidRequest
)
