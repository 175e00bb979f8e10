package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidFeeFormat signals fee text that matches no known issuer format.
	ErrInvalidFeeFormat = errors.New("invalid fee format")
	// ErrUnknownFeeFormat signals a dataset configured with an unsupported fee format.
	ErrUnknownFeeFormat = errors.New("unknown fee format")
	// ErrEmptyCorpus signals that no benefit text exists to build a similarity index.
	ErrEmptyCorpus = errors.New("empty benefit corpus")
	// ErrMissingColumn signals a dataset whose header lacks a required column.
	ErrMissingColumn = errors.New("missing column")
	// ErrInvalidRequest signals invalid browse parameters.
	ErrInvalidRequest = errors.New("invalid request")
)

// FeeFormatError wraps ErrInvalidFeeFormat with the offending text.
type FeeFormatError struct {
	Format string
	Raw    string
}

func (e *FeeFormatError) Error() string {
	return fmt.Sprintf("%s: %s fee %q", ErrInvalidFeeFormat.Error(), e.Format, e.Raw)
}

func (e *FeeFormatError) Unwrap() error { return ErrInvalidFeeFormat }

// NewFeeFormatError creates an invalid fee format error.
func NewFeeFormatError(format, raw string) error {
	return &FeeFormatError{Format: format, Raw: raw}
}

// MissingColumnError wraps ErrMissingColumn with the dataset source and absent columns.
type MissingColumnError struct {
	Source  string
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: %s lacks %s", ErrMissingColumn.Error(), e.Source, strings.Join(e.Columns, ", "))
}

func (e *MissingColumnError) Unwrap() error { return ErrMissingColumn }

// NewMissingColumn creates a missing column error.
func NewMissingColumn(source string, columns []string) error {
	return &MissingColumnError{Source: source, Columns: columns}
}
