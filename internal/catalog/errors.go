package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound          = errors.New("product not found")
	ErrValidationFailed  = errors.New("product validation failed")
	ErrNumberFormat      = errors.New("number does not match grammar")
	ErrOutOfRange        = errors.New("number out of range")
	ErrInternal          = errors.New("internal consistency fault")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrNothingReconciled = errors.New("no cart line could be reconciled")
)

// ErrorKind is the stable key of a violated validation rule. Presentation
// code resolves it to display text.
type ErrorKind string

const (
	MissingName             ErrorKind = "MissingName"
	MissingDescription      ErrorKind = "MissingDescription"
	MissingDetails          ErrorKind = "MissingDetails"
	MissingStock            ErrorKind = "MissingStock"
	StockNotAnInteger       ErrorKind = "StockNotAnInteger"
	StockNotGreaterThanZero ErrorKind = "StockNotGreaterThanZero"
	StockTooLarge           ErrorKind = "StockTooLarge"
	MissingPrice            ErrorKind = "MissingPrice"
	PriceNotANumber         ErrorKind = "PriceNotANumber"
	PriceNotGreaterThanZero ErrorKind = "PriceNotGreaterThanZero"
)

// ValidationError carries every rule a submission violated.
type ValidationError struct {
	Kinds []ErrorKind
}

func (e *ValidationError) Error() string {
	keys := make([]string, len(e.Kinds))
	for i, k := range e.Kinds {
		keys[i] = string(k)
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(keys, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// Has reports whether kind is among the violations.
func (e *ValidationError) Has(kind ErrorKind) bool {
	for _, k := range e.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// NumberError is returned by the number parsers. Err is ErrNumberFormat or
// ErrOutOfRange.
type NumberError struct {
	Input string
	Err   error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
}

func (e *NumberError) Unwrap() error {
	return e.Err
}
