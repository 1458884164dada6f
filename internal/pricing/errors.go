package pricing

import (
	"errors"
	"fmt"
	"time"
)

// Sentinels matched with errors.Is by the transport layer.
var (
	ErrCatalogMiss       = errors.New("CATALOG_MISS")
	ErrInvalidInput      = errors.New("INVALID_INPUT")
	ErrPriceVerification = errors.New("PRICE_MISMATCH")
	ErrCacheStale        = errors.New("CACHE_STALE")
)

// CatalogMissError reports that no active catalog row matched a lookup key.
type CatalogMissError struct {
	Kind string
	Key  string
}

func (e *CatalogMissError) Error() string {
	return fmt.Sprintf("no active %s for %s", e.Kind, e.Key)
}

func (e *CatalogMissError) Unwrap() error { return ErrCatalogMiss }

func catalogMiss(kind, format string, args ...any) error {
	return &CatalogMissError{Kind: kind, Key: fmt.Sprintf(format, args...)}
}

// InvalidInputError reports a malformed or missing selection field.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

func invalidInput(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}

// PriceVerificationError is returned when a submitted price is too far below
// the server-computed price.
type PriceVerificationError struct {
	Submitted int64
	Server    int64
}

func (e *PriceVerificationError) Error() string {
	return fmt.Sprintf("submitted price %d is below server price %d", e.Submitted, e.Server)
}

func (e *PriceVerificationError) Unwrap() error { return ErrPriceVerification }

// CacheStaleWarning is non-fatal: pricing proceeds against the last published snapshot.
type CacheStaleWarning struct {
	Reason string
	Since  time.Time
}

func (w *CacheStaleWarning) Error() string {
	return fmt.Sprintf("price cache stale since %s: %s", w.Since.Format(time.RFC3339), w.Reason)
}

func (w *CacheStaleWarning) Unwrap() error { return ErrCacheStale }
