package utils

import "errors"

// Common application errors used across services.
var (
	ErrInvalidToken           = errors.New("INVALID_TOKEN")
	ErrProductTypeMismatch    = errors.New("PRODUCT_TYPE_MISMATCH")
	ErrCacheRebuildInProgress = errors.New("CACHE_REBUILD_IN_PROGRESS")
	ErrCacheEmpty             = errors.New("CACHE_EMPTY")
	ErrOrderPersistFailed     = errors.New("ORDER_PERSIST_FAILED")
)
