package storage

import "errors"

var (
	errIDRequired        = errors.New("id is required")
	errTaxPercentRange   = errors.New("tax percent must be between 0 and 100")
	errThresholdNegative = errors.New("low stock threshold must be non-negative")
)
