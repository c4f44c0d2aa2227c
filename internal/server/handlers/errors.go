// Maps catalog errors onto API errors.

package handlers

import (
	"errors"

	"github.com/chembot/admin/internal/catalog"
	"github.com/chembot/admin/internal/server/dto"
)

// mapCatalogError converts a catalog error into a dto error with the right
// status code. Validation failures carry per-field details.
func mapCatalogError(err error, resource string) error {
	if err == nil {
		return nil
	}
	var verr *catalog.ValidationError
	if errors.As(err, &verr) {
		apiErr := dto.BadRequest("Validation failed")
		for field, msg := range verr.Fields {
			apiErr = apiErr.WithDetail(field, msg)
		}
		return apiErr
	}
	var derr *catalog.DuplicateIDError
	if errors.As(err, &derr) {
		return dto.Conflict("Duplicate id: " + derr.ID)
	}
	if errors.Is(err, catalog.ErrNotFound) {
		return dto.NotFound(resource)
	}
	return dto.InternalWithError("Operation failed", err)
}

// checkRowQuota rejects a create when the collection has reached the
// configured row limit. limit <= 0 disables the check.
func checkRowQuota(rows, limit int) error {
	if limit > 0 && rows >= limit {
		return dto.Conflict("Collection row limit reached")
	}
	return nil
}
