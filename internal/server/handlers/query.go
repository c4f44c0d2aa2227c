package handlers

import (
	"github.com/chembot/admin/internal/catalog"
	"github.com/chembot/admin/internal/server/dto"
)

// listToQuery builds a resolvable query from the shared list parameters.
func listToQuery[F comparable](l dto.ListQuery, filters F) catalog.Query[F] {
	q := catalog.Query[F]{
		Search:   l.Q,
		Filters:  filters,
		Page:     l.Page,
		PageSize: l.Limit,
	}
	if q.Page == 0 {
		q.Page = 1
	}
	if q.PageSize == 0 {
		q.PageSize = catalog.DefaultPageSize
	}
	return q
}
