package catalog

import (
	"slices"
	"strings"
)

// DefaultPageSize matches the default page length of the listing screens.
const DefaultPageSize = 20

// PageSizes are the page lengths the presentation layer offers.
var PageSizes = []int{10, 20, 50, 100}

// Query is the full query state applied to a collection: search text, the
// entity type's filter values, and pagination.
type Query[F comparable] struct {
	Search   string
	Filters  F
	Page     int
	PageSize int
}

// Matcher reports whether an entity passes a filter set. All predicates in
// the set must pass (logical AND); sentinel values pass everything.
type Matcher[T any, F comparable] func(e T, f F) bool

// Page is one derived page of a collection plus the totals the presentation
// layer needs.
type Page[T any] struct {
	Items    []T
	Total    int
	Page     int
	Pages    int
	PageSize int
}

// Resolve derives the visible page for a query. It is pure: the same items
// and query always produce the same page.
//
// When search text is present every entity is scored, zero scores are
// dropped, and the rest are stable-sorted by descending score; blank search
// text (empty or whitespace) means no search and collection order is kept.
// Filters are then applied in order, and the page
// number is clamped to [1, max(1, ceil(total/pageSize))]. An empty matched
// set yields one empty page, never an error.
func Resolve[T Entity[T], F comparable](items []T, q Query[F], match Matcher[T, F]) Page[T] {
	matched := items
	if strings.TrimSpace(q.Search) != "" {
		type scored struct {
			item  T
			score int
		}
		kept := make([]scored, 0, len(items))
		for _, item := range items {
			if s := Score(item, q.Search); s > 0 {
				kept = append(kept, scored{item, s})
			}
		}
		// Stable: equal scores keep their collection order.
		slices.SortStableFunc(kept, func(a, b scored) int {
			return b.score - a.score
		})
		matched = make([]T, len(kept))
		for i, k := range kept {
			matched[i] = k.item
		}
	}

	if match != nil {
		filtered := matched[:0:0]
		for _, item := range matched {
			if match(item, q.Filters) {
				filtered = append(filtered, item)
			}
		}
		matched = filtered
	}

	size := q.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(matched)
	pages := (total + size - 1) / size
	if pages < 1 {
		pages = 1
	}
	page := min(max(q.Page, 1), pages)

	start := (page - 1) * size
	end := min(start+size, total)
	var visible []T
	if start < end {
		visible = matched[start:end]
	}
	return Page[T]{
		Items:    visible,
		Total:    total,
		Page:     page,
		Pages:    pages,
		PageSize: size,
	}
}
