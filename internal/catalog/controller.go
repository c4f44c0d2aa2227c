package catalog

import (
	"errors"
	"sync"

	"github.com/chembot/admin/internal/jsonldb"
)

// Controller owns one entity collection and its query state. It is the single
// writer for the collection: creates, updates, and deletes go through it, and
// the visible page is re-derived synchronously after every change.
type Controller[T Entity[T], F comparable] struct {
	table *jsonldb.Table[T]
	match Matcher[T, F]
	newID func(items []T) string

	mu    sync.Mutex
	query Query[F]
	memo  memoPage[T, F]
}

// memoPage caches the last derivation keyed on collection revision and query.
type memoPage[T any, F comparable] struct {
	valid bool
	rev   uint64
	query Query[F]
	page  Page[T]
}

// NewController creates a controller over the given table. match implements
// the entity type's filter predicate set; newID generates the next
// sequential ID from the live collection.
func NewController[T Entity[T], F comparable](table *jsonldb.Table[T], match Matcher[T, F], newID func(items []T) string) *Controller[T, F] {
	return &Controller[T, F]{
		table: table,
		match: match,
		newID: newID,
		query: Query[F]{Page: 1, PageSize: DefaultPageSize},
	}
}

// Query returns the current query state.
func (c *Controller[T, F]) Query() Query[F] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// VisiblePage derives the page for the current query state. Results are
// memoized on (collection revision, query); correctness does not depend on
// the memo.
func (c *Controller[T, F]) VisiblePage() Page[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visiblePageLocked()
}

func (c *Controller[T, F]) visiblePageLocked() Page[T] {
	rev := c.table.Rev()
	if c.memo.valid && c.memo.rev == rev && c.memo.query == c.query {
		return c.memo.page
	}
	page := Resolve(c.table.Snapshot(), c.query, c.match)
	c.memo = memoPage[T, F]{valid: true, rev: rev, query: c.query, page: page}
	return page
}

// ResolveQuery derives a page for an arbitrary query without touching the
// controller's own query state. Used by stateless callers such as HTTP list
// handlers.
func (c *Controller[T, F]) ResolveQuery(q Query[F]) Page[T] {
	return Resolve(c.table.Snapshot(), q, c.match)
}

// SetSearch replaces the search text. A change resets the page to 1.
func (c *Controller[T, F]) SetSearch(search string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.query.Search == search {
		return
	}
	c.query.Search = search
	c.query.Page = 1
}

// SetFilters replaces the filter values. A change resets the page to 1.
func (c *Controller[T, F]) SetFilters(filters F) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.query.Filters == filters {
		return
	}
	c.query.Filters = filters
	c.query.Page = 1
}

// SetPage moves to the given page. Out-of-range values are clamped at
// derivation time.
func (c *Controller[T, F]) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if page < 1 {
		page = 1
	}
	c.query.Page = page
}

// SetPageSize changes the page length, keeping the first currently visible
// item on the new page.
func (c *Controller[T, F]) SetPageSize(size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if size <= 0 || size == c.query.PageSize {
		return
	}
	current := c.visiblePageLocked()
	first := (current.Page - 1) * current.PageSize
	c.query.PageSize = size
	c.query.Page = first/size + 1
}

// Create generates the next sequential ID from the live collection, builds
// the entity through build, validates it, and prepends it to the collection.
// The ID is always recomputed, never cached across mutations, and a collision
// with an existing entity is still rejected with a DuplicateIDError.
func (c *Controller[T, F]) Create(build func(id string) T) (T, error) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.newID(c.table.Snapshot())
	row := build(id)
	if err := row.Validate(); err != nil {
		return zero, err
	}
	if err := c.table.Prepend(row); err != nil {
		if errors.Is(err, jsonldb.ErrDuplicateID) {
			return zero, &DuplicateIDError{ID: id}
		}
		return zero, err
	}
	return row.Clone(), nil
}

// Update applies patch to the entity with the given id. Derived fields are
// the patch's responsibility. The collection order and query state are
// unchanged. Returns ErrNotFound if the id is absent.
func (c *Controller[T, F]) Update(id string, patch func(T) error) (T, error) {
	row, err := c.table.Modify(id, patch)
	if err != nil {
		var zero T
		if errors.Is(err, jsonldb.ErrRowNotFound) {
			return zero, ErrNotFound
		}
		return zero, err
	}
	return row, nil
}

// Delete removes the entity with the given id. The next derivation re-clamps
// the page if the matched set shrank. Returns ErrNotFound if the id is
// absent.
func (c *Controller[T, F]) Delete(id string) error {
	if err := c.table.Delete(id); err != nil {
		if errors.Is(err, jsonldb.ErrRowNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Get returns the entity with the given id, or ErrNotFound.
func (c *Controller[T, F]) Get(id string) (T, error) {
	row, ok := c.table.Lookup(id)
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return row, nil
}

// All returns the full collection in order. Aggregates operate on this, never
// on the paginated slice.
func (c *Controller[T, F]) All() []T {
	return c.table.Snapshot()
}

// Len returns the collection size.
func (c *Controller[T, F]) Len() int {
	return c.table.Len()
}
