// Package catalog implements the collection management used by every listing
// screen: debounced search with relevance scoring, AND-composed filter
// predicates, pagination with page clamping, CRUD with sequential prefixed
// IDs, and aggregate statistics over the full collection.
//
// The generic [Controller] owns a single entity collection backed by a
// [jsonldb.Table] and derives visible pages from its query state. Derivation
// is pure: the same collection revision and query always produce the same
// page, so results are memoized on (revision, query).
package catalog
