// Package jsonldb provides thread-safe JSONL file storage for entity tables.
//
// It offers Table[T] for generic type-safe row storage. All data types stored
// in Table[T] must implement the Row interface (Clone, GetID, Validate).
// Tables keep every row in memory, guard access with a read-write lock, and
// persist each change to a JSONL file whose first line is a schema header
// derived from the row type via JSON Schema reflection.
//
// Rows are ordered: Prepend inserts at the front (recency-first collections),
// Append at the back. Secondary lookups are served by UniqueIndex and Index,
// which stay synchronized through the TableObserver interface.
package jsonldb
