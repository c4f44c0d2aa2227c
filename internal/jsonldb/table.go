package jsonldb

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"sync"
)

var (
	// ErrRowNotFound is returned when a row with the given ID does not exist.
	ErrRowNotFound = errors.New("row not found")
	// ErrDuplicateID is returned when inserting a row whose ID already exists.
	ErrDuplicateID = errors.New("duplicate row id")
)

// Row is implemented by types that can be stored in a Table.
type Row[T any] interface {
	// Clone returns a deep copy of the row.
	Clone() T
	// GetID returns the row's unique identifier.
	GetID() string
	// Validate checks that the row is well-formed before it is persisted.
	Validate() error
}

// TableObserver is notified of table mutations. Used by indexes to stay
// synchronized with the table contents.
type TableObserver[T Row[T]] interface {
	OnInsert(row T)
	OnUpdate(prev, curr T)
	OnDelete(row T)
}

// Table handles storage and in-memory caching for a single table in JSONL
// format. The first line of the file is a schema header; every following line
// is one row. Row order in the file is the collection order.
type Table[T Row[T]] struct {
	path string

	mu        sync.RWMutex
	rows      []T
	byID      map[string]int
	rev       uint64
	observers []TableObserver[T]
}

// NewTable creates a new Table and loads all data from the file.
func NewTable[T Row[T]](path string) (*Table[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:gosec // G301: 0o755 is intentional for data directories
		return nil, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	t := &Table[T]{path: path, byID: map[string]int{}}
	if err := t.load(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table[T]) load() error {
	f, err := os.Open(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			t.rows = []T{}
			return nil
		}
		return fmt.Errorf("failed to open table file %s: %w", t.path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	var rows []T
	seen := map[string]struct{}{}
	first := true
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if first {
			first = false
			if isSchemaHeader(line) {
				var h schemaHeader
				if err := json.Unmarshal(line, &h); err != nil {
					return fmt.Errorf("failed to unmarshal schema header in %s: %w", t.path, err)
				}
				if err := h.Validate(); err != nil {
					return fmt.Errorf("invalid schema header in %s: %w", t.path, err)
				}
				continue
			}
			return fmt.Errorf("missing schema header in %s", t.path)
		}
		var row T
		if err := json.Unmarshal(line, &row); err != nil {
			return fmt.Errorf("failed to unmarshal row in %s: %w", t.path, err)
		}
		if err := row.Validate(); err != nil {
			return fmt.Errorf("invalid row in %s: %w", t.path, err)
		}
		if _, ok := seen[row.GetID()]; ok {
			return fmt.Errorf("%w in %s: %s", ErrDuplicateID, t.path, row.GetID())
		}
		seen[row.GetID()] = struct{}{}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read table file %s: %w", t.path, err)
	}

	t.rows = rows
	t.reindex()
	return nil
}

// isSchemaHeader reports whether the first line of a file carries a schema
// header. Headers are objects with a top-level "version" field; data rows
// never have one.
func isSchemaHeader(line []byte) bool {
	var probe struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(line, &probe); err != nil {
		return false
	}
	return probe.Version != ""
}

// reindex rebuilds the id-to-position map. Callers must hold the write lock.
func (t *Table[T]) reindex() {
	t.byID = make(map[string]int, len(t.rows))
	for i, row := range t.rows {
		t.byID[row.GetID()] = i
	}
}

// AddObserver registers an observer for table mutations.
func (t *Table[T]) AddObserver(o TableObserver[T]) {
	t.mu.Lock()
	t.observers = append(t.observers, o)
	t.mu.Unlock()
}

// Len returns the number of rows.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// Rev returns the table's revision counter. It is bumped on every mutation,
// so callers can use it as a cheap cache invalidation key.
func (t *Table[T]) Rev() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rev
}

// Get returns a clone of the row with the given ID, or the zero value if the
// row does not exist.
func (t *Table[T]) Get(id string) T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i, ok := t.byID[id]
	if !ok {
		var zero T
		return zero
	}
	return t.rows[i].Clone()
}

// Lookup returns a clone of the row with the given id and whether it exists.
func (t *Table[T]) Lookup(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i, ok := t.byID[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.rows[i].Clone(), true
}

// All returns an iterator over clones of all rows in collection order.
func (t *Table[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, row := range t.Snapshot() {
			if !yield(row) {
				return
			}
		}
	}
}

// Snapshot returns clones of all rows in collection order.
func (t *Table[T]) Snapshot() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, len(t.rows))
	for i, row := range t.rows {
		out[i] = row.Clone()
	}
	return out
}

// Last returns a clone of the last row, or false if the table is empty.
func (t *Table[T]) Last() (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.rows) == 0 {
		var zero T
		return zero, false
	}
	return t.rows[len(t.rows)-1].Clone(), true
}

// Append adds a new row at the back of the table and persists it.
func (t *Table[T]) Append(row T) error {
	if err := row.Validate(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.byID[row.GetID()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, row.GetID())
	}

	data, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to marshal row: %w", err)
	}
	if len(t.rows) == 0 {
		// First row: write the file with a schema header.
		t.rows = append(t.rows, row)
		if err := t.rewriteLocked(); err != nil {
			t.rows = t.rows[:len(t.rows)-1]
			return err
		}
	} else {
		f, err := os.OpenFile(t.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // G302,G304: table files are not secrets
		if err != nil {
			return fmt.Errorf("failed to open table file for append: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()
		if _, err := f.Write(data); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
		if _, err := f.WriteString("\n"); err != nil {
			return fmt.Errorf("failed to write newline: %w", err)
		}
		t.rows = append(t.rows, row)
	}
	t.byID[row.GetID()] = len(t.rows) - 1
	t.rev++
	for _, o := range t.observers {
		o.OnInsert(row)
	}
	return nil
}

// Prepend adds a new row at the front of the table and persists it. The whole
// file is rewritten; tables are small enough that this is acceptable.
func (t *Table[T]) Prepend(row T) error {
	if err := row.Validate(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.byID[row.GetID()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, row.GetID())
	}

	prev := t.rows
	t.rows = append([]T{row}, t.rows...)
	if err := t.rewriteLocked(); err != nil {
		t.rows = prev
		return err
	}
	t.reindex()
	t.rev++
	for _, o := range t.observers {
		o.OnInsert(row)
	}
	return nil
}

// Modify applies fn to a clone of the row with the given ID, validates the
// result, and persists it in place. Collection order is unchanged. Returns a
// clone of the updated row.
func (t *Table[T]) Modify(id string, fn func(T) error) (T, error) {
	var zero T
	t.mu.Lock()
	defer t.mu.Unlock()
	i, ok := t.byID[id]
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrRowNotFound, id)
	}

	prev := t.rows[i]
	curr := prev.Clone()
	if err := fn(curr); err != nil {
		return zero, err
	}
	if curr.GetID() != id {
		return zero, fmt.Errorf("row id cannot change: %s", id)
	}
	if err := curr.Validate(); err != nil {
		return zero, err
	}

	t.rows[i] = curr
	if err := t.rewriteLocked(); err != nil {
		t.rows[i] = prev
		return zero, err
	}
	t.rev++
	for _, o := range t.observers {
		o.OnUpdate(prev, curr)
	}
	return curr.Clone(), nil
}

// Delete removes the row with the given ID and persists the change.
func (t *Table[T]) Delete(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	i, ok := t.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrRowNotFound, id)
	}

	prev := t.rows
	removed := t.rows[i]
	t.rows = append(append([]T{}, t.rows[:i]...), t.rows[i+1:]...)
	if err := t.rewriteLocked(); err != nil {
		t.rows = prev
		return err
	}
	t.reindex()
	t.rev++
	for _, o := range t.observers {
		o.OnDelete(removed)
	}
	return nil
}

// Replace replaces all rows with the provided slice and persists it.
func (t *Table[T]) Replace(rows []T) error {
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if err := row.Validate(); err != nil {
			return err
		}
		if _, ok := seen[row.GetID()]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateID, row.GetID())
		}
		seen[row.GetID()] = struct{}{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	prev := t.rows
	t.rows = rows
	if err := t.rewriteLocked(); err != nil {
		t.rows = prev
		return err
	}
	t.reindex()
	t.rev++
	return nil
}

// rewriteLocked writes the schema header and all rows to the file. Callers
// must hold the write lock.
func (t *Table[T]) rewriteLocked() error {
	f, err := os.Create(t.path) //nolint:gosec // G304: path is owned by the table
	if err != nil {
		return fmt.Errorf("failed to create table file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	w := bufio.NewWriter(f)
	header, err := headerForType[T]()
	if err != nil {
		return err
	}
	hdata, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal schema header: %w", err)
	}
	if _, err := w.Write(hdata); err != nil {
		return fmt.Errorf("failed to write schema header: %w", err)
	}
	if err := w.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}
	for _, row := range t.rows {
		data, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("failed to marshal row: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush writer: %w", err)
	}
	return nil
}
