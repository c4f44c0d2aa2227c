package catalog

import (
	"strings"
	"time"

	"github.com/chembot/admin/internal/jsonldb"
)

// Entity is implemented by collection row types. It extends the storage row
// contract with the fields the scorer and filters operate on.
type Entity[T any] interface {
	jsonldb.Row[T]
	// SearchFields returns the values matched against search text.
	SearchFields() []string
	// PhoneFields returns phone-number values; these are compared with all
	// whitespace stripped from both sides.
	PhoneFields() []string
	// CreatedTime returns the entity's creation timestamp.
	CreatedTime() time.Time
}

// Relevance score tiers. The highest matching tier wins; tiers are not
// summed. A score of zero excludes the entity from search results.
const (
	scoreExact     = 1000
	scorePrefix    = 500
	scoreSubstring = 100
)

// Score computes the relevance of an entity for the given search text.
// Both sides are case-folded and trimmed; phone fields additionally have
// whitespace stripped so "987 654" matches "9876541234". Returns 0 when no
// field matches.
func Score[T Entity[T]](e T, search string) int {
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return 0
	}
	best := 0
	for _, field := range e.SearchFields() {
		if s := scoreField(strings.ToLower(strings.TrimSpace(field)), q); s > best {
			best = s
		}
	}
	pq := stripSpace(q)
	for _, field := range e.PhoneFields() {
		if s := scoreField(stripSpace(strings.ToLower(field)), pq); s > best {
			best = s
		}
	}
	return best
}

func scoreField(field, q string) int {
	switch {
	case field == "" || q == "":
		return 0
	case field == q:
		return scoreExact
	case strings.HasPrefix(field, q):
		return scorePrefix
	case strings.Contains(field, q):
		return scoreSubstring
	default:
		return 0
	}
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, s)
}
