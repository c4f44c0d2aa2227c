package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// nextID generates the next sequential ID for a prefixed scheme: one more
// than the highest numeric suffix present in items, zero-padded to width.
// The scan always runs over the live collection so a delete of the
// highest-suffix entity never causes a stale cached maximum to collide.
func nextID[T Entity[T]](items []T, prefix string, width int) string {
	maxSuffix := 0
	for _, item := range items {
		id := item.GetID()
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.Atoi(id[len(prefix):])
		if err != nil {
			continue
		}
		if n > maxSuffix {
			maxSuffix = n
		}
	}
	return fmt.Sprintf("%s%0*d", prefix, width, maxSuffix+1)
}

// ID schemes per entity type.

// NextProductID returns the next product ID, e.g. "C042".
func NextProductID(items []*Product) string { return nextID(items, "C", 3) }

// NextOrderID returns the next order ID, e.g. "ORD-042".
func NextOrderID(items []*Order) string { return nextID(items, "ORD-", 3) }

// NextCustomerID returns the next customer ID, e.g. "CUST-042".
func NextCustomerID(items []*Customer) string { return nextID(items, "CUST-", 3) }

// NextChatLogID returns the next chat log ID, e.g. "CH-042".
func NextChatLogID(items []*ChatLog) string { return nextID(items, "CH-", 3) }
