package catalog

import (
	"fmt"
	"reflect"
	"testing"
	"time"
)

func testProducts(n int) []*Product {
	products := make([]*Product, n)
	for i := range n {
		products[i] = &Product{
			ID:      fmt.Sprintf("C%03d", i+1),
			Name:    fmt.Sprintf("Compound %d", i+1),
			Stock:   1000,
			Status:  ProductActive,
			Created: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Hour),
		}
	}
	return products
}

func TestResolveIdempotent(t *testing.T) {
	items := testProducts(25)
	q := Query[ProductFilters]{Search: "Compound", Page: 2, PageSize: 10}

	first := Resolve(items, q, MatchProduct)
	second := Resolve(items, q, MatchProduct)
	if !reflect.DeepEqual(first, second) {
		t.Error("two derivations with identical input differ")
	}
}

func TestResolveSearchExcludesZeroScores(t *testing.T) {
	items := testProducts(10)
	items[3].Name = "Sodium Chloride"

	page := Resolve(items, Query[ProductFilters]{Search: "Sodium", PageSize: 10}, MatchProduct)
	if page.Total != 1 {
		t.Fatalf("Total = %d, want 1", page.Total)
	}
	for _, item := range page.Items {
		if Score(item, "Sodium") == 0 {
			t.Errorf("entity %s with zero score included", item.ID)
		}
	}
}

func TestResolveRanking(t *testing.T) {
	// Exact id match must rank above a substring match elsewhere.
	items := []*Product{
		{ID: "C010", Name: "C001 Extra", Status: ProductActive},
		{ID: "C001", Name: "Sodium", Status: ProductActive},
	}
	page := Resolve(items, Query[ProductFilters]{Search: "C001", PageSize: 10}, MatchProduct)
	if page.Total != 2 {
		t.Fatalf("Total = %d, want 2", page.Total)
	}
	if page.Items[0].ID != "C001" {
		t.Errorf("top result = %s, want C001", page.Items[0].ID)
	}
}

func TestResolveStableTieBreak(t *testing.T) {
	// All names share the same prefix, so every entity scores the same; the
	// matched set must keep collection order.
	items := testProducts(8)
	page := Resolve(items, Query[ProductFilters]{Search: "Compound", PageSize: 20}, MatchProduct)
	if page.Total != 8 {
		t.Fatalf("Total = %d, want 8", page.Total)
	}
	for i, item := range page.Items {
		if want := fmt.Sprintf("C%03d", i+1); item.ID != want {
			t.Errorf("Items[%d] = %s, want %s", i, item.ID, want)
		}
	}
}

func TestResolveFilterConjunction(t *testing.T) {
	items := testProducts(6)
	items[0].Status = ProductOutOfStock
	items[1].Status = ProductLowStock
	items[2].Status = ProductLowStock

	q := Query[ProductFilters]{
		Filters:  ProductFilters{Status: ProductLowStock, HideOutOfStock: true},
		PageSize: 10,
	}
	page := Resolve(items, q, MatchProduct)
	if page.Total != 2 {
		t.Fatalf("Total = %d, want 2", page.Total)
	}
	for _, item := range page.Items {
		if !MatchProduct(item, q.Filters) {
			t.Errorf("entity %s fails a filter predicate", item.ID)
		}
	}
}

func TestResolveAllSentinelPasses(t *testing.T) {
	items := testProducts(4)
	items[0].Status = ProductOutOfStock

	page := Resolve(items, Query[ProductFilters]{Filters: ProductFilters{Status: "All"}, PageSize: 10}, MatchProduct)
	if page.Total != 4 {
		t.Errorf("Total = %d, want 4", page.Total)
	}
}

func TestResolvePagination(t *testing.T) {
	items := testProducts(25)

	t.Run("coverage and disjointness", func(t *testing.T) {
		seen := map[string]int{}
		for p := 1; p <= 3; p++ {
			page := Resolve(items, Query[ProductFilters]{Page: p, PageSize: 10}, MatchProduct)
			for _, item := range page.Items {
				seen[item.ID]++
			}
		}
		if len(seen) != 25 {
			t.Errorf("union of pages has %d entities, want 25", len(seen))
		}
		for id, n := range seen {
			if n != 1 {
				t.Errorf("entity %s appears %d times across pages", id, n)
			}
		}
	})

	t.Run("totals", func(t *testing.T) {
		page := Resolve(items, Query[ProductFilters]{Page: 1, PageSize: 10}, MatchProduct)
		if page.Total != 25 || page.Pages != 3 {
			t.Errorf("Total/Pages = %d/%d, want 25/3", page.Total, page.Pages)
		}
		if len(page.Items) != 10 {
			t.Errorf("len(Items) = %d, want 10", len(page.Items))
		}
	})

	t.Run("last page is partial", func(t *testing.T) {
		page := Resolve(items, Query[ProductFilters]{Page: 3, PageSize: 10}, MatchProduct)
		if len(page.Items) != 5 {
			t.Errorf("len(Items) = %d, want 5", len(page.Items))
		}
	})

	t.Run("page clamped high", func(t *testing.T) {
		page := Resolve(items, Query[ProductFilters]{Page: 99, PageSize: 10}, MatchProduct)
		if page.Page != 3 {
			t.Errorf("Page = %d, want 3", page.Page)
		}
		if len(page.Items) != 5 {
			t.Errorf("len(Items) = %d, want 5", len(page.Items))
		}
	})

	t.Run("page clamped low", func(t *testing.T) {
		page := Resolve(items, Query[ProductFilters]{Page: 0, PageSize: 10}, MatchProduct)
		if page.Page != 1 {
			t.Errorf("Page = %d, want 1", page.Page)
		}
	})

	t.Run("empty matched set", func(t *testing.T) {
		page := Resolve(items, Query[ProductFilters]{Search: "no such thing", Page: 5, PageSize: 10}, MatchProduct)
		if page.Total != 0 || page.Pages != 1 || page.Page != 1 {
			t.Errorf("Total/Pages/Page = %d/%d/%d, want 0/1/1", page.Total, page.Pages, page.Page)
		}
		if len(page.Items) != 0 {
			t.Errorf("len(Items) = %d, want 0", len(page.Items))
		}
	})

	t.Run("zero page size uses default", func(t *testing.T) {
		page := Resolve(items, Query[ProductFilters]{Page: 1}, MatchProduct)
		if page.PageSize != DefaultPageSize {
			t.Errorf("PageSize = %d, want %d", page.PageSize, DefaultPageSize)
		}
	})
}

func TestResolveBlankSearchMatchesAll(t *testing.T) {
	// Whitespace-only search text is no search at all, not a query that
	// scores zero against everything.
	items := testProducts(5)
	page := Resolve(items, Query[ProductFilters]{Search: "   ", PageSize: 10}, MatchProduct)
	if page.Total != 5 {
		t.Fatalf("Total = %d, want 5", page.Total)
	}
	for i, item := range page.Items {
		if item.ID != items[i].ID {
			t.Errorf("Items[%d] = %s, want %s", i, item.ID, items[i].ID)
		}
	}
}

func TestResolveEmptySearchKeepsOrder(t *testing.T) {
	items := testProducts(5)
	page := Resolve(items, Query[ProductFilters]{PageSize: 10}, MatchProduct)
	for i, item := range page.Items {
		if item.ID != items[i].ID {
			t.Errorf("Items[%d] = %s, want %s", i, item.ID, items[i].ID)
		}
	}
}
