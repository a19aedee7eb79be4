package catalog

import "strings"

// PageSize is the fixed number of products shown per page.
const PageSize = 6

// ViewMode selects how the visible slice is presented.
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewCard
)

func (m ViewMode) String() string {
	if m == ViewCard {
		return "card"
	}
	return "list"
}

// View is the derived, render-ready subset of the catalog: the visible
// slice for the current page plus the pagination totals it was computed
// from. It is recomputed from scratch on every state change.
type View struct {
	Items      []Product
	Total      int // size of the filtered set
	TotalPages int // zero when the filtered set is empty
	Page       int
	Mode       ViewMode
	Search     string
}

// filterProducts returns the products whose name contains term as a
// case-insensitive substring. An empty (or all-whitespace) term matches
// everything.
func filterProducts(products []Product, term string) []Product {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return products
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), lower) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// totalPages returns ceil(count/size), zero for an empty set.
func totalPages(count, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// pageSlice cuts the page-th slice of size items out of filtered, with
// both bounds clamped to the set.
func pageSlice(filtered []Product, page, size int) []Product {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(filtered) {
		return []Product{}
	}
	end := start + size
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}
