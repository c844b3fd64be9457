package domain

import (
	"fmt"
	"strings"
)

// PriceRange selects one price bucket
type PriceRange string

const (
	PriceRangeAll        PriceRange = "all"
	PriceRangeUnder50k   PriceRange = "under-50k"
	PriceRange50kTo100k  PriceRange = "50k-100k"
	PriceRange100kTo500k PriceRange = "100k-500k"
	PriceRangeOver500k   PriceRange = "over-500k"
)

// PriceRanges lists every bucket in display order
var PriceRanges = []PriceRange{
	PriceRangeAll,
	PriceRangeUnder50k,
	PriceRange50kTo100k,
	PriceRange100kTo500k,
	PriceRangeOver500k,
}

// Contains reports whether price falls in the bucket. Buckets include their lower bound and
// exclude their upper bound; over-500k is unbounded. Unknown buckets contain everything.
func (r PriceRange) Contains(price int64) bool {
	switch r {
	case PriceRangeUnder50k:
		return price < 50000
	case PriceRange50kTo100k:
		return price >= 50000 && price < 100000
	case PriceRange100kTo500k:
		return price >= 100000 && price < 500000
	case PriceRangeOver500k:
		return price >= 500000
	default:
		return true
	}
}

// BucketOf returns the concrete bucket a price belongs to
func BucketOf(price int64) PriceRange {
	switch {
	case price < 50000:
		return PriceRangeUnder50k
	case price < 100000:
		return PriceRange50kTo100k
	case price < 500000:
		return PriceRange100kTo500k
	default:
		return PriceRangeOver500k
	}
}

// ParsePriceRange accepts the wire value; empty means all
func ParsePriceRange(s string) (PriceRange, error) {
	if s == "" {
		return PriceRangeAll, nil
	}
	for _, r := range PriceRanges {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: unknown price range %q", ErrValidation, s)
}

// SortField names the product attribute to order by
type SortField string

const (
	SortByName      SortField = "name"
	SortByPrice     SortField = "price"
	SortByCreatedAt SortField = "createdAt"
	SortByCategory  SortField = "category"
)

// ParseSortField accepts the wire value; empty means createdAt
func ParseSortField(s string) (SortField, error) {
	switch SortField(s) {
	case "":
		return SortByCreatedAt, nil
	case SortByName, SortByPrice, SortByCreatedAt, SortByCategory:
		return SortField(s), nil
	}
	return "", fmt.Errorf("%w: unknown sort field %q", ErrValidation, s)
}

// SortOrder is ascending or descending
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// ParseSortOrder accepts the wire value case-insensitively; empty means desc
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(s)) {
	case "":
		return Descending, nil
	case Ascending:
		return Ascending, nil
	case Descending:
		return Descending, nil
	}
	return "", fmt.Errorf("%w: unknown sort order %q", ErrValidation, s)
}

// FilterState is the search/filter/sort configuration of a product listing
type FilterState struct {
	Search     string     `json:"search"`
	CategoryID string     `json:"categoryId"`
	PriceRange PriceRange `json:"priceRange"`
	SortField  SortField  `json:"sortField"`
	SortOrder  SortOrder  `json:"sortOrder"`
}

// DefaultFilterState lists everything, newest first
func DefaultFilterState() FilterState {
	return FilterState{
		PriceRange: PriceRangeAll,
		SortField:  SortByCreatedAt,
		SortOrder:  Descending,
	}
}

// Normalize fills unset fields with their defaults
func (f FilterState) Normalize() FilterState {
	if f.PriceRange == "" {
		f.PriceRange = PriceRangeAll
	}
	if f.SortField == "" {
		f.SortField = SortByCreatedAt
	}
	if f.SortOrder == "" {
		f.SortOrder = Descending
	}
	return f
}

// Key is a canonical encoding of the normalized state, stable across equal states
func (f FilterState) Key() string {
	n := f.Normalize()
	return fmt.Sprintf("q=%q|c=%q|p=%s|s=%s|o=%s", n.Search, n.CategoryID, n.PriceRange, n.SortField, n.SortOrder)
}
