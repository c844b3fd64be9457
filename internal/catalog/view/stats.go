package view

import (
	"math"

	"github.com/tair/price-list/internal/catalog/domain"
)

// VisibleStats summarises the filtered list
type VisibleStats struct {
	Count int   `json:"count"`
	Sum   int64 `json:"sum"`
	Mean  int64 `json:"mean"`
}

// Stats holds the results summary and the filter-panel counts
type Stats struct {
	Total   int          `json:"total"`
	Visible VisibleStats `json:"visible"`

	// ByCategory and ByPriceRange count the full, unfiltered product set
	ByCategory   map[string]int            `json:"byCategory"`
	ByPriceRange map[domain.PriceRange]int `json:"byPriceRange"`
}

func computeStats(all, visible []domain.Product) Stats {
	stats := Stats{
		Total:        len(all),
		ByCategory:   make(map[string]int),
		ByPriceRange: make(map[domain.PriceRange]int, len(domain.PriceRanges)),
	}
	for _, r := range domain.PriceRanges {
		stats.ByPriceRange[r] = 0
	}

	for _, p := range all {
		stats.ByCategory[p.CategoryID]++
		stats.ByPriceRange[domain.BucketOf(p.Price)]++
	}
	stats.ByPriceRange[domain.PriceRangeAll] = len(all)

	var sum int64
	for _, p := range visible {
		sum += p.Price
	}
	stats.Visible = VisibleStats{
		Count: len(visible),
		Sum:   sum,
		Mean:  mean(sum, len(visible)),
	}
	return stats
}

func mean(sum int64, n int) int64 {
	if n == 0 {
		return 0
	}
	return int64(math.Round(float64(sum) / float64(n)))
}
