package view

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/price-list/internal/catalog/domain"
)

var base = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func at(minutes int) *time.Time {
	t := base.Add(time.Duration(minutes) * time.Minute)
	return &t
}

func names(ps []domain.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

func fixtureCatalog() ([]domain.Product, []domain.Category) {
	categories := []domain.Category{
		{ID: "c1", Name: "Default", Icon: "default"},
		{ID: "c2", Name: "Snacks", Icon: "snacks"},
		{ID: "c3", Name: "Beverages", Icon: "coffee"},
	}
	products := []domain.Product{
		{ID: "p1", Name: "Rice", Price: 45000, CategoryID: "c1", CreatedAt: at(1)},
		{ID: "p2", Name: "Milk", Price: 75000, CategoryID: "c2", CreatedAt: at(2)},
		{ID: "p3", Name: "TV", Price: 2000000, CategoryID: "c2", CreatedAt: at(3)},
		{ID: "p4", Name: "milkshake", Price: 100000, CategoryID: "c3", CreatedAt: at(4)},
		{ID: "p5", Name: "Oil", Price: 499999, CategoryID: "c9", CreatedAt: at(5)},
	}
	return products, categories
}

func TestDeriveDefaultsToNewestFirst(t *testing.T) {
	products, categories := fixtureCatalog()

	v := Derive(products, categories, domain.FilterState{})

	assert.Equal(t, []string{"Oil", "milkshake", "TV", "Milk", "Rice"}, names(v.Products))
	assert.Equal(t, len(products), v.Stats.Visible.Count)
}

func TestDeriveFallsBackToServerCreationTime(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Name: "legacy", ServerCreatedAt: base.Add(10 * time.Minute)},
		{ID: "b", Name: "client", CreatedAt: at(5), ServerCreatedAt: base.Add(30 * time.Minute)},
		{ID: "c", Name: "oldest", ServerCreatedAt: base},
	}

	v := Derive(products, nil, domain.FilterState{})

	assert.Equal(t, []string{"legacy", "client", "oldest"}, names(v.Products))
}

func TestDeriveSearchIsCaseInsensitiveSubstring(t *testing.T) {
	products, categories := fixtureCatalog()

	for _, search := range []string{"MILK", "i", "tv", "zzz", ""} {
		t.Run(fmt.Sprintf("search=%q", search), func(t *testing.T) {
			v := Derive(products, categories, domain.FilterState{Search: search})

			needle := strings.ToLower(search)
			visible := map[string]bool{}
			for _, p := range v.Products {
				visible[p.ID] = true
				assert.Contains(t, strings.ToLower(p.Name), needle)
			}
			for _, p := range products {
				if !visible[p.ID] {
					assert.NotContains(t, strings.ToLower(p.Name), needle)
				}
			}
		})
	}
}

func TestDeriveCategoryFilter(t *testing.T) {
	products, categories := fixtureCatalog()

	v := Derive(products, categories, domain.FilterState{CategoryID: "c2"})
	assert.ElementsMatch(t, []string{"Milk", "TV"}, names(v.Products))

	v = Derive(products, categories, domain.FilterState{CategoryID: "c9"})
	assert.Equal(t, []string{"Oil"}, names(v.Products))

	v = Derive(products, categories, domain.FilterState{CategoryID: "nope"})
	assert.Empty(t, v.Products)
}

func TestDerivePriceBuckets(t *testing.T) {
	var products []domain.Product
	for i, price := range []int64{49999, 50000, 99999, 100000, 499999, 500000} {
		products = append(products, domain.Product{
			ID:        fmt.Sprintf("p%d", i),
			Name:      fmt.Sprintf("item %d", price),
			Price:     price,
			CreatedAt: at(i),
		})
	}

	tests := []struct {
		bucket domain.PriceRange
		want   []int64
	}{
		{domain.PriceRangeAll, []int64{49999, 50000, 99999, 100000, 499999, 500000}},
		{domain.PriceRangeUnder50k, []int64{49999}},
		{domain.PriceRange50kTo100k, []int64{50000, 99999}},
		{domain.PriceRange100kTo500k, []int64{100000, 499999}},
		{domain.PriceRangeOver500k, []int64{500000}},
	}

	for _, tt := range tests {
		t.Run(string(tt.bucket), func(t *testing.T) {
			v := Derive(products, nil, domain.FilterState{
				PriceRange: tt.bucket,
				SortField:  domain.SortByPrice,
				SortOrder:  domain.Ascending,
			})

			var got []int64
			for _, p := range v.Products {
				assert.True(t, tt.bucket.Contains(p.Price))
				got = append(got, p.Price)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveSortByNameIsLocaleAware(t *testing.T) {
	products := []domain.Product{
		{ID: "1", Name: "banana"},
		{ID: "2", Name: "Apple"},
		{ID: "3", Name: "cherry"},
		{ID: "4", Name: "Durian"},
	}

	v := Derive(products, nil, domain.FilterState{SortField: domain.SortByName, SortOrder: domain.Ascending})
	assert.Equal(t, []string{"Apple", "banana", "cherry", "Durian"}, names(v.Products))

	v = Derive(products, nil, domain.FilterState{SortField: domain.SortByName, SortOrder: domain.Descending})
	assert.Equal(t, []string{"Durian", "cherry", "banana", "Apple"}, names(v.Products))
}

func TestDeriveSortByCategoryUsesResolvedNames(t *testing.T) {
	products, categories := fixtureCatalog()

	v := Derive(products, categories, domain.FilterState{SortField: domain.SortByCategory, SortOrder: domain.Ascending})

	// Default (c1) and dangling (c9) share the empty key and keep input order,
	// then Beverages (c3) sorts before Snacks (c2) despite the id order.
	assert.Equal(t, []string{"Rice", "Oil", "milkshake", "Milk", "TV"}, names(v.Products))
}

func TestDeriveSortIsStableAndIdempotent(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Name: "first", Price: 1000},
		{ID: "b", Name: "second", Price: 500},
		{ID: "c", Name: "third", Price: 1000},
		{ID: "d", Name: "fourth", Price: 500},
	}

	for _, order := range []domain.SortOrder{domain.Ascending, domain.Descending} {
		filters := domain.FilterState{SortField: domain.SortByPrice, SortOrder: order}
		once := Derive(products, nil, filters)
		twice := Derive(once.Products, nil, filters)
		assert.Equal(t, names(once.Products), names(twice.Products))
	}

	asc := Derive(products, nil, domain.FilterState{SortField: domain.SortByPrice, SortOrder: domain.Ascending})
	assert.Equal(t, []string{"second", "fourth", "first", "third"}, names(asc.Products))

	desc := Derive(products, nil, domain.FilterState{SortField: domain.SortByPrice, SortOrder: domain.Descending})
	assert.Equal(t, []string{"first", "third", "second", "fourth"}, names(desc.Products))
}

func TestDeriveReverseOrderReversesWithoutTies(t *testing.T) {
	products, categories := fixtureCatalog()

	for _, field := range []domain.SortField{domain.SortByName, domain.SortByPrice, domain.SortByCreatedAt} {
		asc := Derive(products, categories, domain.FilterState{SortField: field, SortOrder: domain.Ascending})
		desc := Derive(products, categories, domain.FilterState{SortField: field, SortOrder: domain.Descending})

		reversed := names(desc.Products)
		for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
			reversed[i], reversed[j] = reversed[j], reversed[i]
		}
		assert.Equal(t, names(asc.Products), reversed, "field %s", field)
	}
}

func TestDeriveDoesNotMutateInputs(t *testing.T) {
	products, categories := fixtureCatalog()
	productsBefore := append([]domain.Product(nil), products...)
	categoriesBefore := append([]domain.Category(nil), categories...)

	_ = Derive(products, categories, domain.FilterState{SortField: domain.SortByName, SortOrder: domain.Ascending})

	assert.Equal(t, productsBefore, products)
	assert.Equal(t, categoriesBefore, categories)
}

func TestDeriveIsDeterministic(t *testing.T) {
	products, categories := fixtureCatalog()
	filters := domain.FilterState{Search: "i", SortField: domain.SortByCategory, SortOrder: domain.Descending}

	assert.Equal(t, Derive(products, categories, filters), Derive(products, categories, filters))
}

func TestDeriveEndToEndScenario(t *testing.T) {
	products := []domain.Product{
		{ID: "1", Name: "Rice", Price: 45000, CategoryID: "c1"},
		{ID: "2", Name: "Milk", Price: 75000, CategoryID: "c2"},
		{ID: "3", Name: "TV", Price: 2000000, CategoryID: "c2"},
	}

	v := Derive(products, nil, domain.FilterState{PriceRange: domain.PriceRange50kTo100k})
	assert.Equal(t, []string{"Milk"}, names(v.Products))

	v = Derive(products, nil, domain.FilterState{
		CategoryID: "c2",
		SortField:  domain.SortByPrice,
		SortOrder:  domain.Ascending,
	})
	assert.Equal(t, []string{"Milk", "TV"}, names(v.Products))
}

func TestDeriveStatisticScopes(t *testing.T) {
	products, categories := fixtureCatalog()

	v := Derive(products, categories, domain.FilterState{CategoryID: "c2"})

	assert.Equal(t, 5, v.Stats.Total)
	assert.Equal(t, VisibleStats{Count: 2, Sum: 2075000, Mean: 1037500}, v.Stats.Visible)

	// full-set counts ignore the category filter
	assert.Equal(t, map[string]int{"c1": 1, "c2": 2, "c3": 1, "c9": 1}, v.Stats.ByCategory)
	assert.Equal(t, map[domain.PriceRange]int{
		domain.PriceRangeAll:        5,
		domain.PriceRangeUnder50k:   1,
		domain.PriceRange50kTo100k:  1,
		domain.PriceRange100kTo500k: 2,
		domain.PriceRangeOver500k:   1,
	}, v.Stats.ByPriceRange)
}

func TestDeriveMeanRoundsToNearest(t *testing.T) {
	products := []domain.Product{
		{ID: "1", Name: "a", Price: 1},
		{ID: "2", Name: "b", Price: 2},
	}
	v := Derive(products, nil, domain.FilterState{})
	assert.Equal(t, int64(2), v.Stats.Visible.Mean)

	products = append(products, domain.Product{ID: "3", Name: "c", Price: 2})
	v = Derive(products, nil, domain.FilterState{})
	assert.Equal(t, int64(2), v.Stats.Visible.Mean)
}

func TestDeriveEmptyInputs(t *testing.T) {
	v := Derive(nil, nil, domain.FilterState{})
	require.NotNil(t, v.Products)
	assert.Empty(t, v.Products)
	assert.Equal(t, VisibleStats{}, v.Stats.Visible)
	assert.Equal(t, 0, v.Stats.Total)
	assert.Len(t, v.Stats.ByPriceRange, len(domain.PriceRanges))

	products, categories := fixtureCatalog()
	v = Derive(products, categories, domain.FilterState{Search: "no such product"})
	assert.Equal(t, VisibleStats{Count: 0, Sum: 0, Mean: 0}, v.Stats.Visible)
}

func TestDeriveToleratesUnknownEnums(t *testing.T) {
	products, categories := fixtureCatalog()

	v := Derive(products, categories, domain.FilterState{
		PriceRange: "bogus",
		SortField:  "bogus",
		SortOrder:  domain.Descending,
	})
	assert.Equal(t, []string{"Oil", "milkshake", "TV", "Milk", "Rice"}, names(v.Products))
}

func TestParseLocale(t *testing.T) {
	assert.Equal(t, "en", ParseLocale("en").String())
	assert.Equal(t, "id", ParseLocale("not a tag!").String())
}
