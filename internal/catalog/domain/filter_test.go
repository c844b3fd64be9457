package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceRangeBoundaries(t *testing.T) {
	tests := []struct {
		price int64
		want  PriceRange
	}{
		{0, PriceRangeUnder50k},
		{49999, PriceRangeUnder50k},
		{50000, PriceRange50kTo100k},
		{99999, PriceRange50kTo100k},
		{100000, PriceRange100kTo500k},
		{499999, PriceRange100kTo500k},
		{500000, PriceRangeOver500k},
		{2000000, PriceRangeOver500k},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BucketOf(tt.price), "price %d", tt.price)
		for _, r := range PriceRanges {
			if r == PriceRangeAll {
				assert.True(t, r.Contains(tt.price))
				continue
			}
			assert.Equal(t, r == tt.want, r.Contains(tt.price), "bucket %s price %d", r, tt.price)
		}
	}
}

func TestUnknownPriceRangeContainsEverything(t *testing.T) {
	assert.True(t, PriceRange("bogus").Contains(1))
	assert.True(t, PriceRange("").Contains(1_000_000))
}

func TestParseEnums(t *testing.T) {
	r, err := ParsePriceRange("")
	require.NoError(t, err)
	assert.Equal(t, PriceRangeAll, r)

	r, err = ParsePriceRange("100k-500k")
	require.NoError(t, err)
	assert.Equal(t, PriceRange100kTo500k, r)

	_, err = ParsePriceRange("cheap")
	assert.True(t, errors.Is(err, ErrValidation))

	f, err := ParseSortField("")
	require.NoError(t, err)
	assert.Equal(t, SortByCreatedAt, f)

	f, err = ParseSortField("category")
	require.NoError(t, err)
	assert.Equal(t, SortByCategory, f)

	_, err = ParseSortField("id")
	assert.ErrorIs(t, err, ErrValidation)

	o, err := ParseSortOrder("ASC")
	require.NoError(t, err)
	assert.Equal(t, Ascending, o)

	o, err = ParseSortOrder("")
	require.NoError(t, err)
	assert.Equal(t, Descending, o)

	_, err = ParseSortOrder("up")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFilterStateNormalizeAndKey(t *testing.T) {
	assert.Equal(t, DefaultFilterState(), FilterState{}.Normalize())
	assert.Equal(t, FilterState{}.Key(), DefaultFilterState().Key())

	a := FilterState{Search: "milk", SortField: SortByPrice, SortOrder: Ascending}
	b := FilterState{Search: "milk", SortField: SortByPrice, SortOrder: Descending}
	assert.NotEqual(t, a.Key(), b.Key())

	// search text with separators must not collide with other fields
	c := FilterState{Search: `x|c="y"`}
	d := FilterState{Search: "x", CategoryID: "y"}
	assert.NotEqual(t, c.Key(), d.Key())
}

func TestProductCreationTimeFallsBack(t *testing.T) {
	p := Product{}
	assert.True(t, p.CreationTime().IsZero())

	p.ServerCreatedAt = p.ServerCreatedAt.AddDate(2024, 0, 0)
	assert.Equal(t, p.ServerCreatedAt, p.CreationTime())

	created := p.ServerCreatedAt.AddDate(0, 1, 0)
	p.CreatedAt = &created
	assert.Equal(t, created, p.CreationTime())
}
