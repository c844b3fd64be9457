package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tair/price-list/internal/catalog/domain"
)

func TestCategoryNameBranches(t *testing.T) {
	categories := []domain.Category{
		{ID: "c1", Name: "Default"},
		{ID: "c2", Name: "Snacks"},
	}
	products := []domain.Product{
		{ID: "p1", CategoryID: "c1"},
		{ID: "p2", CategoryID: "c2"},
		{ID: "p3", CategoryID: "c3"},
	}

	assert.Equal(t, "", CategoryName(categories, products[0].CategoryID))
	assert.Equal(t, "Snacks", CategoryName(categories, products[1].CategoryID))
	assert.Equal(t, NoCategoryLabel, CategoryName(categories, products[2].CategoryID))
	assert.Equal(t, NoCategoryLabel, CategoryName(nil, ""))
}

func TestResolverSortKeyAndIcon(t *testing.T) {
	r := NewResolver([]domain.Category{
		{ID: "c1", Name: "Default", Icon: "default"},
		{ID: "c2", Name: "Snacks", Icon: "snacks"},
		{ID: "c2", Name: "Shadowed", Icon: "book"},
		{ID: "c4", Name: "Odd", Icon: "rocket"},
	})

	assert.Equal(t, "", r.SortKey("c1"))
	assert.Equal(t, "Snacks", r.SortKey("c2"))
	assert.Equal(t, "", r.SortKey("missing"))

	assert.Equal(t, "home", r.Icon("c1").Glyph)
	assert.Equal(t, "popcorn", r.Icon("c2").Glyph)
	assert.Equal(t, FallbackGlyph, r.Icon("c4").Glyph)
	assert.Equal(t, FallbackGlyph, r.Icon("missing").Glyph)

	c, ok := r.Lookup("c2")
	assert.True(t, ok)
	assert.Equal(t, "Snacks", c.Name)
}

func TestCategoryIconIsTotal(t *testing.T) {
	for _, ic := range AvailableIcons() {
		assert.Equal(t, ic, CategoryIcon(ic.Key))
		assert.True(t, KnownIcon(ic.Key))
		assert.NotEmpty(t, ic.Label)
	}

	assert.Equal(t, Icon{Key: "", Glyph: FallbackGlyph}, CategoryIcon(""))
	assert.Equal(t, Icon{Key: "spaceship", Glyph: FallbackGlyph}, CategoryIcon("spaceship"))
	assert.False(t, KnownIcon("spaceship"))
}

func TestAvailableIconsReturnsCopy(t *testing.T) {
	list := AvailableIcons()
	list[0].Glyph = "changed"
	assert.Equal(t, "home", AvailableIcons()[0].Glyph)
	assert.Equal(t, "default", list[0].Key)
}
