package view

// FallbackGlyph is rendered for unknown or missing icon keys
const FallbackGlyph = "layout-grid"

// Icon is a pickable category icon. Glyph names the rendered symbol.
type Icon struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Glyph string `json:"glyph"`
}

var icons = []Icon{
	{Key: "default", Label: "Default", Glyph: "home"},
	{Key: "cooking", Label: "Bumbu & Masakan", Glyph: "utensils"},
	{Key: "coffee", Label: "Minuman", Glyph: "coffee"},
	{Key: "snacks", Label: "Camilan", Glyph: "popcorn"},
	{Key: "cleaning", Label: "Pembersih", Glyph: "bubbles"},
	{Key: "baby", Label: "Produk Bayi", Glyph: "baby"},
	{Key: "cigarette", Label: "Rokok", Glyph: "cigarette"},
	{Key: "book", Label: "Buku", Glyph: "book"},
	{Key: "shirt", Label: "Pakaian", Glyph: "shirt"},
	{Key: "rice", Label: "Beras", Glyph: "package"},
	{Key: "oil", Label: "Minyak", Glyph: "droplet"},
	{Key: "fruit", Label: "Buah", Glyph: "apple"},
	{Key: "vegetable", Label: "Sayuran", Glyph: "carrot"},
	{Key: "milk", Label: "Susu & Olahan", Glyph: "milk"},
	{Key: "fish", Label: "Ikan & Laut", Glyph: "fish"},
}

var iconsByKey = func() map[string]Icon {
	m := make(map[string]Icon, len(icons))
	for _, ic := range icons {
		m[ic.Key] = ic
	}
	return m
}()

// CategoryIcon maps an icon key to its icon. It never fails: unknown keys keep their key
// and get FallbackGlyph.
func CategoryIcon(key string) Icon {
	if ic, ok := iconsByKey[key]; ok {
		return ic
	}
	return Icon{Key: key, Glyph: FallbackGlyph}
}

// KnownIcon reports whether key is in the icon table
func KnownIcon(key string) bool {
	_, ok := iconsByKey[key]
	return ok
}

// AvailableIcons returns the picker list in display order
func AvailableIcons() []Icon {
	out := make([]Icon, len(icons))
	copy(out, icons)
	return out
}
