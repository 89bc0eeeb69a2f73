package catalog

// Listing pairs a provider with its resolved category for display.
type Listing struct {
	Provider Provider
	Category Category
}

// Join resolves each provider's category, preserving provider order.
// Providers whose categoryId matches no known category are dropped: they
// cannot render in any list.
func Join(providers []Provider, categories []Category) []Listing {
	byID := make(map[int64]Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	out := make([]Listing, 0, len(providers))
	for _, p := range providers {
		cat, ok := byID[p.CategoryID]
		if !ok {
			continue
		}
		out = append(out, Listing{Provider: p, Category: cat})
	}
	return out
}
