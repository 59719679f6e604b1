package product

// FilterOption is one selectable value in the client filter sheet.
type FilterOption struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// PriceRange is the cheapest and most expensive price in the catalog.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// FilterMetadata describes every value a filter can take for the current catalog.
type FilterMetadata struct {
	Categories []FilterOption `json:"categories"`
	Brands     []FilterOption `json:"brands"`
	Sizes      []FilterOption `json:"sizes"`
	PriceRange *PriceRange    `json:"priceRange,omitempty"`
}

// Facets counts categories, brands and sizes in first-seen order.
func Facets(catalog []Product) FilterMetadata {
	meta := FilterMetadata{
		Categories: []FilterOption{},
		Brands:     []FilterOption{},
		Sizes:      []FilterOption{},
	}
	categories := newCounter()
	brands := newCounter()
	sizes := newCounter()

	for i, p := range catalog {
		categories.add(p.Category)
		brands.add(p.Brand)
		for _, s := range p.Sizes {
			sizes.add(s)
		}
		if i == 0 {
			meta.PriceRange = &PriceRange{Min: p.Price, Max: p.Price}
			continue
		}
		if p.Price < meta.PriceRange.Min {
			meta.PriceRange.Min = p.Price
		}
		if p.Price > meta.PriceRange.Max {
			meta.PriceRange.Max = p.Price
		}
	}

	meta.Categories = categories.options()
	meta.Brands = brands.options()
	meta.Sizes = sizes.options()
	return meta
}

type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: map[string]int{}}
}

func (c *counter) add(v string) {
	if v == "" {
		return
	}
	if _, ok := c.counts[v]; !ok {
		c.order = append(c.order, v)
	}
	c.counts[v]++
}

func (c *counter) options() []FilterOption {
	out := make([]FilterOption, 0, len(c.order))
	for _, v := range c.order {
		out = append(out, FilterOption{Value: v, Count: c.counts[v]})
	}
	return out
}
