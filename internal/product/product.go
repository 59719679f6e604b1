package product

// Product is an immutable catalog entry. JSON tags follow the camelCase
// convention the storefront clients already use.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         int      `json:"price"`
	OriginalPrice *int     `json:"originalPrice,omitempty"`
	Discount      *int     `json:"discount,omitempty"`
	Image         string   `json:"image"`
	Category      string   `json:"category"`
	Brand         string   `json:"brand"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	IsNew         bool     `json:"isNew,omitempty"`
	IsSale        bool     `json:"isSale,omitempty"`
}

// HasSize reports whether size is one of the product's sizes.
func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// FilterCriteria holds the structured (non-text) search constraints.
// A nil pointer or an empty list leaves that predicate out.
type FilterCriteria struct {
	Category *string  `json:"category,omitempty"`
	MinPrice *int     `json:"minPrice,omitempty"`
	MaxPrice *int     `json:"maxPrice,omitempty"`
	Sizes    []string `json:"sizes,omitempty"`
	Brands   []string `json:"brands,omitempty"`
}

// IsZero reports whether no filter is set.
func (f FilterCriteria) IsZero() bool {
	return f.Category == nil && f.MinPrice == nil && f.MaxPrice == nil && len(f.Sizes) == 0 && len(f.Brands) == 0
}

// AllCategories is the label of the client's "show everything" category chip.
const AllCategories = "Все"

func ptrString(s string) *string { return &s }
func ptrInt(v int) *int          { return &v }
