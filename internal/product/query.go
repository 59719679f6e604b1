package product

import "strings"

// Predicate decides whether a product stays in a result set.
type Predicate func(Product) bool

// MatchText keeps products whose name, category or brand contains text,
// ignoring case.
func MatchText(text string) Predicate {
	needle := strings.ToLower(text)
	return func(p Product) bool {
		return strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) ||
			strings.Contains(strings.ToLower(p.Brand), needle)
	}
}

// InCategory keeps products whose category equals category exactly.
func InCategory(category string) Predicate {
	return func(p Product) bool { return p.Category == category }
}

// PriceAtLeast keeps products priced at min or above.
func PriceAtLeast(min int) Predicate {
	return func(p Product) bool { return p.Price >= min }
}

// PriceAtMost keeps products priced at max or below.
func PriceAtMost(max int) Predicate {
	return func(p Product) bool { return p.Price <= max }
}

// AnySize keeps products offering at least one of sizes.
func AnySize(sizes []string) Predicate {
	want := toSet(sizes)
	return func(p Product) bool {
		for _, s := range p.Sizes {
			if _, ok := want[s]; ok {
				return true
			}
		}
		return false
	}
}

// BrandIn keeps products whose brand is one of brands.
func BrandIn(brands []string) Predicate {
	want := toSet(brands)
	return func(p Product) bool {
		_, ok := want[p.Brand]
		return ok
	}
}

// Predicates returns the active predicates for text and criteria in the
// order search, category, min price, max price, sizes, brands.
func Predicates(text string, criteria FilterCriteria) []Predicate {
	preds := make([]Predicate, 0, 6)
	if text != "" {
		preds = append(preds, MatchText(text))
	}
	if criteria.Category != nil {
		preds = append(preds, InCategory(*criteria.Category))
	}
	if criteria.MinPrice != nil {
		preds = append(preds, PriceAtLeast(*criteria.MinPrice))
	}
	if criteria.MaxPrice != nil {
		preds = append(preds, PriceAtMost(*criteria.MaxPrice))
	}
	if len(criteria.Sizes) > 0 {
		preds = append(preds, AnySize(criteria.Sizes))
	}
	if len(criteria.Brands) > 0 {
		preds = append(preds, BrandIn(criteria.Brands))
	}
	return preds
}

// Filter keeps the products satisfying every predicate, in catalog order.
// The result is never nil.
func Filter(catalog []Product, preds ...Predicate) []Product {
	out := make([]Product, 0, len(catalog))
next:
	for _, p := range catalog {
		for _, keep := range preds {
			if !keep(p) {
				continue next
			}
		}
		out = append(out, p)
	}
	return out
}

// Query runs a free-text search combined with criteria over catalog.
// It does not modify catalog and returns the same sequence for the same inputs.
func Query(catalog []Product, text string, criteria FilterCriteria) []Product {
	return Filter(catalog, Predicates(text, criteria)...)
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
