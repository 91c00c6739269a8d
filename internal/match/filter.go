package match

// PricePredicate selects one of the mutually exclusive price filters.
type PricePredicate int

const (
	PriceAny PricePredicate = iota
	PriceFree
	PriceUnderTen
	PriceUnderForty
	PriceRange
)

// Filter is the structured filter a room applies when generating its list.
// It is passed as data and translated into parameterized predicates by the
// storage layer; user input never reaches query text directly.
type Filter struct {
	Tag   string
	Genre string
	Price PricePredicate
	// Inclusive bounds, only meaningful with PriceRange.
	MinPrice float64
	MaxPrice float64
}

// FilterInput is the wire form of a filter as posted by the front end.
type FilterInput struct {
	Tag      string   `json:"tag"`
	Genre    string   `json:"genre"`
	Price    string   `json:"price"` // "free", "under10", "under40" or ""
	MinPrice *float64 `json:"min_price"`
	MaxPrice *float64 `json:"max_price"`
}

// ToFilter resolves the wire form into a Filter, applying the predicate
// priority free > under10 > under40 > range > none.
func (in FilterInput) ToFilter() Filter {
	f := Filter{Tag: in.Tag, Genre: in.Genre}
	switch in.Price {
	case "free":
		f.Price = PriceFree
	case "under10":
		f.Price = PriceUnderTen
	case "under40":
		f.Price = PriceUnderForty
	default:
		if in.MinPrice != nil && in.MaxPrice != nil && *in.MinPrice >= 0 && *in.MaxPrice >= *in.MinPrice {
			f.Price = PriceRange
			f.MinPrice = *in.MinPrice
			f.MaxPrice = *in.MaxPrice
		}
	}
	return f
}
