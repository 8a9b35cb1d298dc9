package domain

type SortKey string

const (
	SortDateDesc  SortKey = "date-desc"
	SortDateAsc   SortKey = "date-asc"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortViewsDesc SortKey = "views-desc"
)

const DefaultSort = SortDateDesc

// SortOption pairs a key with its selector label.
type SortOption struct {
	Key   SortKey
	Label string
}

var SortOptions = []SortOption{
	{SortDateDesc, "По дате (новые)"},
	{SortDateAsc, "По дате (старые)"},
	{SortPriceAsc, "По цене (дешевле)"},
	{SortPriceDesc, "По цене (дороже)"},
	{SortViewsDesc, "По популярности"},
}

func ParseSortKey(s string) (SortKey, bool) {
	for _, o := range SortOptions {
		if string(o.Key) == s {
			return o.Key, true
		}
	}
	return DefaultSort, false
}

const AllRegions = "all"

// Price slider bounds used by the filter panel.
const (
	PriceFloor int64 = 0
	PriceCeil  int64 = 500000
	PriceStep  int64 = 5000
)

// Filter is the search text, price bounds and region constraint applied to the
// catalog. PriceMin <= PriceMax is a precondition, enforced where the filter is built.
type Filter struct {
	QueryText string `json:"q"`
	PriceMin  int64  `json:"priceMin"`
	PriceMax  int64  `json:"priceMax"`
	Region    string `json:"region"`
}

func DefaultFilter() Filter {
	return Filter{PriceMin: PriceFloor, PriceMax: PriceCeil, Region: AllRegions}
}

// IsDefault reports whether f equals the reset state of the filter panel.
func (f Filter) IsDefault() bool { return f == DefaultFilter() }
