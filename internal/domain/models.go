package domain

import "time"

type Category string

const (
	CategoryPremium   Category = "premium"
	CategoryExclusive Category = "exclusive"
	CategoryStandard  Category = "standard"
)

// Label is the Russian display name shown on the detail view.
func (c Category) Label() string {
	switch c {
	case CategoryPremium:
		return "Премиум"
	case CategoryExclusive:
		return "Эксклюзив"
	default:
		return "Стандарт"
	}
}

func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryPremium, CategoryExclusive, CategoryStandard:
		return Category(s), true
	}
	return "", false
}

// Listing is a single plate-for-sale record. Optional fields are pointers;
// use the accessor methods to read them with their defaults applied.
type Listing struct {
	ID          string    `json:"id"`
	Number      string    `json:"number"`
	Region      string    `json:"region"`
	Price       int64     `json:"price"`
	Seller      string    `json:"seller"`
	Phone       string    `json:"phone"`
	Description string    `json:"description"`
	Featured    *bool     `json:"featured,omitempty"`
	Image       *string   `json:"image,omitempty"`
	DateAdded   time.Time `json:"dateAdded"`
	Views       *int64    `json:"views,omitempty"`
	Category    *Category `json:"category,omitempty"`
}

// IsFeatured reports the VIP flag; absent means false.
func (l Listing) IsFeatured() bool { return l.Featured != nil && *l.Featured }

// ViewCount returns views, 0 when absent.
func (l Listing) ViewCount() int64 {
	if l.Views == nil {
		return 0
	}
	return *l.Views
}

// ImageURL returns the image path or "" when the listing has none.
func (l Listing) ImageURL() string {
	if l.Image == nil {
		return ""
	}
	return *l.Image
}

func (l Listing) HasCategory() bool { return l.Category != nil }

// Plate renders the number the way the card header shows it: "А777АА 77".
func (l Listing) Plate() string { return l.Number + " " + l.Region }

// Draft is the raw, unsubmitted new-listing form.
type Draft struct {
	Number      string `json:"number"`
	Region      string `json:"region"`
	Price       string `json:"price"`
	Seller      string `json:"seller"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
}
