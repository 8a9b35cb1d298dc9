// Package query turns the listing catalog plus a filter and sort key into the
// ordered sequence shown to the user. Everything here is pure: inputs are never
// mutated and the same arguments always give the same output.
package query

import (
	"sort"
	"strconv"
	"strings"

	"platemarket/internal/domain"
)

// ComputeView filters listings by f and returns them stably sorted by key.
// An unknown key sorts like domain.DefaultSort.
func ComputeView(listings []domain.Listing, f domain.Filter, key domain.SortKey) []domain.Listing {
	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if Matches(l, f) {
			out = append(out, l)
		}
	}
	less := comparator(key)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Matches is the AND of the text, price and region clauses.
func Matches(l domain.Listing, f domain.Filter) bool {
	return matchesText(l, f.QueryText) &&
		l.Price >= f.PriceMin && l.Price <= f.PriceMax &&
		matchesRegion(l, f.Region)
}

// Number is compared case-insensitively, region as a plain substring.
func matchesText(l domain.Listing, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Number), strings.ToLower(q)) ||
		strings.Contains(l.Region, q)
}

func matchesRegion(l domain.Listing, region string) bool {
	return region == domain.AllRegions || l.Region == region
}

func comparator(key domain.SortKey) func(a, b domain.Listing) bool {
	switch key {
	case domain.SortPriceAsc:
		return func(a, b domain.Listing) bool { return a.Price < b.Price }
	case domain.SortPriceDesc:
		return func(a, b domain.Listing) bool { return a.Price > b.Price }
	case domain.SortDateAsc:
		return func(a, b domain.Listing) bool { return a.DateAdded.Before(b.DateAdded) }
	case domain.SortViewsDesc:
		return func(a, b domain.Listing) bool { return a.ViewCount() > b.ViewCount() }
	default:
		return func(a, b domain.Listing) bool { return a.DateAdded.After(b.DateAdded) }
	}
}

// Regions lists the distinct region codes, numeric codes first in numeric order.
func Regions(listings []domain.Listing) []string {
	seen := make(map[string]struct{}, len(listings))
	out := []string{}
	for _, l := range listings {
		if _, ok := seen[l.Region]; ok {
			continue
		}
		seen[l.Region] = struct{}{}
		out = append(out, l.Region)
	}
	sort.Slice(out, func(i, j int) bool {
		a, errA := strconv.Atoi(out[i])
		b, errB := strconv.Atoi(out[j])
		switch {
		case errA == nil && errB == nil:
			if a != b {
				return a < b
			}
			return out[i] < out[j]
		case errA == nil:
			return true
		case errB == nil:
			return false
		}
		return out[i] < out[j]
	})
	return out
}

// FavoritesOf keeps the listings whose id satisfies isFavorite, in catalog order.
// Favorite ids with no matching listing simply produce nothing.
func FavoritesOf(listings []domain.Listing, isFavorite func(id string) bool) []domain.Listing {
	out := []domain.Listing{}
	for _, l := range listings {
		if isFavorite(l.ID) {
			out = append(out, l)
		}
	}
	return out
}
