package validate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"platemarket/internal/domain"
)

var (
	reRegion = regexp.MustCompile(`^[0-9]{1,3}$`)
	reID     = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

const maxQueryRunes = 50

// Q validates search text: trims, truncates to 50 runes and allows letters
// (any script), digits, spaces and dashes. Empty text is valid and means "no text clause".
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > maxQueryRunes {
		s = string([]rune(s)[:maxQueryRunes])
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != ' ' && r != '-' {
			return "", false
		}
	}
	return s, true
}

// Region validates the region selector: "all" or a 1-3 digit code.
func Region(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == domain.AllRegions {
		return domain.AllRegions, true
	}
	return s, reRegion.MatchString(s)
}

// Price parses a slider bound, falling back to def when empty or garbage and
// clamping into the slider range.
func Price(s string, def int64) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return def
	}
	if n < domain.PriceFloor {
		return domain.PriceFloor
	}
	if n > domain.PriceCeil {
		return domain.PriceCeil
	}
	return n
}

// PriceRange parses both bounds and swaps them when inverted, so min <= max always holds.
func PriceRange(minS, maxS string) (int64, int64) {
	lo := Price(minS, domain.PriceFloor)
	hi := Price(maxS, domain.PriceCeil)
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

// Sort maps unknown keys to the default.
func Sort(s string) domain.SortKey {
	k, _ := domain.ParseSortKey(strings.TrimSpace(s))
	return k
}

// ID validates a listing identifier.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Text checks a required free-text form field with a rune cap.
func Text(s string, max int) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > max {
		return "", false
	}
	return s, true
}

// Optional is Text without the presence requirement.
func Optional(s string, max int) (string, bool) {
	s = strings.TrimSpace(s)
	return s, utf8.RuneCountInString(s) <= max
}
