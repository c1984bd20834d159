// Package search filters loaded floral records by family or order name.
// Matching is exact and case-insensitive; fuzzy matching is only used
// to build "did you mean" suggestions for the CLI.
package search

import (
	"strings"

	"github.com/agext/levenshtein"
	"github.com/gnames/gnflora/pkg/floral"
)

// Mode selects which field of a record the key is compared against.
type Mode int

const (
	// ByFamily compares the key against family names.
	ByFamily Mode = iota
	// ByOrder compares the key against order names.
	ByOrder
	// All returns every record regardless of the key.
	All
)

func (m Mode) String() string {
	switch m {
	case ByOrder:
		return "order"
	case All:
		return "all"
	default:
		return "family"
	}
}

// Match returns the records whose field selected by mode equals key
// under case-insensitive comparison, preserving load order. An empty
// result is not an error: absence of data is for the caller to report.
func Match(records []floral.Record, key string, mode Mode) []floral.Record {
	if mode == All {
		return records
	}
	var res []floral.Record
	for _, rec := range records {
		if rec.Matches(key, mode == ByOrder) {
			res = append(res, rec)
		}
	}
	return res
}

// Suggest returns the family or order name closest to key by
// Levenshtein distance, with the distance itself. The second return is
// false when there are no records to compare against.
func Suggest(records []floral.Record, key string, mode Mode) (string, int, bool) {
	key = strings.ToLower(key)
	best := ""
	bestDist := -1
	for _, rec := range records {
		name := rec.Family
		if mode == ByOrder {
			name = rec.Order
		}
		d := levenshtein.Distance(strings.ToLower(name), key, nil)
		if bestDist < 0 || d < bestDist {
			best, bestDist = name, d
		}
	}
	return best, bestDist, bestDist >= 0
}
