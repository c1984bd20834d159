package floral

import (
	"strings"
	"unicode"
)

// Record is one row of the floral formula dataset: a plant order and
// family with the formula of its flowers. Families with more than one
// flower sex (e.g. monoecious groups) appear as several records.
type Record struct {
	// Order is the taxonomic order name.
	Order string
	// Family is the taxonomic family name, lowercase in the dataset.
	Family string
	// Sex is the sex of the flowers this formula describes.
	Sex FlowerType
	// Formula is the typed floral formula.
	Formula *Formula
}

// Header returns the identifying line printed above a formula:
// order, capitalized family, and flower sex.
func (r Record) Header() string {
	return r.Order + " -> " + capitalize(r.Family) + " -> " + r.Sex.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	rs := []rune(s)
	rs[0] = unicode.ToUpper(rs[0])
	return string(rs)
}

// Matches reports whether the record's field selected by byOrder
// equals key, case-insensitively.
func (r Record) Matches(key string, byOrder bool) bool {
	if byOrder {
		return strings.EqualFold(r.Order, key)
	}
	return strings.EqualFold(r.Family, key)
}
