package floral

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Whorl is one whorl within a floral part: either a single organ count
// or a min-max range, optionally sterile.
type Whorl struct {
	// Number is the organ count when the whorl has no range.
	Number *Count
	// Min and Max bound the organ count when the whorl has a range.
	Min *Count
	Max *Count
	// Sterility marks sterile whorls such as staminodes.
	Sterility Sterility
}

// String renders the whorl count. A whorl with neither a number nor a
// range renders as "?" rather than failing.
func (w Whorl) String() string {
	var n string
	switch {
	case w.Number != nil:
		n = w.Number.String()
	case w.Min != nil && w.Max != nil:
		n = w.Min.String() + "-" + w.Max.String()
	default:
		n = "?"
	}
	return n + w.Sterility.String()
}

// FloralPart is one floral organ with all of its whorls.
type FloralPart struct {
	// Part is the organ this value describes.
	Part Part
	// Connate marks fusion within the part, rendered as parentheses.
	Connate bool
	// ConnationVaries marks variable connation across the group,
	// rendered as a closing square bracket.
	ConnationVaries bool
	// Whorls holds the differentiated whorls of the part, joined
	// with "+" in the formula.
	Whorls []Whorl
	// Ovary is only meaningful for carpels.
	Ovary Ovary
}

// String renders the part letter with its ovary marker, whorl counts,
// and connation brackets.
func (p *FloralPart) String() string {
	whorls := make([]string, len(p.Whorls))
	for i, w := range p.Whorls {
		whorls[i] = w.String()
	}

	part := p.Ovary.marker() + p.Part.String() + strings.Join(whorls, "+")

	switch {
	case p.Connate && p.ConnationVaries:
		return "(" + part + "]"
	case p.Connate:
		return "(" + part + ")"
	default:
		return part
	}
}

// Adnation describes fusion between different floral parts.
type Adnation struct {
	// Varies marks adnation that varies within the plant group,
	// drawn with a dashed character set.
	Varies bool
	// Parts lists the adnate parts in whorl order.
	Parts []Part
}

// Contains reports whether the part takes place in the adnation.
func (a Adnation) Contains(p Part) bool {
	for _, el := range a.Parts {
		if el == p {
			return true
		}
	}
	return false
}

// Present reports whether any adnation exists.
func (a Adnation) Present() bool {
	return len(a.Parts) > 0
}

// Formula is the complete floral formula of one plant group.
type Formula struct {
	// Symmetry lists alternative symmetries, joined with " or ".
	Symmetry []Symmetry
	// Tepals is set for an undifferentiated perianth; Sepals and
	// Petals for a differentiated one. The two are mutually exclusive.
	Tepals *FloralPart
	Sepals *FloralPart
	Petals *FloralPart
	// Stamens is the androecium, Carpels the gynoecium.
	Stamens *FloralPart
	Carpels *FloralPart
	// Fruits lists the fruit types, joined with "," after ";".
	Fruits []Fruit
	// Adnation records fusion between the parts above.
	Adnation Adnation
}

// Validate checks the perianth invariant: an undifferentiated perianth
// (tepals) cannot coexist with sepals or petals, and at least one
// perianth representation must be present.
func (f *Formula) Validate() error {
	hasTepals := f.Tepals != nil
	hasSepPet := f.Sepals != nil || f.Petals != nil
	if hasTepals && hasSepPet {
		return errors.New("tepals cannot coexist with sepals or petals")
	}
	if !hasTepals && !hasSepPet {
		return errors.New("no perianth: need tepals, or sepals and petals")
	}
	return nil
}

// Character sets for the adnation line under the formula. The dashed
// set marks adnation that varies within the group.
var (
	adnationConstant = [4]rune{'╰', '╯', '─', '┴'}
	adnationVariable = [4]rune{'└', '┘', '┄', '┴'}
)

// adnationLine draws the bracket that ties adnate parts together,
// given the rune offsets of the marked part letters in the formula.
func adnationLine(marks []int, varies bool) string {
	if len(marks) < 2 {
		return ""
	}

	charset := adnationConstant
	if varies {
		charset = adnationVariable
	}

	var b strings.Builder
	for range marks[0] {
		b.WriteByte(' ')
	}
	b.WriteRune(charset[0])

	for i := 1; i < len(marks); i++ {
		for range marks[i] - marks[i-1] - 1 {
			b.WriteRune(charset[2])
		}
		if i == len(marks)-1 {
			b.WriteRune(charset[1])
		} else {
			b.WriteRune(charset[3])
		}
	}
	return b.String()
}

// String renders the compact formula: symmetry, perianth, androecium,
// gynoecium joined with commas, fruits after a semicolon, and the
// adnation line below when adnation is present.
func (f *Formula) String() string {
	syms := make([]string, len(f.Symmetry))
	for i, s := range f.Symmetry {
		syms[i] = s.String()
	}
	sym := strings.Join(syms, " or ")

	var b strings.Builder
	b.WriteString(sym)

	// Rune offset of the next part letter; the adnation bracket legs
	// land on these offsets. Starts past the symmetry and the first
	// comma. A connate part shifts its letter one rune right for the
	// opening parenthesis.
	idx := utf8.RuneCountInString(sym) + 1
	var marks []int

	for _, p := range f.parts() {
		if p == nil {
			continue
		}
		if f.Adnation.Contains(p.Part) {
			mark := idx
			if p.Connate {
				mark++
			}
			marks = append(marks, mark)
		}
		s := "," + p.String()
		idx += utf8.RuneCountInString(s)
		b.WriteString(s)
	}

	fruits := make([]string, len(f.Fruits))
	for i, fr := range f.Fruits {
		fruits[i] = fr.String()
	}
	b.WriteString(";")
	b.WriteString(strings.Join(fruits, ","))

	if line := adnationLine(marks, f.Adnation.Varies); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
	}
	return b.String()
}

// parts returns the floral parts in whorl order; absent parts are nil.
func (f *Formula) parts() []*FloralPart {
	return []*FloralPart{f.Tepals, f.Sepals, f.Petals, f.Stamens, f.Carpels}
}
