package floral

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// DefaultWrapWidth is the column at which explanations wrap.
const DefaultWrapWidth = 70

// Explain returns a prose description of the flower sex.
func (ft FlowerType) Explain() string {
	switch ft {
	case Carpellate:
		return "A carpellate (female only) flower."
	case Staminate:
		return "A staminate (male only) flower."
	default:
		return "A bisexual flower with both male (androecium) " +
			"and female (gynoecium) parts."
	}
}

// Explain returns a prose description of the symmetry with its glyph.
func (s Symmetry) Explain() string {
	if s.IsBilateral() {
		var dir string
		switch s {
		case BilateralUp:
			dir = "upwards"
		case BilateralDown:
			dir = "downward"
		case BilateralLeft:
			dir = "left"
		case BilateralRight:
			dir = "right"
		case BilateralUpLeft:
			dir = "up and left"
		case BilateralUpRight:
			dir = "up and right"
		case BilateralDownLeft:
			dir = "down and left"
		case BilateralDownRight:
			dir = "down and right"
		}
		return fmt.Sprintf("%s bilateral (%s)", dir, s)
	}
	switch s {
	case Asymmetric:
		return fmt.Sprintf("asymmetrical (%s)", s)
	case Spiral:
		return fmt.Sprintf("spiral (%s)", s)
	case Disymmetric:
		return fmt.Sprintf("disymmetric (%s)", s)
	default:
		return fmt.Sprintf("radial (%s)", s)
	}
}

// Explain returns the count in words where the formula uses a glyph.
func (c Count) Explain() string {
	if c.Many {
		return "infinite"
	}
	return c.String()
}

// Explain returns a prose description of the ovary position.
func (o Ovary) Explain() string {
	switch o {
	case OvarySuperior:
		return "a superior ovary"
	case OvaryInferior:
		return "an inferior ovary"
	case OvaryBoth:
		return "both superior and inferior ovaries"
	default:
		return ""
	}
}

// Explain returns a prose description of the sterility status.
func (s Sterility) Explain() string {
	if s == Sterile {
		return "sterile part"
	}
	return "fertile part"
}

// Explain returns the fruit name with a short description of the type.
func (f Fruit) Explain() string {
	var desc string
	switch f {
	case Achene:
		desc = "small, dry, indehiscent, single seeded, thin walled"
	case Berry:
		desc = "fleshy, indehiscent, one to many seeded, sometimes " +
			"heterogeneous (i.e. inner fleshy, outer leathery)"
	case Berrylets:
		desc = "as a berry, but an aggregate " +
			"(i.e. developed from multiple carpels)"
	case Capsule:
		desc = "dry (rarely fleshy), dehiscent, two to many seeded"
	case Caryopsis:
		desc = "small, dry, indehiscent, with wall surrounding and " +
			"fused to seed (grass specific)"
	case DehiscentDrupe:
		desc = "fleshy, indehiscent, outer part soft to fibrous, " +
			"breaking apart to reveal nut-like pits"
	case Drupe:
		desc = "fleshy, indehiscent, with one or more hard pits"
	case Drupelets:
		desc = "as a drupe, but an aggregate " +
			"(i.e. developed from multiple carpels)"
	case Follicle:
		desc = "dry to fleshy, from single carpel, releasing along " +
			"a single longitudinal slit"
	case IndehiscentPod:
		desc = "dry, indehiscent, few to many seeds"
	case Legume:
		desc = "dry, from single carpel that opens along two " +
			"longitudinal slits (mainly legumes)"
	case Loment:
		desc = "dry, from single carpel that transversely breaks " +
			"into single seeded units"
	case Nut:
		desc = "dry, indehiscent, large, with thick and bony wall " +
			"around a single seed"
	case NutAggregate:
		desc = "as a nut, but an aggregate " +
			"(i.e. developed from multiple carpels)"
	case Pome:
		desc = "fleshy, indehiscent, with soft outer part, and " +
			"papery structure around seeds"
	case Samara:
		desc = "dry, indehiscent, winged, one to two seeds"
	case Schizocarp:
		desc = "dry to fleshy, from two to many carpels that " +
			"dehisces into mericarps (one to two seeded)"
	case Silique:
		desc = "dehiscent, derived from two carpels, with two " +
			"halves splitting from a partition"
	case Utricle:
		desc = "dry, indehiscent, small, with thin wall that is " +
			"loose and free from a single seed"
	default:
		desc = "no fruit to describe"
	}
	return fmt.Sprintf("%s - %s", f, desc)
}

// Explain returns a prose description of one whorl's count and
// sterility status.
func (w Whorl) Explain() string {
	sterile := w.Sterility.Explain()
	switch {
	case w.Number != nil:
		return fmt.Sprintf("%s and has %s parts", sterile, w.Number.Explain())
	case w.Min != nil && w.Max != nil:
		return fmt.Sprintf("%s and has between %s and %s parts",
			sterile, w.Min.Explain(), w.Max.Explain())
	default:
		return sterile + " and has an unknown number of parts"
	}
}

// Explain returns a prose description of the part: its symbol, its
// connation, every whorl, and the ovary position for carpels.
func (p *FloralPart) Explain() string {
	connation := "not connate"
	if p.Connate {
		connation = "connate"
	}
	variation := "with no variation in the connation"
	if p.ConnationVaries {
		variation = "with variation in the connation"
	}

	var whorls strings.Builder
	for i, w := range p.Whorls {
		fmt.Fprintf(&whorls, "\tWhorl %d: %s\n", i+1, w.Explain())
	}

	var ovary string
	if p.Part == Carpels && p.Ovary != OvaryNone {
		ovary = fmt.Sprintf("\tWhorl has %s", p.Ovary.Explain())
	}

	return fmt.Sprintf("%s = %s are %s %s\n%s%s\n",
		p, p.Part.Name(), connation, variation, whorls.String(), ovary)
}

// Explain returns a prose description of the adnation between parts.
func (a Adnation) Explain() string {
	if !a.Present() {
		return "There is no adnation between floral parts"
	}
	names := make([]string, len(a.Parts))
	for i, p := range a.Parts {
		names[i] = p.Name()
	}
	variable := "Not variable"
	if a.Varies {
		variable = "Variable"
	}
	return fmt.Sprintf("Adnation between %s floral parts. %s between species.",
		strings.Join(names, ", and "), variable)
}

// Explain expands the whole formula into prose, one section per symbol
// used in the compact rendering, wrapped at width columns. A width of
// zero wraps at DefaultWrapWidth.
func (f *Formula) Explain(width uint) string {
	if width == 0 {
		width = DefaultWrapWidth
	}

	syms := make([]string, len(f.Symmetry))
	for i, s := range f.Symmetry {
		syms[i] = s.Explain()
	}

	var parts strings.Builder
	for _, p := range f.parts() {
		if p != nil {
			parts.WriteString(p.Explain())
		}
	}

	fruits := make([]string, len(f.Fruits))
	for i, fr := range f.Fruits {
		fruits[i] = fr.Explain()
	}

	out := fmt.Sprintf(`%s

Explanation of floral formula above:

The symmetry is %s

%s
Fruit(s):
	%s

%s`,
		f,
		strings.Join(syms, " or "),
		parts.String(),
		strings.Join(fruits, "\n\t"),
		f.Adnation.Explain(),
	)

	return wordwrap.WrapString(out, width)
}

// Explain expands the record into prose: the sex of the flower
// followed by the formula expansion.
func (r Record) Explain(width uint) string {
	return r.Sex.Explain() + "\n\n" + r.Formula.Explain(width)
}
