package floral

import (
	"fmt"
	"strings"
)

// ParseFormula builds a Formula from the dataset cells of one row.
// Each part cell holds ";"-separated elements: whorl counts ("5",
// "4-5", "inf", with an "s" suffix for sterile whorls), "f" for
// connation and "v" for connation variation. "-" or an empty cell
// means the part is absent. The adnation cell lists adnate part
// letters, plus "v" when the adnation varies.
func ParseFormula(
	symmetry, tepals, calyx, petals,
	stamens, carpels, ovary, fruit, adnation string,
) (*Formula, error) {
	f := &Formula{}

	for _, el := range strings.Split(symmetry, ";") {
		sym, err := ParseSymmetry(el)
		if err != nil {
			return nil, err
		}
		f.Symmetry = append(f.Symmetry, sym)
	}

	ov, err := ParseOvary(ovary)
	if err != nil {
		return nil, err
	}

	if f.Tepals, err = parsePart(tepals, Tepals, OvaryNone); err != nil {
		return nil, err
	}
	if f.Sepals, err = parsePart(calyx, Calyx, OvaryNone); err != nil {
		return nil, err
	}
	if f.Petals, err = parsePart(petals, Petals, OvaryNone); err != nil {
		return nil, err
	}
	if f.Stamens, err = parsePart(stamens, Stamens, OvaryNone); err != nil {
		return nil, err
	}
	if f.Carpels, err = parsePart(carpels, Carpels, ov); err != nil {
		return nil, err
	}

	for _, el := range strings.Split(fruit, ";") {
		fr, err := ParseFruit(el)
		if err != nil {
			return nil, err
		}
		f.Fruits = append(f.Fruits, fr)
	}

	if f.Adnation, err = parseAdnation(adnation); err != nil {
		return nil, err
	}

	if err = f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func parseAdnation(s string) (Adnation, error) {
	var a Adnation
	if s == "" || s == "-" {
		return a, nil
	}
	for _, el := range strings.Split(s, ";") {
		if el == "v" {
			a.Varies = true
			continue
		}
		part, err := ParsePart(el)
		if err != nil {
			return a, err
		}
		a.Parts = append(a.Parts, part)
	}
	return a, nil
}

// parsePart parses one part cell, e.g. "2-4;f;v" or "2;5s;f".
func parsePart(s string, part Part, ovary Ovary) (*FloralPart, error) {
	if s == "" || s == "-" {
		return nil, nil
	}

	p := &FloralPart{Part: part, Ovary: ovary}

	for _, el := range strings.Split(s, ";") {
		switch {
		case el == "f":
			p.Connate = true
		case el == "v":
			p.ConnationVaries = true
		case strings.Contains(el, "-"):
			lo, hi, ok := strings.Cut(el, "-")
			if !ok {
				return nil, fmt.Errorf("bad whorl range %q", el)
			}
			sterility := Fertile
			if strings.Contains(lo, "s") || strings.Contains(hi, "s") {
				sterility = Sterile
				lo = strings.ReplaceAll(lo, "s", "")
				hi = strings.ReplaceAll(hi, "s", "")
			}
			minN, err := ParseCount(lo)
			if err != nil {
				return nil, err
			}
			maxN, err := ParseCount(hi)
			if err != nil {
				return nil, err
			}
			p.Whorls = append(p.Whorls, Whorl{
				Min: &minN, Max: &maxN, Sterility: sterility,
			})
		default:
			sterility := Fertile
			if strings.Contains(el, "s") {
				sterility = Sterile
				el = strings.ReplaceAll(el, "s", "")
			}
			n, err := ParseCount(el)
			if err != nil {
				return nil, err
			}
			p.Whorls = append(p.Whorls, Whorl{
				Number: &n, Sterility: sterility,
			})
		}
	}
	return p, nil
}
