// Package floral provides the typed parts of a floral formula and their
// rendering into the compact symbolic notation.
//
// The notation follows two books:
//
//   - Floral Diagrams (Ronse De Craene, 2010)
//   - Plant Systematics, A Phylogenetic Approach (Judd et al., 4th Ed 2016)
//
// All types are immutable after construction. Rendering is total: a value
// the parser accepted always renders without error.
package floral

import (
	"fmt"
	"strconv"
)

// ManyThreshold is the organ count above which a whorl is treated as
// having indefinitely many parts and rendered as the infinity symbol.
const ManyThreshold = 30

// FlowerType describes the sex of a flower.
type FlowerType int

const (
	// Bisexual flowers carry both male and female parts.
	Bisexual FlowerType = iota
	// Carpellate flowers carry female parts only.
	Carpellate
	// Staminate flowers carry male parts only.
	Staminate
)

// ParseFlowerType converts a dataset token to a FlowerType.
func ParseFlowerType(s string) (FlowerType, error) {
	switch s {
	case "b":
		return Bisexual, nil
	case "c":
		return Carpellate, nil
	case "s":
		return Staminate, nil
	default:
		return Bisexual, fmt.Errorf("unknown flower type %q", s)
	}
}

func (ft FlowerType) String() string {
	switch ft {
	case Carpellate:
		return "Carpellate"
	case Staminate:
		return "Staminate"
	default:
		return "Bisexual"
	}
}

// Symmetry describes the symmetry of a flower. Bilateral symmetry comes
// in eight directional variants, each with its own arrow glyph.
type Symmetry int

const (
	Radial Symmetry = iota
	BilateralUp
	BilateralDown
	BilateralLeft
	BilateralRight
	BilateralUpLeft
	BilateralUpRight
	BilateralDownLeft
	BilateralDownRight
	Asymmetric
	Spiral
	Disymmetric
)

// ParseSymmetry converts a dataset token to a Symmetry.
func ParseSymmetry(s string) (Symmetry, error) {
	switch s {
	case "r":
		return Radial, nil
	case "up":
		return BilateralUp, nil
	case "down":
		return BilateralDown, nil
	case "left":
		return BilateralLeft, nil
	case "right":
		return BilateralRight, nil
	case "upleft":
		return BilateralUpLeft, nil
	case "upright":
		return BilateralUpRight, nil
	case "downleft":
		return BilateralDownLeft, nil
	case "downright":
		return BilateralDownRight, nil
	case "a":
		return Asymmetric, nil
	case "s":
		return Spiral, nil
	case "d":
		return Disymmetric, nil
	default:
		return Radial, fmt.Errorf("unknown symmetry %q", s)
	}
}

// IsBilateral reports whether the symmetry is one of the eight
// directional bilateral variants.
func (s Symmetry) IsBilateral() bool {
	return s >= BilateralUp && s <= BilateralDownRight
}

// arrow returns the directional glyph of a bilateral symmetry.
func (s Symmetry) arrow() string {
	switch s {
	case BilateralUp:
		return "↑"
	case BilateralDown:
		return "↓"
	case BilateralLeft:
		return "←"
	case BilateralRight:
		return "→"
	case BilateralUpLeft:
		return "↖"
	case BilateralUpRight:
		return "↗"
	case BilateralDownLeft:
		return "↙"
	case BilateralDownRight:
		return "↘"
	default:
		return ""
	}
}

func (s Symmetry) String() string {
	if s.IsBilateral() {
		return "X(" + s.arrow() + ")"
	}
	switch s {
	case Asymmetric:
		return "↯"
	case Spiral:
		return "↻"
	case Disymmetric:
		return "↔"
	default:
		return "*"
	}
}

// Count is the number of organs in a whorl: either a finite count or
// indefinitely "many", rendered as the infinity symbol.
type Count struct {
	// Many marks a whorl with indefinitely many parts.
	Many bool
	// N is the finite count; ignored when Many is set.
	N int
}

// ParseCount converts a dataset token to a Count. An empty token or "-"
// parses as zero, "inf" as many, and any finite count above
// ManyThreshold collapses to many.
func ParseCount(s string) (Count, error) {
	if s == "" || s == "-" {
		return Count{}, nil
	}
	if s == "inf" {
		return Count{Many: true}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return Count{}, fmt.Errorf("bad organ count %q", s)
	}
	if n > ManyThreshold {
		return Count{Many: true}, nil
	}
	return Count{N: n}, nil
}

func (c Count) String() string {
	if c.Many {
		return "∞"
	}
	return strconv.Itoa(c.N)
}

// Part names a floral organ whorl.
type Part int

const (
	Tepals Part = iota
	Calyx
	Petals
	Stamens
	Carpels
)

// ParsePart converts a formula letter to a Part.
func ParsePart(s string) (Part, error) {
	switch s {
	case "T":
		return Tepals, nil
	case "K":
		return Calyx, nil
	case "C":
		return Petals, nil
	case "A":
		return Stamens, nil
	case "G":
		return Carpels, nil
	default:
		return Tepals, fmt.Errorf("unknown floral part %q", s)
	}
}

// String returns the formula letter of the part.
func (p Part) String() string {
	switch p {
	case Calyx:
		return "K"
	case Petals:
		return "C"
	case Stamens:
		return "A"
	case Carpels:
		return "G"
	default:
		return "T"
	}
}

// Name returns the plain-language name of the part.
func (p Part) Name() string {
	switch p {
	case Calyx:
		return "calyx"
	case Petals:
		return "petals"
	case Stamens:
		return "stamens"
	case Carpels:
		return "carpels"
	default:
		return "tepals"
	}
}

// Ovary is the position of the ovary relative to other floral parts.
type Ovary int

const (
	// OvaryNone marks parts where ovary position does not apply.
	OvaryNone Ovary = iota
	OvarySuperior
	OvaryInferior
	// OvaryBoth covers groups where both positions occur.
	OvaryBoth
)

// ParseOvary converts a dataset token to an ovary position. Several
// positions separated by ";" collapse to OvaryBoth.
func ParseOvary(s string) (Ovary, error) {
	switch s {
	case "", "-":
		return OvaryNone, nil
	case "s":
		return OvarySuperior, nil
	case "i":
		return OvaryInferior, nil
	case "s;i", "i;s":
		return OvaryBoth, nil
	default:
		return OvaryNone, fmt.Errorf("unknown ovary position %q", s)
	}
}

// marker returns the combining glyphs placed before the carpel letter:
// a combining low line for superior, a combining overline for inferior.
func (o Ovary) marker() string {
	switch o {
	case OvarySuperior:
		return "\u0332"
	case OvaryInferior:
		return "\u0305"
	case OvaryBoth:
		return "\u0305\u0332"
	default:
		return ""
	}
}

// Sterility is the sterility status of a whorl. Sterile whorls (e.g.
// staminodes) are marked with a bullet in the formula.
type Sterility int

const (
	Fertile Sterility = iota
	Sterile
)

func (s Sterility) String() string {
	if s == Sterile {
		return "•"
	}
	return ""
}

// Fruit is the fruit type of a plant group. A growing list.
type Fruit int

const (
	FruitNone Fruit = iota
	Achene
	Berry
	Berrylets
	Capsule
	Caryopsis
	DehiscentDrupe
	Drupe
	Drupelets
	Follicle
	IndehiscentPod
	Legume
	Loment
	Nut
	NutAggregate
	Pome
	Samara
	Schizocarp
	Silique
	Utricle
)

// ParseFruit converts a dataset token to a Fruit. Both singular and
// plural spellings are accepted where the dataset uses them.
func ParseFruit(s string) (Fruit, error) {
	switch s {
	case "", "-":
		return FruitNone, nil
	case "achene":
		return Achene, nil
	case "berry", "berries":
		return Berry, nil
	case "berrylets":
		return Berrylets, nil
	case "capsule", "fleshy capsule":
		return Capsule, nil
	case "caryopsis":
		return Caryopsis, nil
	case "dehiscent drupe":
		return DehiscentDrupe, nil
	case "drupe", "drupes":
		return Drupe, nil
	case "drupelets":
		return Drupelets, nil
	case "follicle", "follicles":
		return Follicle, nil
	case "indehiscent pod":
		return IndehiscentPod, nil
	case "legume":
		return Legume, nil
	case "loment":
		return Loment, nil
	case "nut":
		return Nut, nil
	case "aggregate of nuts":
		return NutAggregate, nil
	case "pome":
		return Pome, nil
	case "samara", "samaras":
		return Samara, nil
	case "schizocarp":
		return Schizocarp, nil
	case "silique":
		return Silique, nil
	case "utricle":
		return Utricle, nil
	default:
		return FruitNone, fmt.Errorf("unknown fruit %q", s)
	}
}

func (f Fruit) String() string {
	switch f {
	case Achene:
		return "achene"
	case Berry:
		return "berry"
	case Berrylets:
		return "berrylets"
	case Capsule:
		return "capsule"
	case Caryopsis:
		return "caryopsis"
	case DehiscentDrupe:
		return "dehiscent drupe"
	case Drupe:
		return "drupe"
	case Drupelets:
		return "drupelets"
	case Follicle:
		return "follicle"
	case IndehiscentPod:
		return "indehiscent pod"
	case Legume:
		return "legume"
	case Loment:
		return "loment"
	case Nut:
		return "nut"
	case NutAggregate:
		return "aggregate of nuts"
	case Pome:
		return "pome"
	case Samara:
		return "samara"
	case Schizocarp:
		return "schizocarp"
	case Silique:
		return "silique"
	case Utricle:
		return "utricle"
	default:
		return "no fruit"
	}
}
