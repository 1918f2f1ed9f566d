package shader

import "strconv"

// Variant selects the shading algorithm of an entity. The set is closed:
// anything outside [Solar, Flat] is rejected by Lookup.
type Variant uint8

const (
	// Solar is the emissive, flaring star surface.
	Solar Variant = iota
	// Rocky is a static cratered surface under Lambert lighting.
	Rocky
	// BandedGas is a banded giant with animated turbulence.
	BandedGas
	// Ring is a radially banded planetary ring.
	Ring
	// Flat returns the material color unchanged.
	Flat

	variantCount
)

var variantNames = [variantCount]string{
	Solar:     "solar",
	Rocky:     "rocky",
	BandedGas: "banded-gas",
	Ring:      "ring",
	Flat:      "flat",
}

// Variants returns every valid variant in declaration order.
func Variants() []Variant {
	vs := make([]Variant, variantCount)
	for i := range vs {
		vs[i] = Variant(i)
	}
	return vs
}

// Valid reports whether v is a member of the closed variant set.
func (v Variant) Valid() bool {
	return v < variantCount
}

func (v Variant) String() string {
	if !v.Valid() {
		return "Variant(" + strconv.Itoa(int(v)) + ")"
	}
	return variantNames[v]
}

// ParseVariant returns the variant named s.
func ParseVariant(s string) (Variant, error) {
	for i, name := range variantNames {
		if name == s {
			return Variant(i), nil
		}
	}
	return 0, &VariantError{Name: s}
}
