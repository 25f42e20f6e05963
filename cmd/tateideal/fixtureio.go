package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rrueger/tateideal/algebra"
	"github.com/rrueger/tateideal/ideal"
	"github.com/rrueger/tateideal/internal/fixture"
)

// jsonTerm is the on-disk shape of one (exponent, coefficient) term,
// mirroring fixture.RawTerm.
type jsonTerm struct {
	Exponent []int `json:"exponent"`
	Coeff    int64 `json:"coeff"`
}

// idealFixture is the on-disk shape of an ideal: a base ring
// (prime, field-or-integer), a term monoid over nvars variables, a
// precision, and a list of generators. The CLI understands only this
// trivial fixture algebra; it has no notion of a real Tate algebra.
type idealFixture struct {
	Prime      int64        `json:"prime"`
	Nvars      int          `json:"nvars"`
	Field      bool         `json:"field"`
	Precision  int          `json:"precision"`
	Generators [][]jsonTerm `json:"generators"`
}

// elementFixture is the on-disk shape of a single element, used by
// the contains subcommand's right-hand argument.
type elementFixture struct {
	Prime     int64      `json:"prime"`
	Precision int        `json:"precision"`
	Terms     []jsonTerm `json:"terms"`
}

func loadIdealFixture(path string) (*idealFixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var f idealFixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if f.Precision <= 0 {
		f.Precision = ideal.DefaultPrecision
	}

	return &f, nil
}

func loadElementFixture(path string) (*elementFixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var f elementFixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &f, nil
}

func toRawTerms(ts []jsonTerm) []fixture.RawTerm {
	raw := make([]fixture.RawTerm, len(ts))
	for i, t := range ts {
		raw[i] = fixture.RawTerm{Exponent: t.Exponent, Coeff: t.Coeff}
	}

	return raw
}

// buildIdeal constructs the fixture ring, monoid, and generator
// elements described by f, and returns them alongside a freshly
// constructed *ideal.Ideal.
func buildIdeal(f *idealFixture) (algebra.Ring, algebra.Monoid, *ideal.Ideal) {
	ring := fixtureRing(f.Prime, f.Field)
	monoid := fixture.NewMonoid(f.Nvars)

	gens := make([]algebra.Element, len(f.Generators))
	for i, terms := range f.Generators {
		gens[i] = fixture.NewElement(f.Prime, f.Precision, toRawTerms(terms))
	}

	return ring, monoid, ideal.New(ring, monoid, gens)
}

func fixtureRing(prime int64, field bool) algebra.Ring {
	if field {
		return fixture.NewFieldRing(prime)
	}

	return fixture.NewIntegerRing(prime)
}

func buildElement(f *elementFixture) algebra.Element {
	return fixture.NewElement(f.Prime, f.Precision, toRawTerms(f.Terms))
}

// formatElement renders an element's terms for human-readable CLI
// output: "x^exponent[val=v] + ...", leading term first, with the
// leading coefficient shown separately since algebra.Term does not
// expose a per-term coefficient (only Element.LeadingCoefficient
// does, per the capability boundary in algebra/types.go).
func formatElement(e algebra.Element) string {
	if e.IsZero() {
		return "0"
	}

	s := fmt.Sprintf("lc=%v * ", e.LeadingCoefficient())
	for i, t := range e.Terms() {
		if i > 0 {
			s += " + "
		}
		s += fmt.Sprintf("x^%v[val=%d]", t.Exponent(), t.LeadValuation())
	}

	return s
}
