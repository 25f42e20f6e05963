package fixture_test

import (
	"testing"

	"github.com/rrueger/tateideal/algebra"
	"github.com/rrueger/tateideal/internal/fixture"
)

func TestQuoRemExactDivision(t *testing.T) {
	// f = x^2, d = x -> quotient x, remainder 0.
	f := fixture.NewElement(3, 10, []fixture.RawTerm{{Exponent: []int{2}, Coeff: 1}})
	d := fixture.NewElement(3, 10, []fixture.RawTerm{{Exponent: []int{1}, Coeff: 1}})

	quots, rem := f.QuoRem([]algebra.Element{d}, algebra.QuoRemOptions{Mode: algebra.ModeField, ReduceTail: false})
	if !rem.IsZero() {
		t.Fatalf("expected zero remainder, got non-zero")
	}
	if quots[0].IsZero() {
		t.Fatalf("expected non-zero quotient")
	}
}

func TestQuoRemNoDivisorLeavesRemainder(t *testing.T) {
	f := fixture.NewElement(3, 10, []fixture.RawTerm{{Exponent: []int{0, 1}, Coeff: 1}})
	d := fixture.NewElement(3, 10, []fixture.RawTerm{{Exponent: []int{1, 0}, Coeff: 1}})

	_, rem := f.QuoRem([]algebra.Element{d}, algebra.QuoRemOptions{Mode: algebra.ModeField, ReduceTail: false})
	if rem.IsZero() {
		t.Fatalf("expected non-zero remainder since x does not divide y")
	}
}

func TestSPolynomialCancelsLeadingTerm(t *testing.T) {
	f := fixture.NewElement(3, 10, []fixture.RawTerm{{Exponent: []int{2, 0}, Coeff: 1}, {Exponent: []int{0, 1}, Coeff: 1}})
	g := fixture.NewElement(3, 10, []fixture.RawTerm{{Exponent: []int{0, 2}, Coeff: 1}, {Exponent: []int{1, 0}, Coeff: 1}})

	s := f.SPolynomial(g)
	if s.IsZero() {
		t.Fatalf("expected non-zero S-polynomial")
	}
	// Neither original leading monomial should remain as the new
	// leading term of a proper S-polynomial in this fixture (they were
	// cancelled to build the lcm term).
	lt := s.LeadingTerm().Exponent()
	if expEq(lt, []int{2, 0}) || expEq(lt, []int{0, 2}) {
		t.Fatalf("leading term of S-polynomial should not equal an input leading term, got %v", lt)
	}
}

func TestMonicScalesLeadingCoefficientToOne(t *testing.T) {
	f := fixture.NewElement(5, 10, []fixture.RawTerm{{Exponent: []int{1}, Coeff: 3}})
	m := f.Monic()
	one := fixture.NewElement(5, 10, []fixture.RawTerm{{Exponent: []int{1}, Coeff: 1}})
	if !m.Equal(one) {
		t.Fatalf("Monic() = %v terms, want leading coefficient 1", m.Terms())
	}
}

func TestPositivePiShiftRaisesValuationAndPrecision(t *testing.T) {
	f := fixture.NewElement(3, 5, []fixture.RawTerm{{Exponent: []int{0}, Coeff: 1}})
	shifted := f.PositivePiShift(2)
	if shifted.Valuation() != 2 {
		t.Fatalf("Valuation() = %d, want 2", shifted.Valuation())
	}
	if shifted.PrecisionAbsolute() != 7 {
		t.Fatalf("PrecisionAbsolute() = %d, want 7", shifted.PrecisionAbsolute())
	}
}

func expEq(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
