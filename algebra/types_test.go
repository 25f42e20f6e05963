package algebra_test

import (
	"reflect"
	"testing"

	"github.com/rrueger/tateideal/algebra"
)

// fakeTerm is the minimal Term fake needed to exercise algebra.MulTerms
// without pulling in a real Tate-algebra implementation.
type fakeTerm struct {
	exponent  []int
	valuation int
}

func (t fakeTerm) Exponent() []int         { return t.exponent }
func (t fakeTerm) LeadValuation() int      { return t.valuation }
func (t fakeTerm) Less(other algebra.Term) bool {
	o := other.(fakeTerm)
	if t.valuation != o.valuation {
		return t.valuation < o.valuation
	}
	for i := range t.exponent {
		if t.exponent[i] != o.exponent[i] {
			return t.exponent[i] < o.exponent[i]
		}
	}

	return false
}
func (t fakeTerm) Lcm(algebra.Term) algebra.Term                 { panic("unused") }
func (t fakeTerm) Quo(algebra.Term) algebra.Term                 { panic("unused") }
func (t fakeTerm) Divides(algebra.Term, algebra.Mode) bool       { panic("unused") }
func (t fakeTerm) IsCoprimeWith(algebra.Term) bool               { panic("unused") }

type fakeMonoid struct{}

func (fakeMonoid) One() algebra.Term { return fakeTerm{exponent: []int{0, 0}, valuation: 0} }
func (fakeMonoid) NewTerm(exponent []int, valuation int) algebra.Term {
	return fakeTerm{exponent: exponent, valuation: valuation}
}

func TestMulTerms(t *testing.T) {
	a := fakeTerm{exponent: []int{1, 2}, valuation: 3}
	b := fakeTerm{exponent: []int{4, 0}, valuation: 1}

	got := algebra.MulTerms(fakeMonoid{}, a, b).(fakeTerm)

	want := fakeTerm{exponent: []int{5, 2}, valuation: 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MulTerms() = %+v, want %+v", got, want)
	}
}

func TestModeString(t *testing.T) {
	if algebra.ModeField.String() != "field" {
		t.Fatalf("ModeField.String() = %q, want %q", algebra.ModeField.String(), "field")
	}
	if algebra.ModeIntegral.String() != "integral" {
		t.Fatalf("ModeIntegral.String() = %q, want %q", algebra.ModeIntegral.String(), "integral")
	}
}
