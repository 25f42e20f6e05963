package fixture

import "github.com/rrueger/tateideal/algebra"

// monoid is the term monoid for a fixed number of variables.
type monoid struct {
	nvars int
}

var _ algebra.Monoid = monoid{}

// NewMonoid returns the term monoid over nvars variables.
func NewMonoid(nvars int) algebra.Monoid {
	return monoid{nvars: nvars}
}

func (m monoid) One() algebra.Term {
	return term{exp: make([]int, m.nvars), val: 0}
}

func (m monoid) NewTerm(exponent []int, valuation int) algebra.Term {
	return newTerm(exponent, valuation)
}
