package fixture

import "github.com/rrueger/tateideal/algebra"

// term is a monomial x^exp tagged with a coefficient valuation val,
// ordered (val, exp) gradedly: smaller valuation sorts first; among
// equal valuations, larger total degree then lexicographically larger
// exponent sorts first (so that, among terms of equal valuation, the
// "leading" one under Term.Less's complement is the one a classical
// graded-lex Gröbner basis would pick).
type term struct {
	exp []int
	val int
}

var _ algebra.Term = term{}

func newTerm(exp []int, val int) term {
	cp := make([]int, len(exp))
	copy(cp, exp)

	return term{exp: cp, val: val}
}

func (t term) Exponent() []int    { return t.exp }
func (t term) LeadValuation() int { return t.val }

func degree(e []int) int {
	d := 0
	for _, x := range e {
		d += x
	}

	return d
}

// Less reports whether t sorts strictly before other. Terms of higher
// valuation are smaller, so the term of lowest valuation is the
// largest; valuation ties break by degree then lexicographic exponent,
// both ascending, so that the
// "leading" term (the Element.LeadingTerm, defined as the maximum
// under this order) is the highest-degree, lexicographically largest
// term among those of minimal valuation.
func (t term) Less(other algebra.Term) bool {
	o := other.(term)
	if t.val != o.val {
		return t.val > o.val
	}
	dt, do := degree(t.exp), degree(o.exp)
	if dt != do {
		return dt < do
	}
	for i := 0; i < len(t.exp) && i < len(o.exp); i++ {
		if t.exp[i] != o.exp[i] {
			return t.exp[i] < o.exp[i]
		}
	}

	return false
}

func (t term) Lcm(other algebra.Term) algebra.Term {
	o := other.(term)
	e := make([]int, len(t.exp))
	for i := range e {
		e[i] = max(t.exp[i], o.exp[i])
	}
	v := t.val
	if o.val < v {
		v = o.val
	}

	return term{exp: e, val: v}
}

func (t term) Quo(other algebra.Term) algebra.Term {
	o := other.(term)
	e := make([]int, len(t.exp))
	for i := range e {
		e[i] = t.exp[i] - o.exp[i]
	}

	return term{exp: e, val: t.val - o.val}
}

func (t term) Divides(other algebra.Term, mode algebra.Mode) bool {
	o := other.(term)
	if mode == algebra.ModeIntegral && t.val > o.val {
		return false
	}
	for i := range t.exp {
		if t.exp[i] > o.exp[i] {
			return false
		}
	}

	return true
}

func (t term) IsCoprimeWith(other algebra.Term) bool {
	o := other.(term)
	for i := range t.exp {
		if t.exp[i] > 0 && o.exp[i] > 0 {
			return false
		}
	}

	return true
}
