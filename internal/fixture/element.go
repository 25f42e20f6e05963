package fixture

import (
	"math/big"
	"sort"

	"github.com/rrueger/tateideal/algebra"
)

// termCoeff pairs a monomial with its rational coefficient.
type termCoeff struct {
	t term
	c *big.Rat
}

// rawTerm is an unnormalised (exponent, coefficient) pair used while
// building or combining elements; several rawTerms may share an
// exponent and must be summed before a termCoeff is produced.
type rawTerm struct {
	exp []int
	c   *big.Rat
}

// element is a finite sum of termCoeff, leading term first, truncated
// to an absolute precision.
type element struct {
	p     int64
	terms []termCoeff
	prec  int
}

var _ algebra.Element = (*element)(nil)

func expEqual(a, b []int) bool {
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

// combineAndBuild sums coefficients sharing an exponent, drops zero
// and out-of-precision terms, and sorts leading-first.
func combineAndBuild(p int64, prec int, raw []rawTerm) *element {
	var terms []termCoeff
outer:
	for _, r := range raw {
		for i := range terms {
			if expEqual(terms[i].t.exp, r.exp) {
				terms[i].c.Add(terms[i].c, r.c)
				continue outer
			}
		}
		terms = append(terms, termCoeff{t: newTerm(r.exp, 0), c: new(big.Rat).Set(r.c)})
	}

	out := terms[:0]
	for _, tc := range terms {
		if tc.c.Sign() == 0 {
			continue
		}
		v := valuationOf(tc.c, p)
		if v >= prec {
			continue
		}
		tc.t.val = v
		out = append(out, tc)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[j].t.Less(out[i].t) })

	return &element{p: p, terms: out, prec: prec}
}

// RawTerm is a constructor-friendly (exponent, integer coefficient)
// pair for building fixture elements in tests and the CLI.
type RawTerm struct {
	Exponent []int
	Coeff    int64
}

// NewElement builds a fixture element over prime p, truncated to
// absolute precision prec, from a list of (exponent, integer
// coefficient) terms.
func NewElement(p int64, prec int, terms []RawTerm) algebra.Element {
	raw := make([]rawTerm, len(terms))
	for i, t := range terms {
		raw[i] = rawTerm{exp: t.Exponent, c: big.NewRat(t.Coeff, 1)}
	}

	return combineAndBuild(p, prec, raw)
}

// Zero returns the zero element over prime p at absolute precision
// prec.
func Zero(p int64, prec int) algebra.Element {
	return combineAndBuild(p, prec, nil)
}

func (e *element) rawTerms() []rawTerm {
	raw := make([]rawTerm, len(e.terms))
	for i, tc := range e.terms {
		raw[i] = rawTerm{exp: tc.t.exp, c: tc.c}
	}

	return raw
}

func (e *element) Terms() []algebra.Term {
	ts := make([]algebra.Term, len(e.terms))
	for i, tc := range e.terms {
		ts[i] = tc.t
	}

	return ts
}

func (e *element) LeadingTerm() algebra.Term {
	if len(e.terms) == 0 {
		panic("fixture: LeadingTerm of zero element")
	}

	return e.terms[0].t
}

func (e *element) LeadingCoefficient() algebra.Coefficient {
	if len(e.terms) == 0 {
		panic("fixture: LeadingCoefficient of zero element")
	}

	return e.terms[0].c
}

// Valuation is the leading term's valuation: the term order's primary
// key is ascending valuation, so the leading (maximal) term always
// realises the overall minimum.
func (e *element) Valuation() int {
	if len(e.terms) == 0 {
		return e.prec
	}

	return e.terms[0].t.val
}

func (e *element) PrecisionAbsolute() int { return e.prec }

func (e *element) AddBigOh(n int) algebra.Element {
	newPrec := n
	if e.prec < newPrec {
		newPrec = e.prec
	}

	return combineAndBuild(e.p, newPrec, e.rawTerms())
}

func (e *element) IsZero() bool { return len(e.terms) == 0 }

func (e *element) Equal(other algebra.Element) bool {
	o := other.(*element)
	if e.prec != o.prec || len(e.terms) != len(o.terms) {
		return false
	}
	for i := range e.terms {
		if !expEqual(e.terms[i].t.exp, o.terms[i].t.exp) {
			return false
		}
		if e.terms[i].t.val != o.terms[i].t.val {
			return false
		}
		if e.terms[i].c.Cmp(o.terms[i].c) != 0 {
			return false
		}
	}

	return true
}

func (e *element) Monic() algebra.Element {
	if e.IsZero() {
		return e
	}

	return e.MulScalar(new(big.Rat).Inv(e.terms[0].c))
}

func (e *element) PositivePiShift(k int) algebra.Element {
	if k < 0 {
		panic("fixture: PositivePiShift requires k >= 0")
	}
	pk := new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(e.p), big.NewInt(int64(k)), nil))
	raw := make([]rawTerm, len(e.terms))
	for i, tc := range e.terms {
		raw[i] = rawTerm{exp: tc.t.exp, c: new(big.Rat).Mul(tc.c, pk)}
	}

	return combineAndBuild(e.p, e.prec+k, raw)
}

func subElems(a, b *element) *element {
	prec := a.prec
	if b.prec < prec {
		prec = b.prec
	}
	raw := a.rawTerms()
	for _, tc := range b.terms {
		raw = append(raw, rawTerm{exp: tc.t.exp, c: new(big.Rat).Neg(tc.c)})
	}

	return combineAndBuild(a.p, prec, raw)
}

// SPolynomial returns (l/lt(e))*e/lc(e) - (l/lt(other))*other/lc(other),
// where l is the lcm of the two leading terms. Both scaled summands
// are monic at l, so their difference cancels the leading term exactly
// regardless of the original leading coefficients.
func (e *element) SPolynomial(other algebra.Element) algebra.Element {
	o := other.(*element)
	if e.IsZero() || o.IsZero() {
		panic("fixture: SPolynomial of zero element")
	}
	l := e.terms[0].t.Lcm(o.terms[0].t).(term)
	t1 := l.Quo(e.terms[0].t).(term)
	t2 := l.Quo(o.terms[0].t).(term)

	e1 := e.MulTerm(t1).MulScalar(new(big.Rat).Inv(e.terms[0].c)).(*element)
	e2 := o.MulTerm(t2).MulScalar(new(big.Rat).Inv(o.terms[0].c)).(*element)

	return subElems(e1, e2)
}

// QuoRem implements term-by-term reduction directly: at each step, the
// largest term of the running remainder is divided by the first live
// divisor whose leading term divides it (under opts.Mode); if none
// divides and ReduceTail is set, the term is moved to the certified
// tail and reduction continues on the rest.
func (e *element) QuoRem(divisors []algebra.Element, opts algebra.QuoRemOptions) ([]algebra.Element, algebra.Element) {
	prec := e.prec
	quotRaw := make([][]rawTerm, len(divisors))
	remTerms := append([]termCoeff(nil), e.terms...)
	var tailRaw []rawTerm

	for len(remTerms) > 0 {
		lead := remTerms[0]
		di := -1
		for i, dv := range divisors {
			d := dv.(*element)
			if d.IsZero() {
				continue
			}
			if d.terms[0].t.Divides(lead.t, opts.Mode) {
				di = i
				break
			}
		}
		if di == -1 {
			if !opts.ReduceTail {
				break
			}
			tailRaw = append(tailRaw, rawTerm{exp: lead.t.exp, c: lead.c})
			remTerms = remTerms[1:]
			continue
		}

		d := divisors[di].(*element)
		dl := d.terms[0]
		q := lead.t.Quo(dl.t).(term)
		qc := new(big.Rat).Quo(lead.c, dl.c)
		quotRaw[di] = append(quotRaw[di], rawTerm{exp: q.exp, c: qc})

		cur := make([]rawTerm, 0, len(remTerms)+len(d.terms))
		for _, tc := range remTerms {
			cur = append(cur, rawTerm{exp: tc.t.exp, c: tc.c})
		}
		for _, tc := range d.terms {
			ne := make([]int, len(tc.t.exp))
			for k := range ne {
				ne[k] = tc.t.exp[k] + q.exp[k]
			}
			nc := new(big.Rat).Mul(tc.c, qc)
			cur = append(cur, rawTerm{exp: ne, c: new(big.Rat).Neg(nc)})
		}
		remTerms = combineAndBuild(e.p, prec, cur).terms
	}

	finalRaw := append([]rawTerm(nil), tailRaw...)
	for _, tc := range remTerms {
		finalRaw = append(finalRaw, rawTerm{exp: tc.t.exp, c: tc.c})
	}
	remainder := combineAndBuild(e.p, prec, finalRaw)

	quots := make([]algebra.Element, len(divisors))
	for i := range divisors {
		quots[i] = combineAndBuild(e.p, prec, quotRaw[i])
	}

	return quots, remainder
}

func (e *element) MulTerm(t algebra.Term) algebra.Element {
	tt := t.(term)
	pk := new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(e.p), big.NewInt(int64(tt.val)), nil))
	raw := make([]rawTerm, len(e.terms))
	for i, tc := range e.terms {
		ne := make([]int, len(tc.t.exp))
		for k := range ne {
			ne[k] = tc.t.exp[k] + tt.exp[k]
		}
		raw[i] = rawTerm{exp: ne, c: new(big.Rat).Mul(tc.c, pk)}
	}

	return combineAndBuild(e.p, e.prec+tt.val, raw)
}

func (e *element) MulScalar(c algebra.Coefficient) algebra.Element {
	cc := c.(*big.Rat)
	raw := make([]rawTerm, len(e.terms))
	for i, tc := range e.terms {
		raw[i] = rawTerm{exp: tc.t.exp, c: new(big.Rat).Mul(tc.c, cc)}
	}

	return combineAndBuild(e.p, e.prec, raw)
}
