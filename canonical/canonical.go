package canonical

import (
	"sort"

	"github.com/rrueger/tateideal/algebra"
	"github.com/rrueger/tateideal/reduce"
)

// Canonicalize applies the final normalisation pass to basis: monic
// scaling over a field base run in field mode; an extra monomial-only
// minimisation plus a π-shift-then-tail-reduce pass when integral
// divisibility was used over a field base; leading-coefficient
// rescaling to a pure power of the uniformizer over a ring-of-integers
// base; and always a final strictly-decreasing sort by leading term.
func Canonicalize(basis []algebra.Element, ring algebra.Ring, integral bool) []algebra.Element {
	out := make([]algebra.Element, 0, len(basis))
	for _, g := range basis {
		if g != nil && !g.IsZero() {
			out = append(out, g)
		}
	}

	switch {
	case ring.IsField() && !integral:
		out = monicScale(out)
	case ring.IsField() && integral:
		out = minimiseByMonomial(out)
		out = interReduceOnce(out)
	default:
		out = rescaleToUniformizerPower(out, ring)
	}

	sortDescendingByLeadingTerm(out)

	return out
}

func monicScale(basis []algebra.Element) []algebra.Element {
	out := make([]algebra.Element, len(basis))
	for i, g := range basis {
		out[i] = g.Monic()
	}

	return out
}

// minimiseByMonomial drops any element whose leading monomial is
// divisible by another's, ignoring valuation — the weaker,
// monomial-only criterion appropriate when the basis was grown under
// integral divisibility but lives over a field base.
func minimiseByMonomial(basis []algebra.Element) []algebra.Element {
	keep := make([]bool, len(basis))
	for i := range keep {
		keep[i] = true
	}
	for i := range basis {
		for j := range basis {
			if i == j || !keep[j] {
				continue
			}
			if basis[j].LeadingTerm().Divides(basis[i].LeadingTerm(), algebra.ModeField) {
				keep[i] = false
				break
			}
		}
	}

	out := make([]algebra.Element, 0, len(basis))
	for i, ok := range keep {
		if ok {
			out = append(out, basis[i])
		}
	}

	return out
}

// interReduceOnce performs one pass of positive-pi-shift followed by
// tail reduction against the rest of the (pre-pass) basis, the same
// precision-recovery step the Buchberger driver runs mid-loop, applied
// here exactly once as a closing pass.
func interReduceOnce(basis []algebra.Element) []algebra.Element {
	snapshot := append([]algebra.Element(nil), basis...)
	out := make([]algebra.Element, 0, len(basis))
	for k, g := range snapshot {
		others := make([]algebra.Element, 0, len(snapshot)-1)
		for m, o := range snapshot {
			if m != k {
				others = append(others, o)
			}
		}
		if len(others) == 0 {
			out = append(out, g)
			continue
		}
		shifted := g.PositivePiShift(1)
		_, rem, err := reduce.Reduce(shifted, others, reduce.Options{Mode: algebra.ModeIntegral, ReduceTail: true})
		if err != nil {
			out = append(out, g)
			continue
		}
		if rem.IsZero() {
			continue
		}
		out = append(out, rem)
	}

	return out
}

func rescaleToUniformizerPower(basis []algebra.Element, ring algebra.Ring) []algebra.Element {
	out := make([]algebra.Element, len(basis))
	for i, g := range basis {
		out[i] = g.MulScalar(ring.InverseOfUnit(g.LeadingCoefficient()))
	}

	return out
}

func sortDescendingByLeadingTerm(basis []algebra.Element) {
	sort.SliceStable(basis, func(i, j int) bool {
		return basis[j].LeadingTerm().Less(basis[i].LeadingTerm())
	})
}
