package f5

import "github.com/rrueger/tateideal/algebra"

// jheapItem is one pending J-pair: a candidate signature and the
// element it would contribute if it survives the syzygy, cover, and
// regular-reduction filters.
type jheapItem struct {
	Sig  Signature
	Elem algebra.Element
}

// jheap implements heap.Interface for a min-heap of jheapItem ordered
// by sigLess, the signature analogue of pairqueue's (valuation,
// exponent) key.
type jheap []jheapItem

func (h jheap) Len() int            { return len(h) }
func (h jheap) Less(i, j int) bool  { return sigLess(h[i].Sig, h[j].Sig) }
func (h jheap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *jheap) Push(x interface{}) { *h = append(*h, x.(jheapItem)) }
func (h *jheap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// jpair constructs the J-pair of two signed elements: given two signed
// pairs with non-zero values, let t = lcm(lead(v1), lead(v2)), tᵢ =
// t/lead(vᵢ). The winning half is the one with the larger induced
// signature tᵢ·sᵢ; a null signature always loses to a concrete one. If
// both induced signatures are concrete and equal, the pair is
// redundant and jpair reports ok = false.
func jpair(monoid algebra.Monoid, a, b SignedElement) (sig Signature, elem algebra.Element, ok bool) {
	la := a.Val.LeadingTerm()
	lb := b.Val.LeadingTerm()
	t := la.Lcm(lb)
	ta := t.Quo(la)
	tb := t.Quo(lb)

	switch {
	case a.Sig.Null && b.Sig.Null:
		return Signature{}, nil, false
	case a.Sig.Null:
		return Signature{Term: algebra.MulTerms(monoid, tb, b.Sig.Term)}, b.Val.MulTerm(tb), true
	case b.Sig.Null:
		return Signature{Term: algebra.MulTerms(monoid, ta, a.Sig.Term)}, a.Val.MulTerm(ta), true
	}

	sigA := algebra.MulTerms(monoid, ta, a.Sig.Term)
	sigB := algebra.MulTerms(monoid, tb, b.Sig.Term)
	if sigEqual(sigA, sigB) {
		return Signature{}, nil, false
	}
	if sigB.Less(sigA) {
		return Signature{Term: sigA}, a.Val.MulTerm(ta), true
	}

	return Signature{Term: sigB}, b.Val.MulTerm(tb), true
}
