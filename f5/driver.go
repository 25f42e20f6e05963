package f5

import (
	"container/heap"
	"fmt"

	"github.com/rrueger/tateideal/algebra"
	"github.com/rrueger/tateideal/canonical"
	"github.com/rrueger/tateideal/metrics"
	"github.com/rrueger/tateideal/progresschart"
)

// metricsLabel is F5's fixed label for the metrics package; unlike
// buchberger, F5 has no integral variant to distinguish (see
// DESIGN.md).
const metricsLabel = "F5"

// Run computes a Gröbner basis for gens under the signature-based F5
// algorithm, processing generators one at a time and canonicalising
// after each one. The returned basis is already canonicalised; callers
// do not need a further pass.
func Run(gens []algebra.Element, ring algebra.Ring, monoid algebra.Monoid, opts Options) ([]algebra.Element, error) {
	if opts.Precision <= 0 {
		return nil, algebra.ErrInvalidPrecision
	}
	opts.normalize()

	var chart *progresschart.Recorder
	if opts.Verbose >= 4 {
		chart = progresschart.NewRecorder()
	}

	var plain []algebra.Element
	for _, f := range gens {
		if f == nil || f.IsZero() {
			continue
		}
		if err := opts.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("f5: %w", algebra.ErrCancelled)
		}

		ft := f.AddBigOh(f.Valuation() + opts.Precision)
		if ft.IsZero() {
			continue
		}

		next, err := runOneGenerator(plain, ft, ring, monoid, opts, chart)
		if err != nil {
			return nil, err
		}
		plain = next
	}

	if chart != nil {
		if path, err := chart.RenderTemp("f5 progress"); err == nil {
			opts.logf(4, "progress chart written to %s", path)
		}
	}

	return plain, nil
}

// runOneGenerator carries out the per-generator procedure: convert the
// current plain basis to signed form with null signatures, seed
// J-pairs for the new generator, drain the heap applying the syzygy,
// cover, and regular-reduction filters, and canonicalise the result.
func runOneGenerator(plainBasis []algebra.Element, f algebra.Element, ring algebra.Ring, monoid algebra.Monoid, opts Options, chart *progresschart.Recorder) ([]algebra.Element, error) {
	var sgb []SignedElement
	for _, g := range plainBasis {
		sgb = append(sgb, SignedElement{Sig: Signature{Null: true}, Val: g})
	}

	newElem := SignedElement{Sig: Signature{Term: monoid.One()}, Val: f}

	var jh jheap
	heap.Push(&jh, jheapItem{Sig: newElem.Sig, Elem: newElem.Val})
	for _, old := range sgb {
		sig, elem, ok := jpair(monoid, newElem, old)
		if ok && !elem.IsZero() {
			heap.Push(&jh, jheapItem{Sig: sig, Elem: elem})
		}
	}
	if chart != nil {
		chart.Sample(jh.Len(), len(sgb))
	}

	var syz []algebra.Term

	for jh.Len() > 0 {
		if err := opts.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("f5: %w", algebra.ErrCancelled)
		}

		top := heap.Pop(&jh).(jheapItem)
		s, v := top.Sig, top.Elem
		if opts.Verbose >= 3 {
			metrics.RecordPairProcessed(metricsLabel)
		}

		dropped := false
		for _, zt := range syz {
			if zt.Divides(s.Term, algebra.ModeField) {
				dropped = true
				break
			}
		}
		if dropped {
			opts.logf(4, "syzygy criterion dropped a J-pair")
			continue
		}

		covered := false
		for _, se := range sgb {
			if se.Sig.Null || se.Val.IsZero() {
				continue
			}
			if !se.Sig.Term.Divides(s.Term, algebra.ModeField) {
				continue
			}
			quo := s.Term.Quo(se.Sig.Term)
			candidate := algebra.MulTerms(monoid, quo, se.Val.LeadingTerm())
			if candidate.Less(v.LeadingTerm()) {
				covered = true
				break
			}
		}
		if covered {
			opts.logf(4, "cover criterion dropped a J-pair")
			continue
		}

		rv := regularReduce(monoid, sgb, s, v)
		if rv.IsZero() {
			syz = append(syz, s.Term)
			opts.logf(3, "regular reduction vanished; recorded syzygy")
			continue
		}

		signed := SignedElement{Sig: s, Val: rv}
		for _, se := range sgb {
			if se.Val.IsZero() {
				continue
			}
			sig2, elem2, ok := jpair(monoid, signed, se)
			if ok && !elem2.IsZero() {
				heap.Push(&jh, jheapItem{Sig: sig2, Elem: elem2})
			}
		}
		sgb = append(sgb, signed)
		opts.logf(2, "appended signed element, basis now has %d element(s)", len(sgb))
		if opts.Verbose >= 3 {
			metrics.RecordBasisSize(metricsLabel, len(sgb))
		}
		if chart != nil {
			chart.Sample(jh.Len(), len(sgb))
		}
	}

	var out []algebra.Element
	for _, se := range sgb {
		if !se.Val.IsZero() {
			out = append(out, se.Val)
		}
	}

	return canonical.Canonicalize(out, ring, false), nil
}

// regularReduce reduces v's leading term against sgb, using only
// reducers whose induced signature is strictly less than s: a null
// reducer signature is always eligible; a concrete one is eligible
// only if its induced signature t·S strictly precedes s under the
// term order.
func regularReduce(monoid algebra.Monoid, sgb []SignedElement, s Signature, v algebra.Element) algebra.Element {
	for !v.IsZero() {
		lt := v.LeadingTerm()
		var reducer algebra.Element
		found := false
		for _, se := range sgb {
			if se.Val.IsZero() {
				continue
			}
			selt := se.Val.LeadingTerm()
			if !selt.Divides(lt, algebra.ModeField) {
				continue
			}
			if se.Sig.Null {
				reducer, found = se.Val, true
				break
			}
			induced := algebra.MulTerms(monoid, lt.Quo(selt), se.Sig.Term)
			if induced.Less(s.Term) {
				reducer, found = se.Val, true
				break
			}
		}
		if !found {
			break
		}
		_, rem := v.QuoRem([]algebra.Element{reducer}, algebra.QuoRemOptions{Mode: algebra.ModeField, ReduceTail: false})
		v = rem
	}

	return v
}
