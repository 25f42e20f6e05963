package buchberger

import (
	"fmt"

	"github.com/rrueger/tateideal/algebra"
	"github.com/rrueger/tateideal/metrics"
	"github.com/rrueger/tateideal/pairqueue"
	"github.com/rrueger/tateideal/progresschart"
	"github.com/rrueger/tateideal/reduce"
)

// Run computes a (not yet canonicalised) Gröbner basis for gens under
// the valuation-aware Buchberger algorithm. The caller is responsible
// for canonicalising the result (package canonical); Run only produces
// the working basis the main loop converges to.
func Run(gens []algebra.Element, opts Options) ([]algebra.Element, error) {
	if opts.Precision <= 0 {
		return nil, algebra.ErrInvalidPrecision
	}
	opts.normalize()
	mode := opts.mode()

	trunc := make([]algebra.Element, 0, len(gens))
	for _, g := range gens {
		if g == nil || g.IsZero() {
			continue
		}
		t := g.AddBigOh(g.Valuation() + opts.Precision)
		if t.IsZero() {
			continue
		}
		trunc = append(trunc, t)
	}

	keep := make([]bool, len(trunc))
	for i := range trunc {
		keep[i] = true
		for j := 0; j < i; j++ {
			if keep[j] && trunc[j].LeadingTerm().Divides(trunc[i].LeadingTerm(), mode) {
				keep[i] = false
				break
			}
		}
	}

	var gb []algebra.Element
	var rgb []algebra.Element
	var rgbIdx []int
	for i, ok := range keep {
		if !ok {
			continue
		}
		gb = append(gb, trunc[i])
		rgb = append(rgb, trunc[i])
		rgbIdx = append(rgbIdx, len(gb)-1)
	}
	initialCount := len(rgb)

	var pq pairqueue.Queue
	for i := 0; i < len(rgb); i++ {
		for j := i + 1; j < len(rgb); j++ {
			if rgb[i].LeadingTerm().IsCoprimeWith(rgb[j].LeadingTerm()) {
				continue
			}
			s := rgb[i].SPolynomial(rgb[j])
			if !s.IsZero() {
				pq.Push(pairqueue.NewRecord(rgbIdx[i], rgbIdx[j], s))
			}
		}
	}

	opts.logf(1, "seeded %d generator(s), %d initial pair(s)", initialCount, pq.Len())
	label := opts.metricsLabel()
	if opts.Verbose >= 3 {
		metrics.RecordBasisSize(label, len(rgb))
	}
	var chart *progresschart.Recorder
	if opts.Verbose >= 4 {
		chart = progresschart.NewRecorder()
		chart.Sample(pq.Len(), len(rgb))
	}

	reducedSincePass := false
	for !pq.Empty() {
		if err := opts.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("buchberger: %w", algebra.ErrCancelled)
		}

		if reducedSincePass {
			if err := opts.Ctx.Err(); err != nil {
				return nil, fmt.Errorf("buchberger: %w", algebra.ErrCancelled)
			}
			snapshot := append([]algebra.Element(nil), rgb...)
			remainders := make([]algebra.Element, len(snapshot))
			for k, g := range snapshot {
				others := make([]algebra.Element, 0, len(snapshot)-1)
				for m, o := range snapshot {
					if m != k {
						others = append(others, o)
					}
				}
				shifted := g.PositivePiShift(1)
				_, rem, err := reduce.Reduce(shifted, others, reduce.Options{Mode: mode, ReduceTail: true})
				if err != nil {
					return nil, fmt.Errorf("buchberger: inter-reduction: %w", err)
				}
				remainders[k] = rem
			}

			var survivedRgb []algebra.Element
			var survivedIdx []int
			for k, rem := range remainders {
				if rem.IsZero() {
					gb[rgbIdx[k]] = nil
					opts.logf(4, "inter-reduction collapsed gb[%d] to zero", rgbIdx[k])
					continue
				}
				gb[rgbIdx[k]] = rem
				survivedRgb = append(survivedRgb, rem)
				survivedIdx = append(survivedIdx, rgbIdx[k])
			}
			rgb, rgbIdx = survivedRgb, survivedIdx

			reducedSincePass = false
			opts.logf(3, "inter-reduced working basis (%d elements)", len(rgb))
		}

		rec, ok := pq.PopMin()
		if !ok {
			break
		}
		if opts.Verbose >= 3 {
			metrics.RecordPairProcessed(label)
		}
		if chart != nil {
			chart.Sample(pq.Len(), len(rgb))
		}

		var r algebra.Element
		if rec.IsRescue() {
			r = rec.S
			opts.logf(4, "rescued element valuation=%d", r.Valuation())
		} else {
			if rec.I >= len(gb) || rec.J >= len(gb) || gb[rec.I] == nil || gb[rec.J] == nil {
				opts.logf(4, "dropping stale pair (%d,%d): tombstoned", rec.I, rec.J)
				continue
			}
			_, rem, err := reduce.Reduce(rec.S, rgb, reduce.Options{Mode: mode, ReduceTail: false})
			if err != nil {
				return nil, fmt.Errorf("buchberger: %w", err)
			}
			if rem.IsZero() {
				opts.logf(4, "pair (%d,%d) reduced to zero", rec.I, rec.J)
				continue
			}
			r = rem
		}

		newGbIdx := len(gb)
		for k, g := range rgb {
			if g.LeadingTerm().IsCoprimeWith(r.LeadingTerm()) {
				continue
			}
			s := g.SPolynomial(r)
			if !s.IsZero() {
				pq.Push(pairqueue.NewRecord(rgbIdx[k], newGbIdx, s))
			}
		}

		gb = append(gb, r)

		var keptRgb []algebra.Element
		var keptIdx []int
		for k, g := range rgb {
			if r.LeadingTerm().Divides(g.LeadingTerm(), mode) {
				if rgbIdx[k] >= initialCount {
					pq.Push(pairqueue.NewRescue(g))
				}
				gb[rgbIdx[k]] = nil
				continue
			}
			keptRgb = append(keptRgb, g)
			keptIdx = append(keptIdx, rgbIdx[k])
		}
		rgb = append(keptRgb, r)
		rgbIdx = append(keptIdx, newGbIdx)

		opts.logf(2, "inserted element at gb[%d], working basis now has %d element(s)", newGbIdx, len(rgb))
		if opts.Verbose >= 3 {
			metrics.RecordBasisSize(label, len(rgb))
		}
		if chart != nil {
			chart.Sample(pq.Len(), len(rgb))
		}
		reducedSincePass = true
	}

	if chart != nil {
		if path, err := chart.RenderTemp("buchberger progress"); err == nil {
			opts.logf(4, "progress chart written to %s", path)
		}
	}

	return rgb, nil
}
