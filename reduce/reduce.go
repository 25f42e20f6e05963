package reduce

import (
	"math"

	"github.com/rrueger/tateideal/algebra"
)

// Reduce reduces f against the divisor family divisors under opts.
// It returns one quotient slot per input divisor, in the same order as
// divisors, with a nil quotient for each divisor that was filtered out
// as zero, and the remainder.
//
// Edge cases: a zero f returns a zero remainder and no error; zero
// divisors are filtered out before reduction, since division by the
// zero element is undefined and QuoRem leaves that filtering to its
// caller.
func Reduce(f algebra.Element, divisors []algebra.Element, opts Options) ([]algebra.Element, algebra.Element, error) {
	if f == nil {
		return nil, nil, ErrNilElement
	}
	if f.IsZero() {
		return nil, f, nil
	}

	live := make([]algebra.Element, 0, len(divisors))
	liveIdx := make([]int, 0, len(divisors))
	for i, d := range divisors {
		if d == nil {
			return nil, nil, ErrNilElement
		}
		if d.IsZero() {
			continue
		}
		live = append(live, d)
		liveIdx = append(liveIdx, i)
	}

	liveQuots, remainder := f.QuoRem(live, algebra.QuoRemOptions{Mode: opts.Mode, ReduceTail: opts.ReduceTail})

	quotients := make([]algebra.Element, len(divisors))
	minLivePrecision := math.MaxInt
	for i, idx := range liveIdx {
		quotients[idx] = liveQuots[i]
		if p := live[i].PrecisionAbsolute(); p < minLivePrecision {
			minLivePrecision = p
		}
	}

	// A remainder that reports IsZero() but whose own absolute precision
	// falls short of the weakest divisor it was reduced against has not
	// been certified zero — it merely ran out of digits before a
	// nonzero term could surface. RequireNonzeroRemainder callers (e.g.
	// ideal membership tests) need to tell the two apart.
	if opts.RequireNonzeroRemainder && remainder.IsZero() && len(live) > 0 &&
		remainder.PrecisionAbsolute() < minLivePrecision {
		return nil, nil, algebra.ErrPrecisionExhausted
	}

	return quotients, remainder, nil
}
