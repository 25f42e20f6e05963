package ideal

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/rrueger/tateideal/algebra"
	"github.com/rrueger/tateideal/buchberger"
	"github.com/rrueger/tateideal/canonical"
	"github.com/rrueger/tateideal/f5"
	"github.com/rrueger/tateideal/metrics"
	"github.com/rrueger/tateideal/reduce"
)

// cacheEntry memoises one (precision, algorithm) basis computation. A
// cancelled computation is evicted from the owning Ideal's cache
// rather than cached as a permanent error, so a later retry with a
// live context runs the driver again instead of replaying the
// cancellation forever.
type cacheEntry struct {
	once  sync.Once
	done  int32
	basis []algebra.Element
	err   error
}

// Ideal is a finitely generated ideal of a Tate algebra over ring,
// with terms from monoid. Gröbner bases are computed lazily and
// cached per (precision, algorithm) key.
type Ideal struct {
	Ring   algebra.Ring
	Monoid algebra.Monoid
	Gens   []algebra.Element

	mu    sync.Mutex
	cache map[cacheKey]*cacheEntry
}

// New constructs an ideal from a generator list. Nil and zero
// generators are silently dropped.
func New(ring algebra.Ring, monoid algebra.Monoid, gens []algebra.Element) *Ideal {
	live := make([]algebra.Element, 0, len(gens))
	for _, g := range gens {
		if g != nil && !g.IsZero() {
			live = append(live, g)
		}
	}

	return &Ideal{Ring: ring, Monoid: monoid, Gens: live}
}

func modeFor(alg Algorithm) algebra.Mode {
	if alg == BuchbergerIntegral {
		return algebra.ModeIntegral
	}

	return algebra.ModeField
}

func (id *Ideal) entryFor(key cacheKey) *cacheEntry {
	id.mu.Lock()
	defer id.mu.Unlock()
	if id.cache == nil {
		id.cache = make(map[cacheKey]*cacheEntry)
	}
	e, ok := id.cache[key]
	if !ok {
		e = &cacheEntry{}
		id.cache[key] = e
	}

	return e
}

func (id *Ideal) evictIfSame(key cacheKey, e *cacheEntry) {
	id.mu.Lock()
	defer id.mu.Unlock()
	if id.cache[key] == e {
		delete(id.cache, key)
	}
}

// GroebnerBasis returns the canonical Gröbner basis for opts.Algorithm
// at opts.Precision, computing and caching it on first request for
// that (precision, algorithm) pair.
func (id *Ideal) GroebnerBasis(opts Options) ([]algebra.Element, error) {
	opts = opts.normalize()
	key := cacheKey{precision: opts.Precision, algorithm: opts.Algorithm}

	entry := id.entryFor(key)
	hit := atomic.LoadInt32(&entry.done) == 1
	entry.once.Do(func() {
		entry.basis, entry.err = id.computeBasis(opts)
		atomic.StoreInt32(&entry.done, 1)
	})

	if opts.Verbose >= 3 && hit {
		metrics.RecordCacheHit(string(opts.Algorithm))
	}

	if errors.Is(entry.err, algebra.ErrCancelled) {
		id.evictIfSame(key, entry)
	}

	return entry.basis, entry.err
}

func (id *Ideal) computeBasis(opts Options) ([]algebra.Element, error) {
	switch opts.Algorithm {
	case Buchberger:
		gb, err := buchberger.Run(id.Gens, buchberger.Options{
			Precision: opts.Precision,
			Integral:  false,
			Verbose:   opts.Verbose,
			Ctx:       opts.Ctx,
		})
		if err != nil {
			return nil, err
		}

		return canonical.Canonicalize(gb, id.Ring, false), nil

	case BuchbergerIntegral:
		gb, err := buchberger.Run(id.Gens, buchberger.Options{
			Precision: opts.Precision,
			Integral:  true,
			Verbose:   opts.Verbose,
			Ctx:       opts.Ctx,
		})
		if err != nil {
			return nil, err
		}

		return canonical.Canonicalize(gb, id.Ring, true), nil

	case F5:
		return f5.Run(id.Gens, id.Ring, id.Monoid, f5.Options{
			Precision: opts.Precision,
			Verbose:   opts.Verbose,
			Ctx:       opts.Ctx,
		})

	default:
		return nil, algebra.ErrNotImplementedAlgorithm
	}
}

// Membership reports whether x reduces to zero against the ideal's
// Gröbner basis. It requires the remainder to be a certified zero,
// not merely one that ran out of precision before it could be
// verified (see DESIGN.md for how RequireNonzeroRemainder draws that
// line).
func (id *Ideal) Membership(x algebra.Element, opts Options) (bool, error) {
	if x == nil {
		return false, reduce.ErrNilElement
	}

	basis, err := id.GroebnerBasis(opts)
	if err != nil {
		return false, err
	}

	_, rem, err := reduce.Reduce(x, basis, reduce.Options{
		Mode:                    modeFor(opts.normalize().Algorithm),
		ReduceTail:              true,
		RequireNonzeroRemainder: true,
	})
	if err != nil {
		return false, err
	}

	return rem.IsZero(), nil
}

// Contains reports whether every generator of other is a member of
// id, i.e. whether other ⊆ id.
func (id *Ideal) Contains(other *Ideal, opts Options) (bool, error) {
	for _, g := range other.Gens {
		ok, err := id.Membership(g, opts)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// Compare expresses op against other via containment both ways: id op
// other, where op is one of Lt, Le, Eq, Ge, Gt, Ne.
func (id *Ideal) Compare(other *Ideal, op CompareOp, opts Options) (bool, error) {
	// id ≤ other  <=>  other.Contains(id)  <=>  id ⊆ other.
	le, err := other.Contains(id, opts)
	if err != nil {
		return false, err
	}
	// id ≥ other  <=>  id.Contains(other)  <=>  other ⊆ id.
	ge, err := id.Contains(other, opts)
	if err != nil {
		return false, err
	}

	switch op {
	case Le:
		return le, nil
	case Ge:
		return ge, nil
	case Eq:
		return le && ge, nil
	case Ne:
		return !(le && ge), nil
	case Lt:
		return le && !ge, nil
	case Gt:
		return ge && !le, nil
	default:
		return false, ErrUnknownCompareOp
	}
}

// IsSaturated reports whether id equals its own saturation. Over a
// field base this is always true; over a ring-of-integers base it
// holds iff every element of the canonical basis has valuation 0.
func (id *Ideal) IsSaturated(opts Options) (bool, error) {
	if id.Ring.IsField() {
		return true, nil
	}

	o := opts.normalize()
	basis, err := id.GroebnerBasis(Options{
		Precision: o.Precision,
		Algorithm: BuchbergerIntegral,
		Verbose:   o.Verbose,
		Ctx:       o.Ctx,
	})
	if err != nil {
		return false, err
	}

	for _, g := range basis {
		if g.Valuation() != 0 {
			return false, nil
		}
	}

	return true, nil
}

// Saturate returns {f : ∃ n, πⁿ·f ∈ id}, realised as the identity over
// a field base, or as the ideal generated by the monic rescaling of
// id's canonical basis over a ring-of-integers base (decided in
// DESIGN.md: this means the computed basis, not the raw generator
// list, which is what makes Saturate().IsSaturated() provable without
// re-running the driver inside IsSaturated).
func (id *Ideal) Saturate(opts Options) (*Ideal, error) {
	if id.Ring.IsField() {
		return id, nil
	}

	o := opts.normalize()
	basis, err := id.GroebnerBasis(Options{
		Precision: o.Precision,
		Algorithm: BuchbergerIntegral,
		Verbose:   o.Verbose,
		Ctx:       o.Ctx,
	})
	if err != nil {
		return nil, err
	}

	rescaled := make([]algebra.Element, len(basis))
	for i, g := range basis {
		rescaled[i] = g.Monic()
	}

	return New(id.Ring, id.Monoid, rescaled), nil
}
