// Package buchberger implements the valuation-aware Buchberger driver:
// given a generator list, target precision, and a field or integral
// divisibility mode, it grows a Gröbner basis by repeatedly reducing
// the smallest pending critical pair and re-seeding pairs from
// whatever survives.
//
// The main loop drains a pair queue until empty, checking for
// cancellation at the top of every iteration and running an
// inter-reduction pass whenever the working basis changed since the
// last one. When a newly inserted element's leading term divides the
// leading term of a working-basis element, that element is tombstoned
// in place (its basis slot is nulled rather than removed, so indices
// already queued in pending pairs stay valid) and, unless it was one
// of the initial generators, rescued back into the pair queue for
// re-insertion. Elements that inter-reduction collapses to zero are
// tombstoned the same way.
package buchberger
