// Package tateideal is a Gröbner-basis engine for ideals in Tate
// algebras over a complete discrete valuation ring or its fraction
// field.
//
// It consumes element arithmetic as an external capability (package
// algebra) rather than implementing it: given terms, elements, a base
// ring, and a term monoid satisfying those interfaces, tateideal
// computes Gröbner bases, reduces elements modulo a basis, and
// answers membership, containment, comparison, and saturation
// queries about the ideal they generate.
//
// Two drivers are provided:
//
//	buchberger/ — the valuation-aware Buchberger algorithm, in both
//	              field (monomial-only) and integral (valuation-aware)
//	              divisibility modes
//	f5/         — the signature-based F5 algorithm, with J-pair
//	              construction and the syzygy/cover/regular-reduction
//	              filters
//
// Supporting packages:
//
//	algebra/          — the Term/Element/Ring/Monoid capability
//	                    interfaces every driver programs against
//	pairqueue/        — the critical-pair min-heap of the Buchberger
//	                    driver (f5 keeps its own signature-keyed heap)
//	reduce/           — multi-divisor reduction, the primitive the
//	                    Buchberger driver, canonical, and the ideal
//	                    surface build on (f5 calls Element.QuoRem
//	                    directly)
//	canonical/        — final minimisation, inter-reduction, and
//	                    normalisation of a raw driver output
//	ideal/            — the public ideal surface: GroebnerBasis,
//	                    Membership, Contains, Compare, Saturate,
//	                    IsSaturated, with per-(precision, algorithm)
//	                    memoization
//	metrics/          — optional Prometheus counters/gauges for driver
//	                    progress, updated at verbose level 3+
//	progresschart/    — an optional HTML progress chart of a driver
//	                    run, written at verbose level 4
//	internal/fixture/ — a trivial exact-arithmetic test/demo algebra;
//	                    not a real Tate algebra implementation and not
//	                    part of the public contract
//
// cmd/tateideal is a small Cobra CLI exercising the ideal surface
// against internal/fixture.
//
//	go get github.com/rrueger/tateideal
package tateideal
