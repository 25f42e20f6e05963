// Package algebra declares the capability boundary the Gröbner-basis
// engine is built on top of: Tate terms, Tate elements, the base ring,
// and the monoid of terms. None of these are implemented here — every
// other package in this module programs against these interfaces
// without reaching into the concrete types behind them.
//
// A Term is a monomial tagged with a coefficient valuation, ordered by
// a fixed total order that refines (valuation, exponent). A Term
// supports two notions of divisibility: monomial-divides (Mode field,
// exponents only) and integral-divides (Mode integral, exponents and
// valuation).
//
// An Element is a finite-precision sum of Terms (leading term first).
// Reduction, S-polynomials, π-shifts, and precision changes are all
// primitives of Element, not of this engine; the engine only calls
// them.
//
// A Ring answers whether the base is a field, and can invert the unit
// part of a leading coefficient (used by canonicalisation over a
// discrete valuation ring). A Monoid supplies the multiplicative
// identity term and a constructor for fresh terms from exponent +
// valuation data.
//
// Errors:
//
//	ErrNotImplementedAlgorithm - unknown groebner_basis algorithm name.
//	ErrInvalidPrecision        - precision is not a positive finite integer.
//	ErrPrecisionExhausted      - reduction could not certify a result before precision ran out.
//	ErrCancelled               - caller's cancellation token fired mid-computation.
package algebra
