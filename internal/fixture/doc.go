// Package fixture implements a minimal, exact-arithmetic Tate-algebra
// term/element/ring/monoid over Q (tracking p-adic valuation exactly
// via big.Rat) purely so the engine packages have something concrete
// to drive in their tests and the cmd/tateideal CLI demo.
//
// It is deliberately not a real Tate-algebra implementation: real
// element construction, p-adic coefficient representation, and
// random-element generation are the "external" capability the engine
// consumes, left to whatever implementation a caller supplies behind
// the algebra interfaces. This package exists only so the consumer
// side (pairqueue, reduce, buchberger, f5, canonical, ideal) has a
// concrete Term/Element/Ring/Monoid to exercise; nothing under
// algebra/, pairqueue/, reduce/, buchberger/, f5/, canonical/, or
// ideal/ imports it except their own tests and the CLI.
//
// Coefficients are *big.Rat values assumed to have non-negative p-adic
// valuation (the Gauss valuation is non-negative by convention);
// negative valuations are not supported by this fixture.
package fixture
