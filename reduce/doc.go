// Package reduce implements multi-divisor reduction of an element
// against a family of divisors, parameterised by mode (field/integral)
// and by whether the tail of the remainder is also reduced.
//
// The heavy lifting — finding a dividing leading term and subtracting
// the appropriate multiple — is a capability of algebra.Element.QuoRem;
// this package is the thin, input-validating orchestration layer
// around it: filtering zero divisors, detecting a remainder that only
// looks zero because precision ran out, and leaving the actual
// reduction loop to QuoRem.
package reduce
