// Package ideal implements the ideal surface: membership, containment,
// rich comparison, saturation, and the is-saturated predicate, all
// expressed in terms of a canonical Gröbner basis lazily computed and
// cached on the ideal instance.
//
// The cache is a map keyed by (precision, algorithm), each entry
// guarded by its own sync.Once, so concurrent calls requesting
// different parameters never contend with each other.
package ideal
