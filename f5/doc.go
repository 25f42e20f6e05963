// Package f5 implements the signature-based F5 driver. It processes
// generators one at a time: each new generator is paired against the
// currently accumulated (plain, unsigned) basis via J-pairs, the
// J-pair heap is drained with syzygy, cover, and regular-reduction
// filtering, and the resulting signed basis is canonicalised back to a
// plain basis — which becomes the starting point for the next
// generator.
//
// The J-pair heap is a second, independently instantiated
// container/heap instance, keyed by signature instead of (valuation,
// exponent) since the two orders are not interchangeable with
// pairqueue.Queue's.
//
// The Jpair redundancy-pruning path (equal induced signatures
// contribute no pair) is preserved deliberately, not an oversight.
package f5
