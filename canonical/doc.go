// Package canonical implements the final normalisation pass applied
// by both drivers once their main loop converges: monic scaling over a
// field base, an extra minimisation-and-inter-reduction pass when the
// integral divisibility mode was used over a field base,
// leading-coefficient rescaling to a pure power of the uniformizer
// over a ring-of-integers base, and a final strictly-decreasing sort
// by leading term.
//
// The single exported entry point is split into small, independently
// named helper passes, one per base-ring case, so each can be read and
// tested on its own.
package canonical
