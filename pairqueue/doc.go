// Package pairqueue implements the min-heap priority queue of pending
// critical pairs: a heap of Records ordered lexicographically by
// (valuation, exponent).
//
// The heap itself carries no notion of tombstones — a popped Record
// may reference a basis slot the driver has since nulled out, and it
// is the driver's job to notice and skip it. Pushing a fresh Record on
// every insertion rather than mutating existing heap entries keeps the
// heap itself simple; discarding stale pops is left entirely to the
// consumer's own staleness check.
//
// A Record with I == J == -1 is not a critical pair at all — it is a
// rescued basis element being re-inserted after a shrink step. The
// queue treats it like any other Record; only its consumer
// distinguishes the two cases.
package pairqueue
