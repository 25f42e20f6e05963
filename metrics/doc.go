// Package metrics exposes the Prometheus counters and gauges the
// drivers update at verbose level 3 and above: pairs processed,
// working-basis size, and Gröbner-basis cache hits, each labelled by
// algorithm.
//
// These are observational only — nothing in this repository ever
// reads a metric back to make a decision.
package metrics
