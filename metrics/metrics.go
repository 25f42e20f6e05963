package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PairsProcessed counts critical or J-pairs popped from a driver's
	// pending queue, labelled by algorithm.
	PairsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tateideal_pairs_processed_total",
		Help: "Critical or J-pairs popped from a driver's pending queue, labelled by algorithm.",
	}, []string{"algorithm"})

	// BasisSize tracks the current size of a driver's working basis,
	// labelled by algorithm.
	BasisSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tateideal_basis_size",
		Help: "Current size of a driver's working basis, labelled by algorithm.",
	}, []string{"algorithm"})

	// CacheHits counts Gröbner basis cache hits on an ideal, labelled
	// by algorithm.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tateideal_cache_hits_total",
		Help: "Gröbner basis cache hits on an ideal, labelled by algorithm.",
	}, []string{"algorithm"})
)

// RecordPairProcessed increments the pairs-processed counter for algorithm.
func RecordPairProcessed(algorithm string) {
	PairsProcessed.WithLabelValues(algorithm).Inc()
}

// RecordBasisSize sets the basis-size gauge for algorithm to n.
func RecordBasisSize(algorithm string, n int) {
	BasisSize.WithLabelValues(algorithm).Set(float64(n))
}

// RecordCacheHit increments the cache-hits counter for algorithm.
func RecordCacheHit(algorithm string) {
	CacheHits.WithLabelValues(algorithm).Inc()
}
