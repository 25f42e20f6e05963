package buchberger

import (
	"context"
	"log"
	"os"

	"github.com/rrueger/tateideal/algebra"
)

var stderrLog = log.New(os.Stderr, "buchberger: ", 0)

// Options configures a single call to Run.
//
//   - Precision: the target absolute precision; generators are
//     truncated to val(g)+Precision before the loop starts.
//   - Integral: selects valuation-aware ("integral") divisibility over
//     monomial-only ("field") divisibility throughout the run.
//   - Verbose: 0 (silent) through 4 (per-pair tracing).
//   - Ctx: checked at the top of the main loop and before every
//     inter-reduction pass; a cancelled context aborts the run with
//     algebra.ErrCancelled and leaves no partial basis behind.
type Options struct {
	Precision int
	Integral  bool
	Verbose   int
	Ctx       context.Context
}

func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}

func (o Options) mode() algebra.Mode {
	if o.Integral {
		return algebra.ModeIntegral
	}

	return algebra.ModeField
}

func (o Options) logf(level int, format string, args ...interface{}) {
	if o.Verbose < level {
		return
	}
	stderrLog.Printf(format, args...)
}

// metricsLabel names this run for the metrics package, which labels
// its counters and gauges by algorithm.
func (o Options) metricsLabel() string {
	if o.Integral {
		return "buchberger-integral"
	}

	return "buchberger"
}
