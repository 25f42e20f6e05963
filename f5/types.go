package f5

import (
	"context"
	"log"
	"os"

	"github.com/rrueger/tateideal/algebra"
)

var stderrLog = log.New(os.Stderr, "f5: ", 0)

// Options configures a single call to Run. F5's signature machinery
// is only meaningful under monomial-only divisibility; the driver
// always runs in field mode (see DESIGN.md), so there is no Integral
// flag to set.
type Options struct {
	Precision int
	Verbose   int
	Ctx       context.Context
}

func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}

func (o Options) logf(level int, format string, args ...interface{}) {
	if o.Verbose < level {
		return
	}
	stderrLog.Printf(format, args...)
}

// Signature is a Tate term tagging a basis element with the monomial
// multiplier by which it first arose from an input generator, or the
// distinguished "null" sentinel used for elements carried over from a
// previous generator's already-canonicalised basis.
type Signature struct {
	Term algebra.Term
	Null bool
}

// SignedElement pairs a signature with the element it tags.
type SignedElement struct {
	Sig Signature
	Val algebra.Element
}

// sigLess orders signatures for the J-pair heap: a null signature is
// smaller than every concrete one (mirroring "if one signature is
// null, the other wins" in Jpair's tie-break), and two concrete
// signatures compare by the term order.
func sigLess(a, b Signature) bool {
	if a.Null && b.Null {
		return false
	}
	if a.Null {
		return true
	}
	if b.Null {
		return false
	}

	return a.Term.Less(b.Term)
}

// sigEqual reports whether two concrete signatures are equal under
// the term order (neither strictly less than the other).
func sigEqual(a, b algebra.Term) bool {
	return !a.Less(b) && !b.Less(a)
}
