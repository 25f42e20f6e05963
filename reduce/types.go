package reduce

import (
	"errors"

	"github.com/rrueger/tateideal/algebra"
)

// ErrNilElement indicates a nil element was passed where a non-nil one
// was required.
var ErrNilElement = errors.New("reduce: nil element")

// Options configures a single call to Reduce.
type Options struct {
	// Mode selects monomial-only or valuation-aware divisibility.
	Mode algebra.Mode
	// ReduceTail requests continued reduction of every term of the
	// remainder, not just the leading one.
	ReduceTail bool
	// RequireNonzeroRemainder asks Reduce to distinguish a certified
	// zero remainder from one that merely ran out of precision before
	// cancellation could be verified; see DESIGN.md for the exact
	// rule. Most callers (the drivers' own internal reduction steps)
	// leave this false, since a zero remainder there is a legitimate
	// "this pair reduces away" outcome, not a membership question.
	RequireNonzeroRemainder bool
}
