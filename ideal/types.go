package ideal

import "context"

// Algorithm selects which driver computes a Gröbner basis.
type Algorithm string

const (
	// Buchberger runs the valuation-aware Buchberger driver in field
	// mode (monomial-only divisibility).
	Buchberger Algorithm = "buchberger"
	// BuchbergerIntegral runs the valuation-aware Buchberger driver in
	// integral mode (divisibility accounts for π-valuation).
	BuchbergerIntegral Algorithm = "buchberger-integral"
	// F5 runs the signature-based F5 driver, always in field mode (see
	// DESIGN.md for why it has no integral variant).
	F5 Algorithm = "F5"
)

// DefaultPrecision is used when an Options value leaves Precision
// unset (zero). Matches the scale of the worked end-to-end examples
// (precision caps of 5 and 10).
const DefaultPrecision = 20

// Options configures a Gröbner basis computation requested through
// the ideal surface.
type Options struct {
	// Precision is the absolute precision target. Zero means
	// DefaultPrecision.
	Precision int
	// Algorithm selects the driver. Zero value ("") means Buchberger.
	Algorithm Algorithm
	// Verbose is the 0-4 verbosity level forwarded to the driver.
	Verbose int
	// Ctx is the cancellation token forwarded to the driver. Nil means
	// context.Background().
	Ctx context.Context
}

func (o Options) normalize() Options {
	if o.Precision <= 0 {
		o.Precision = DefaultPrecision
	}
	if o.Algorithm == "" {
		o.Algorithm = Buchberger
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}

	return o
}

type cacheKey struct {
	precision int
	algorithm Algorithm
}

// CompareOp is a rich-comparison operator lifted from Contains.
type CompareOp int

const (
	// Lt is strict containment: I1 ⊆ I2 and I1 ≠ I2.
	Lt CompareOp = iota
	// Le is containment: I1 ⊆ I2.
	Le
	// Eq is mutual containment: I1 ⊆ I2 and I2 ⊆ I1.
	Eq
	// Ge is the reverse of Le: I2 ⊆ I1.
	Ge
	// Gt is the reverse of Lt: I2 ⊆ I1 and I1 ≠ I2.
	Gt
	// Ne is the negation of Eq.
	Ne
)
