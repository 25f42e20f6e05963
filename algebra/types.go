package algebra

// Mode selects which divisibility rule a Term.Divides or
// Element.QuoRem call uses. ModeField ignores valuation and compares
// exponents only ("monomial-divides"); ModeIntegral additionally
// requires the dividing term's valuation to be no greater than the
// dividend's ("integral-divides").
type Mode int

const (
	// ModeField is monomial-only divisibility, used when working over
	// the fraction field K.
	ModeField Mode = iota
	// ModeIntegral is valuation-aware divisibility, used when working
	// over the valuation ring O.
	ModeIntegral
)

func (m Mode) String() string {
	if m == ModeIntegral {
		return "integral"
	}

	return "field"
}

// Coefficient is an opaque scalar from the base ring. The engine never
// inspects a Coefficient directly; it only passes one between Element
// and Ring methods.
type Coefficient = any

// Term is a monomial carrying a coefficient valuation, totally ordered
// by a fixed monomial order refining (valuation, exponent).
type Term interface {
	// Exponent returns this term's exponent vector.
	Exponent() []int
	// LeadValuation returns this term's coefficient valuation.
	LeadValuation() int
	// Less reports whether this term sorts strictly before other under
	// the fixed monomial order.
	Less(other Term) bool
	// Lcm returns the least common multiple of this term and other.
	Lcm(other Term) Term
	// Quo returns this term divided by other, assuming other divides
	// this term (monomial quotient).
	Quo(other Term) Term
	// Divides reports whether this term divides other under the given
	// mode.
	Divides(other Term, mode Mode) bool
	// IsCoprimeWith reports whether this term and other share no
	// common variable in their exponents.
	IsCoprimeWith(other Term) bool
}

// QuoRemOptions configures Element.QuoRem.
type QuoRemOptions struct {
	// Mode selects monomial-only or valuation-aware divisibility.
	Mode Mode
	// ReduceTail requests continued reduction of every term of the
	// remainder, not just the leading one.
	ReduceTail bool
}

// Element is a finite-precision Tate series: a sum of Terms, leading
// term first, truncated at some absolute precision.
type Element interface {
	// Terms returns this element's terms, leading term first.
	Terms() []Term
	// LeadingTerm returns the leading term, or panics if IsZero.
	LeadingTerm() Term
	// LeadingCoefficient returns the coefficient of the leading term.
	LeadingCoefficient() Coefficient
	// Valuation returns the minimum term valuation (the Gauss
	// valuation of this element).
	Valuation() int
	// PrecisionAbsolute returns N such that this element is known
	// modulo O(pi^N).
	PrecisionAbsolute() int
	// AddBigOh returns this element truncated to absolute precision n.
	AddBigOh(n int) Element
	// IsZero reports whether every term of this element is zero given
	// its current precision.
	IsZero() bool
	// Equal reports value equality (including precision) with other.
	Equal(other Element) bool
	// Monic returns this element scaled so its leading coefficient is
	// the ring's multiplicative identity.
	Monic() Element
	// PositivePiShift returns this element multiplied by pi^k (k >= 0).
	PositivePiShift(k int) Element
	// SPolynomial returns the S-polynomial of this element and other.
	SPolynomial(other Element) Element
	// QuoRem divides this element by divisors, returning the
	// quotients (one per divisor, same order) and the remainder.
	QuoRem(divisors []Element, opts QuoRemOptions) (quotients []Element, remainder Element)
	// MulTerm returns this element scaled by the term t.
	MulTerm(t Term) Element
	// MulScalar returns this element scaled by the coefficient c.
	MulScalar(c Coefficient) Element
}

// Ring is the base discrete valuation ring or its fraction field.
type Ring interface {
	// IsField reports whether this ring is a field (no nontrivial
	// valuation ideal) as opposed to a ring of integers.
	IsField() bool
	// InverseOfUnit returns the inverse of the unit part of lc, i.e.
	// the scalar that rescales lc to a pure power of the uniformizer.
	InverseOfUnit(lc Coefficient) Coefficient
}

// Monoid is the monoid of terms: it supplies the multiplicative
// identity term and constructs fresh terms from raw data.
type Monoid interface {
	// One returns the multiplicative identity term (exponent all
	// zero, valuation zero).
	One() Term
	// NewTerm constructs a term from an exponent vector and a
	// valuation.
	NewTerm(exponent []int, valuation int) Term
}

// MulTerms multiplies two terms by adding exponents and valuations,
// via monoid's constructor. It is an engine-side convenience, not a
// capability of Term itself — everything it touches (Exponent,
// LeadValuation, Monoid.NewTerm) is already a declared capability.
func MulTerms(monoid Monoid, a, b Term) Term {
	ea := a.Exponent()
	eb := b.Exponent()
	e := make([]int, len(ea))
	for i := range ea {
		e[i] = ea[i] + eb[i]
	}

	return monoid.NewTerm(e, a.LeadValuation()+b.LeadValuation())
}
