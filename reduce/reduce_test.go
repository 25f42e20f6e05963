package reduce_test

import (
	"errors"
	"testing"

	"github.com/rrueger/tateideal/algebra"
	"github.com/rrueger/tateideal/internal/fixture"
	"github.com/rrueger/tateideal/reduce"
)

func TestReduceExactDivisionLeavesZeroRemainder(t *testing.T) {
	f := fixture.NewElement(3, 10, []fixture.RawTerm{{Exponent: []int{2}, Coeff: 9}})
	d := fixture.NewElement(3, 10, []fixture.RawTerm{{Exponent: []int{1}, Coeff: 3}})

	quots, rem, err := reduce.Reduce(f, []algebra.Element{d}, reduce.Options{Mode: algebra.ModeField})
	if err != nil {
		t.Fatalf("Reduce returned error: %v", err)
	}
	if !rem.IsZero() {
		t.Fatalf("remainder = %v, want zero", rem)
	}
	if quots[0].IsZero() {
		t.Fatalf("quotient[0] is zero, want the exact quotient 3x")
	}
}

func TestReduceNoApplicableDivisorLeavesInputUnreduced(t *testing.T) {
	f := fixture.NewElement(3, 10, []fixture.RawTerm{{Exponent: []int{2}, Coeff: 9}})
	d := fixture.NewElement(3, 10, []fixture.RawTerm{{Exponent: []int{3}, Coeff: 3}})

	quots, rem, err := reduce.Reduce(f, []algebra.Element{d}, reduce.Options{Mode: algebra.ModeField, ReduceTail: false})
	if err != nil {
		t.Fatalf("Reduce returned error: %v", err)
	}
	if !rem.Equal(f) {
		t.Fatalf("remainder = %v, want unreduced input %v", rem, f)
	}
	if !quots[0].IsZero() {
		t.Fatalf("quotient[0] = %v, want zero", quots[0])
	}
}

func TestReduceTailMovesUndividedTermsIntoRemainder(t *testing.T) {
	f := fixture.NewElement(3, 10, []fixture.RawTerm{
		{Exponent: []int{2}, Coeff: 9},
		{Exponent: []int{0}, Coeff: 1},
	})
	d := fixture.NewElement(3, 10, []fixture.RawTerm{{Exponent: []int{1}, Coeff: 3}})

	_, remNoTail, err := reduce.Reduce(f, []algebra.Element{d}, reduce.Options{Mode: algebra.ModeField, ReduceTail: false})
	if err != nil {
		t.Fatalf("Reduce returned error: %v", err)
	}
	if remNoTail.IsZero() {
		t.Fatalf("ReduceTail: false remainder is zero, want the undivided constant term to remain")
	}

	_, remTail, err := reduce.Reduce(f, []algebra.Element{d}, reduce.Options{Mode: algebra.ModeField, ReduceTail: true})
	if err != nil {
		t.Fatalf("Reduce returned error: %v", err)
	}
	want := fixture.NewElement(3, 10, []fixture.RawTerm{{Exponent: []int{0}, Coeff: 1}})
	if !remTail.Equal(want) {
		t.Fatalf("ReduceTail: true remainder = %v, want %v", remTail, want)
	}
}

func TestReduceFiltersZeroDivisors(t *testing.T) {
	f := fixture.NewElement(3, 10, []fixture.RawTerm{{Exponent: []int{2}, Coeff: 9}})
	d := fixture.NewElement(3, 10, []fixture.RawTerm{{Exponent: []int{1}, Coeff: 3}})
	zero := fixture.Zero(3, 10)

	quots, rem, err := reduce.Reduce(f, []algebra.Element{zero, d}, reduce.Options{Mode: algebra.ModeField})
	if err != nil {
		t.Fatalf("Reduce returned error: %v", err)
	}
	if !rem.IsZero() {
		t.Fatalf("remainder = %v, want zero", rem)
	}
	if quots[0] != nil {
		t.Fatalf("quotient for filtered zero divisor = %v, want nil", quots[0])
	}
	if quots[1] == nil || quots[1].IsZero() {
		t.Fatalf("quotient[1] = %v, want the nonzero quotient for the live divisor", quots[1])
	}
}

func TestReduceRejectsNilDivisor(t *testing.T) {
	f := fixture.NewElement(3, 10, []fixture.RawTerm{{Exponent: []int{2}, Coeff: 9}})

	_, _, err := reduce.Reduce(f, []algebra.Element{nil}, reduce.Options{Mode: algebra.ModeField})
	if !errors.Is(err, reduce.ErrNilElement) {
		t.Fatalf("err = %v, want ErrNilElement", err)
	}
}

func TestReduceZeroInputReturnsZeroRemainderWithoutTouchingDivisors(t *testing.T) {
	f := fixture.Zero(3, 10)
	d := fixture.NewElement(3, 10, []fixture.RawTerm{{Exponent: []int{1}, Coeff: 3}})

	quots, rem, err := reduce.Reduce(f, []algebra.Element{d}, reduce.Options{Mode: algebra.ModeField})
	if err != nil {
		t.Fatalf("Reduce returned error: %v", err)
	}
	if !rem.IsZero() {
		t.Fatalf("remainder = %v, want zero", rem)
	}
	if quots != nil {
		t.Fatalf("quots = %v, want nil for a zero input that short-circuits before QuoRem", quots)
	}
}

func TestReduceRequireNonzeroRemainderFlagsPrecisionExhaustedZero(t *testing.T) {
	// f is only declared to precision 3, but the divisor carries more
	// precision (5); a zero remainder under these precisions has not
	// been certified past the weaker of the two, so the flag must fire
	// even though the cancellation here happens to be exact.
	f := fixture.NewElement(3, 3, []fixture.RawTerm{{Exponent: []int{1}, Coeff: 9}})
	d := fixture.NewElement(3, 5, []fixture.RawTerm{{Exponent: []int{0}, Coeff: 3}})

	_, _, err := reduce.Reduce(f, []algebra.Element{d}, reduce.Options{Mode: algebra.ModeField, RequireNonzeroRemainder: true})
	if !errors.Is(err, algebra.ErrPrecisionExhausted) {
		t.Fatalf("err = %v, want ErrPrecisionExhausted", err)
	}
}

func TestReduceRequireNonzeroRemainderAllowsGenuineNonzeroRemainder(t *testing.T) {
	f := fixture.NewElement(3, 10, []fixture.RawTerm{{Exponent: []int{2}, Coeff: 9}})
	d := fixture.NewElement(3, 10, []fixture.RawTerm{{Exponent: []int{3}, Coeff: 3}})

	_, rem, err := reduce.Reduce(f, []algebra.Element{d}, reduce.Options{Mode: algebra.ModeField, RequireNonzeroRemainder: true})
	if err != nil {
		t.Fatalf("Reduce returned error: %v", err)
	}
	if rem.IsZero() {
		t.Fatalf("remainder is zero, want the unreduced nonzero input")
	}
}
