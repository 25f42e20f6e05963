package fixture_test

import (
	"math/big"
	"testing"

	"github.com/rrueger/tateideal/internal/fixture"
)

func TestInverseOfUnitRescalesToPurePowerOfPi(t *testing.T) {
	r := fixture.NewIntegerRing(3)
	lc := big.NewRat(15, 1) // 15 = 5 * 3, unit part is 5
	inv := r.InverseOfUnit(lc)

	rescaled := new(big.Rat).Mul(lc, inv.(*big.Rat))
	// rescaled should be a pure power of 3: 15 * (1/5) = 3
	want := big.NewRat(3, 1)
	if rescaled.Cmp(want) != 0 {
		t.Fatalf("rescaled leading coefficient = %v, want %v", rescaled, want)
	}
}

func TestFieldRingIsField(t *testing.T) {
	if !fixture.NewFieldRing(3).IsField() {
		t.Fatalf("NewFieldRing(3).IsField() = false, want true")
	}
	if fixture.NewIntegerRing(3).IsField() {
		t.Fatalf("NewIntegerRing(3).IsField() = true, want false")
	}
}
