package fixture

import (
	"math/big"

	"github.com/rrueger/tateideal/algebra"
)

// ring is either the p-adic field Q_p (field=true) or its valuation
// ring Z_p (field=false), for a fixed prime p.
type ring struct {
	p     int64
	field bool
}

var _ algebra.Ring = ring{}

// NewFieldRing returns the fraction field Q_p for prime p.
func NewFieldRing(p int64) algebra.Ring {
	return ring{p: p, field: true}
}

// NewIntegerRing returns the valuation ring Z_p for prime p.
func NewIntegerRing(p int64) algebra.Ring {
	return ring{p: p, field: false}
}

func (r ring) IsField() bool { return r.field }

func (r ring) InverseOfUnit(lc algebra.Coefficient) algebra.Coefficient {
	c := lc.(*big.Rat)
	v := valuationOf(c, r.p)
	pk := new(big.Int).Exp(big.NewInt(r.p), big.NewInt(absInt(v)), nil)
	unit := new(big.Rat)
	if v >= 0 {
		unit.Quo(c, new(big.Rat).SetInt(pk))
	} else {
		unit.Mul(c, new(big.Rat).SetInt(pk))
	}

	return new(big.Rat).Inv(unit)
}

func absInt(v int) int64 {
	if v < 0 {
		return int64(-v)
	}

	return int64(v)
}
