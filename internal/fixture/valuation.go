package fixture

import "math/big"

// valuationOf returns the p-adic valuation of the rational c, i.e. the
// integer v such that c = unit * p^v with unit's numerator and
// denominator both coprime to p. It panics if c is zero (the caller is
// expected to drop zero-coefficient terms instead of valuing them).
func valuationOf(c *big.Rat, p int64) int {
	if c.Sign() == 0 {
		panic("fixture: valuationOf of zero")
	}
	bp := big.NewInt(p)
	num := new(big.Int).Abs(c.Num())
	den := new(big.Int).Abs(c.Denom())

	v := 0
	for num.Sign() != 0 {
		q, r := new(big.Int), new(big.Int)
		q.DivMod(num, bp, r)
		if r.Sign() != 0 {
			break
		}
		num = q
		v++
	}
	for den.Sign() != 0 {
		q, r := new(big.Int), new(big.Int)
		q.DivMod(den, bp, r)
		if r.Sign() != 0 {
			break
		}
		den = q
		v--
	}

	return v
}
