package buchberger_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rrueger/tateideal/algebra"
	"github.com/rrueger/tateideal/buchberger"
	"github.com/rrueger/tateideal/internal/fixture"
	"github.com/rrueger/tateideal/reduce"
)

func TestRunOnCoprimeGeneratorsSeedsNoPairs(t *testing.T) {
	f := fixture.NewElement(3, 10, []fixture.RawTerm{{Exponent: []int{2, 0}, Coeff: 1}})
	g := fixture.NewElement(3, 10, []fixture.RawTerm{{Exponent: []int{0, 3}, Coeff: 1}})

	rgb, err := buchberger.Run([]algebra.Element{f, g}, buchberger.Options{Precision: 5})
	require.NoError(t, err)
	require.Len(t, rgb, 2, "coprime leading terms produce no S-polynomials")

	wantF := f.AddBigOh(f.Valuation() + 5)
	wantG := g.AddBigOh(g.Valuation() + 5)
	require.True(t, rgb[0].Equal(wantF), "rgb[0] = %v, want truncated f", rgb[0])
	require.True(t, rgb[1].Equal(wantG), "rgb[1] = %v, want truncated g", rgb[1])
}

func TestRunDropsGeneratorDominatedByAnother(t *testing.T) {
	f := fixture.NewElement(3, 10, []fixture.RawTerm{{Exponent: []int{1, 0}, Coeff: 1}})
	g := fixture.NewElement(3, 10, []fixture.RawTerm{
		{Exponent: []int{2, 0}, Coeff: 1},
		{Exponent: []int{0, 1}, Coeff: 1},
	})

	rgb, err := buchberger.Run([]algebra.Element{f, g}, buchberger.Options{Precision: 5})
	require.NoError(t, err)
	require.Len(t, rgb, 1, "lead(f)=x divides lead(g)=x^2, so g is redundant")
	require.True(t, rgb[0].Equal(f.AddBigOh(f.Valuation()+5)), "rgb[0] = %v, want truncated f", rgb[0])
}

func TestRunRejectsNonPositivePrecision(t *testing.T) {
	f := fixture.NewElement(3, 10, []fixture.RawTerm{{Exponent: []int{1, 0}, Coeff: 1}})

	_, err := buchberger.Run([]algebra.Element{f}, buchberger.Options{Precision: 0})
	require.ErrorIs(t, err, algebra.ErrInvalidPrecision)
}

func TestRunOnEmptyGeneratorListReturnsEmptyBasis(t *testing.T) {
	rgb, err := buchberger.Run(nil, buchberger.Options{Precision: 5})
	require.NoError(t, err)
	require.Empty(t, rgb)
}

// TestRunProducesAMinimalBasisContainingTheGenerators exercises a
// case where the two seed generators are neither coprime nor in a
// divisibility relation, forcing the main loop to actually reduce a
// non-zero S-polynomial and grow the basis. Rather than predicting the
// exact output by hand, it checks the two properties the driver is
// required to establish: every original generator reduces to zero
// against the final basis (the defining membership property), and no
// leading term of one basis element divides another's (minimality).
func TestRunProducesAMinimalBasisContainingTheGenerators(t *testing.T) {
	f := fixture.NewElement(3, 10, []fixture.RawTerm{
		{Exponent: []int{2, 0}, Coeff: 1},
		{Exponent: []int{0, 1}, Coeff: 1},
	})
	g := fixture.NewElement(3, 10, []fixture.RawTerm{
		{Exponent: []int{1, 1}, Coeff: 1},
		{Exponent: []int{0, 0}, Coeff: 1},
	})

	rgb, err := buchberger.Run([]algebra.Element{f, g}, buchberger.Options{Precision: 5})
	require.NoError(t, err)
	require.NotEmpty(t, rgb, "want a non-trivial basis")

	for _, gen := range []algebra.Element{f, g} {
		_, rem, err := reduce.Reduce(gen, rgb, reduce.Options{Mode: algebra.ModeField, ReduceTail: true})
		require.NoError(t, err)
		require.True(t, rem.IsZero(), "generator %v did not reduce to zero against the computed basis, remainder = %v", gen, rem)
	}

	for i := range rgb {
		for j := range rgb {
			if i == j {
				continue
			}
			require.False(t, rgb[j].LeadingTerm().Divides(rgb[i].LeadingTerm(), algebra.ModeField),
				"rgb[%d]'s leading term divides rgb[%d]'s: basis is not minimal", j, i)
		}
	}
}
