package pairqueue

import "github.com/rrueger/tateideal/algebra"

// Record is a critical pair: the tuple (v, e, i, j, s). V and E are
// cached from S's leading term at push time so that ordering never
// needs to re-touch S.
//
// I and J index the working basis the pair was derived from. A
// sentinel of I == J == -1 marks a rescued element: S is then the
// element to re-insert, not an S-polynomial to reduce.
type Record struct {
	// V is the leading valuation of S.
	V int
	// E is the leading exponent of S.
	E []int
	// I and J are the working-basis indices this pair was derived
	// from, or -1, -1 for a rescued element.
	I, J int
	// S is the S-polynomial (or, for a rescued Record, the element
	// being re-inserted).
	S algebra.Element
}

// IsRescue reports whether this Record is a rescued-element sentinel
// rather than a proper critical pair.
func (r Record) IsRescue() bool {
	return r.I == -1 && r.J == -1
}

// NewRecord builds a Record from an S-polynomial element and the
// working-basis indices it came from, caching its ordering key.
func NewRecord(i, j int, s algebra.Element) Record {
	return Record{
		V: s.Valuation(),
		E: s.LeadingTerm().Exponent(),
		I: i,
		J: j,
		S: s,
	}
}

// NewRescue builds a rescued-element Record for re-insertion.
func NewRescue(s algebra.Element) Record {
	return Record{V: s.Valuation(), E: s.LeadingTerm().Exponent(), I: -1, J: -1, S: s}
}

// less implements the lexicographic order on (V, E): smaller valuation
// first, ties broken by lexicographically smaller exponent.
func less(a, b Record) bool {
	if a.V != b.V {
		return a.V < b.V
	}
	n := len(a.E)
	if len(b.E) < n {
		n = len(b.E)
	}
	for k := 0; k < n; k++ {
		if a.E[k] != b.E[k] {
			return a.E[k] < b.E[k]
		}
	}

	return len(a.E) < len(b.E)
}
