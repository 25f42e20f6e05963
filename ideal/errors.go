package ideal

import "errors"

// ErrUnknownCompareOp indicates a CompareOp value outside the declared
// Lt/Le/Eq/Ge/Gt/Ne set was passed to Compare.
var ErrUnknownCompareOp = errors.New("ideal: unknown compare operator")
