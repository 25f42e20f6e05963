package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/rrueger/tateideal/ideal"
)

func parseCompareOp(s string) (ideal.CompareOp, error) {
	switch s {
	case "lt":
		return ideal.Lt, nil
	case "le":
		return ideal.Le, nil
	case "eq":
		return ideal.Eq, nil
	case "ge":
		return ideal.Ge, nil
	case "gt":
		return ideal.Gt, nil
	case "ne":
		return ideal.Ne, nil
	default:
		return 0, fmt.Errorf("compare: unknown --op %q (want lt, le, eq, ge, gt, ne)", s)
	}
}

func runCompare(cmd *cobra.Command, args []string) error {
	lhsFile, rhsFile := args[0], args[1]

	op, err := parseCompareOp(flagOp)
	if err != nil {
		return err
	}

	lf, err := loadIdealFixture(lhsFile)
	if err != nil {
		return err
	}
	rf, err := loadIdealFixture(rhsFile)
	if err != nil {
		return err
	}

	_, _, lhs := buildIdeal(lf)
	_, _, rhs := buildIdeal(rf)

	opts := algorithmOpts()
	ok, err := lhs.Compare(rhs, op, opts)
	if err != nil {
		return fmt.Errorf("compare: %w", err)
	}

	if flagVerbose >= 1 {
		log.Printf("[%s] comparison complete", requestID)
	}

	fmt.Println(ok)

	return nil
}
