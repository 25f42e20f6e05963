package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/rrueger/tateideal/ideal"
)

func algorithmOpts() ideal.Options {
	return ideal.Options{
		Precision: flagPrecision,
		Algorithm: ideal.Algorithm(flagAlgorithm),
		Verbose:   flagVerbose,
	}
}

func runBasis(cmd *cobra.Command, args []string) error {
	f, err := loadIdealFixture(args[0])
	if err != nil {
		return err
	}

	_, _, id := buildIdeal(f)

	opts := algorithmOpts()
	basis, err := id.GroebnerBasis(opts)
	if err != nil {
		return fmt.Errorf("basis: %w", err)
	}

	if flagVerbose >= 1 {
		log.Printf("[%s] computed a %d-element basis", requestID, len(basis))
	}

	for i, g := range basis {
		fmt.Printf("gb[%d] = %s\n", i, formatElement(g))
	}

	return nil
}
