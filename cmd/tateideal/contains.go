package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

func runContains(cmd *cobra.Command, args []string) error {
	idealFile, elemFile := args[0], args[1]

	idf, err := loadIdealFixture(idealFile)
	if err != nil {
		return err
	}
	ef, err := loadElementFixture(elemFile)
	if err != nil {
		return err
	}

	_, _, id := buildIdeal(idf)
	elem := buildElement(ef)

	opts := algorithmOpts()
	ok, err := id.Membership(elem, opts)
	if err != nil {
		return fmt.Errorf("contains: %w", err)
	}

	if flagVerbose >= 1 {
		log.Printf("[%s] membership check complete", requestID)
	}

	fmt.Println(ok)

	return nil
}
