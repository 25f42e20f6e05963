package main

import (
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// requestID tags the CLI's own log lines for this invocation, set in
// rootCmd's PersistentPreRun. The drivers' log lines do not carry it.
var requestID string

var (
	flagPrecision int
	flagAlgorithm string
	flagVerbose   int
	flagOp        string

	rootCmd = &cobra.Command{
		Use:   "tateideal",
		Short: "Compute and compare Gröbner bases of ideals in the fixture Tate algebra",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			requestID = uuid.NewString()[:8]
			if flagVerbose >= 1 {
				log.Printf("[%s] %s starting", requestID, cmd.Name())
			}
		},
	}

	basisCmd = &cobra.Command{
		Use:   "basis <generators.json>",
		Short: "Print the Gröbner basis of the ideal described by generators.json",
		Args:  cobra.ExactArgs(1),
		RunE:  runBasis,
	}

	containsCmd = &cobra.Command{
		Use:   "contains <generators.json> <element.json>",
		Short: "Check whether element.json's element is a member of the ideal",
		Args:  cobra.ExactArgs(2),
		RunE:  runContains,
	}

	compareCmd = &cobra.Command{
		Use:   "compare <lhs.json> <rhs.json>",
		Short: "Compare two ideals with --op (lt, le, eq, ge, gt, ne)",
		Args:  cobra.ExactArgs(2),
		RunE:  runCompare,
	}
)

func init() {
	rootCmd.PersistentFlags().IntVar(&flagPrecision, "precision", 0, "absolute precision target (0 = ideal.DefaultPrecision)")
	rootCmd.PersistentFlags().StringVar(&flagAlgorithm, "algorithm", "buchberger", "groebner basis algorithm: buchberger, buchberger-integral, or F5")
	rootCmd.PersistentFlags().IntVarP(&flagVerbose, "verbose", "v", 0, "verbosity level 0-4 (see SPEC_FULL.md §6.1)")

	rootCmd.AddCommand(basisCmd)
	rootCmd.AddCommand(containsCmd)

	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVar(&flagOp, "op", "eq", "comparison operator: lt, le, eq, ge, gt, ne")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("tateideal: %v", err)
	}
}
