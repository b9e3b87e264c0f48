// Command tableaux classifies propositional logic formulas as tautologies,
// contradictions or contingencies using the method of analytic tableaux,
// and prints an explanation of each verdict.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hendrixgg/Analytic-Tableaux-Method/classify"
	"github.com/hendrixgg/Analytic-Tableaux-Method/formula"
)

var rootCmd = &cobra.Command{
	Use:   "tableaux",
	Short: "A propositional logic prover based on analytic tableaux",
	Long: "tableaux decides whether a propositional formula is a tautology, a contradiction\n" +
		"or a contingency, and explains why: the minimal sets of atoms responsible for a\n" +
		"tautology or contradiction, and the minimal assignment patterns making a\n" +
		"contingent formula true or false.",
}

var proveCmd = &cobra.Command{
	Use:   "prove [formula]",
	Short: "Classify a formula and explain the verdict",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(log.DebugLevel)
		}
		index, _ := cmd.Flags().GetInt("index")
		var text string
		switch {
		case len(args) == 1:
			text = args[0]
		case index >= 0:
			if index >= len(catalog) {
				return fmt.Errorf("no catalog formula at index %d, have %d", index, len(catalog))
			}
			text = catalog[index]
		default:
			return fmt.Errorf("expected a formula argument or --index")
		}
		f, err := formula.Parse(text)
		if err != nil {
			return err
		}
		printVerdict(f, classify.Classify(f))
		return nil
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the built-in example formulas",
	Run: func(cmd *cobra.Command, args []string) {
		for i, text := range catalog {
			fmt.Printf("%2d  %s\n", i, text)
		}
	},
}

func printVerdict(f formula.Formula, v classify.Verdict) {
	fmt.Println(f)
	switch v.Kind {
	case classify.Tautology:
		color.Green("%s", v.Kind)
		printCauses(v.Causes)
	case classify.Contradiction:
		color.Red("%s", v.Kind)
		printCauses(v.Causes)
	case classify.Contingency:
		color.Yellow("%s", v.Kind)
		fmt.Printf("true when:  %s\n", joinClauses(v.TrueOn))
		fmt.Printf("false when: %s\n", joinClauses(v.FalseOn))
	}
}

func printCauses(causes [][]string) {
	parts := make([]string, len(causes))
	for i, cause := range causes {
		parts[i] = "{" + strings.Join(cause, ", ") + "}"
	}
	fmt.Printf("minimal causes: %s\n", strings.Join(parts, ", "))
}

func joinClauses(clauses []classify.Clause) string {
	parts := make([]string, len(clauses))
	for i, c := range clauses {
		parts[i] = "(" + c.String() + ")"
	}
	return strings.Join(parts, " or ")
}

func init() {
	proveCmd.Flags().IntP("index", "i", -1, "classify the catalog formula at this index")
	proveCmd.Flags().BoolP("verbose", "v", false, "log the minimal-cause search at debug level")
	rootCmd.AddCommand(proveCmd)
	rootCmd.AddCommand(catalogCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
