package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"brain-tutor/internal/domain"
	"brain-tutor/internal/service"
)

const (
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
	colorReset = "\033[0m"
)

// Corre la bateria de regresion de la tabla de politicas por el camino
// determinista del motor e imprime un veredicto por escenario.
func main() {
	dominanceFlag := flag.String("dominance", "", "run only one dominance type (left|right|balanced)")
	verbose := flag.Bool("verbose", false, "print full responses")
	flag.Parse()

	dominance := domain.DominanceType(strings.TrimSpace(*dominanceFlag))
	if dominance != "" && !dominance.IsValid() {
		fmt.Fprintln(os.Stderr, "dominance must be left, right or balanced")
		os.Exit(2)
	}

	results := service.RunSelfTest(dominance)
	passed := 0

	for _, r := range results {
		status := colorRed + "FAIL" + colorReset
		if r.Analysis.Passed {
			status = colorGreen + "PASS" + colorReset
			passed++
		}
		fmt.Printf("%s[%s]%s %s (%s/%s) content=%d alignment=%d overall=%d %s\n",
			colorCyan, r.Scenario.ID, colorReset,
			r.Scenario.Description,
			r.Scenario.Dominance, r.Scenario.Category,
			r.Analysis.ContentScore, r.Analysis.AlignmentScore, r.Analysis.OverallScore,
			status,
		)
		if *verbose {
			fmt.Printf("--- input: %s\n--- response:\n%s\n\n", r.Scenario.Input, r.Response)
		}
	}

	fmt.Printf("\n%d/%d scenarios passed\n", passed, len(results))
	if passed < len(results) {
		os.Exit(1)
	}
}
