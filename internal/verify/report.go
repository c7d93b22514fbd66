package verify

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteReport prints a human-readable verification report
func WriteReport(w io.Writer, results []FileResult, summary Summary) {
	for _, fr := range results {
		fmt.Fprintln(w, fr.Path)
		if fr.Err != nil {
			fmt.Fprintf(w, "  ERROR %v\n", fr.Err)
			continue
		}
		for _, cr := range fr.Cases {
			writeCaseLine(w, cr)
		}
	}

	fmt.Fprintf(w, "\n%d files, %d cases: %d passed, %d failed",
		summary.Files, summary.Cases, summary.Passed, summary.Failed)
	if summary.Errors > 0 {
		fmt.Fprintf(w, ", %d errors", summary.Errors)
	}
	fmt.Fprintln(w)
}

func writeCaseLine(w io.Writer, cr CaseResult) {
	label := cr.Case.Source + " -> " + cr.Case.ExpectedMatch
	if cr.Case.Category != "" {
		label += " [" + cr.Case.Category + "]"
	}

	switch {
	case cr.Err != nil:
		fmt.Fprintf(w, "  ERROR %s: %v\n", label, cr.Err)
	case cr.Passed && cr.Found:
		fmt.Fprintf(w, "  PASS  %s (score %.3f via %s, want %s)\n",
			label, cr.Score, cr.Algorithm, cr.Case.ExpectedScore)
	case cr.Passed:
		fmt.Fprintf(w, "  PASS  %s (absent from top %d, want %s)\n",
			label, maxRank, cr.Case.ExpectedScore)
	case cr.Found:
		fmt.Fprintf(w, "  FAIL  %s (score %.3f via %s, want %s)\n",
			label, cr.Score, cr.Algorithm, cr.Case.ExpectedScore)
	default:
		fmt.Fprintf(w, "  FAIL  %s (absent from top %d, want %s)\n",
			label, maxRank, cr.Case.ExpectedScore)
	}
}

// jsonReport is the envelope for machine-readable output
type jsonReport struct {
	Results []FileResult `json:"results"`
	Summary Summary      `json:"summary"`
}

// WriteJSONReport prints the verification report as indented JSON
func WriteJSONReport(w io.Writer, results []FileResult, summary Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{Results: results, Summary: summary})
}
