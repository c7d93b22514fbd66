package verify

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/colmatch/internal/config"
	"github.com/standardbeagle/colmatch/internal/matcher"
)

// maxRank aliases the engine's result cap for report wording
const maxRank = matcher.MaxResults

// CaseResult is the outcome of one fixture case
type CaseResult struct {
	Case      Case              `json:"case"`
	Found     bool              `json:"found"`
	Score     float64           `json:"score"`
	Algorithm matcher.Algorithm `json:"algorithm,omitempty"`
	Passed    bool              `json:"passed"`
	Err       error             `json:"-"`
	ErrString string            `json:"error,omitempty"`
}

// FileResult collects the outcomes of one fixture file
type FileResult struct {
	Path  string       `json:"path"`
	Cases []CaseResult `json:"cases"`
	Err   error        `json:"-"`
	// ErrString mirrors Err for JSON output
	ErrString string `json:"error,omitempty"`
}

// Summary tallies a whole verification run
type Summary struct {
	Files  int `json:"files"`
	Cases  int `json:"cases"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
	Errors int `json:"errors"`
}

// OK reports whether the run is clean: no failures and no errors
func (s Summary) OK() bool {
	return s.Failed == 0 && s.Errors == 0
}

// Run verifies the given fixture files concurrently. Every file gets its
// own matcher instance, so no similarity cache is shared across
// goroutines. The base config supplies the schema for fixtures that do not
// declare their own, plus the abbreviation dictionary and stemming flag.
func Run(ctx context.Context, paths []string, base *config.Config) ([]FileResult, Summary) {
	results := make([]FileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = FileResult{Path: path, Err: err, ErrString: err.Error()}
				return nil
			}
			results[i] = runFile(path, base)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures live in results

	var summary Summary
	summary.Files = len(results)
	for _, fr := range results {
		if fr.Err != nil {
			summary.Errors++
			continue
		}
		for _, cr := range fr.Cases {
			summary.Cases++
			switch {
			case cr.Err != nil:
				summary.Errors++
			case cr.Passed:
				summary.Passed++
			default:
				summary.Failed++
			}
		}
	}
	return results, summary
}

func runFile(path string, base *config.Config) FileResult {
	fixture, err := LoadFixture(path)
	if err != nil {
		return FileResult{Path: path, Err: err, ErrString: err.Error()}
	}

	columns := fixture.Schema.Columns
	if len(columns) == 0 {
		columns = base.Schema.Columns
	}

	m := matcher.New(columns)
	if len(base.Abbreviations) > 0 {
		m.UseDictionary(matcher.NewDictionary(base.Abbreviations))
	}
	if base.Match.Stemming {
		m.EnableStemming()
	}

	result := FileResult{Path: path, Cases: make([]CaseResult, 0, len(fixture.Cases))}
	for _, c := range fixture.Cases {
		result.Cases = append(result.Cases, evaluateCase(m, c))
	}
	return result
}

// evaluateCase retrieves the unfiltered ranking for a case's source column
// and checks the expected match's score against the threshold expression.
// An expected match missing from the top 5 passes only when the expression
// is satisfied by absence.
func evaluateCase(m *matcher.Matcher, c Case) CaseResult {
	expectation, err := ParseExpectation(c.ExpectedScore)
	if err != nil {
		return CaseResult{Case: c, Err: err, ErrString: err.Error()}
	}

	result := CaseResult{Case: c}
	for _, candidate := range m.FindBestMatches(c.Source, 0) {
		if candidate.Column == c.ExpectedMatch {
			result.Found = true
			result.Score = candidate.Score
			result.Algorithm = candidate.Algorithm
			break
		}
	}

	if result.Found {
		result.Passed = expectation.Evaluate(result.Score)
	} else {
		result.Passed = expectation.SatisfiedByAbsence()
	}
	return result
}
