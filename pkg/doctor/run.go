package doctor

import "github.com/denvtool/denv/pkg/check"

// Run executes checkers sequentially and collects their results in
// order. There is no shared state between checks; the verdict is a fold
// over the returned slice.
func Run(checkers []check.Checker) []check.Result {
	results := make([]check.Result, 0, len(checkers))
	for _, c := range checkers {
		results = append(results, c.Run())
	}
	return results
}

// Summary is the fold of a run's results.
type Summary struct {
	Passed int
	Warned int
	Fatal  int
}

// Summarize counts results by status.
func Summarize(results []check.Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status {
		case check.StatusOK:
			s.Passed++
		case check.StatusWarn:
			s.Warned++
		case check.StatusFail:
			s.Fatal++
		}
	}
	return s
}

// Ok reports whether setup may proceed. Warnings are advisory unless
// strict mode promotes them.
func (s Summary) Ok(strict bool) bool {
	if s.Fatal > 0 {
		return false
	}
	if strict && s.Warned > 0 {
		return false
	}
	return true
}
