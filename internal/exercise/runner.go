package exercise

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Runner checks the cases of a set, optionally in parallel.
type Runner struct {
	Parallel int // worker count; <=1 means serial
}

// Summary aggregates the verdicts of a run.
type Summary struct {
	Passed  int
	Failed  int
	Skipped int
}

// Total returns the number of cases the summary covers.
func (s Summary) Total() int { return s.Passed + s.Failed + s.Skipped }

// Run checks every case of set and returns results in case order regardless
// of worker interleaving. The only error source is context cancellation.
func (r Runner) Run(ctx context.Context, set *Set) ([]Result, Summary, error) {
	results := make([]Result, len(set.Cases))

	workers := r.Parallel
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, c := range set.Cases {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = Check(c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Summary{}, err
	}

	var sum Summary
	for _, res := range results {
		switch res.Verdict {
		case VerdictPass:
			sum.Passed++
		case VerdictFail:
			sum.Failed++
		case VerdictSkip:
			sum.Skipped++
		}
	}
	return results, sum, nil
}
