package breakeven

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// SolveAll solves the request in every jurisdiction and orders the results
// by required revenue, lowest first
func (s *Solver) SolveAll(ctx context.Context, req Request) ([]Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	all := s.Engine.Registry.All()
	results := make([]Result, len(all))

	g, gctx := errgroup.WithContext(ctx)
	for i, j := range all {
		g.Go(func() error {
			r := req
			r.JurisdictionID = j.ID()
			res, err := s.Solve(gctx, r)
			if err != nil {
				return err
			}
			results[i] = *res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Revenue.LessThan(results[b].Revenue)
	})
	return results, nil
}
