// SPDX-License-Identifier: MIT

package preset

import (
	"context"
	"fmt"
	"runtime"

	"github.com/katalvlaran/prunesize/estimate"
	"golang.org/x/sync/errgroup"
)

// Result is one computed section.
type Result struct {
	Section Section
	Title   string
	Table   *estimate.Table
}

// Run computes every section concurrently and returns results in section order.
// A cancelled ctx stops sections that have not started yet.
func (p Preset) Run(ctx context.Context) ([]Result, error) {
	results := make([]Result, len(p.Sections))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range p.Sections {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tbl, err := s.Compute(p)
			if err != nil {
				return fmt.Errorf("preset %s: section %d (%s): %w", p.Name, i, s.Mode, err)
			}
			results[i] = Result{Section: s, Title: s.Describe(tbl), Table: tbl}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
