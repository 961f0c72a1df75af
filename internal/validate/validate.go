// Package validate checks schemas and changes in bulk. Individual status
// computation lives in the change package; this layer fans it out across
// every change in a project under a concurrency cap.
package validate

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/openspec-dev/openspec/internal/change"
	"github.com/openspec-dev/openspec/internal/fsio"
	"github.com/openspec-dev/openspec/internal/schema"
)

// Result is the outcome of validating one change.
type Result struct {
	Change     string `json:"change"`
	Schema     string `json:"schema,omitempty"`
	IsComplete bool   `json:"isComplete"`
	Done       int    `json:"done"`
	Total      int    `json:"total"`
	Err        error  `json:"-"`
	Error      string `json:"error,omitempty"`
}

// Changes validates every change under openspec/changes, computing each
// one's status concurrently with at most concurrency in flight. Results
// come back sorted by change name regardless of completion order.
func Changes(ctx context.Context, fsys fsio.FS, resolver *schema.Resolver, projectRoot, projectDefault string, concurrency int) ([]Result, error) {
	names, err := change.List(fsys, projectRoot)
	if err != nil {
		return nil, err
	}

	if concurrency < 1 {
		concurrency = 1
	}

	var mu sync.Mutex
	results := make([]Result, 0, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, name := range names {
		name := name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result := validateOne(fsys, resolver, projectRoot, name, projectDefault)

			mu.Lock()
			results = append(results, result)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Change < results[j].Change })
	return results, nil
}

// validateOne resolves a single change's schema and computes its status.
// Resolution failures are carried in the result rather than aborting the
// whole run.
func validateOne(fsys fsio.FS, resolver *schema.Resolver, projectRoot, name, projectDefault string) Result {
	schemaName := change.SchemaName(fsys, projectRoot, name, "", projectDefault)

	changeCtx, err := change.NewContext(fsys, resolver, projectRoot, name, schemaName)
	if err != nil {
		return Result{Change: name, Err: err, Error: err.Error()}
	}

	status := changeCtx.Status()
	result := Result{
		Change:     name,
		Schema:     status.Schema,
		IsComplete: status.IsComplete,
		Total:      len(status.Artifacts),
	}
	for _, a := range status.Artifacts {
		if a.Status == change.StateDone {
			result.Done++
		}
	}
	return result
}
