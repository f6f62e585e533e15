// Package runner drives the full hook pipeline: file selection,
// provisioning, execution, and result aggregation.
package runner

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/raphi011/precommit/internal/executor"
	"github.com/raphi011/precommit/internal/files"
	"github.com/raphi011/precommit/internal/hook"
	"github.com/raphi011/precommit/internal/provision"
	"github.com/raphi011/precommit/internal/report"
)

// Options configure a full run.
type Options struct {
	// DryRun reports what hooks would do without writing or spawning.
	DryRun bool
	// Jobs bounds hook-level parallelism. Zero means GOMAXPROCS.
	Jobs int
	// Root is the repository root; external commands run here.
	Root string
	// CacheDir holds provisioning markers.
	CacheDir string
	// Timeout bounds external hooks without a per-hook timeout.
	Timeout time.Duration
}

// RunAll executes every enabled hook against the input paths and returns
// the aggregated report. Hooks run concurrently, but outcomes keep the
// configured order, so the report is deterministic. A hook's failure never
// stops the others: every finding surfaces in a single pass.
func RunAll(ctx context.Context, descs []hook.Descriptor, inputs []string, opts Options) report.Report {
	var enabled []hook.Descriptor
	for _, d := range descs {
		if d.Enabled {
			enabled = append(enabled, d)
		}
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	mgr := provision.NewManager(opts.CacheDir, opts.Root)
	outcomes := make([]report.Outcome, len(enabled))

	var g errgroup.Group
	g.SetLimit(jobs)
	for i, d := range enabled {
		i, d := i, d
		g.Go(func() error {
			outcomes[i] = runOne(ctx, mgr, d, inputs, opts)
			return nil
		})
	}
	g.Wait()

	var r report.Report
	for _, o := range outcomes {
		r.Append(o)
	}
	return r
}

func runOne(ctx context.Context, mgr *provision.Manager, d hook.Descriptor, inputs []string, opts Options) report.Outcome {
	selected, err := files.Select(opts.Root, d.Include, d.Exclude, inputs)
	if err != nil {
		return report.Outcome{Hook: d.Name, Kind: report.ToolError, Message: err.Error()}
	}

	wouldProvision := false
	if d.Kind == hook.KindExternal && len(selected) > 0 {
		if opts.DryRun {
			// A dry run must not install anything or touch the cache.
			wouldProvision = !mgr.Provisioned(d)
		} else if err := mgr.EnsureReady(ctx, d); err != nil {
			return report.Outcome{Hook: d.Name, Kind: report.ExternalFailure, Message: err.Error()}
		}
	}

	out := executor.Run(ctx, d, selected, executor.Options{
		DryRun:  opts.DryRun,
		Root:    opts.Root,
		Timeout: opts.Timeout,
	})
	if wouldProvision {
		out.Message = "would provision and run (dry run)"
	}
	return out
}
