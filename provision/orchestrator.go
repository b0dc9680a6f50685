package provision

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/droidsign/keyprovisioner/catalog"
)

// Result pairs a catalog entry with the outcome of its bundle
// generation. Err is nil on success; on failure it is the entry's
// *EntryError and Bundle still holds the derived paths.
type Result struct {
	Entry  catalog.Entry
	Bundle Bundle
	Err    error
}

// Orchestrator drives the catalog through a bounded worker pool, one
// independent task per entry. Tasks never communicate: every entry's
// outputs are disjoint files derived from its unique name, which is
// the entire concurrency-safety argument. Running two orchestrators
// against the same output directory concurrently is unsupported.
type Orchestrator struct {
	gen     *Generator
	workers int
	log     *slog.Logger
}

// NewOrchestrator creates an orchestrator running at most workers
// tasks in parallel; workers <= 0 selects the host's CPU count.
func NewOrchestrator(gen *Generator, workers int, log *slog.Logger) *Orchestrator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Orchestrator{gen: gen, workers: workers, log: log}
}

// Run provisions every catalog entry and returns per-family results in
// catalog order, independent of task completion order. A failing entry
// never cancels or blocks the others; its failure is recorded in its
// result slot. The returned error covers only setup problems that
// prevent any task from running, such as an uncreatable key directory.
func (o *Orchestrator) Run(ctx context.Context, entries []catalog.Entry) (platform, apex []Result, err error) {
	// Shared output directories are the only shared resource; creating
	// them up front keeps the tasks free of any coordination. MkdirAll
	// is idempotent, so repeat runs are harmless.
	if err := os.MkdirAll(o.gen.cfg.CertsDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create key directory: %w", err)
	}
	if err := os.MkdirAll(o.gen.cfg.OutputDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	platformEntries, apexEntries := catalog.Partition(entries)
	platform = make([]Result, len(platformEntries))
	apex = make([]Result, len(apexEntries))

	o.log.Debug("Provisioning catalog",
		slog.Int("platform", len(platformEntries)),
		slog.Int("apex", len(apexEntries)),
		slog.Int("workers", o.workers))

	// Task errors are stored in the result slot rather than returned
	// to the group, so one failure never cancels the siblings and
	// Wait always returns nil.
	var g errgroup.Group
	g.SetLimit(o.workers)

	for i, entry := range platformEntries {
		i, entry := i, entry
		g.Go(func() error {
			bundle, err := o.gen.Platform(ctx, entry)
			platform[i] = Result{Entry: entry, Bundle: bundle, Err: err}
			return nil
		})
	}
	for i, entry := range apexEntries {
		i, entry := i, entry
		g.Go(func() error {
			bundle, err := o.gen.Apex(ctx, entry)
			apex[i] = Result{Entry: entry, Bundle: bundle, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return platform, apex, nil
}

// Failures collects the errors from a result list, preserving order.
func Failures(results []Result) []error {
	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return errs
}
