// Package runner drives the collector over an ordered worklist and fires
// a version-control checkpoint at fixed batch boundaries so an
// interrupted run loses at most one batch of commits, never stored data.
package runner

import (
	"context"
	"log/slog"

	"aldb-backend/lib/collector"
	"aldb-backend/lib/equipment"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("aldb.lib.runner")

const defaultThreshold = 5

type WorkItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Checkpointer persists a processed batch. Failures are non-fatal to the
// run: store files are whole-collection replaces, so a later checkpoint
// naturally re-stages whatever this one missed.
type Checkpointer interface {
	Checkpoint(ctx context.Context, names []string, status string) error
}

type Runner struct {
	Collector    collector.Collector
	Checkpointer Checkpointer
	// Threshold is the batch size that triggers a checkpoint; zero means
	// the default of 5.
	Threshold int
}

// Run processes the worklist strictly in order, one item fully collected
// and saved before the next begins. The only error that aborts a run is a
// fatal save (store or ledger corruption); everything the pipeline
// recovers from has already been logged further down.
func (r Runner) Run(ctx context.Context, items []WorkItem) error {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()
	span.SetAttributes(attribute.Int("items", len(items)))

	threshold := r.Threshold
	if threshold <= 0 {
		threshold = defaultThreshold
	}

	var names []string
	var statuses []equipment.Completeness

	for _, item := range items {
		rec := r.Collector.Collect(ctx, item.Name, item.Category)
		status, err := r.Collector.Save(ctx, rec)
		if err != nil {
			return err
		}

		names = append(names, item.Name)
		statuses = append(statuses, status)

		if len(names) >= threshold {
			r.checkpoint(ctx, names, statuses)
			names = nil
			statuses = nil
		}
	}

	if len(names) > 0 {
		r.checkpoint(ctx, names, statuses)
	}
	return nil
}

func (r Runner) checkpoint(ctx context.Context, names []string, statuses []equipment.Completeness) {
	if r.Checkpointer == nil {
		return
	}
	err := r.Checkpointer.Checkpoint(ctx, names, BlendStatus(statuses))
	if err != nil {
		// accepted risk: the batch is not re-queued, the next checkpoint
		// re-stages the same files
		slog.ErrorContext(ctx, "checkpoint failed", "err", err, "items", len(names))
	}
}

// BlendStatus is the single status word of a checkpoint commit: the
// common status when the whole batch shares one, "Mixed" otherwise.
func BlendStatus(statuses []equipment.Completeness) string {
	if len(statuses) == 0 {
		return "Mixed"
	}
	first := statuses[0]
	for _, s := range statuses[1:] {
		if s != first {
			return "Mixed"
		}
	}
	return string(first)
}
