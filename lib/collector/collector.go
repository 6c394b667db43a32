// Package collector produces one finished record per item by folding the
// fragments of every configured source, then upserts it into the category
// store and moves the item's ledger status.
package collector

import (
	"context"
	"log/slog"
	"time"

	"aldb-backend/lib/equipment"
	"aldb-backend/lib/equipment/store"
	"aldb-backend/lib/progress"

	"go.opentelemetry.io/otel/attribute"
)

// Source is one external site able to contribute a partial fragment for
// an item. Sources are consulted in slice order; later sources win key
// conflicts. A fetch error never aborts the item, the source is skipped.
type Source interface {
	Name() string
	Fetch(ctx context.Context, itemName string) (equipment.Fragment, error)
}

type Collector struct {
	Store      store.Store
	LedgerPath string
	Sources    []Source
	// Now is swappable for tests; zero value means time.Now.
	Now func() time.Time
}

func (c Collector) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Collect builds the record for one item: skeleton first, then one fold
// per source in priority order. Source failures are logged and treated as
// empty fragments. The returned record is always usable, an item no
// source knows about is still a stored fact, just a "basic" one.
func (c Collector) Collect(ctx context.Context, itemName, category string) equipment.Record {
	ctx, span := tracer.Start(ctx, "Collect")
	defer span.End()
	span.SetAttributes(
		attribute.String("item", itemName),
		attribute.String("category", category),
	)

	slog.InfoContext(ctx, "collecting item", "item", itemName, "category", category)
	rec := equipment.NewRecord(itemName, category, c.now())

	for _, source := range c.Sources {
		frag, err := source.Fetch(ctx, itemName)
		if err != nil {
			slog.ErrorContext(
				ctx, "source failed",
				"source", source.Name(),
				"item", itemName,
				"err", err,
			)
			continue
		}
		if frag.Empty() {
			slog.DebugContext(ctx, "source had nothing", "source", source.Name(), "item", itemName)
			continue
		}

		err = equipment.Merge(&rec, frag)
		if err != nil {
			slog.ErrorContext(
				ctx, "merge failed",
				"source", source.Name(),
				"item", itemName,
				"err", err,
			)
			continue
		}

		token := frag.URL
		if token == "" {
			token = source.Name()
		}
		rec.Metadata.Sources = append(rec.Metadata.Sources, token)
		slog.InfoContext(ctx, "source merged", "source", source.Name(), "item", itemName)
	}

	rec.Metadata.DataCompleteness = equipment.Classify(rec)
	rec.Metadata.LastUpdated = c.now().Format(time.RFC3339)
	return rec
}

// Save upserts the record into its category collection and moves the
// item's ledger bucket to match the completeness tag. A corrupt store or
// ledger read is fatal: overwriting curated data with guesses is worse
// than stopping.
func (c Collector) Save(ctx context.Context, rec equipment.Record) (equipment.Completeness, error) {
	ctx, span := tracer.Start(ctx, "Save")
	defer span.End()

	category := rec.Identity.Type
	records, err := c.Store.Read(category)
	if err != nil {
		return "", err
	}
	records = store.Upsert(records, rec)
	err = c.Store.Write(category, records)
	if err != nil {
		return "", err
	}

	status := rec.Metadata.DataCompleteness

	ledger, err := progress.Load(c.LedgerPath)
	if err != nil {
		return "", err
	}
	ledger.SetStatus(rec.Identity.ItemName, status, c.now())
	err = ledger.Save(c.LedgerPath)
	if err != nil {
		return "", err
	}

	slog.InfoContext(
		ctx, "item saved",
		"item", rec.Identity.ItemName,
		"category", category,
		"status", status,
	)
	return status, nil
}
