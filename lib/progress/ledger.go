// Package progress tracks which items have been collected across
// interrupted runs. The ledger is a single JSON object partitioning item
// names into status buckets.
package progress

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"aldb-backend/lib/equipment"
)

// Ledger partitions item names into status buckets. A name lives in at
// most one of Completed/Partial/Failed at a time. RetryQueue is reserved
// state managed by an outside process, routine status updates never touch
// it.
type Ledger struct {
	Completed   []string `json:"completed"`
	Partial     []string `json:"partial"`
	Failed      []string `json:"failed"`
	RetryQueue  []string `json:"retry_queue"`
	LastUpdated string   `json:"last_updated"`
}

// Load reads the ledger at path, returning a zero ledger when no file
// exists. Malformed JSON is an error for the same reason store corruption
// is: guessing would silently lose progress.
func Load(path string) (Ledger, error) {
	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Ledger{}, nil
	}
	if err != nil {
		return Ledger{}, err
	}

	var ledger Ledger
	err = json.Unmarshal(contents, &ledger)
	if err != nil {
		return Ledger{}, fmt.Errorf("corrupt ledger %q: %w", path, err)
	}
	return ledger, nil
}

func (l *Ledger) Save(path string) error {
	dir := filepath.Dir(path)
	if dir != "." {
		err := os.MkdirAll(dir, 0o755)
		if err != nil {
			return err
		}
	}

	// marshal through a shim so empty buckets persist as [] not null
	contents, err := json.MarshalIndent(struct {
		Completed   []string `json:"completed"`
		Partial     []string `json:"partial"`
		Failed      []string `json:"failed"`
		RetryQueue  []string `json:"retry_queue"`
		LastUpdated string   `json:"last_updated"`
	}{
		Completed:   orEmpty(l.Completed),
		Partial:     orEmpty(l.Partial),
		Failed:      orEmpty(l.Failed),
		RetryQueue:  orEmpty(l.RetryQueue),
		LastUpdated: l.LastUpdated,
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, contents, 0o644)
}

func orEmpty(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}

// StatusFailed marks an item whose collection was abandoned. Nothing in
// the pipeline produces it today, but the bucket is part of the persisted
// shape and SetStatus keeps it consistent with the others.
const StatusFailed equipment.Completeness = "failed"

// SetStatus moves an item name into the bucket matching its completeness
// tag, removing any stale membership first. A "basic" result maps to no
// bucket at all: the name is removed from the three status buckets and not
// re-added anywhere. (Basic items are therefore invisible to progress
// reporting; preserved behavior, see DESIGN.md.)
func (l *Ledger) SetStatus(name string, status equipment.Completeness, now time.Time) {
	l.Completed = remove(l.Completed, name)
	l.Partial = remove(l.Partial, name)
	l.Failed = remove(l.Failed, name)

	switch status {
	case equipment.CompletenessComplete:
		l.Completed = append(l.Completed, name)
	case equipment.CompletenessPartial:
		l.Partial = append(l.Partial, name)
	case StatusFailed:
		l.Failed = append(l.Failed, name)
	}

	l.LastUpdated = now.Format(time.RFC3339)
}

func remove(names []string, name string) []string {
	for i, n := range names {
		if n == name {
			return append(names[:i], names[i+1:]...)
		}
	}
	return names
}

// Counts reports bucket sizes for status output.
func (l *Ledger) Counts() map[string]int {
	return map[string]int{
		"completed":   len(l.Completed),
		"partial":     len(l.Partial),
		"failed":      len(l.Failed),
		"retry_queue": len(l.RetryQueue),
	}
}
