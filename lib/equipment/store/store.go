// Package store persists category collections as flat JSON array files,
// one file per category slug. A whole collection is rewritten on every
// save, there is no append-only log.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"aldb-backend/lib/equipment"
)

type Store struct {
	// DataDir holds one <category>.json per category slug.
	DataDir string
}

func New(dataDir string) Store {
	return Store{DataDir: dataDir}
}

func (s Store) CategoryPath(category string) string {
	return filepath.Join(s.DataDir, category+".json")
}

// Read returns the stored collection for a category, or an empty one when
// no file exists yet. Malformed JSON is surfaced as an error, the caller
// must stop rather than overwrite curated data with guesses.
func (s Store) Read(category string) ([]equipment.Record, error) {
	if !equipment.ValidCategory(category) {
		return nil, fmt.Errorf("unknown category %q", category)
	}

	contents, err := os.ReadFile(s.CategoryPath(category))
	if os.IsNotExist(err) {
		return []equipment.Record{}, nil
	}
	if err != nil {
		return nil, err
	}

	var records []equipment.Record
	err = json.Unmarshal(contents, &records)
	if err != nil {
		return nil, fmt.Errorf("corrupt collection %q: %w", category, err)
	}
	return records, nil
}

// Write replaces the category file wholesale, creating the data directory
// on first use.
func (s Store) Write(category string, records []equipment.Record) error {
	if !equipment.ValidCategory(category) {
		return fmt.Errorf("unknown category %q", category)
	}

	err := os.MkdirAll(s.DataDir, 0o755)
	if err != nil {
		return err
	}
	contents, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.CategoryPath(category), contents, 0o644)
}

// Upsert replaces the record matching rec's item name in place, preserving
// its position, or appends when the name is new.
func Upsert(records []equipment.Record, rec equipment.Record) []equipment.Record {
	for i, existing := range records {
		if existing.Identity.ItemName == rec.Identity.ItemName {
			records[i] = rec
			return records
		}
	}
	return append(records, rec)
}
