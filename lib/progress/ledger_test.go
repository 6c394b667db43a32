package progress

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"aldb-backend/lib/equipment"

	"github.com/stretchr/testify/require"
)

func countMemberships(l Ledger, name string) int {
	count := 0
	for _, bucket := range [][]string{l.Completed, l.Partial, l.Failed} {
		for _, n := range bucket {
			if n == name {
				count++
			}
		}
	}
	return count
}

func TestSetStatusExclusivity(t *testing.T) {
	now := time.Now()
	var ledger Ledger

	// drive one item through every transition, it must never occupy two
	// buckets at once
	transitions := []equipment.Completeness{
		equipment.CompletenessPartial,
		equipment.CompletenessComplete,
		StatusFailed,
		equipment.CompletenessPartial,
		equipment.CompletenessPartial,
	}
	for _, status := range transitions {
		ledger.SetStatus("Type 93 Torpedo", status, now)
		require.LessOrEqual(t, countMemberships(ledger, "Type 93 Torpedo"), 1)
	}

	require.Equal(t, []string{"Type 93 Torpedo"}, ledger.Partial)
	require.Empty(t, ledger.Completed)
	require.Empty(t, ledger.Failed)
}

func TestSetStatusBasicMapsToNoBucket(t *testing.T) {
	now := time.Now()
	var ledger Ledger

	ledger.SetStatus("Radar Type 0", equipment.CompletenessComplete, now)
	ledger.SetStatus("Radar Type 0", equipment.CompletenessBasic, now)

	require.Zero(t, countMemberships(ledger, "Radar Type 0"))
	require.NotEmpty(t, ledger.LastUpdated)
}

func TestSetStatusLeavesRetryQueueAlone(t *testing.T) {
	now := time.Now()
	ledger := Ledger{RetryQueue: []string{"Depth Charge"}}

	ledger.SetStatus("Depth Charge", equipment.CompletenessComplete, now)

	require.Equal(t, []string{"Depth Charge"}, ledger.RetryQueue)
	require.Equal(t, []string{"Depth Charge"}, ledger.Completed)
}

func TestLoadMissingLedger(t *testing.T) {
	ledger, err := Load(filepath.Join(t.TempDir(), "progress.json"))
	if err != nil {
		t.Fatal(err)
	}
	require.Empty(t, ledger.Completed)
	require.Empty(t, ledger.LastUpdated)
}

func TestLoadCorruptLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	err := os.WriteFile(path, []byte("[]"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	_, err = Load(path)
	require.Error(t, err)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "progress.json")

	var ledger Ledger
	ledger.SetStatus("a", equipment.CompletenessComplete, time.Now())
	ledger.SetStatus("b", equipment.CompletenessPartial, time.Now())
	err := ledger.Save(path)
	if err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, []string{"a"}, loaded.Completed)
	require.Equal(t, []string{"b"}, loaded.Partial)
	require.Equal(t, ledger.LastUpdated, loaded.LastUpdated)

	// empty buckets persist as [] not null
	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	require.Contains(t, string(contents), `"failed": []`)
	require.Contains(t, string(contents), `"retry_queue": []`)
}
