package vcsutil

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	testCases := []struct {
		names    []string
		expected string
	}{
		{[]string{"a"}, "a"},
		{[]string{"a", "b", "c"}, "a, b, c"},
		{[]string{"a", "b", "c", "d"}, "a, b, c (+1 more)"},
		{[]string{"a", "b", "c", "d", "e", "f", "g"}, "a, b, c (+4 more)"},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, Summarize(tc.names))
	}
}

func initTestRepo(t *testing.T) string {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	dir := t.TempDir()
	for _, args := range [][]string{
		{"init"},
		{"config", "user.email", "test@test"},
		{"config", "user.name", "test"},
	} {
		cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
		out, err := cmd.CombinedOutput()
		if err != nil {
			t.Fatalf("git %v: %v: %s", args, err, out)
		}
	}
	return dir
}

func commitCount(t *testing.T, dir string) int {
	out, err := exec.Command("git", "-C", dir, "rev-list", "--count", "HEAD").Output()
	if err != nil {
		return 0
	}
	n := strings.TrimSpace(string(out))
	count := 0
	for _, c := range n {
		count = count*10 + int(c-'0')
	}
	return count
}

func TestCheckpointCommitsOnlyWithDiff(t *testing.T) {
	dir := initTestRepo(t)
	ctx := context.Background()

	err := os.MkdirAll(filepath.Join(dir, "data", "equipment"), 0o755)
	if err != nil {
		t.Fatal(err)
	}
	err = os.WriteFile(filepath.Join(dir, "data", "equipment", "fighters.json"), []byte("[]"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	g := Git{RepoDir: dir, Paths: []string{"data/equipment", "progress.json"}}

	err = g.Checkpoint(ctx, []string{"A6M Zero Fighter"}, "partial")
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, 1, commitCount(t, dir))

	// nothing changed: the second checkpoint stages an empty diff and
	// must not create a commit
	err = g.Checkpoint(ctx, []string{"A6M Zero Fighter"}, "partial")
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, 1, commitCount(t, dir))
}

func TestCheckpointMessage(t *testing.T) {
	dir := initTestRepo(t)
	ctx := context.Background()

	err := os.WriteFile(filepath.Join(dir, "progress.json"), []byte("{}"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	g := Git{RepoDir: dir, Paths: []string{"progress.json"}}
	err = g.Checkpoint(ctx, []string{"a", "b", "c", "d", "e"}, "Mixed")
	if err != nil {
		t.Fatal(err)
	}

	out, err := exec.Command("git", "-C", dir, "log", "-1", "--format=%s").Output()
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "Update: a, b, c (+2 more) - Mixed", strings.TrimSpace(string(out)))
}
