package commands

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"aldb-backend/lib/collector"
	"aldb-backend/lib/configutil"
	"aldb-backend/lib/equipment/store"
	"aldb-backend/lib/runner"
	"aldb-backend/lib/scrapers/alwiki"
	"aldb-backend/lib/scrapers/guides"
	"aldb-backend/lib/scrapers/session"
	"aldb-backend/lib/telemetry"
	"aldb-backend/lib/vcsutil"

	"github.com/spf13/cobra"
	"github.com/titanous/json5"
)

var worklistPath *string
var collectLimit *int

func init() {
	worklistPath = collectCmd.Flags().String("worklist", "worklist.json5", "The ordered list of items to collect.")
	collectLimit = collectCmd.Flags().Int("limit", 0, "Process at most this many items (0 = all).")
	rootCmd.AddCommand(collectCmd)
}

var collectCmd = &cobra.Command{
	Use:   "collect [--worklist <path>] [--limit <n>]",
	Short: "Runs the collection pipeline over a worklist of (item, category) pairs.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := configutil.ReadConfig[Config]("config.json5")
		if err != nil && !os.IsNotExist(err) {
			fatal("failed to read config", err)
		}
		cfg.applyDefaults()

		items, err := readWorklist(*worklistPath)
		if err != nil {
			fatal("failed to read worklist", err)
		}
		if *collectLimit > 0 && len(items) > *collectLimit {
			items = items[:*collectLimit]
		}

		sess, err := session.New(session.Options{
			Timeout: cfg.requestTimeout(),
			Delay:   cfg.delay(),
		})
		if err != nil {
			fatal("failed to initialize session", err)
		}

		run := runner.Runner{
			Collector: collector.Collector{
				Store:      store.New(cfg.DataDir),
				LedgerPath: cfg.Ledger,
				Sources: []collector.Source{
					alwiki.New(sess, alwiki.Options{BaseUrl: cfg.Wiki.BaseUrl}),
					guides.New(sess, guides.Options{BaseUrl: cfg.Guides.BaseUrl}),
				},
			},
		}
		if cfg.Git.Enabled {
			run.Checkpointer = vcsutil.Git{
				RepoDir: cfg.RepoDir,
				Paths:   []string{cfg.DataDir, cfg.Ledger},
			}
		}

		ctx := cmd.Context()
		telemetry.InstrumentPerfStats(ctx)

		slog.Info("starting collection", "items", len(items))
		t1 := time.Now()
		err = run.Run(ctx, items)
		if err != nil {
			fatal("collection aborted", err)
		}
		slog.Info("collection finished", "items", len(items), "seconds", time.Since(t1).Seconds())
	},
}

func readWorklist(path string) ([]runner.WorkItem, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []runner.WorkItem
	err = json5.Unmarshal(contents, &items)
	if err != nil {
		return nil, fmt.Errorf("worklist %q: %w", path, err)
	}
	return items, nil
}
