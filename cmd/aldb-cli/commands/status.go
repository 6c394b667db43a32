package commands

import (
	"os"

	"aldb-backend/lib/configutil"
	"aldb-backend/lib/progress"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Shows ledger bucket counts for the current collection.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := configutil.ReadConfig[Config]("config.json5")
		if err != nil && !os.IsNotExist(err) {
			fatal("failed to read config", err)
		}
		cfg.applyDefaults()

		ledger, err := progress.Load(cfg.Ledger)
		if err != nil {
			fatal("failed to read ledger", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"bucket", "items"})
		t.AppendRow(table.Row{"completed", len(ledger.Completed)})
		t.AppendRow(table.Row{"partial", len(ledger.Partial)})
		t.AppendRow(table.Row{"failed", len(ledger.Failed)})
		t.AppendRow(table.Row{"retry_queue", len(ledger.RetryQueue)})
		t.AppendFooter(table.Row{"last updated", ledger.LastUpdated})
		t.Render()
	},
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}
