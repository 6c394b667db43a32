package commands

import (
	"fmt"
	"os"
	"strings"

	"aldb-backend/lib/configutil"
	"aldb-backend/lib/equipment"
	"aldb-backend/lib/equipment/store"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <category>",
	Short: "Lists the stored records of one equipment category.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category := args[0]
		if !equipment.ValidCategory(category) {
			return fmt.Errorf(
				"unknown category %q, expected one of: %s",
				category, strings.Join(equipment.Categories, ", "),
			)
		}

		cfg, err := configutil.ReadConfig[Config]("config.json5")
		if err != nil && !os.IsNotExist(err) {
			fatal("failed to read config", err)
		}
		cfg.applyDefaults()

		records, err := store.New(cfg.DataDir).Read(category)
		if err != nil {
			fatal("failed to read category", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"item", "rarity", "completeness", "sources"})
		for _, rec := range records {
			t.AppendRow(table.Row{
				rec.Identity.ItemName,
				rec.Identity.Rarity,
				rec.Metadata.DataCompleteness,
				len(rec.Metadata.Sources),
			})
		}
		t.Render()
		return nil
	},
}
