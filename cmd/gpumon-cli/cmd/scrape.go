package cmd

import (
	"context"
	"gpumon-backend/lib/configutil"
	"gpumon-backend/lib/scrapers/microcenter"
	"gpumon-backend/services/gpumon"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Run one scrape cycle against the configured sources and dump the records.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := configutil.ReadConfig[gpumon.Config](configPath)
		if err != nil && !os.IsNotExist(err) {
			log.Fatal(err)
		}
		cfg = cfg.WithDefaults()

		store := gpumon.NewStore()
		client := microcenter.NewClient(microcenter.ClientOptions{
			UserAgent: cfg.UserAgent,
		})
		svc := gpumon.NewService(store, client, cfg)

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute*5)
		defer cancel()

		err = svc.RunCycle(ctx)
		if err != nil {
			log.Fatal(err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"SKU", "Brand", "Family", "Model", "Memory", "Stock", "Price"})

		for _, rec := range store.Snapshot() {
			t.AppendRow(table.Row{
				rec.SKU,
				rec.Brand,
				rec.Family,
				rec.Model,
				rec.MemorySize,
				rec.Stock,
				strconv.FormatFloat(rec.Price, 'f', 2, 64),
			})
		}

		t.Render()
	},
}
