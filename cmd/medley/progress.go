package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vmunix/medley/internal/content"
	"github.com/vmunix/medley/internal/progress"
	"github.com/vmunix/medley/internal/resolver"
	"github.com/vmunix/medley/internal/source"
)

var (
	tickPlayhead  int64
	tickDuration  int64
	tickWatchTime int64
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Inspect and record watch progress",
}

var progressSetCmd = &cobra.Command{
	Use:   "set <address>",
	Short: "Record a playback tick for an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := setup(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		addr := a.registry.ResolveAddress(args[0])
		if addr == nil || addr.Source == "" {
			return fmt.Errorf("address %q: %w", args[0], resolver.ErrAmbiguousAddress)
		}
		adapter := a.registry.Get(addr.Source)
		if adapter == nil {
			return fmt.Errorf("source %q: %w", addr.Source, resolver.ErrUnknownSource)
		}

		itemID := content.CanonicalID(addr.Source, addr.ID)
		storagePath := adapter.Name()
		if p, ok := adapter.(source.StoragePather); ok {
			storagePath = p.StoragePath(itemID)
		}

		rec := &progress.Record{
			ItemID:      itemID,
			StoragePath: storagePath,
			Playhead:    tickPlayhead,
			Duration:    tickDuration,
			WatchTime:   tickWatchTime,
		}
		if err := a.store.Upsert(ctx, rec); err != nil {
			return err
		}

		a.log.Info("progress recorded", "item", itemID, "playhead", rec.Playhead, "percent", rec.Percent)
		return nil
	},
}

var progressShowCmd = &cobra.Command{
	Use:   "show <source>",
	Short: "Show recorded progress for a source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := setup(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		records, err := a.store.ListByPath(ctx, args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(records)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ITEM\tPLAYHEAD\tDURATION\tPERCENT\tWATCH TIME\tUPDATED")
		for _, rec := range records {
			fmt.Fprintf(w, "%s\t%ds\t%ds\t%.0f%%\t%ds\t%s\n",
				rec.ItemID, rec.Playhead, rec.Duration, rec.Percent,
				rec.WatchTime, rec.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}

func init() {
	progressSetCmd.Flags().Int64Var(&tickPlayhead, "playhead", 0, "Playback position in seconds")
	progressSetCmd.Flags().Int64Var(&tickDuration, "duration", 0, "Item duration in seconds")
	progressSetCmd.Flags().Int64Var(&tickWatchTime, "watch-time", 0, "Seconds actually watched")
	_ = progressSetCmd.MarkFlagRequired("playhead")

	progressCmd.AddCommand(progressSetCmd)
	progressCmd.AddCommand(progressShowCmd)
	rootCmd.AddCommand(progressCmd)
}
