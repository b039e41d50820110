package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/vmunix/medley/internal/resolver"
	"github.com/vmunix/medley/internal/selection"
)

var (
	resolveFilter    string
	resolveSort      string
	resolvePick      string
	resolveContainer string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <address>",
	Short: "Resolve a content address into playable items",
	Long: `Resolve a content address into playable items.

The address is "source:localId" (e.g. "library:series/pilot") or a
configured legacy alias (e.g. "hymn:2"). The selected strategy can be
overridden per part with --filter, --sort, and --pick.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := setup(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		selCtx := selection.Context{
			ContainerType: resolveContainer,
			Now:           time.Now(),
		}
		ov := selection.Overrides{
			Filter: resolveFilter,
			Sort:   resolveSort,
			Pick:   resolvePick,
		}

		result, err := a.service.ResolveText(ctx, args[0], selCtx, ov)
		if err != nil {
			return suggestOnUnknown(a, args[0], err)
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(result)
		}

		fmt.Printf("strategy: %s (filter=%s sort=%s pick=%s)\n\n",
			result.Strategy.Name, result.Strategy.Filter,
			result.Strategy.Sort, result.Strategy.Pick)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tPRIORITY\tPERCENT\tWATCHED")
		for _, item := range result.Items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.0f%%\t%v\n",
				item.ID, item.Title, item.Priority, item.Percent, item.Watched)
		}
		return w.Flush()
	},
}

// suggestOnUnknown appends a did-you-mean hint to unknown-source failures.
func suggestOnUnknown(a *app, address string, err error) error {
	if !errors.Is(err, resolver.ErrUnknownSource) {
		return err
	}
	addr := a.registry.ResolveAddress(address)
	if addr == nil || addr.Source == "" {
		return err
	}
	if suggestion := a.registry.Suggest(addr.Source); suggestion != "" {
		return fmt.Errorf("%w (did you mean %q?)", err, suggestion)
	}
	return err
}

func init() {
	resolveCmd.Flags().StringVar(&resolveFilter, "filter", "", "Override filter (none, unwatched)")
	resolveCmd.Flags().StringVar(&resolveSort, "sort", "", "Override sort (none, priority, title)")
	resolveCmd.Flags().StringVar(&resolvePick, "pick", "", "Override pick (all, first, random, nextUnfinished)")
	resolveCmd.Flags().StringVar(&resolveContainer, "container", "", "Container type (folder, watchlist, queue)")

	rootCmd.AddCommand(resolveCmd)
}
