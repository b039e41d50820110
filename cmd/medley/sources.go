package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List registered content sources and aliases",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		names := a.registry.Names()
		sort.Strings(names)

		if jsonOutput {
			out := struct {
				Sources []string          `json:"sources"`
				Aliases map[string]string `json:"aliases"`
			}{names, a.cfg.Aliases}
			return json.NewEncoder(os.Stdout).Encode(out)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SOURCE\tTYPE\tROOT")
		for _, name := range names {
			src := a.cfg.Sources[name]
			fmt.Fprintf(w, "%s\t%s\t%s\n", name, src.Type, src.Root)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if len(a.cfg.Aliases) > 0 {
			fmt.Println("\naliases:")
			aliases := make([]string, 0, len(a.cfg.Aliases))
			for alias := range a.cfg.Aliases {
				aliases = append(aliases, alias)
			}
			sort.Strings(aliases)
			for _, alias := range aliases {
				fmt.Printf("  %s -> %s\n", alias, a.cfg.Aliases[alias])
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}
