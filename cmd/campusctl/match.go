package main

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newMatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "match <address>",
		Short: "Print the building an address resolves to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.load()
			if err != nil {
				return err
			}
			address := strings.Join(args, " ")
			b, ok := c.Match(address)
			if !ok {
				return fmt.Errorf("no building matches %q", address)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", b.BuildingCode, b.BuildingName, b.FormattedAddress())
			return nil
		},
	}
}

func newScoreCmd(opts *rootOptions) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "score <address>",
		Short: "Rank catalog buildings against an address with a per-strategy breakdown",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.load()
			if err != nil {
				return err
			}
			candidates := c.Rank(strings.Join(args, " "))
			if top > 0 && len(candidates) > top {
				candidates = candidates[:top]
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SCORE\tCODE\tNAME\tBREAKDOWN")
			for _, cand := range candidates {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", cand.Score, cand.Building.BuildingCode, cand.Building.BuildingName, formatBreakdown(cand.Breakdown))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&top, "top", "n", 5, "show at most n candidates (0 for all)")
	return cmd
}

func formatBreakdown(b map[string]int) string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%d", name, b[name]))
	}
	return strings.Join(parts, " ")
}
