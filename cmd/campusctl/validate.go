package main

import (
	"fmt"

	"campus-compliments/internal/catalog"

	"github.com/spf13/cobra"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the catalog file for decode errors and duplicate codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			buildings, err := catalog.ReadFile(opts.catalogPath)
			if err != nil {
				return err
			}

			seen := make(map[string]int, len(buildings))
			var dupes int
			for i, b := range buildings {
				if b.BuildingCode == "" {
					continue
				}
				if j, ok := seen[b.BuildingCode]; ok {
					fmt.Fprintf(cmd.ErrOrStderr(), "duplicate code %s at entries %d and %d\n", b.BuildingCode, j, i)
					dupes++
					continue
				}
				seen[b.BuildingCode] = i
			}
			if dupes > 0 {
				return fmt.Errorf("%d duplicate building codes", dupes)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d buildings\n", len(buildings))
			return nil
		},
	}
}
