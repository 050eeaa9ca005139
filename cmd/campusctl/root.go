package main

import (
	"campus-compliments/internal/catalog"
	"campus-compliments/internal/matcher"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	catalogPath string
}

func newRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "campusctl",
		Short:         "Inspect the campus building catalog and matcher",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.catalogPath, "catalog", "c", "./data.json", "building catalog JSON file")

	cmd.AddCommand(newMatchCmd(opts), newScoreCmd(opts), newValidateCmd(opts))
	return cmd
}

func (o *rootOptions) load() (*matcher.Catalog, error) {
	return catalog.LoadFile(o.catalogPath)
}
