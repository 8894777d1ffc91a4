package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/extremtechniker/dnsmigrate/export"
	"github.com/extremtechniker/dnsmigrate/logger"
	"github.com/extremtechniker/dnsmigrate/model"
	"github.com/extremtechniker/dnsmigrate/util"
)

func ExportCommand() *cobra.Command {
	var (
		file     string
		types    []string
		all      bool
		exclude  []string
		raw      bool
		keepAddr bool
	)

	cmd := &cobra.Command{
		Use:   "export [domains...]",
		Short: "Export DNS records for one or more domains to JSON",
		Long: `Export queries public DNS for every requested (domain, type) pair and
writes the collected records as a JSON document, to stdout by default.
Domains come from the arguments or, when none are given, whitespace-
separated from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			domains := args
			if len(domains) == 0 {
				var err error
				if domains, err = export.ReadDomains(os.Stdin); err != nil {
					return err
				}
			}
			if len(domains) == 0 {
				return fmt.Errorf("no domains provided, pass them as arguments or on stdin")
			}

			selected, err := export.SelectTypes(export.TypePolicy{Include: types, All: all, Exclude: exclude})
			if err != nil {
				return err
			}

			exp := &export.Exporter{
				Querier:  export.NewResolver(util.MustGetenv("DNS_SERVER", "8.8.8.8:53")),
				KeepAAAA: keepAddr,
			}

			var (
				doc any
				sum *model.Summary
			)
			if raw {
				doc, sum = exp.ExportRaw(ctx, domains, selected)
			} else {
				doc, sum = exp.Export(ctx, domains, selected)
			}

			if err := export.WriteJSON(doc, file); err != nil {
				return err
			}

			for _, o := range sum.Failed() {
				logger.Logger.Warnf("failed pair: %s", o)
			}
			if file != "" {
				logger.Logger.Infof("DNS records for %s exported to %s", strings.Join(domains, ", "), file)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Output file (default stdout)")
	cmd.Flags().StringSliceVarP(&types, "types", "t", nil, "Record types to export (default A,AAAA,CNAME,MX,TXT,SPF)")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Export all supported record types")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Record types to exclude")
	cmd.Flags().BoolVar(&raw, "raw", false, "Output raw DNS answers as retrieved from the nameserver")
	cmd.Flags().BoolVar(&keepAddr, "keep-a-aaaa", false, "Keep A and AAAA records even when a CNAME exists")

	return cmd
}
