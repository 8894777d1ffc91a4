package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/extremtechniker/dnsmigrate/importer"
	"github.com/extremtechniker/dnsmigrate/logger"
	"github.com/extremtechniker/dnsmigrate/porkbun"
)

func ImportCommand() *cobra.Command {
	var (
		file  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a JSON export document into Porkbun",
		Long: `Import reads an export document (stdin or --file), validates every
record, and syncs them into the Porkbun record-management API. Existing
records with diverging content are only overwritten with --force.

Credentials come from PORKBUN_API_KEY and PORKBUN_SECRET_KEY.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			apiKey := os.Getenv("PORKBUN_API_KEY")
			secretKey := os.Getenv("PORKBUN_SECRET_KEY")
			if apiKey == "" || secretKey == "" {
				return fmt.Errorf("Porkbun API credentials not found, set PORKBUN_API_KEY and PORKBUN_SECRET_KEY")
			}

			var in io.Reader = os.Stdin
			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("open %s: %w", file, err)
				}
				defer f.Close()
				in = f
			}

			doc, err := importer.ReadDocument(in)
			if err != nil {
				return err
			}

			// Validation is exhaustive and happens before the first API call.
			if errs := importer.Validate(doc); len(errs) > 0 {
				for _, e := range errs {
					logger.Logger.Errorf("invalid record: %s", e.Error())
				}
				return fmt.Errorf("input failed validation with %d error(s)", len(errs))
			}

			syncer := &importer.Syncer{
				Client: porkbun.New(apiKey, secretKey, os.Getenv("PORKBUN_API_URL")),
				Force:  force,
			}
			sum := syncer.Run(ctx, doc)

			for _, o := range sum.Failed() {
				logger.Logger.Warnf("failed record: %s", o)
			}
			logger.Logger.Infof("import finished: %s", sum)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Input file (default stdin)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing records whose content differs")

	return cmd
}
