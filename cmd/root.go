package cmd

import (
	"github.com/extremtechniker/dnsmigrate/logger"
	"github.com/spf13/cobra"
)

var LogLevel string

func RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "dnsmigrate",
		Short:        "Export DNS records to JSON and import them into Porkbun",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.InitLogger(LogLevel)
		},
	}
	root.PersistentFlags().StringVar(&LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	return root
}
