package main

import (
	"os"

	"github.com/killercup/shareable"
	"github.com/killercup/shareable/log"
	"github.com/spf13/cobra"
)

var logLevel string

var cmdRoot = &cobra.Command{
	Use:     "shareable",
	Short:   "Shareable value container tools",
	Version: shareable.Version,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			log.Fatal(nil, "Invalid log level", "err", err)
		}
		log.Default().SetLevel(level)
	},
}

func init() {
	cobra.EnableCommandSorting = false
	cmdRoot.CompletionOptions.HiddenDefaultCmd = true
	cmdRoot.PersistentFlags().BoolP("help", "h", false, "Print usage")
	cmdRoot.PersistentFlags().Lookup("help").Hidden = true
	cmdRoot.PersistentFlags().StringVar(&logLevel, "log-level", "INFO",
		"Log level (DEBUG, INFO, WARN, ERROR)")

	cmdRoot.AddCommand(cmdBench())
	cmdRoot.AddCommand(cmdDemo())
}

func main() {
	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}
