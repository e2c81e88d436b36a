package main

import (
	"os"

	"github.com/killercup/shareable/bench"
	"github.com/killercup/shareable/log"
	"github.com/spf13/cobra"
)

func cmdBench() *cobra.Command {
	return &cobra.Command{
		Use:     "bench CONFIG-FILE",
		Short:   "Run a contention scenario from a YAML config",
		Args:    cobra.ExactArgs(1),
		Example: `  shareable bench scenario.yml`,
		Run:     runBench,
	}
}

func runBench(_ *cobra.Command, args []string) {
	cfg, err := bench.ReadConfig(args[0])
	if err != nil {
		log.Fatal(nil, "Failed to read configuration", "err", err)
	}

	res, err := bench.NewRunner(cfg).Run()
	if err != nil {
		log.Fatal(nil, "Scenario failed", "err", err)
	}

	res.Print(os.Stdout)
}
