package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ngarg/tradebook/renderer"
)

// tradesCmd holds the flags for the 'trades' subcommand.
type tradesCmd struct{}

func (*tradesCmd) Name() string     { return "trades" }
func (*tradesCmd) Synopsis() string { return "display the normalized trade sequences" }
func (*tradesCmd) Usage() string {
	return `tb trades

  Displays every accepted trade after normalization, grouped by instrument
  in chronological order. Useful to verify what the lot books will replay.

`
}

func (c *tradesCmd) SetFlags(f *flag.FlagSet) {}

func (c *tradesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tradebooks: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TradesMarkdown(ledger))
	return subcommands.ExitSuccess
}
