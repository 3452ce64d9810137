package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ngarg/tradebook/renderer"
)

// lotsCmd holds the flags for the 'lots' subcommand.
type lotsCmd struct {
	instrument string
}

func (*lotsCmd) Name() string     { return "lots" }
func (*lotsCmd) Synopsis() string { return "display the open purchase lots of an instrument" }
func (*lotsCmd) Usage() string {
	return `tb lots -i <instrument>

  Displays the purchase lots not yet consumed by sells, oldest first, with
  their remaining quantity and unit cost.

`
}

func (c *lotsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.instrument, "i", "", "Instrument to display")
}

func (c *lotsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.instrument == "" {
		fmt.Fprintln(os.Stderr, "Error: an instrument is required, see -i")
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tradebooks: %v\n", err)
		return subcommands.ExitFailure
	}

	book, err := ledger.Book(c.instrument)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building lot book: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.LotsMarkdown(book))
	return subcommands.ExitSuccess
}
