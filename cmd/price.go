package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ngarg/tradebook"
	"github.com/ngarg/tradebook/renderer"
)

// priceCmd holds the flags for the 'price' subcommand.
type priceCmd struct {
	instrument string
	quantity   int64
	profit     float64
}

func (*priceCmd) Name() string { return "price" }
func (*priceCmd) Synopsis() string {
	return "compute the selling price required for a target profit"
}
func (*priceCmd) Usage() string {
	return `tb price -i <instrument> -q <quantity> [-p <profit%>]

  Computes the minimum per-share selling price required to realize the
  desired profit percentage on the given quantity, matching shares against
  the oldest open lots first. A negative profit percentage prices the sale
  at a loss.

Usage Examples:
$ tb price -i RELIANCE -q 12 -p 10

`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.instrument, "i", "", "Instrument to price")
	f.Int64Var(&c.quantity, "q", 1, "Quantity of shares to sell")
	f.Float64Var(&c.profit, "p", 0, "Desired profit percentage over FIFO cost")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	quantity := tradebook.Q(c.quantity)
	profit := tradebook.Percent(c.profit)
	price, err := book.RequiredSellingPrice(quantity, profit)
	if err != nil {
		var insufficient *tradebook.InsufficientSharesError
		if errors.As(err, &insufficient) {
			fmt.Fprintf(os.Stderr, "Error: only %s shares of %s are held, cannot sell %s\n",
				insufficient.Available, c.instrument, insufficient.Requested)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Error computing selling price: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PriceMarkdown(c.instrument, quantity, profit, price))
	return subcommands.ExitSuccess
}
