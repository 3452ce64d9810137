package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ngarg/tradebook"
	"github.com/ngarg/tradebook/renderer"
)

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct {
	all bool
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "display current holdings and their average buy price" }
func (*portfolioCmd) Usage() string {
	return `tb portfolio [-all]

  Displays the net quantity and weighted average cost of every instrument
  in the tradebook. By default only instruments currently held are shown;
  -all includes fully exited ones.

Usage Examples:
$ tb -tradebooks tradebook-FY24.csv,tradebook-FY25.csv portfolio

`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "Include fully exited instruments")
}

func (c *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tradebooks: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := tradebook.NewPortfolioReport(ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.all {
		held := report.Positions[:0]
		for _, position := range report.Positions {
			if position.Held {
				held = append(held, position)
			}
		}
		report.Positions = held
	}

	printMarkdown(renderer.PortfolioMarkdown(report))
	return subcommands.ExitSuccess
}
