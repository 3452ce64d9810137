package cmd

import "github.com/google/subcommands"

// Commands lists the subcommands of the tb application.
// A main package registers them on a commander and executes the selected one.
var Commands = []subcommands.Command{
	&portfolioCmd{},
	&priceCmd{},
	&lotsCmd{},
	&tradesCmd{},
}
