package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/ngarg/tradebook/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the tb command line for shell completion.
// It must be asked to complete before flag.Parse: when invoked by the shell
// it prints candidates and exits.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"tradebooks":   predict.Files("*"),
		"aliases":      predict.Files("*.json"),
		"hide":         predict.Nothing,
		"currency":     predict.Set{"INR", "USD", "EUR"},
		"records-path": predict.Nothing,
		"v":            predict.Nothing,
	},
	Sub: map[string]*complete.Command{
		"portfolio": {Flags: map[string]complete.Predictor{"all": predict.Nothing}},
		"price": {Flags: map[string]complete.Predictor{
			"i": predict.Nothing,
			"q": predict.Nothing,
			"p": predict.Nothing,
		}},
		"lots":   {Flags: map[string]complete.Predictor{"i": predict.Nothing}},
		"trades": {},
	},
}

func main() {
	completion.Complete("tb")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
