package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the commander's subcommands and flags for shell
// completion. Subcommand arguments are completed with file names.
func Completion(c *subcommands.Commander, global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(global),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, sc subcommands.Command) {
		fs := flag.NewFlagSet(sc.Name(), flag.ContinueOnError)
		sc.SetFlags(fs)
		root.Sub[sc.Name()] = &complete.Command{
			Flags: flagPredictors(fs),
			Args:  predict.Files("*"),
		}
	})
	return root
}

// flagPredictors predicts nothing after boolean flags and any value
// otherwise, except for the few flags that have a fixed set of values.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	predictors := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if values, ok := flagValues[f.Name]; ok {
			predictors[f.Name] = values
			return
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			predictors[f.Name] = predict.Nothing
			return
		}
		predictors[f.Name] = predict.Something
	})
	return predictors
}

var flagValues = map[string]complete.Predictor{
	"o": predict.Set{"csv", "json"},
	"c": predict.Set{"EUR", "USD", "GBP", "CHF", "JPY"},
}
