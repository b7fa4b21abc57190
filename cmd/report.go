package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/txledger/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	currency string
	raw      bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the final accounts as a table" }
func (*reportCmd) Usage() string {
	return `txl report [-c <currency>] [-raw] <file>...

  Applies the transactions of every file, like 'process', and displays the
  final accounts with a total row. Amounts are decorated with the currency
  symbol, they are never rounded.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "ISO 4217 currency code used to decorate amounts")
	f.BoolVar(&c.raw, "raw", false, "print raw markdown instead of rendering it")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no transaction file provided.")
		return subcommands.ExitUsageError
	}

	snapshot, err := processFiles(ctx, f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error processing transactions: %v\n", err)
		return subcommands.ExitFailure
	}

	md := renderer.AccountsMarkdown(snapshot, c.currency)
	if c.raw {
		fmt.Fprint(stdout, md)
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
