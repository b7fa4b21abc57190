package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/txledger"
	"github.com/google/subcommands"
)

// processCmd holds the flags for the 'process' subcommand.
type processCmd struct {
	format string
}

func (*processCmd) Name() string     { return "process" }
func (*processCmd) Synopsis() string { return "apply transaction files and print the final accounts" }
func (*processCmd) Usage() string {
	return `txl process [-o csv|json] <file>...

  Applies the transactions of every file and prints the final state of each
  client account. Files ending in .jsonl are read as JSON lines, other files as
  CSV with a "type,client,tx,amount" header. Use "-" to read CSV from stdin.

  Several files are read concurrently, records of a file are applied in order.
  Malformed records are skipped, use -v to log them.

Usage Examples:
$ txl process transactions.csv > accounts.csv
`
}

func (c *processCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "o", "csv", "output format: csv or json (one object per line)")
}

func (c *processCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no transaction file provided.")
		return subcommands.ExitUsageError
	}
	var encode func(*txledger.Snapshot) error
	switch c.format {
	case "csv":
		encode = func(s *txledger.Snapshot) error { return txledger.EncodeCSV(stdout, s) }
	case "json":
		encode = func(s *txledger.Snapshot) error { return txledger.EncodeJSON(stdout, s) }
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown output format %q\n", c.format)
		return subcommands.ExitUsageError
	}

	snapshot, err := processFiles(ctx, f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error processing transactions: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := encode(snapshot); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
