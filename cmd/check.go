package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/txledger"
	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "report malformed records in transaction files" }
func (*checkCmd) Usage() string {
	return `txl check <file>...

  Reads transaction files without applying them and lists every malformed
  record (unknown type, invalid client or tx, invalid or missing amount).
  Exits with a failure status if any record is malformed.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no transaction file provided.")
		return subcommands.ExitUsageError
	}

	status := subcommands.ExitSuccess
	for _, name := range f.Args() {
		valid, malformed, err := checkFile(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", name, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "%s: %d records, %d malformed\n", name, valid+malformed, malformed)
		if malformed > 0 {
			status = subcommands.ExitFailure
		}
	}
	return status
}

// checkFile prints malformed records and counts records.
func checkFile(name string) (valid, malformed int, err error) {
	f, err := openInput(name)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	for _, err := range decode(f, name) {
		if err != nil {
			var rerr *txledger.RecordError
			if !errors.As(err, &rerr) {
				return valid, malformed, err
			}
			fmt.Fprintf(stdout, "%s:%v\n", name, rerr)
			malformed++
			continue
		}
		valid++
	}
	return valid, malformed, nil
}
