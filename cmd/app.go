// Package cmd implements the txl command-line application.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/txledger"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&processCmd{}, "ledger")
	c.Register(&reportCmd{}, "ledger")

	c.Register(&checkCmd{}, "input")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	verbose    = flag.Bool("v", false, "log skipped input records to stderr")
	queueSize  = flag.Int("queue", txledger.DefaultQueueSize, "number of records buffered before readers wait for the processor")
	typePath   = flag.String("jsonl-type", txledger.DefaultJSONFields.Type, "JSONPath of the transaction type in .jsonl inputs")
	clientPath = flag.String("jsonl-client", txledger.DefaultJSONFields.Client, "JSONPath of the client id in .jsonl inputs")
	txPath     = flag.String("jsonl-tx", txledger.DefaultJSONFields.Tx, "JSONPath of the transaction id in .jsonl inputs")
	amountPath = flag.String("jsonl-amount", txledger.DefaultJSONFields.Amount, "JSONPath of the amount in .jsonl inputs")
)

// stdout is where commands write their results, tests replace it.
var stdout io.Writer = os.Stdout

// jsonFields returns the JSONPath expressions set by the global flags.
func jsonFields() txledger.JSONFields {
	return txledger.JSONFields{
		Type:   *typePath,
		Client: *clientPath,
		Tx:     *txPath,
		Amount: *amountPath,
	}
}

// printMarkdown renders markdown for the terminal, or prints it as is if it
// cannot be rendered.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	fmt.Fprint(stdout, md)
}
