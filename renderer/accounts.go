// Package renderer renders txledger snapshots as markdown.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/txledger"
)

// AccountsMarkdown renders every account of the snapshot as a markdown table,
// followed by a total row. Amounts are decorated with the currency symbol, if
// currency is a known ISO 4217 code.
func AccountsMarkdown(s *txledger.Snapshot, currency string) string {
	f := newAmountFormatter(currency)

	var b strings.Builder
	fmt.Fprintf(&b, "# Accounts\n\n")
	if s.Len() == 0 {
		fmt.Fprintln(&b, "No accounts.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Client | Available | Held | Total | Locked |")
	fmt.Fprintln(&b, "|---:|---:|---:|---:|:---:|")

	locked := 0
	for id, acc := range s.All() {
		mark := " "
		if acc.Locked {
			mark = "X"
			locked++
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
			id,
			f.Format(acc.Available),
			f.Format(acc.Held),
			f.Format(acc.Total()),
			mark,
		)
	}
	sum := s.Sum()
	fmt.Fprintf(&b, "| **Total** | **%s** | **%s** | **%s** | |\n",
		f.Format(sum.Available),
		f.Format(sum.Held),
		f.Format(sum.Total()),
	)

	fmt.Fprintf(&b, "\n%d accounts, %d locked.\n", s.Len(), locked)
	return b.String()
}
