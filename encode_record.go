package txledger

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// RecordError reports a malformed input record.
type RecordError struct {
	Line int   // Line is the 1-based line of the record in its input.
	Err  error // Err is the reason the record was rejected.
}

func (e *RecordError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }
func (e *RecordError) Unwrap() error { return e.Err }

var errMissingAmount = errors.New("amount is missing")

// newRecord builds a Record from its text fields.
//
// The amount is required for deposits and withdrawals, and ignored for
// the other types, when present it must be a valid non-negative decimal.
func newRecord(typ, client, tx, amount string) (Record, error) {
	t, err := ParseType(strings.TrimSpace(typ))
	if err != nil {
		return Record{}, err
	}
	c, err := strconv.ParseUint(strings.TrimSpace(client), 10, 16)
	if err != nil {
		return Record{}, fmt.Errorf("invalid client %q: %w", client, err)
	}
	id, err := strconv.ParseUint(strings.TrimSpace(tx), 10, 16)
	if err != nil {
		return Record{}, fmt.Errorf("invalid tx %q: %w", tx, err)
	}
	r := Record{Type: t, Client: ClientID(c), ID: TxID(id)}

	amount = strings.TrimSpace(amount)
	if amount == "" {
		if t == Deposit || t == Withdrawal {
			return Record{}, fmt.Errorf("%s: %w", t, errMissingAmount)
		}
		return r, nil
	}
	a, err := ParseAmount(amount)
	if err != nil {
		return Record{}, err
	}
	if a.IsNegative() {
		return Record{}, fmt.Errorf("invalid amount %q: negative", amount)
	}
	if t == Deposit || t == Withdrawal {
		r.Amount = a
	}
	return r, nil
}
