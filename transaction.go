package txledger

import "fmt"

// Type is a typed string for identifying transaction records.
type Type string

// Types of transaction records.
const (
	Deposit    Type = "deposit"
	Withdrawal Type = "withdrawal"
	Dispute    Type = "dispute"
	Resolve    Type = "resolve"
	Chargeback Type = "chargeback"
)

// ParseType parses a transaction type. Matching is exact and case-sensitive.
func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case Deposit, Withdrawal, Dispute, Resolve, Chargeback:
		return t, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// TxID identifies a transaction. Only deposit ids are meaningful, other
// records use it to reference a deposit.
type TxID uint16

// Record is a transaction instruction submitted to a Processor.
type Record struct {
	Type   Type
	Client ClientID
	ID     TxID
	Amount Amount // Amount is ignored for dispute, resolve and chargeback.
}

// NewDeposit creates a deposit record.
func NewDeposit(client ClientID, id TxID, amount Amount) Record {
	return Record{Type: Deposit, Client: client, ID: id, Amount: amount}
}

// NewWithdrawal creates a withdrawal record.
func NewWithdrawal(client ClientID, id TxID, amount Amount) Record {
	return Record{Type: Withdrawal, Client: client, ID: id, Amount: amount}
}

// NewDispute creates a dispute record against deposit id.
func NewDispute(client ClientID, id TxID) Record {
	return Record{Type: Dispute, Client: client, ID: id}
}

// NewResolve creates a resolve record for the dispute on deposit id.
func NewResolve(client ClientID, id TxID) Record {
	return Record{Type: Resolve, Client: client, ID: id}
}

// NewChargeback creates a chargeback record for the dispute on deposit id.
func NewChargeback(client ClientID, id TxID) Record {
	return Record{Type: Chargeback, Client: client, ID: id}
}

func (r Record) String() string {
	switch r.Type {
	case Deposit, Withdrawal:
		return fmt.Sprintf("%s client=%d tx=%d amount=%s", r.Type, r.Client, r.ID, r.Amount)
	default:
		return fmt.Sprintf("%s client=%d tx=%d", r.Type, r.Client, r.ID)
	}
}

// entry is a deposit kept in history so that it can be disputed.
type entry struct {
	Record
	disputed bool
}

// history indexes deposits by transaction id.
type history map[TxID]*entry

// record stores a deposit unless its id is already taken. The first write wins.
func (h history) record(r Record) bool {
	if _, ok := h[r.ID]; ok {
		return false
	}
	h[r.ID] = &entry{Record: r}
	return true
}
