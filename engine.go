package txledger

// engine applies transaction records to accounts.
//
// It is not safe for concurrent use, it is owned by a single Processor
// goroutine.
type engine struct {
	accounts accounts
	history  history
}

func newEngine() *engine {
	return &engine{
		accounts: make(accounts),
		history:  make(history),
	}
}

// apply processes a single record.
//
// Invalid instructions (insufficient funds, unknown or undisputed
// transactions) are silently ignored.
func (e *engine) apply(r Record) {
	// An account only exists once money has been deposited into it.
	if r.Type != Deposit && !e.accounts.exists(r.Client) {
		return
	}
	acc := e.accounts.getOrCreate(r.Client)

	switch r.Type {
	case Deposit:
		e.history.record(r)
		acc.deposit(r.Amount)

	case Withdrawal:
		acc.withdraw(r.Amount)

	case Dispute:
		tx, ok := e.history[r.ID]
		if !ok {
			return
		}
		// A dispute is active only if the funds could be held.
		if acc.hold(tx.Amount) {
			tx.disputed = true
		}

	case Resolve:
		tx, ok := e.history[r.ID]
		if !ok || !tx.disputed {
			return
		}
		if acc.release(tx.Amount) {
			tx.disputed = false
		}

	case Chargeback:
		tx, ok := e.history[r.ID]
		if !ok || !tx.disputed {
			return
		}
		// the entry stays disputed.
		acc.chargeback(tx.Amount)
	}
}
