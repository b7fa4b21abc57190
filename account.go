package txledger

// ClientID identifies a client, hence its account.
type ClientID uint16

// Account holds the funds of a single client.
type Account struct {
	Available Amount // Available funds, can be withdrawn or held.
	Held      Amount // Held funds, frozen by an active dispute.
	Locked    bool   // Locked is set by a chargeback. It is informational only.
}

// Total returns the available plus held funds.
func (a Account) Total() Amount { return a.Available.Add(a.Held) }

func (a *Account) deposit(amount Amount) {
	a.Available = a.Available.Add(amount)
}

// withdraw only if the amount is available.
func (a *Account) withdraw(amount Amount) bool {
	if amount.GreaterThan(a.Available) {
		return false
	}
	a.Available = a.Available.Sub(amount)
	return true
}

// hold moves amount from available to held, if available.
func (a *Account) hold(amount Amount) bool {
	if amount.GreaterThan(a.Available) {
		return false
	}
	a.Available = a.Available.Sub(amount)
	a.Held = a.Held.Add(amount)
	return true
}

// release moves amount from held back to available, if held.
func (a *Account) release(amount Amount) bool {
	if amount.GreaterThan(a.Held) {
		return false
	}
	a.Held = a.Held.Sub(amount)
	a.Available = a.Available.Add(amount)
	return true
}

// chargeback removes amount from held funds and locks the account.
//
// Held funds are not checked, they can become negative.
func (a *Account) chargeback(amount Amount) {
	a.Held = a.Held.Sub(amount)
	a.Locked = true
}

// accounts indexes accounts by client.
type accounts map[ClientID]*Account

func (s accounts) exists(id ClientID) bool {
	_, ok := s[id]
	return ok
}

// getOrCreate returns the client's account, creating an empty one if needed.
func (s accounts) getOrCreate(id ClientID) *Account {
	acc, ok := s[id]
	if !ok {
		acc = new(Account)
		s[id] = acc
	}
	return acc
}
