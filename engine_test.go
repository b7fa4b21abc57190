package txledger

import (
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
)

// applyAll runs records through a fresh engine.
func applyAll(records ...Record) *engine {
	e := newEngine()
	for _, r := range records {
		e.apply(r)
	}
	return e
}

func mustAccount(t *testing.T, e *engine, id ClientID) Account {
	t.Helper()
	acc, ok := e.accounts[id]
	if !ok {
		t.Fatalf("account %d does not exist", id)
	}
	return *acc
}

func checkAccount(t *testing.T, got Account, available, held string, locked bool) {
	t.Helper()
	if got.Available.String() != available || got.Held.String() != held || got.Locked != locked {
		t.Errorf("account = {available:%v held:%v locked:%v}, want {available:%s held:%s locked:%v}",
			got.Available, got.Held, got.Locked, available, held, locked)
	}
}

func TestEngine_Apply(t *testing.T) {
	testCases := []struct {
		name      string
		records   []Record
		available string
		held      string
		locked    bool
	}{
		{
			name:      "deposit",
			records:   []Record{NewDeposit(1, 1, A(1.5))},
			available: "1.5000", held: "0.0000",
		},
		{
			name:      "withdrawal",
			records:   []Record{NewDeposit(1, 1, A(2)), NewWithdrawal(1, 2, A(0.5))},
			available: "1.5000", held: "0.0000",
		},
		{
			name:      "withdrawal of everything",
			records:   []Record{NewDeposit(1, 1, A(2)), NewWithdrawal(1, 2, A(2))},
			available: "0.0000", held: "0.0000",
		},
		{
			name:      "insufficient funds withdrawal is ignored",
			records:   []Record{NewDeposit(1, 1, A(2)), NewWithdrawal(1, 2, A(3))},
			available: "2.0000", held: "0.0000",
		},
		{
			name:      "dispute holds the deposit",
			records:   []Record{NewDeposit(1, 1, A(2)), NewDeposit(1, 2, A(1)), NewDispute(1, 1)},
			available: "1.0000", held: "2.0000",
		},
		{
			name:      "dispute on unknown tx is ignored",
			records:   []Record{NewDeposit(1, 1, A(2)), NewDispute(1, 9)},
			available: "2.0000", held: "0.0000",
		},
		{
			name:      "dispute on a withdrawal id is ignored",
			records:   []Record{NewDeposit(1, 1, A(2)), NewWithdrawal(1, 2, A(1)), NewDispute(1, 2)},
			available: "1.0000", held: "0.0000",
		},
		{
			name:      "dispute with insufficient funds is ignored",
			records:   []Record{NewDeposit(1, 1, A(2)), NewWithdrawal(1, 2, A(1)), NewDispute(1, 1)},
			available: "1.0000", held: "0.0000",
		},
		{
			name:      "resolve releases the funds",
			records:   []Record{NewDeposit(1, 1, A(2)), NewDispute(1, 1), NewResolve(1, 1)},
			available: "2.0000", held: "0.0000",
		},
		{
			name:      "resolve without dispute is ignored",
			records:   []Record{NewDeposit(1, 1, A(2)), NewResolve(1, 1)},
			available: "2.0000", held: "0.0000",
		},
		{
			name:      "chargeback removes the funds and locks",
			records:   []Record{NewDeposit(1, 1, A(2)), NewDeposit(1, 2, A(1)), NewDispute(1, 1), NewChargeback(1, 1)},
			available: "1.0000", held: "0.0000", locked: true,
		},
		{
			name:      "chargeback without dispute is ignored",
			records:   []Record{NewDeposit(1, 1, A(2)), NewChargeback(1, 1)},
			available: "2.0000", held: "0.0000",
		},
		{
			name:      "chargeback after resolve is ignored",
			records:   []Record{NewDeposit(1, 1, A(2)), NewDispute(1, 1), NewResolve(1, 1), NewChargeback(1, 1)},
			available: "2.0000", held: "0.0000",
		},
		{
			name:      "locked account still accepts deposits",
			records:   []Record{NewDeposit(1, 1, A(2)), NewDispute(1, 1), NewChargeback(1, 1), NewDeposit(1, 2, A(5)), NewWithdrawal(1, 3, A(1))},
			available: "4.0000", held: "0.0000", locked: true,
		},
		{
			name:      "dispute amount comes from the deposit",
			records:   []Record{NewDeposit(1, 1, A(2)), NewDeposit(1, 2, A(3)), {Type: Dispute, Client: 1, ID: 1, Amount: A(3)}},
			available: "3.0000", held: "2.0000",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := applyAll(tc.records...)
			checkAccount(t, mustAccount(t, e, 1), tc.available, tc.held, tc.locked)
		})
	}
}

func TestEngine_Gating(t *testing.T) {
	for _, r := range []Record{
		NewWithdrawal(2, 10, A(5)),
		NewDispute(2, 10),
		NewResolve(2, 10),
		NewChargeback(2, 10),
	} {
		t.Run(string(r.Type), func(t *testing.T) {
			e := applyAll(r)
			if len(e.accounts) != 0 {
				t.Errorf("%v created accounts %v", r, e.accounts)
			}
			if len(e.history) != 0 {
				t.Errorf("%v recorded history %v", r, e.history)
			}
		})
	}
}

func TestEngine_DuplicateDepositID(t *testing.T) {
	e := applyAll(
		NewDeposit(1, 7, A(1)),
		NewDeposit(1, 7, A(10)), // still deposited, but not disputable under 7.
	)
	checkAccount(t, mustAccount(t, e, 1), "11.0000", "0.0000", false)

	e.apply(NewDispute(1, 7))
	checkAccount(t, mustAccount(t, e, 1), "10.0000", "1.0000", false)
	if !e.history[7].Amount.Equal(A(1)) {
		t.Errorf("history[7].Amount = %v, want the first deposit 1.0000", e.history[7].Amount)
	}
}

func TestEngine_RepeatedDispute(t *testing.T) {
	// enough funds: the deposit is held again.
	e := applyAll(NewDeposit(1, 1, A(1)), NewDeposit(1, 2, A(1)), NewDispute(1, 1), NewDispute(1, 1))
	checkAccount(t, mustAccount(t, e, 1), "0.0000", "2.0000", false)

	// not enough funds: the second dispute is ignored.
	e = applyAll(NewDeposit(1, 1, A(1)), NewDispute(1, 1), NewDispute(1, 1))
	checkAccount(t, mustAccount(t, e, 1), "0.0000", "1.0000", false)
	if !e.history[1].disputed {
		t.Error("history[1] is not disputed anymore")
	}
}

func TestEngine_ResolveMoreThanHeld(t *testing.T) {
	// client 2 holds client 1's deposit, client 1 has nothing held to release.
	e := applyAll(NewDeposit(1, 1, A(5)), NewDeposit(2, 2, A(5)), NewDispute(2, 1), NewResolve(1, 1))
	checkAccount(t, mustAccount(t, e, 1), "5.0000", "0.0000", false)
	checkAccount(t, mustAccount(t, e, 2), "0.0000", "5.0000", false)
	if !e.history[1].disputed {
		t.Error("history[1] must remain disputed when the release is refused")
	}
}

func TestEngine_ChargebackKeepsDisputed(t *testing.T) {
	e := applyAll(NewDeposit(1, 1, A(2)), NewDispute(1, 1), NewChargeback(1, 1))
	if !e.history[1].disputed {
		t.Error("history[1] is not disputed after chargeback")
	}
	// A second chargeback is not prevented: held goes negative.
	e.apply(NewChargeback(1, 1))
	checkAccount(t, mustAccount(t, e, 1), "0.0000", "-2.0000", true)
}

func TestEngine_DepositMonotonicity(t *testing.T) {
	e := applyAll(NewDeposit(1, 1, A(3)), NewDispute(1, 1))
	for i, amount := range []string{"0.0001", "2.5", "2.5", "1000"} {
		before := mustAccount(t, e, 1)
		e.apply(NewDeposit(1, 1, MustParseAmount(amount))) // same id every time
		after := mustAccount(t, e, 1)
		if want := before.Available.Add(MustParseAmount(amount)); !after.Available.Equal(want) {
			t.Errorf("deposit #%d of %s: available = %v, want %v", i, amount, after.Available, want)
		}
		if !after.Held.Equal(before.Held) {
			t.Errorf("deposit #%d of %s changed held from %v to %v", i, amount, before.Held, after.Held)
		}
	}
}

// TestEngine_BalanceInvariant applies random sequences of deposits,
// withdrawals, disputes and resolves and checks that funds never go negative.
func TestEngine_BalanceInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	types := []Type{Deposit, Withdrawal, Dispute, Resolve}

	e := newEngine()
	for i := range 10000 {
		r := Record{
			Type:   types[rng.IntN(len(types))],
			Client: ClientID(rng.IntN(5)),
			ID:     TxID(rng.IntN(50)),
			Amount: A(decimal.New(int64(rng.IntN(1000000)), -Places)),
		}
		e.apply(r)
		for id, acc := range e.accounts {
			if acc.Available.IsNegative() || acc.Held.IsNegative() {
				t.Fatalf("after record #%d %v: account %d = %+v", i, r, id, *acc)
			}
		}
	}
}
