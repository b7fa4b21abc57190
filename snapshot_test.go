package txledger

import (
	"slices"
	"strings"
	"testing"
)

func TestSnapshot(t *testing.T) {
	s := NewSnapshot(map[ClientID]Account{
		10: {Available: A(1), Held: A(2)},
		2:  {Available: A(3), Locked: true},
		7:  {},
	})

	if got := slices.Collect(s.Clients()); !slices.Equal(got, []ClientID{2, 7, 10}) {
		t.Errorf("Clients() = %v, want [2 7 10]", got)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}

	sum := s.Sum()
	if got, want := sum.Total().String(), "6.0000"; got != want {
		t.Errorf("Sum().Total() = %q, want %q", got, want)
	}
	if !sum.Locked {
		t.Error("Sum().Locked = false, want true")
	}

	// iteration can stop early.
	n := 0
	for range s.All() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("All() yielded %d accounts after break", n)
	}
}

func TestEncodeJSON(t *testing.T) {
	s := NewSnapshot(map[ClientID]Account{
		2: {Available: A(0.5), Held: A(1), Locked: true},
		1: {Available: A(1.5)},
	})
	var b strings.Builder
	if err := EncodeJSON(&b, s); err != nil {
		t.Fatalf("EncodeJSON() unexpected error: %v", err)
	}
	want := `{"client":1,"available":1.5000,"held":0.0000,"total":1.5000,"locked":false}
{"client":2,"available":0.5000,"held":1.0000,"total":1.5000,"locked":true}
`
	if got := b.String(); got != want {
		t.Errorf("EncodeJSON() = %q, want %q", got, want)
	}
}
