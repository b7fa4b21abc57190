package txledger

import (
	"bufio"
	"fmt"
	"io"
)

// appendFields appends the account fields, total included, to w.
func (a Account) appendFields(w *jsonObjectWriter) {
	w.Append(colAvailable, a.Available)
	w.Append(colHeld, a.Held)
	w.Append(colTotal, a.Total())
	w.Append(colLocked, a.Locked)
}

// MarshalJSON implements the json.Marshaler interface for Account.
func (a Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	a.appendFields(&w)
	return w.MarshalJSON()
}

// EncodeJSON writes one JSON object per account and per line, in ascending
// client order.
func EncodeJSON(w io.Writer, s *Snapshot) error {
	bw := bufio.NewWriter(w)
	for id, acc := range s.All() {
		var jw jsonObjectWriter
		jw.Append(colClient, id)
		acc.appendFields(&jw)
		line, err := jw.MarshalJSON()
		if err != nil {
			return fmt.Errorf("could not encode account %d: %w", id, err)
		}
		bw.Write(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
