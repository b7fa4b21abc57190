package txledger

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonObjectWriter builds a JSON object whose fields keep the order they
// were appended in. The first marshaling error is kept and reported by
// MarshalJSON.
type jsonObjectWriter struct {
	fields bytes.Buffer
	err    error
}

// Append adds a field with the JSON encoding of value.
func (w *jsonObjectWriter) Append(key string, value any) {
	if w.err != nil {
		return
	}
	k, err := json.Marshal(key)
	if err != nil {
		w.err = err
		return
	}
	v, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("field %s: %w", k, err)
		return
	}
	if w.fields.Len() > 0 {
		w.fields.WriteByte(',')
	}
	w.fields.Write(k)
	w.fields.WriteByte(':')
	w.fields.Write(v)
}

func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	out := make([]byte, 0, w.fields.Len()+2)
	out = append(out, '{')
	out = append(out, w.fields.Bytes()...)
	return append(out, '}'), nil
}
