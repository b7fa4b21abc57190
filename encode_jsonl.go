package txledger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
)

// JSONFields locates the record fields in a JSON object, as JSONPath
// expressions.
type JSONFields struct {
	Type   string
	Client string
	Tx     string
	Amount string
}

// DefaultJSONFields matches objects like
//
//	{"type":"deposit","client":1,"tx":1,"amount":"1.5"}
var DefaultJSONFields = JSONFields{
	Type:   "$.type",
	Client: "$.client",
	Tx:     "$.tx",
	Amount: "$.amount",
}

// DecodeJSONL returns an iterator over the records read from r, one JSON
// object per line. Empty lines are skipped.
//
// As for DecodeCSV, malformed lines are yielded as a *RecordError and the
// iteration continues.
func DecodeJSONL(r io.Reader, fields JSONFields) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		scanner := bufio.NewScanner(r)
		line := 0
		for scanner.Scan() {
			line++
			b := bytes.TrimSpace(scanner.Bytes())
			if len(b) == 0 {
				continue
			}
			rec, err := decodeJSONRecord(b, fields)
			if err != nil {
				err = &RecordError{Line: line, Err: err}
			}
			if !yield(rec, err) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(Record{}, fmt.Errorf("could not read jsonl: %w", err))
		}
	}
}

func decodeJSONRecord(b []byte, fields JSONFields) (Record, error) {
	// numbers are kept as text so that amounts stay exact.
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var obj any
	if err := dec.Decode(&obj); err != nil {
		return Record{}, fmt.Errorf("invalid json: %w", err)
	}

	get := func(path string, required bool) (string, error) {
		v, err := jsonpath.Get(path, obj)
		if err != nil {
			if required {
				return "", fmt.Errorf("%s: %w", path, err)
			}
			return "", nil
		}
		// jsonpath returns a list for expressions that can match several values.
		if list, ok := v.([]any); ok && len(list) > 0 {
			v = list[0]
		}
		switch v := v.(type) {
		case string:
			return v, nil
		case json.Number:
			return v.String(), nil
		case bool:
			return strconv.FormatBool(v), nil
		case nil:
			return "", nil
		default:
			return "", fmt.Errorf("%s: unexpected value %v", path, v)
		}
	}

	typ, err := get(fields.Type, true)
	if err != nil {
		return Record{}, err
	}
	client, err := get(fields.Client, true)
	if err != nil {
		return Record{}, err
	}
	tx, err := get(fields.Tx, true)
	if err != nil {
		return Record{}, err
	}
	amount, err := get(fields.Amount, false)
	if err != nil {
		return Record{}, err
	}
	return newRecord(typ, client, tx, amount)
}
