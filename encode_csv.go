package txledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// CSV column names.
const (
	colType      = "type"
	colClient    = "client"
	colTx        = "tx"
	colAmount    = "amount"
	colAvailable = "available"
	colHeld      = "held"
	colTotal     = "total"
	colLocked    = "locked"
)

// DecodeCSV returns an iterator over the records read from r.
//
// The first row is a header naming the columns "type", "client", "tx" and
// optionally "amount", in any order. Spaces around fields are ignored.
//
// Malformed rows are yielded as a *RecordError and the iteration continues,
// callers are free to skip them. Any other error ends the iteration.
func DecodeCSV(r io.Reader) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		cr := csv.NewReader(r)
		cr.TrimLeadingSpace = true
		cr.FieldsPerRecord = -1 // dispute rows often omit the amount.
		cr.ReuseRecord = true

		header, err := cr.Read()
		if err != nil {
			if err == io.EOF {
				return
			}
			yield(Record{}, fmt.Errorf("could not read csv header: %w", err))
			return
		}
		cols, err := csvColumns(header)
		if err != nil {
			yield(Record{}, err)
			return
		}

		for {
			row, err := cr.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				var perr *csv.ParseError
				if !errors.As(err, &perr) {
					yield(Record{}, err)
					return
				}
				if !yield(Record{}, &RecordError{Line: perr.StartLine, Err: perr.Err}) {
					return
				}
				continue
			}
			line, _ := cr.FieldPos(0)

			rec, err := newRecord(cols.get(row, colType), cols.get(row, colClient), cols.get(row, colTx), cols.get(row, colAmount))
			if err != nil {
				err = &RecordError{Line: line, Err: err}
			}
			if !yield(rec, err) {
				return
			}
		}
	}
}

// columns maps a column name to its index.
type columns map[string]int

func csvColumns(header []string) (columns, error) {
	cols := make(columns, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colType, colClient, colTx} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("csv header %q: missing column %q", strings.Join(header, ","), required)
		}
	}
	return cols, nil
}

// get returns the named field, or "" if the row is too short.
func (c columns) get(row []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// EncodeCSV writes one row per account, in ascending client order, after a
// "client,available,held,total,locked" header.
func EncodeCSV(w io.Writer, s *Snapshot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{colClient, colAvailable, colHeld, colTotal, colLocked}); err != nil {
		return err
	}
	for id, acc := range s.All() {
		row := []string{
			strconv.FormatUint(uint64(id), 10),
			acc.Available.String(),
			acc.Held.String(),
			acc.Total().String(),
			strconv.FormatBool(acc.Locked),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("could not write account %d: %w", id, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
