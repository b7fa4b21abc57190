package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"os"
	"path/filepath"

	"github.com/etnz/txledger"
	"golang.org/x/sync/errgroup"
)

// stdinName is the file name that stands for the standard input.
const stdinName = "-"

// decode returns the records of an input, JSONL for .jsonl files, CSV otherwise.
func decode(r io.Reader, name string) iter.Seq2[txledger.Record, error] {
	switch filepath.Ext(name) {
	case ".jsonl", ".ndjson":
		return txledger.DecodeJSONL(r, jsonFields())
	default:
		return txledger.DecodeCSV(r)
	}
}

// openInput opens a named input, "-" being the standard input.
func openInput(name string) (io.ReadCloser, error) {
	if name == stdinName {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

// processFiles applies the records of every file to a single processor and
// returns the final snapshot.
//
// Each file is read by its own goroutine. Records within a file are applied
// in order, records from different files are interleaved.
func processFiles(ctx context.Context, files []string) (*txledger.Snapshot, error) {
	if err := checkStdin(files); err != nil {
		return nil, err
	}
	p := txledger.NewProcessor(txledger.WithQueueSize(*queueSize))

	g, ctx := errgroup.WithContext(ctx)
	for _, name := range files {
		g.Go(func() error { return submitFile(ctx, p, name) })
	}
	if err := g.Wait(); err != nil {
		// the processor must be closed anyway to stop its goroutine.
		p.Close()
		return nil, err
	}
	return p.Close()
}

// checkStdin fails if the standard input is named more than once, it can be
// read by a single goroutine only.
func checkStdin(files []string) error {
	n := 0
	for _, name := range files {
		if name == stdinName {
			n++
		}
	}
	if n > 1 {
		return fmt.Errorf("standard input %q given %d times", stdinName, n)
	}
	return nil
}

// submitFile submits every well-formed record of a file. Malformed records
// are skipped.
func submitFile(ctx context.Context, p *txledger.Processor, name string) error {
	f, err := openInput(name)
	if err != nil {
		return err
	}
	defer f.Close()

	for rec, err := range decode(f, name) {
		if err != nil {
			var rerr *txledger.RecordError
			if !errors.As(err, &rerr) {
				return fmt.Errorf("%s: %w", name, err)
			}
			if *verbose {
				log.Printf("%s:%v, skipped", name, rerr)
			}
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.Submit(rec); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
