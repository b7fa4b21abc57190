package txledger

import (
	"errors"
	"sync"
)

// DefaultQueueSize is the default capacity of the processor queue.
const DefaultQueueSize = 1024

// ErrClosed is returned when the processor is closed or stopped.
var ErrClosed = errors.New("transaction processor stopped")

// request is either a record to apply or, when reply is set, the close request.
type request struct {
	record Record
	reply  chan<- accounts
}

// Processor applies transaction records to client accounts.
//
// Records can be submitted from any number of goroutines, they are applied
// one at a time, in the order they have been enqueued, by a single goroutine
// that owns all the accounts.
//
// A Processor is single use: once closed it cannot be restarted.
type Processor struct {
	queueSize int
	requests  chan request
	done      chan struct{} // closed when the processing goroutine ends

	mu      sync.RWMutex // guards closing, not the accounts
	closing bool
}

// Option configures a Processor.
type Option func(*Processor)

// WithQueueSize sets the number of records that can be enqueued before
// Submit blocks.
func WithQueueSize(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.queueSize = n
		}
	}
}

// NewProcessor creates a Processor and starts its processing goroutine.
//
// The goroutine runs until Close is called.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{queueSize: DefaultQueueSize}
	for _, opt := range opts {
		opt(p)
	}
	p.requests = make(chan request, p.queueSize)
	p.done = make(chan struct{})
	go p.run()
	return p
}

// Submit enqueues a record to be processed.
//
// Submit never reports whether the record was applied or ignored, it only
// fails with ErrClosed once Close has been called. It blocks while the queue
// is full.
func (p *Processor) Submit(r Record) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closing {
		return ErrClosed
	}
	select {
	case p.requests <- request{record: r}:
		return nil
	case <-p.done:
		return ErrClosed
	}
}

// Close stops the processor and returns the final state of the accounts.
//
// It blocks until every record submitted before has been applied. It can be
// called only once, subsequent calls return ErrClosed.
func (p *Processor) Close() (*Snapshot, error) {
	p.mu.Lock()
	if p.closing {
		p.mu.Unlock()
		return nil, ErrClosed
	}
	// From now on Submit fails, and pending Submit calls have returned.
	p.closing = true
	p.mu.Unlock()

	reply := make(chan accounts, 1)
	select {
	case p.requests <- request{reply: reply}:
	case <-p.done:
		return nil, ErrClosed
	}

	// the worker only returns after answering the close request.
	return newSnapshot(<-reply), nil
}

func (p *Processor) run() {
	defer close(p.done)
	e := newEngine()
	for req := range p.requests {
		if req.reply != nil {
			req.reply <- e.accounts
			return
		}
		e.apply(req.record)
	}
}
