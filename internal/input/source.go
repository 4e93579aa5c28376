// Package input reads key presses from the terminal on a background goroutine
// and hands the game loop the most recent one each tick.
package input

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	xinput "github.com/charmbracelet/x/input"
	"github.com/muesli/cancelreader"
)

// Source decouples blocking keyboard reads from the fixed-rate tick.
//
// A reader goroutine blocks on the terminal and forwards decoded keys to a
// pump goroutine that queues them without bound, so a burst of key presses
// never blocks the reader. The game loop calls Latest once per tick.
type Source struct {
	reader *xinput.Reader
	logger *log.Logger

	keys     chan Key
	stop     chan struct{}
	readDone chan struct{}

	started   atomic.Bool
	startOnce sync.Once
	stopOnce  sync.Once

	// Consumer side only.
	closed bool
}

// NewSource decodes keys from r. termType is the $TERM value used to look up
// terminal-specific sequences.
func NewSource(r io.Reader, termType string, logger *log.Logger) (*Source, error) {
	reader, err := xinput.NewReader(r, termType, 0)
	if err != nil {
		return nil, fmt.Errorf("input: cannot wrap reader: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Source{
		reader:   reader,
		logger:   logger,
		keys:     make(chan Key),
		stop:     make(chan struct{}),
		readDone: make(chan struct{}),
	}, nil
}

// Start launches the reader and pump goroutines. Calling it twice is a no-op.
func (s *Source) Start() {
	s.startOnce.Do(func() {
		s.started.Store(true)
		in := make(chan Key)
		go s.readLoop(in)
		go s.pump(in)
	})
}

// Stop cancels the pending read and shuts the goroutines down.
// Readers that cannot be cancelled are abandoned to their blocking read.
func (s *Source) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
		if s.reader.Cancel() && s.started.Load() {
			<-s.readDone
		}
		if err := s.reader.Close(); err != nil {
			s.logger.Debug("closing input reader", "error", err)
		}
	})
}

// Latest drains every buffered key and returns only the most recent one.
// Earlier keys from the same drain are discarded. It never blocks.
func (s *Source) Latest() (Key, bool) {
	k, ok, closed := drain(s.keys)
	if closed && !s.closed {
		s.closed = true
		s.logger.Warn("input closed, no further keys")
	}
	return k, ok
}

// Closed reports whether the input stream has ended. Only meaningful after
// Latest observed the end.
func (s *Source) Closed() bool {
	return s.closed
}

// drain empties ch without blocking and keeps the last key received.
func drain(ch <-chan Key) (last Key, ok bool, closed bool) {
	for {
		select {
		case k, open := <-ch:
			if !open {
				return last, ok, true
			}
			last, ok = k, true
		default:
			return last, ok, false
		}
	}
}

// readLoop is the blocking reader goroutine. Any read error ends it.
func (s *Source) readLoop(in chan<- Key) {
	defer close(s.readDone)
	defer close(in)

	for {
		events, err := s.reader.ReadEvents()
		for _, ev := range events {
			press, ok := ev.(xinput.KeyPressEvent)
			if !ok {
				continue
			}
			select {
			case in <- press.Key():
			case <-s.stop:
				return
			}
		}

		if err != nil {
			switch {
			case errors.Is(err, cancelreader.ErrCanceled):
				s.logger.Debug("input reader cancelled")
			case errors.Is(err, io.EOF):
				s.logger.Info("input reached end of stream")
			default:
				s.logger.Error("input read failed", "error", err)
			}
			return
		}
	}
}

// pump moves keys from the reader to the consumer through an unbounded queue.
// When the reader finishes, queued keys are still delivered before the
// consumer channel closes.
func (s *Source) pump(in <-chan Key) {
	defer close(s.keys)

	var queue []Key
	for in != nil || len(queue) > 0 {
		var out chan<- Key
		var next Key
		if len(queue) > 0 {
			out = s.keys
			next = queue[0]
		}

		select {
		case k, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			queue = append(queue, k)
		case out <- next:
			queue = queue[1:]
		case <-s.stop:
			return
		}
	}
}
