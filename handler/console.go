package handler

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/ezsoft-tech/loggy/core"
)

// ConsoleHandler writes rendered tables to stdout/stderr
type ConsoleHandler struct {
	writer io.Writer
	mu     sync.Mutex
	async  bool
	queue  chan string
	wg     sync.WaitGroup
	closed chan struct{}
	stats  *Stats

	drainTimeout time.Duration
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Async enables asynchronous writes (default: synchronous)
	Async bool
	// BufferSize is the size of the async queue (default: 1000)
	BufferSize int
	// DrainTimeout is the timeout for draining the queue on Close (default: 5s)
	DrainTimeout time.Duration
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
	if cfg.DrainTimeout == 0 {
		cfg.DrainTimeout = 5 * time.Second
	}

	h := &ConsoleHandler{
		writer:       cfg.Writer,
		async:        cfg.Async,
		closed:       make(chan struct{}),
		stats:        NewStats(),
		drainTimeout: cfg.DrainTimeout,
	}

	if h.async {
		h.queue = make(chan string, cfg.BufferSize)
		h.wg.Add(1)
		go h.process()
	}

	return h
}

// Handle emits one rendered table. In async mode a full queue drops
// the newest table rather than stalling the caller.
func (h *ConsoleHandler) Handle(_ core.Level, table string) error {
	if !h.async {
		return h.write(table)
	}

	select {
	case h.queue <- table:
		return nil
	default:
		h.stats.IncrementDropped()
		return nil
	}
}

// write emits one table atomically. The mutex is what guarantees
// tables from concurrent callers never interleave on the terminal.
func (h *ConsoleHandler) write(table string) error {
	h.mu.Lock()
	_, err := io.WriteString(h.writer, table)
	h.mu.Unlock()

	if err == nil {
		h.stats.IncrementProcessed()
	}
	return err
}

// process handles async writes
func (h *ConsoleHandler) process() {
	defer h.wg.Done()

	for {
		select {
		case table := <-h.queue:
			if err := h.write(table); err != nil {
				return
			}
		case <-h.closed:
			// Drain remaining tables with timeout
			deadline := time.After(h.drainTimeout)
		drainLoop:
			for {
				select {
				case table := <-h.queue:
					if err := h.write(table); err != nil {
						return
					}
				case <-deadline:
					break drainLoop
				default:
					// Queue empty
					break drainLoop
				}
			}
			return
		}
	}
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close closes the handler
func (h *ConsoleHandler) Close() error {
	select {
	case <-h.closed:
		return nil // Already closed
	default:
	}

	if h.async {
		close(h.closed)
		h.wg.Wait()
	}
	return nil
}
