package sink

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/multierr"
	"golang.org/x/term"

	"github.com/Philipp01105/kvlog/core"
	"github.com/Philipp01105/kvlog/formatter"
)

// ColorMode selects ANSI level colors for the default text formatter
type ColorMode int

const (
	// ColorAuto enables colors when the writer is a terminal
	ColorAuto ColorMode = iota
	// ColorNever disables colors
	ColorNever
	// ColorAlways forces colors
	ColorAlways
)

// Console writes interpolated log lines to an io.Writer
type Console struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	async           bool
	queue           chan *core.Entry
	wg              sync.WaitGroup
	closed          chan struct{}
	closeOnce       sync.Once
	closeMu         sync.RWMutex
	mu              sync.Mutex
	overflowPolicy  map[core.Level]OverflowPolicy
	blockTimeout    time.Duration
	drainTimeout    time.Duration
	includeCaller   bool
	coarse          bool
	stats           *Stats

	errMu    sync.Mutex
	asyncErr error
}

// ConsoleConfig holds configuration for the console sink
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Async enables asynchronous writes on a background goroutine
	Async bool
	// BufferSize is the size of the async queue (default: 1000)
	BufferSize int
	// OverflowPolicy defines per-level overflow behavior (default: DefaultLevelPolicy)
	OverflowPolicy map[core.Level]OverflowPolicy
	// BlockTimeout is the timeout for the Block overflow policy (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout is the timeout for draining the queue on Close (default: 5s)
	DrainTimeout time.Duration
	// IncludeCaller records the file and line that emitted the line
	IncludeCaller bool
	// CoarseTimestamps stamps entries from core.CoarseNow instead of time.Now
	CoarseTimestamps bool
	// Color controls level colors of the default formatter (default: ColorAuto)
	Color ColorMode
}

// NewConsole creates a new console sink
func NewConsole(cfg ConsoleConfig) *Console {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{
			IncludeCaller: cfg.IncludeCaller,
			Color:         useColor(cfg.Color, cfg.Writer),
		})
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
	if cfg.OverflowPolicy == nil {
		cfg.OverflowPolicy = DefaultLevelPolicy()
	}
	if cfg.BlockTimeout == 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}
	if cfg.DrainTimeout == 0 {
		cfg.DrainTimeout = 5 * time.Second
	}
	if cfg.CoarseTimestamps {
		core.StartCoarseClock()
	}

	c := &Console{
		writer:         cfg.Writer,
		formatter:      cfg.Formatter,
		async:          cfg.Async,
		closed:         make(chan struct{}),
		overflowPolicy: cfg.OverflowPolicy,
		blockTimeout:   cfg.BlockTimeout,
		drainTimeout:   cfg.DrainTimeout,
		includeCaller:  cfg.IncludeCaller,
		coarse:         cfg.CoarseTimestamps,
		stats:          NewStats(),
	}

	// Cache WriterFormatter for the direct write path
	c.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	if c.async {
		c.queue = make(chan *core.Entry, cfg.BufferSize)
		c.wg.Add(1)
		go c.process()
	}

	return c
}

func useColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Named returns the sink for a category. All named sinks share the
// console's writer, queue and statistics.
func (c *Console) Named(category string) Sink {
	return &consoleSink{console: c, category: category}
}

// Sink implements Factory
func (c *Console) Sink(category string) Sink {
	return c.Named(category)
}

// Log implements Sink for lines without a category
func (c *Console) Log(level core.Level, format string, args ...any) error {
	return c.log("", level, format, args)
}

type consoleSink struct {
	console  *Console
	category string
}

func (s *consoleSink) Log(level core.Level, format string, args ...any) error {
	return s.console.log(s.category, level, format, args)
}

func (c *Console) log(category string, level core.Level, format string, args []any) error {
	args, err := SplitArgs(format, args)

	entry := core.GetEntry()
	if c.coarse {
		entry.Time = core.CoarseNow()
	}
	entry.Level = level
	entry.Category = category
	entry.Message = fmt.Sprintf(format, args...)
	entry.Err = err
	if c.includeCaller {
		entry.Caller = core.GetUserCaller()
	}

	return c.Handle(entry)
}

// Handle writes a prepared entry, directly or through the async queue.
// The entry is returned to the pool once written or dropped.
func (c *Console) Handle(entry *core.Entry) error {
	if !c.async {
		return c.writeAndRelease(entry)
	}

	// Close waits for in-flight enqueues, so nothing lands in the queue
	// after the final drain.
	c.closeMu.RLock()
	defer c.closeMu.RUnlock()

	select {
	case <-c.closed:
		return c.writeAndRelease(entry)
	default:
	}

	policy, ok := c.overflowPolicy[entry.Level]
	if !ok {
		policy = DropNewest
	}

	switch policy {
	case Block:
		select {
		case c.queue <- entry:
			return nil
		default:
		}
		timer := time.NewTimer(c.blockTimeout)
		defer timer.Stop()
		select {
		case c.queue <- entry:
			return nil
		case <-timer.C:
			// Timeout - fall back to synchronous write
			c.stats.IncrementBlocked()
			return c.writeAndRelease(entry)
		case <-c.closed:
			return c.writeAndRelease(entry)
		}

	case DropOldest:
		select {
		case c.queue <- entry:
			return nil
		default:
		}
		select {
		case oldest := <-c.queue:
			c.stats.IncrementDropped(oldest.Level)
			core.PutEntry(oldest)
		default:
		}
		select {
		case c.queue <- entry:
		default:
			c.stats.IncrementDropped(entry.Level)
			core.PutEntry(entry)
		}
		return nil

	default:
		select {
		case c.queue <- entry:
		default:
			c.stats.IncrementDropped(entry.Level)
			core.PutEntry(entry)
		}
		return nil
	}
}

func (c *Console) writeAndRelease(entry *core.Entry) error {
	err := c.write(entry)
	core.PutEntry(entry)
	return err
}

// write formats and writes an entry
func (c *Console) write(entry *core.Entry) error {
	if c.writerFormatter != nil {
		c.mu.Lock()
		err := c.writerFormatter.FormatTo(entry, c.writer)
		c.mu.Unlock()
		if err == nil {
			c.stats.IncrementProcessed()
		}
		return err
	}

	data, err := c.formatter.Format(entry)
	if err != nil {
		return err
	}

	c.mu.Lock()
	_, err = c.writer.Write(data)
	c.mu.Unlock()

	if err == nil {
		c.stats.IncrementProcessed()
	}
	return err
}

// process handles async writes until Close
func (c *Console) process() {
	defer c.wg.Done()

	for {
		select {
		case entry := <-c.queue:
			c.recordAsync(c.writeAndRelease(entry))
		case <-c.closed:
			deadline := time.After(c.drainTimeout)
			for {
				select {
				case entry := <-c.queue:
					c.recordAsync(c.writeAndRelease(entry))
				case <-deadline:
					c.discardQueued()
					return
				default:
					return
				}
			}
		}
	}
}

// discardQueued counts and releases entries left after the drain timeout
func (c *Console) discardQueued() {
	for {
		select {
		case entry := <-c.queue:
			c.stats.IncrementDropped(entry.Level)
			core.PutEntry(entry)
		default:
			return
		}
	}
}

func (c *Console) recordAsync(err error) {
	if err == nil {
		return
	}
	c.errMu.Lock()
	c.asyncErr = multierr.Append(c.asyncErr, err)
	c.errMu.Unlock()
}

// Stats returns a snapshot of the current statistics
func (c *Console) Stats() Snapshot {
	return c.stats.Snapshot()
}

// Close drains the async queue and returns any write errors the
// background goroutine ran into. Lines logged after Close are written
// synchronously.
func (c *Console) Close() error {
	c.closeOnce.Do(func() {
		c.closeMu.Lock()
		close(c.closed)
		c.closeMu.Unlock()
		c.wg.Wait()
	})

	c.errMu.Lock()
	defer c.errMu.Unlock()
	err := c.asyncErr
	c.asyncErr = nil
	return err
}
