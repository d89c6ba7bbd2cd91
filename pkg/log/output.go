package log

import (
	"io"
	"os"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Output receives formatted entries.
type Output interface {
	Write(entry *Entry, formatted []byte) error
	Close() error
}

// ConsoleOutput writes to stderr, serialized across goroutines.
type ConsoleOutput struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleOutput creates a console output.
func NewConsoleOutput() *ConsoleOutput { return &ConsoleOutput{w: os.Stderr} }

// Write implements Output.
func (o *ConsoleOutput) Write(_ *Entry, formatted []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := o.w.Write(formatted)
	return err
}

// Close implements Output; the console is never closed.
func (o *ConsoleOutput) Close() error { return nil }

// FileOutput writes to a rotating log file.
type FileOutput struct {
	mu sync.Mutex
	lj *lumberjack.Logger
}

// FileOptions configures a FileOutput.
type FileOptions struct {
	Path       string
	MaxSizeMB  int // rotate after this many megabytes; 0 means 100
	MaxBackups int // rotated files to keep; 0 keeps all
	MaxAgeDays int // days to retain rotated files; 0 keeps all
}

// NewFileOutput creates a rotating file output at opts.Path.
func NewFileOutput(opts FileOptions) *FileOutput {
	return &FileOutput{lj: &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
	}}
}

// Write implements Output.
func (o *FileOutput) Write(_ *Entry, formatted []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := o.lj.Write(formatted)
	return err
}

// Close implements Output.
func (o *FileOutput) Close() error { return o.lj.Close() }

// NullOutput discards everything; useful in tests.
type NullOutput struct{}

// Write implements Output.
func (NullOutput) Write(*Entry, []byte) error { return nil }

// Close implements Output.
func (NullOutput) Close() error { return nil }

// writerOutput adapts an arbitrary io.Writer; used by tests to capture
// formatted entries.
type writerOutput struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterOutput creates an Output writing to w.
func NewWriterOutput(w io.Writer) Output { return &writerOutput{w: w} }

func (o *writerOutput) Write(_ *Entry, formatted []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := o.w.Write(formatted)
	return err
}

func (o *writerOutput) Close() error { return nil }
