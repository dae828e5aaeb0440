package export

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/katalvlaran/fseof/fseof"
)

// ErrUnknownFormat is returned by Write for a format with no registered writer.
var ErrUnknownFormat = errors.New("export: unknown format")

// ErrNilResult is returned when a writer receives a nil result.
var ErrNilResult = errors.New("export: nil result")

// WriterFunc renders res to w.
type WriterFunc func(w io.Writer, res *fseof.Result, opts Options) error

var (
	mu      sync.RWMutex
	writers = map[string]WriterFunc{}
)

// Register installs fn for format, replacing any previous writer.
// Panics on an empty format or nil fn.
func Register(format string, fn WriterFunc) {
	if format == "" || fn == nil {
		panic("export: Register requires a format and a writer")
	}
	mu.Lock()
	defer mu.Unlock()
	writers[format] = fn
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(writers))
	for f := range writers {
		out = append(out, f)
	}
	sort.Strings(out)

	return out
}

// Write renders res in format to w.
func Write(format string, w io.Writer, res *fseof.Result, opts Options) error {
	mu.RLock()
	fn, ok := writers[format]
	mu.RUnlock()
	if !ok {
		return fmt.Errorf("Write(%q): %w", format, ErrUnknownFormat)
	}
	if res == nil {
		return ErrNilResult
	}

	return fn(w, res, opts.withDefaults())
}

func init() {
	Register("csv", func(w io.Writer, res *fseof.Result, opts Options) error { return writeDelimited(w, res, opts, ',') })
	Register("tsv", func(w io.Writer, res *fseof.Result, opts Options) error { return writeDelimited(w, res, opts, '\t') })
	Register("json", writeJSON)
	Register("text", writeText)
}
