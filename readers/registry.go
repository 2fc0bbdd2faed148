package readers

import (
	"fmt"
	"sort"
	"sync"

	"github.com/robert-malhotra/go-rainbow/fits"
	"github.com/robert-malhotra/go-rainbow/rainbow"
)

// ReaderFunc reads the file(s) at path into r.
type ReaderFunc func(r *rainbow.Rainbow, path string, opts ...Option) (*rainbow.Rainbow, error)

// formatSpec describes how the shared pipeline treats a built-in format.
type formatSpec struct {
	check func(path string, hdr *fits.Header) string
	times timeFunc
}

var specs = map[Format]formatSpec{
	FormatAtoca:   {check: checkAtoca, times: atocaTimes},
	FormatX1DInts: {check: checkX1DInts, times: x1dintsTimes},
}

func lookupSpec(f Format) (formatSpec, bool) {
	s, ok := specs[f]
	return s, ok
}

var (
	registryMu sync.RWMutex
	registry   = map[Format]ReaderFunc{
		FormatAtoca:   FromAtoca,
		FormatX1DInts: FromX1DInts,
	}
)

// Register makes a reader available to Read under format, replacing any
// reader already registered for it.
func Register(format Format, fn ReaderFunc) {
	if format == "" || fn == nil {
		panic("readers: Register with empty format or nil reader")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[format] = fn
}

// Lookup returns the reader registered for format.
func Lookup(format Format) (ReaderFunc, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	fn, ok := registry[format]
	return fn, ok
}

// Formats returns the registered formats in sorted order.
func Formats() []Format {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Format, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Read reads path into r with the reader for its format. The format is
// detected from the first matching file unless WithFormat is given.
func Read(r *rainbow.Rainbow, path string, opts ...Option) (*rainbow.Rainbow, error) {
	format := applyOptions(opts).format
	if format == "" {
		paths, err := expandPaths(path)
		if err != nil {
			return nil, err
		}
		format, err = Detect(paths[0])
		if err != nil {
			return nil, err
		}
	}

	fn, ok := Lookup(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return fn(r, path, opts...)
}
