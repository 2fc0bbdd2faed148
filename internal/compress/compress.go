package compress

import (
	"fmt"
	"sort"
	"strings"
)

// Codec is the interface implemented by all whole-file codecs.
type Codec interface {
	// Name returns the codec name.
	Name() string

	// Decode transforms compressed data to its raw form.
	Decode(input []byte) ([]byte, error)
}

// Registry maps lower-case file suffixes to codec constructors.
var Registry = map[string]func() Codec{
	".gz":   func() Codec { return NewGzip() },
	".zst":  func() Codec { return NewZstd() },
	".zstd": func() Codec { return NewZstd() },
}

// unsupported lists suffixes seen in the wild that have no codec here,
// so that callers get a clearer message than a signature failure.
var unsupported = map[string]string{
	".fz":  "tile-compressed FITS (fpack)",
	".bz2": "bzip2",
	".xz":  "xz",
}

// ForPath returns the codec for path, or nil when the file is not compressed.
func ForPath(path string) Codec {
	suffix := suffixOf(path)
	constructor, ok := Registry[suffix]
	if !ok {
		return nil
	}
	return constructor()
}

// Check returns an error when path carries a known but unsupported
// compression suffix.
func Check(path string) error {
	suffix := suffixOf(path)
	if name, known := unsupported[suffix]; known {
		return fmt.Errorf("%s compression (%s) is not supported", name, suffix)
	}
	return nil
}

// Suffixes returns the registered suffixes in sorted order.
func Suffixes() []string {
	out := make([]string, 0, len(Registry))
	for s := range Registry {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// TrimSuffix removes a registered compression suffix from path.
func TrimSuffix(path string) string {
	suffix := suffixOf(path)
	if _, ok := Registry[suffix]; !ok {
		return path
	}
	return path[:len(path)-len(suffix)]
}

func suffixOf(path string) string {
	i := strings.LastIndex(path, ".")
	if i == -1 {
		return ""
	}
	return strings.ToLower(path[i:])
}
